package explicit

import "github.com/bits-and-blooms/bitset"

// Attractor computes the set of alive vertices from which player can force
// entering target, ported to the adjacency-list representation: the
// symbolic package's exSucc/allSucc pair becomes "some alive successor
// is in region" / "every alive successor is in region".
func Attractor(a *Arena, target *bitset.BitSet, player int) *bitset.BitSet {
	region := target.Clone()
	for {
		grown := false
		for i, e := a.Alive.NextSet(0); e; i, e = a.Alive.NextSet(i + 1) {
			v := int(i)
			if region.Test(i) {
				continue
			}
			if attracted(a, v, region, player) {
				region.Set(i)
				grown = true
			}
		}
		if !grown {
			return region
		}
	}
}

// attracted reports whether vertex v belongs in the next round of the
// attractor for player, given the region computed so far.
func attracted(a *Arena, v int, region *bitset.BitSet, player int) bool {
	if a.Owner[v] == player {
		for _, s := range a.Succ[v] {
			if a.Alive.Test(uint(s)) && region.Test(uint(s)) {
				return true
			}
		}
		return false
	}
	for _, s := range a.Succ[v] {
		if a.Alive.Test(uint(s)) && !region.Test(uint(s)) {
			return false
		}
	}
	return true
}

// MonotoneAttractor computes the largest X, restricted to vertices with
// dimension-dim priority ≤ priority, from which player == priority%2 can
// force re-entering v — the "fatal attractor" used by the Büchi partial
// solvers. Each round re-adds v as a source.
func MonotoneAttractor(a *Arena, v *bitset.BitSet, priority, dim int) *bitset.BitSet {
	player := priority % 2
	le := bitset.New(uint(a.NumVertices))
	for i, e := a.Alive.NextSet(0); e; i, e = a.Alive.NextSet(i + 1) {
		if a.Priority[i][dim] <= priority {
			le.Set(i)
		}
	}

	current := bitset.New(uint(a.NumVertices))
	for {
		source := current.Union(v)
		grown := current.Clone()
		for i, e := a.Alive.NextSet(0); e; i, e = a.Alive.NextSet(i + 1) {
			vi := int(i)
			if grown.Test(i) {
				continue
			}
			if attracted(a, vi, source, player) {
				grown.Set(i)
			}
		}
		next := grown.Intersection(le)
		if next.Equal(current) {
			return next
		}
		current = next
	}
}

// SafeAttractor is the standard attractor restricted to never pass through
// avoid.
func SafeAttractor(a *Arena, v, avoid *bitset.BitSet, player int) *bitset.BitSet {
	region := v.Difference(avoid)
	for {
		grown := false
		for i, e := a.Alive.NextSet(0); e; i, e = a.Alive.NextSet(i + 1) {
			if region.Test(i) || avoid.Test(i) {
				continue
			}
			if attracted(a, int(i), region, player) {
				region.Set(i)
				grown = true
			}
		}
		if !grown {
			return region
		}
	}
}
