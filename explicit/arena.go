package explicit

import "github.com/bits-and-blooms/bitset"

// Arena is a non-symbolic two-player arena with one or more priority
// dimensions, grounded on regular/arena.py.
// Vertex ids are dense integers in [0, NumVertices); Alive marks which ids
// are present in this (sub-)arena, so Subarena never needs to renumber.
type Arena struct {
	NumVertices  int
	NumFunctions int

	Owner    []int   // Owner[v] is 0 or 1
	Priority [][]int // Priority[v][dim] is v's priority in dimension dim

	Succ [][]int
	Pred [][]int

	Alive *bitset.BitSet
}

// New allocates an arena with numVertices vertices and numFunctions
// priority dimensions, all vertices initially alive and edgeless.
func New(numVertices, numFunctions int) (*Arena, error) {
	if numFunctions <= 0 {
		return nil, ErrNoDimensions
	}
	a := &Arena{
		NumVertices:  numVertices,
		NumFunctions: numFunctions,
		Owner:        make([]int, numVertices),
		Priority:     make([][]int, numVertices),
		Succ:         make([][]int, numVertices),
		Pred:         make([][]int, numVertices),
		Alive:        bitset.New(uint(numVertices)),
	}
	for v := 0; v < numVertices; v++ {
		a.Priority[v] = make([]int, numFunctions)
		a.Alive.Set(uint(v))
	}
	return a, nil
}

// SetOwner assigns the owning player (0 or 1) of vertex v.
func (a *Arena) SetOwner(v, owner int) error {
	if v < 0 || v >= a.NumVertices {
		return ErrUnknownVertex
	}
	if owner != 0 && owner != 1 {
		return ErrOwnerOutOfRange
	}
	a.Owner[v] = owner
	return nil
}

// SetPriority assigns v's priority in dimension dim.
func (a *Arena) SetPriority(v, dim, p int) error {
	if v < 0 || v >= a.NumVertices {
		return ErrUnknownVertex
	}
	if dim < 0 || dim >= a.NumFunctions {
		return ErrPriorityArity
	}
	a.Priority[v][dim] = p
	return nil
}

// AddEdge adds the edge u -> v.
func (a *Arena) AddEdge(u, v int) error {
	if u < 0 || u >= a.NumVertices || v < 0 || v >= a.NumVertices {
		return ErrUnknownVertex
	}
	a.Succ[u] = append(a.Succ[u], v)
	a.Pred[v] = append(a.Pred[v], u)
	return nil
}

// Vertices returns a clone of the set of currently alive vertices.
func (a *Arena) Vertices() *bitset.BitSet {
	return a.Alive.Clone()
}

// MaxPriority returns the largest priority value held by an alive vertex in
// dimension dim, or (0, false) if no vertex is alive.
func (a *Arena) MaxPriority(dim int) (int, bool) {
	max, found := 0, false
	for i, e := a.Alive.NextSet(0); e; i, e = a.Alive.NextSet(i + 1) {
		p := a.Priority[i][dim]
		if !found || p > max {
			max, found = p, true
		}
	}
	return max, found
}

// Subarena returns the arena restricted to alive vertices not present in
// remove. It shares the parent's adjacency slices — only Alive differs —
// mirroring arena.py's subarena() without the renumbering that Python
// needs for its list-based priority index but a bitset does not.
func (a *Arena) Subarena(remove *bitset.BitSet) *Arena {
	sub := &Arena{
		NumVertices:  a.NumVertices,
		NumFunctions: a.NumFunctions,
		Owner:        a.Owner,
		Priority:     a.Priority,
		Succ:         a.Succ,
		Pred:         a.Pred,
		Alive:        a.Alive.Difference(remove),
	}
	return sub
}

// Complement returns the alive-vertex complement of v within this arena.
func (a *Arena) Complement(v *bitset.BitSet) *bitset.BitSet {
	return a.Alive.Difference(v)
}
