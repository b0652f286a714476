package symbolic

import "github.com/vparity/gpsolve/bddengine"

// Arena is a symbolic representation of a finite two-player game with one or
// more priority functions.
//
// Vars and VarsBis are two disjoint, equal-length lists of BDD variable
// indices: an n-bit valuation over Vars encodes the current vertex, and over
// VarsBis the successor vertex. Mapping renames Vars[i] to VarsBis[i];
// InvMapping is its inverse.
type Arena struct {
	Engine *bddengine.Engine

	Vars    []int
	VarsBis []int

	Mapping    bddengine.Pairing
	InvMapping bddengine.Pairing

	Player0Vertices bddengine.Func
	Player1Vertices bddengine.Func
	Edges           bddengine.Func

	// Priorities[d] maps a priority value to the set of vertices holding
	// that priority in dimension d. Missing keys denote the empty set.
	Priorities []map[int]bddengine.Func

	NumFunctions    int
	NumDigitsVertex int
}

// Vertices returns the set of all vertices present in the arena, i.e.
// Player0Vertices ∪ Player1Vertices.
func (a *Arena) Vertices() (bddengine.Func, error) {
	return a.Engine.Or(a.Player0Vertices, a.Player1Vertices)
}

// IsEmpty reports whether the arena has no vertices at all.
func (a *Arena) IsEmpty() (bool, error) {
	v, err := a.Vertices()
	if err != nil {
		return false, err
	}
	return v.IsFalse(), nil
}

// MaxPriority returns the largest priority key present in dimension dim and
// true, or (0, false) if dimension dim has no entries.
func (a *Arena) MaxPriority(dim int) (int, bool) {
	max, found := 0, false
	for p, f := range a.Priorities[dim] {
		if f.IsFalse() {
			continue
		}
		if !found || p > max {
			max, found = p, true
		}
	}
	return max, found
}

// PriorityFunc returns the Boolean function for priority p in dimension dim,
// or the engine's False constant if p is absent: priorities not present as
// keys denote the empty set.
func (a *Arena) PriorityFunc(dim, p int) bddengine.Func {
	if f, ok := a.Priorities[dim][p]; ok {
		return f
	}
	return a.Engine.False()
}

// LessEqual returns the disjunction of every priority class in dimension dim
// whose value is ≤ bound — the "LE" set used by the monotone attractor.
func (a *Arena) LessEqual(dim, bound int) (bddengine.Func, error) {
	le := a.Engine.False()
	for p, f := range a.Priorities[dim] {
		if p > bound {
			continue
		}
		var err error
		le, err = a.Engine.Or(le, f)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return le, nil
}
