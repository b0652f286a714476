package symbolic

import "github.com/vparity/gpsolve/bddengine"

// Subarena restricts the arena to the vertices selected by v: an edge
// survives only if both endpoints lie in v, and each priority class
// is intersected with the surviving player-vertex sets. The returned Arena
// shares Vars, VarsBis, Mapping, and InvMapping with the receiver — it is a
// fresh value, not a mutation of a.
func (a *Arena) Subarena(v bddengine.Func) (*Arena, error) {
	vBis, err := a.Engine.Let(a.Mapping, v)
	if err != nil {
		return nil, err
	}

	edges, err := a.Engine.And(a.Edges, v)
	if err != nil {
		return nil, err
	}
	edges, err = a.Engine.And(edges, vBis)
	if err != nil {
		return nil, err
	}

	p0, err := a.Engine.And(a.Player0Vertices, v)
	if err != nil {
		return nil, err
	}
	p1, err := a.Engine.And(a.Player1Vertices, v)
	if err != nil {
		return nil, err
	}

	vertices, err := a.Engine.Or(p0, p1)
	if err != nil {
		return nil, err
	}

	priorities := make([]map[int]bddengine.Func, a.NumFunctions)
	for dim, classes := range a.Priorities {
		restricted := make(map[int]bddengine.Func, len(classes))
		for p, f := range classes {
			newF, err := a.Engine.And(f, vertices)
			if err != nil {
				return nil, err
			}
			if newF.IsFalse() {
				continue
			}
			restricted[p] = newF
		}
		priorities[dim] = restricted
	}

	return &Arena{
		Engine:          a.Engine,
		Vars:            a.Vars,
		VarsBis:         a.VarsBis,
		Mapping:         a.Mapping,
		InvMapping:      a.InvMapping,
		Player0Vertices: p0,
		Player1Vertices: p1,
		Edges:           edges,
		Priorities:      priorities,
		NumFunctions:    a.NumFunctions,
		NumDigitsVertex: a.NumDigitsVertex,
	}, nil
}

// Complement returns ¬v. It exists only so call sites read as
// arena.Subarena(arena.Complement(a0)); Subarena's own conjunction with the
// player vertex sets is what keeps the result inside this arena's universe,
// so no extra restriction is needed here.
func (a *Arena) Complement(v bddengine.Func) (bddengine.Func, error) {
	return a.Engine.Not(v)
}
