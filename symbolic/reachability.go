package symbolic

import "github.com/vparity/gpsolve/bddengine"

// RestrictToReachable computes the forward-reachable vertices from init
// along Edges and restricts the player sets and priorities to them (spec
// §4.1). Used after constructing a product automaton, where the raw product
// may contain unreachable junk states. Edges themselves are left untouched
// unless restrictEdges is set — the solvers tolerate edges into absent
// vertices because attractor computations always conjoin with the current
// player-vertex sets, so a dangling successor can never be a witness.
func (a *Arena) RestrictToReachable(init bddengine.Func, restrictEdges bool) (*Arena, error) {
	varset, err := a.Engine.Makeset(a.Vars)
	if err != nil {
		return nil, err
	}

	reached := init
	for {
		// Successors of `reached` in one step: project the current-state
		// variables out of (edges ∧ reached), leaving a function over
		// vars_bis, then rename it back onto vars.
		succBis, err := a.Engine.AndExist(a.Edges, reached, varset)
		if err != nil {
			return nil, err
		}
		succ, err := a.Engine.Let(a.InvMapping, succBis)
		if err != nil {
			return nil, err
		}
		next, err := a.Engine.Or(reached, succ)
		if err != nil {
			return nil, err
		}
		if next.Equal(reached) {
			break
		}
		reached = next
	}

	restricted, err := a.Subarena(reached)
	if err != nil {
		return nil, err
	}
	if restrictEdges {
		reachedBis, err := a.Engine.Let(a.Mapping, reached)
		if err != nil {
			return nil, err
		}
		edges, err := a.Engine.And(a.Edges, reached)
		if err != nil {
			return nil, err
		}
		edges, err = a.Engine.And(edges, reachedBis)
		if err != nil {
			return nil, err
		}
		restricted.Edges = edges
	}
	return restricted, nil
}
