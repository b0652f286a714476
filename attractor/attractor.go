// Core fixed points, ported from bdd/attractor.py (attractor_cudd /
// monotone_attractor / a hand-written safe-attractor variant of the same
// shape).
package attractor

import (
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// Attractor computes the set of vertices from which player can force reaching
// v. One iteration renames the current iterate onto vars_bis,
// finds vertices with at least one successor inside it (ExSucc) and vertices
// all of whose successors lie inside it (AllSucc), then grows the iterate by
// player0 vertices with an ExSucc witness union player1 vertices with
// AllSucc (or the reverse, for player 1).
func Attractor(a *symbolic.Arena, v bddengine.Func, player int) (bddengine.Func, error) {
	e := a.Engine
	varsetBis, err := e.Makeset(a.VarsBis)
	if err != nil {
		return bddengine.Func{}, err
	}

	old := e.False()
	current := v

	for !current.Equal(old) {
		old = current

		oldBis, err := e.Let(a.Mapping, old)
		if err != nil {
			return bddengine.Func{}, err
		}

		exSucc, err := e.AndExist(a.Edges, oldBis, varsetBis)
		if err != nil {
			return bddengine.Func{}, err
		}

		notOldBis, err := e.Not(oldBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		hasSuccOutside, err := e.AndExist(a.Edges, notOldBis, varsetBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		allSucc, err := e.Not(hasSuccOutside)
		if err != nil {
			return bddengine.Func{}, err
		}

		step, err := stepFor(e, a, player, exSucc, allSucc)
		if err != nil {
			return bddengine.Func{}, err
		}

		current, err = e.Or(old, step)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return current, nil
}

// stepFor combines the "has a witness inside" (exSucc) and "every successor
// inside" (allSucc) sets according to which player is attracting: player 0
// only needs one successor in the target (it chooses the move), player 1
// needs every successor to stay in the target (the opponent chooses).
func stepFor(e *bddengine.Engine, a *symbolic.Arena, player int, exSucc, allSucc bddengine.Func) (bddengine.Func, error) {
	var p0Witness, p1Witness bddengine.Func
	var err error
	if player == 0 {
		p0Witness, err = e.And(a.Player0Vertices, exSucc)
		if err != nil {
			return bddengine.Func{}, err
		}
		p1Witness, err = e.And(a.Player1Vertices, allSucc)
		if err != nil {
			return bddengine.Func{}, err
		}
	} else {
		p0Witness, err = e.And(a.Player0Vertices, allSucc)
		if err != nil {
			return bddengine.Func{}, err
		}
		p1Witness, err = e.And(a.Player1Vertices, exSucc)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return e.Or(p0Witness, p1Witness)
}

// MonotoneAttractor computes the largest X ⊆ LE such that player can force
// re-entering v while never leaving LE = {vertices with dimension-dim
// priority ≤ priority}. player is fixed to priority%2. Unlike
// Attractor, each round re-adds v as a source (σ(X ∨ V), not σ(X) alone) —
// this is the "fatal attractor" semantics the Büchi partial solvers rely on:
// v itself is not automatically part of the result.
func MonotoneAttractor(a *symbolic.Arena, v bddengine.Func, priority, dim int) (bddengine.Func, error) {
	e := a.Engine
	player := priority % 2

	le, err := a.LessEqual(dim, priority)
	if err != nil {
		return bddengine.Func{}, err
	}

	varsetBis, err := e.Makeset(a.VarsBis)
	if err != nil {
		return bddengine.Func{}, err
	}

	old := e.True()
	current := e.False()

	for !current.Equal(old) {
		old = current

		sourceSet, err := e.Or(old, v)
		if err != nil {
			return bddengine.Func{}, err
		}
		sourceBis, err := e.Let(a.Mapping, sourceSet)
		if err != nil {
			return bddengine.Func{}, err
		}

		exSucc, err := e.AndExist(a.Edges, sourceBis, varsetBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		notSourceBis, err := e.Not(sourceBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		hasSuccOutside, err := e.AndExist(a.Edges, notSourceBis, varsetBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		allSucc, err := e.Not(hasSuccOutside)
		if err != nil {
			return bddengine.Func{}, err
		}

		step, err := stepFor(e, a, player, exSucc, allSucc)
		if err != nil {
			return bddengine.Func{}, err
		}

		grown, err := e.Or(old, step)
		if err != nil {
			return bddengine.Func{}, err
		}
		current, err = e.And(grown, le)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return current, nil
}

// SafeAttractor is the standard attractor restricted to never pass through
// avoid: each step additionally conjoins with ¬avoid. No solver in this
// module calls it; buchi.GeneralizedBuchiInterSafety removes player 1's
// attractor of the avoided set and solves the rest without it.
func SafeAttractor(a *symbolic.Arena, v, avoid bddengine.Func, player int) (bddengine.Func, error) {
	e := a.Engine
	notAvoid, err := e.Not(avoid)
	if err != nil {
		return bddengine.Func{}, err
	}

	varsetBis, err := e.Makeset(a.VarsBis)
	if err != nil {
		return bddengine.Func{}, err
	}

	old := e.False()
	current, err := e.And(v, notAvoid)
	if err != nil {
		return bddengine.Func{}, err
	}

	for !current.Equal(old) {
		old = current

		oldBis, err := e.Let(a.Mapping, old)
		if err != nil {
			return bddengine.Func{}, err
		}
		exSucc, err := e.AndExist(a.Edges, oldBis, varsetBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		notOldBis, err := e.Not(oldBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		hasSuccOutside, err := e.AndExist(a.Edges, notOldBis, varsetBis)
		if err != nil {
			return bddengine.Func{}, err
		}
		allSucc, err := e.Not(hasSuccOutside)
		if err != nil {
			return bddengine.Func{}, err
		}

		step, err := stepFor(e, a, player, exSucc, allSucc)
		if err != nil {
			return bddengine.Func{}, err
		}
		step, err = e.And(step, notAvoid)
		if err != nil {
			return bddengine.Func{}, err
		}

		current, err = e.Or(old, step)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return current, nil
}
