package buchi

import (
	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// recur computes the largest X ⊆ f from which player can force a return to
// X in one or more steps: the set of vertices in f from which player can
// force infinitely many returns to f. The one-or-more-step attractor is
// MonotoneAttractor with a bound of player's parity at or above every
// dimension-0 priority, so the bound excludes no vertex of a.
func recur(a *symbolic.Arena, player int, f bddengine.Func) (bddengine.Func, error) {
	bound := player
	if m, ok := a.MaxPriority(0); ok && m > bound {
		bound = m + (m+player)%2
	}
	old := f
	for {
		attr, err := attractor.MonotoneAttractor(a, old, bound, 0)
		if err != nil {
			return bddengine.Func{}, err
		}
		next, err := a.Engine.And(f, attr)
		if err != nil {
			return bddengine.Func{}, err
		}
		if next.Equal(old) {
			return next, nil
		}
		old = next
	}
}

// Buchi solves the plain Büchi objective "visit f infinitely often" for
// player: player's winning region is the attractor of the largest recurrent
// subset of f.
func Buchi(a *symbolic.Arena, player int, f bddengine.Func) (bddengine.Func, error) {
	r, err := recur(a, player, f)
	if err != nil {
		return bddengine.Func{}, err
	}
	return attractor.Attractor(a, r, player)
}

// BuchiInterSafety solves "visit f infinitely often while never entering
// the opponent's attractor of s": first remove the opponent's attractor
// toward the unsafe set s, then solve Büchi on what is left.
func BuchiInterSafety(a *symbolic.Arena, player int, f, s bddengine.Func) (bddengine.Func, error) {
	opponent := 1 - player
	attrAdv, err := attractor.Attractor(a, s, opponent)
	if err != nil {
		return bddengine.Func{}, err
	}
	notAttrAdv, err := a.Engine.Not(attrAdv)
	if err != nil {
		return bddengine.Func{}, err
	}
	restricted, err := a.Subarena(notAttrAdv)
	if err != nil {
		return bddengine.Func{}, err
	}
	return Buchi(restricted, player, f)
}
