package zielonka

import (
	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/buchi"
	"github.com/vparity/gpsolve/symbolic"
)

// RecursiveWithBuchi runs buchi.PartialSolver once per recursive call before
// falling back to a single step of Zielonka's algorithm on whatever the
// partial solver could not settle. The partial solver's findings are folded
// into the final result alongside the recursive step's own findings.
func RecursiveWithBuchi(a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	e := a.Engine

	empty, err := a.IsEmpty()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if empty {
		return e.False(), e.False(), nil
	}

	remaining, partial0, partial1, err := buchi.PartialSolver(a, e.False(), e.False())
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	remainingEmpty, err := remaining.IsEmpty()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if remainingEmpty {
		return partial0, partial1, nil
	}

	maxPriority, _ := remaining.MaxPriority(0)
	player := maxPriority % 2
	opponent := 1 - player

	u := remaining.PriorityFunc(0, maxPriority)
	attr, err := attractor.Attractor(remaining, u, player)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	notAttr, err := e.Not(attr)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	subA, err := remaining.Subarena(notAttr)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	w0A, w1A, err := RecursiveWithBuchi(subA)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	playerRegion, opponentRegion := regionsFor(player, w0A, w1A)

	win0, win1 = e.False(), e.False()
	if opponentRegion.IsFalse() {
		playerWin, err := e.Or(attr, playerRegion)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		win0, win1 = setRegion(player, win0, win1, playerWin)
	} else {
		b, err := attractor.Attractor(remaining, opponentRegion, opponent)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		notB, err := e.Not(b)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		subB, err := remaining.Subarena(notB)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}

		w0B, w1B, err := RecursiveWithBuchi(subB)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		playerRegionB, opponentRegionB := regionsFor(player, w0B, w1B)

		win0, win1 = setRegion(player, win0, win1, playerRegionB)
		opponentWin, err := e.Or(opponentRegionB, b)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		win0, win1 = setRegion(opponent, win0, win1, opponentWin)
	}

	win0, err = e.Or(win0, partial0)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	win1, err = e.Or(win1, partial1)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	return win0, win1, nil
}

// ZielonkaWithPartialSolver runs the partial solver once, then at most two
// further recursive calls on the residual arena, mirroring bdd/recursive.py's
// "ziel_with_psolver": after peeling the partial solver's findings (z0,
// z1), if anything remains it attracts the maximal-priority player, checks
// whether the opponent's share of the sub-solution is empty and, if not,
// attracts the opponent away for one more recursive call, the same
// two-attractor shape as Recursive, composed around the partial solver's
// prefix.
func ZielonkaWithPartialSolver(a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	e := a.Engine

	empty, err := a.IsEmpty()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if empty {
		return e.False(), e.False(), nil
	}

	remaining, partial0, partial1, err := buchi.PartialSolver(a, e.False(), e.False())
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	gBar := remaining
	gBarEmpty, err := gBar.IsEmpty()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if gBarEmpty {
		return partial0, partial1, nil
	}

	pMax, _ := gBar.MaxPriority(0)
	player := pMax % 2

	x, err := attractor.Attractor(gBar, gBar.PriorityFunc(0, pMax), player)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	notX, err := e.Not(x)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	gInd, err := gBar.Subarena(notX)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	w0, w1, err := ZielonkaWithPartialSolver(gInd)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	winPlayer, winOpponent := regionsFor(player, w0, w1)

	if winOpponent.IsFalse() {
		playerTotal, err := e.Or(winPlayer, x)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		r0, r1 := setRegion(player, e.False(), e.False(), playerTotal)
		r0, err = e.Or(r0, partial0)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		r1, err = e.Or(r1, partial1)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		return r0, r1, nil
	}

	opponent := 1 - player
	x2, err := attractor.Attractor(gBar, winOpponent, opponent)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	notX2, err := e.Not(x2)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	gInd2, err := gBar.Subarena(notX2)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	w0b, w1b, err := ZielonkaWithPartialSolver(gInd2)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	r0, r1 := setRegion(player, e.False(), e.False(), pick(player, w0b, w1b))
	opponentTotal, err := e.Or(pick(opponent, w0b, w1b), x2)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	r0, r1 = setRegion(opponent, r0, r1, opponentTotal)

	r0, err = e.Or(r0, partial0)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	r1, err = e.Or(r1, partial1)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	return r0, r1, nil
}

// pick returns w0 if player is 0, else w1.
func pick(player int, w0, w1 bddengine.Func) bddengine.Func {
	if player == 0 {
		return w0
	}
	return w1
}
