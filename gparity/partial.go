package gparity

import (
	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/buchi"
	"github.com/vparity/gpsolve/symbolic"
)

// GeneralizedRecursiveWithPartialSolver runs buchi.GeneralizedPartialSolver
// once upfront, on the arena's original (uncomplemented) priorities, then
// complements what remains and falls back to DisjParityWin.
func GeneralizedRecursiveWithPartialSolver(a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	e := a.Engine

	partial0, partial1, err := buchi.GeneralizedPartialSolver(a)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	settled, err := e.Or(partial0, partial1)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	notSettled, err := e.Not(settled)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	remaining, err := a.Subarena(notSettled)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	remVertices, err := remaining.Vertices()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if remVertices.IsFalse() {
		return partial0, partial1, nil
	}

	complemented, maxPriorities := ComplementPriorities(remaining)
	w0, w1, err := DisjParityWin(complemented, maxPriorities)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}

	win0, err = e.Or(w0, partial0)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	win1, err = e.Or(w1, partial1)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	return win0, win1, nil
}

// GeneralizedRecursiveWithPartialSolverMultipleCalls complements priorities
// exactly once at the top level, then calls
// buchi.GeneralizedPartialSolver again at every recursive step of
// disjParityWinMultipleCalls. This step is sometimes called "inverted
// players": because priorities are already complemented by the time the
// partial solver sees them, the same generalized partial solver correctly
// reads player roles for the complemented game without needing a separate,
// player-swapped copy — see DESIGN.md for why.
func GeneralizedRecursiveWithPartialSolverMultipleCalls(a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	complemented, maxPriorities := ComplementPriorities(a)
	return disjParityWinMultipleCalls(complemented, maxPriorities)
}

func disjParityWinMultipleCalls(a *symbolic.Arena, maxPriorities []int) (win0, win1 bddengine.Func, err error) {
	e := a.Engine

	vertices, err := a.Vertices()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if allOdd(maxPriorities) || vertices.IsFalse() {
		return vertices, e.False(), nil
	}

	partial0, partial1, err := buchi.GeneralizedPartialSolver(a)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	settled, err := e.Or(partial0, partial1)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	notSettled, err := e.Not(settled)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	remaining, err := a.Subarena(notSettled)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	remVertices, err := remaining.Vertices()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if remVertices.IsFalse() {
		return partial0, partial1, nil
	}

	for dim := 0; dim < remaining.NumFunctions; dim++ {
		if maxPriorities[dim] == 1 {
			continue
		}

		a0, err := attractor.Attractor(remaining, remaining.PriorityFunc(dim, maxPriorities[dim]), 0)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		notA0, err := e.Not(a0)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		gBar, err := remaining.Subarena(notA0)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}

		a1, err := attractor.Attractor(gBar, gBar.PriorityFunc(dim, maxPriorities[dim]-1), 1)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		notA1, err := e.Not(a1)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		h, err := gBar.Subarena(notA1)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}

		var w0, w1 bddengine.Func
		for {
			w0, w1, err = disjParityWinMultipleCalls(h, copyDecrement(maxPriorities, dim))
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}

			gBarVertices, err := gBar.Vertices()
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			hVertices, err := h.Vertices()
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			if gBarVertices.IsFalse() || w1.Equal(hVertices) {
				break
			}

			na0, err := attractor.Attractor(gBar, w0, 0)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			notNa0, err := e.Not(na0)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			gBar, err = gBar.Subarena(notNa0)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}

			na1, err := attractor.Attractor(gBar, gBar.PriorityFunc(dim, maxPriorities[dim]-1), 1)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			notNa1, err := e.Not(na1)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			h, err = gBar.Subarena(notNa1)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
		}

		qBar, err := gBar.Vertices()
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		hVertices, err := h.Vertices()
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}

		if w1.Equal(hVertices) && !qBar.IsFalse() {
			a1Outer, err := attractor.Attractor(remaining, qBar, 1)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			notA1Outer, err := e.Not(a1Outer)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			sub, err := remaining.Subarena(notA1Outer)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			w0bis, w1bis, err := disjParityWinMultipleCalls(sub, maxPriorities)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}

			win0, err = e.Or(w0bis, partial0)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			w1Total, err := e.Or(a1Outer, w1bis)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			win1, err = e.Or(w1Total, partial1)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			return win0, win1, nil
		}
	}

	win0, err = e.Or(remVertices, partial0)
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	return win0, partial1, nil
}
