package gparity

import (
	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

func allOdd(maxPriorities []int) bool {
	for _, v := range maxPriorities {
		if v != 1 {
			return false
		}
	}
	return true
}

func copyDecrement(maxPriorities []int, dim int) []int {
	out := append([]int(nil), maxPriorities...)
	out[dim] -= 2
	return out
}

// DisjParityWin solves a generalized parity game whose every dimension has
// an odd maximal priority. For each dimension whose max isn't
// already the trivial value 1, it attracts player 0 to that dimension's top
// priority, attracts player 1 to the priority just below it in what
// remains, and recurses on the residue with that dimension's max lowered by
// two — iterating until player 1 either wins the whole residual arena or
// the outer arena collapses, at which point the found region is folded
// back in via one more attractor and recursive call.
func DisjParityWin(a *symbolic.Arena, maxPriorities []int) (win0, win1 bddengine.Func, err error) {
	e := a.Engine

	vertices, err := a.Vertices()
	if err != nil {
		return bddengine.Func{}, bddengine.Func{}, err
	}
	if allOdd(maxPriorities) || vertices.IsFalse() {
		return vertices, e.False(), nil
	}

	for dim := 0; dim < a.NumFunctions; dim++ {
		if maxPriorities[dim] == 1 {
			continue
		}

		a0, err := attractor.Attractor(a, a.PriorityFunc(dim, maxPriorities[dim]), 0)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		notA0, err := e.Not(a0)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		gBar, err := a.Subarena(notA0)
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
			w0, w1, err = DisjParityWin(h, copyDecrement(maxPriorities, dim))
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
			a1Outer, err := attractor.Attractor(a, qBar, 1)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			notA1Outer, err := e.Not(a1Outer)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			sub, err := a.Subarena(notA1Outer)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			w0bis, w1bis, err := DisjParityWin(sub, maxPriorities)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			w1Total, err := e.Or(a1Outer, w1bis)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			return w0bis, w1Total, nil
		}
	}

	return vertices, e.False(), nil
}

// GeneralizedRecursive solves the generalized parity game a, whose
// dimensions need not have odd maxima, by complementing priorities and
// running DisjParityWin. a is not mutated by the complementation.
func GeneralizedRecursive(a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	complemented, maxPriorities := ComplementPriorities(a)
	return DisjParityWin(complemented, maxPriorities)
}
