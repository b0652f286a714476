package buchi

import (
	"sort"

	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// ascendingPriorities returns the priority values occurring in dimension 0
// of a, sorted ascending.
func ascendingPriorities(a *symbolic.Arena) []int {
	ps := make([]int, 0, len(a.Priorities[0]))
	for p := range a.Priorities[0] {
		ps = append(ps, p)
	}
	sort.Ints(ps)
	return ps
}

// PartialSolver repeatedly looks for a priority class whose monotone
// attractor can absorb it entirely (a "fatal" priority), peels the regular
// attractor of that class off into the appropriate player's partial winning
// region, and recurses on what remains. It terminates either
// because the remaining arena is empty or because no priority class is
// fatal, in which case the caller must fall back to full recursion on the
// returned sub-arena.
func PartialSolver(a *symbolic.Arena, win0, win1 bddengine.Func) (*symbolic.Arena, bddengine.Func, bddengine.Func, error) {
	e := a.Engine

	for _, priority := range ascendingPriorities(a) {
		vertices, err := a.Vertices()
		if err != nil {
			return nil, bddengine.Func{}, bddengine.Func{}, err
		}
		target, err := e.And(a.PriorityFunc(0, priority), vertices)
		if err != nil {
			return nil, bddengine.Func{}, bddengine.Func{}, err
		}

		cache := e.False()
		for !cache.Equal(target) && !target.IsFalse() {
			cache = target

			monotoneAttr, err := attractor.MonotoneAttractor(a, target, priority, 0)
			if err != nil {
				return nil, bddengine.Func{}, bddengine.Func{}, err
			}

			grown, err := e.Or(monotoneAttr, target)
			if err != nil {
				return nil, bddengine.Func{}, bddengine.Func{}, err
			}

			if grown.Equal(monotoneAttr) {
				player := priority % 2
				regularAttr, err := attractor.Attractor(a, monotoneAttr, player)
				if err != nil {
					return nil, bddengine.Func{}, bddengine.Func{}, err
				}

				if player == 1 {
					win1, err = e.Or(win1, regularAttr)
				} else {
					win0, err = e.Or(win0, regularAttr)
				}
				if err != nil {
					return nil, bddengine.Func{}, bddengine.Func{}, err
				}

				rest, err := e.Not(regularAttr)
				if err != nil {
					return nil, bddengine.Func{}, bddengine.Func{}, err
				}
				sub, err := a.Subarena(rest)
				if err != nil {
					return nil, bddengine.Func{}, bddengine.Func{}, err
				}
				return PartialSolver(sub, win0, win1)
			}

			target, err = e.And(target, monotoneAttr)
			if err != nil {
				return nil, bddengine.Func{}, bddengine.Func{}, err
			}
		}
	}

	return a, win0, win1, nil
}
