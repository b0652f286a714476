package buchi

import (
	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// GeneralizedBuchi solves player 0's generalized Büchi objective "visit
// every f[d] infinitely often". It repeatedly looks for a
// dimension player 0 cannot fully attract to, lets player 1 attract away
// from the residue, and shrinks the arena by player 1's gains until either
// player 0 can attract to every dimension or player 1's attractor is empty.
func GeneralizedBuchi(a *symbolic.Arena, f []bddengine.Func) (bddengine.Func, error) {
	e := a.Engine
	vertices, err := a.Vertices()
	if err != nil {
		return bddengine.Func{}, err
	}
	current, err := a.Subarena(vertices)
	if err != nil {
		return bddengine.Func{}, err
	}

	for {
		var notB0 bddengine.Func
		found := false
		for _, fd := range f {
			b0, err := attractor.Attractor(current, fd, 0)
			if err != nil {
				return bddengine.Func{}, err
			}
			curVertices, err := current.Vertices()
			if err != nil {
				return bddengine.Func{}, err
			}
			notB0Candidate, err := e.Not(b0)
			if err != nil {
				return bddengine.Func{}, err
			}
			notB0Candidate, err = e.And(curVertices, notB0Candidate)
			if err != nil {
				return bddengine.Func{}, err
			}
			notB0 = notB0Candidate
			if !notB0.IsFalse() {
				found = true
				break
			}
		}
		if !found {
			break
		}

		b1, err := attractor.Attractor(current, notB0, 1)
		if err != nil {
			return bddengine.Func{}, err
		}
		if b1.IsFalse() {
			break
		}
		notB1, err := e.Not(b1)
		if err != nil {
			return bddengine.Func{}, err
		}
		current, err = current.Subarena(notB1)
		if err != nil {
			return bddengine.Func{}, err
		}
	}

	return current.Vertices()
}

// GeneralizedBuchiInterSafety solves the conjunction of a generalized Büchi
// objective f and a safety objective (avoid s) for player 0.
func GeneralizedBuchiInterSafety(a *symbolic.Arena, f []bddengine.Func, s bddengine.Func) (bddengine.Func, error) {
	attrAdv, err := attractor.Attractor(a, s, 1)
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
	return GeneralizedBuchi(restricted, f)
}

// maxPriorities returns, per dimension, the greatest priority value
// present, or -1 if the dimension is empty.
func maxPriorities(a *symbolic.Arena) []int {
	maxes := make([]int, a.NumFunctions)
	for d := range maxes {
		if m, ok := a.MaxPriority(d); ok {
			maxes[d] = m
		} else {
			maxes[d] = -1
		}
	}
	return maxes
}

// supPrioExprEven returns the disjunction of priority classes in dimension
// dim that are even and ≥ minPrio, up to maxVal.
func supPrioExprEven(a *symbolic.Arena, minPrio, dim, maxVal int) (bddengine.Func, error) {
	e := a.Engine
	res := e.False()
	start := minPrio
	if start%2 != 0 {
		start++
	}
	for p := start; p <= maxVal; p += 2 {
		var err error
		res, err = e.Or(res, a.PriorityFunc(dim, p))
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return res, nil
}

// supOnePrioOdd returns the disjunction, over every dimension, of odd
// priority classes ≥ minPrios[dim].
func supOnePrioOdd(a *symbolic.Arena, minPrios, maxVals []int) (bddengine.Func, error) {
	e := a.Engine
	res := e.False()
	for dim := 0; dim < a.NumFunctions; dim++ {
		start := minPrios[dim]
		if start%2 == 0 {
			start++
		}
		for p := start; p <= maxVals[dim]; p += 2 {
			var err error
			res, err = e.Or(res, a.PriorityFunc(dim, p))
			if err != nil {
				return bddengine.Func{}, err
			}
		}
	}
	return res, nil
}

// GeneralizedPartialSolver is the generalized-parity analogue of
// PartialSolver: it looks for a single odd priority class (any
// dimension) or a combination of even priority classes (one per dimension)
// from which the opposing player's generalized-Büchi-∩-safety attractor is
// non-empty, peels that attractor into the matching player's region, and
// recurses on the remainder. The recursion bottoms out when neither search
// finds anything to peel, returning (∅, ∅) for the residual arena — the
// caller then falls back to full generalized-parity recursion.
func GeneralizedPartialSolver(a *symbolic.Arena) (win0, win1 bddengine.Func, err error) {
	e := a.Engine
	maxVals := maxPriorities(a)

	for dim := 0; dim < a.NumFunctions; dim++ {
		for priority := 0; priority <= maxVals[dim]; priority++ {
			if priority%2 != 1 {
				continue
			}
			u := a.PriorityFunc(dim, priority)
			if u.IsFalse() {
				continue
			}
			uBis, err := supPrioExprEven(a, priority, dim, maxVals[dim])
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}

			safeRegion, err := BuchiInterSafety(a, 1, u, uBis)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			w, err := attractor.Attractor(a, safeRegion, 1)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			if w.IsFalse() {
				continue
			}

			notW, err := e.Not(w)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			sub, err := a.Subarena(notW)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			z0, z1, err := GeneralizedPartialSolver(sub)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			z1, err = e.Or(z1, w)
			if err != nil {
				return bddengine.Func{}, bddengine.Func{}, err
			}
			return z0, z1, nil
		}
	}

	evenCombos := generateEvenCombinations(a, maxVals)
	for _, combo := range evenCombos {
		u := make([]bddengine.Func, a.NumFunctions)
		for dim, p := range combo {
			u[dim] = a.PriorityFunc(dim, p)
		}
		uBis, err := supOnePrioOdd(a, combo, maxVals)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}

		safeRegion, err := GeneralizedBuchiInterSafety(a, u, uBis)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		w, err := attractor.Attractor(a, safeRegion, 0)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		if w.IsFalse() {
			continue
		}

		notW, err := e.Not(w)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		sub, err := a.Subarena(notW)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		z0, z1, err := GeneralizedPartialSolver(sub)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		z0, err = e.Or(z0, w)
		if err != nil {
			return bddengine.Func{}, bddengine.Func{}, err
		}
		return z0, z1, nil
	}

	return e.False(), e.False(), nil
}

// generateEvenCombinations enumerates the Cartesian product of the even
// priority values occurring in each dimension.
func generateEvenCombinations(a *symbolic.Arena, maxVals []int) [][]int {
	perDim := make([][]int, a.NumFunctions)
	for dim := 0; dim < a.NumFunctions; dim++ {
		for p := 0; p <= maxVals[dim]; p += 2 {
			if !a.PriorityFunc(dim, p).IsFalse() {
				perDim[dim] = append(perDim[dim], p)
			}
		}
		if len(perDim[dim]) == 0 {
			return nil
		}
	}

	combos := [][]int{{}}
	for _, values := range perDim {
		var next [][]int
		for _, combo := range combos {
			for _, v := range values {
				extended := append(append([]int{}, combo...), v)
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}
