package gparity

import (
	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// ComplementPriorities returns a new arena whose priorities are a's shifted
// up by one in every dimension, plus the resulting per-dimension maximal
// priority forced to be odd: generalized parity objectives are stated as
// disjunctions of max-parity conditions, and the recursion only has to
// handle the odd-max case, so shifting the whole dimension by one (and
// bumping again if that lands on an even max) lets every other operator
// assume its target player is always player 1. a itself is left untouched —
// the returned Arena shares Engine, Vars, VarsBis, Mapping, InvMapping,
// Player0Vertices, Player1Vertices, and Edges with a, and carries a freshly
// built Priorities slice, mirroring symbolic.Arena.Subarena's non-mutating
// construction.
func ComplementPriorities(a *symbolic.Arena) (*symbolic.Arena, []int) {
	maxPriorities := make([]int, a.NumFunctions)
	priorities := make([]map[int]bddengine.Func, a.NumFunctions)

	for dim := 0; dim < a.NumFunctions; dim++ {
		classes := a.Priorities[dim]
		shifted := make(map[int]bddengine.Func, len(classes))
		max := -1
		for p, f := range classes {
			np := p + 1
			shifted[np] = f
			if np > max {
				max = np
			}
		}
		if max%2 == 0 {
			max++
		}
		priorities[dim] = shifted
		maxPriorities[dim] = max
	}

	complemented := &symbolic.Arena{
		Engine:          a.Engine,
		Vars:            a.Vars,
		VarsBis:         a.VarsBis,
		Mapping:         a.Mapping,
		InvMapping:      a.InvMapping,
		Player0Vertices: a.Player0Vertices,
		Player1Vertices: a.Player1Vertices,
		Edges:           a.Edges,
		Priorities:      priorities,
		NumFunctions:    a.NumFunctions,
		NumDigitsVertex: a.NumDigitsVertex,
	}
	return complemented, maxPriorities
}
