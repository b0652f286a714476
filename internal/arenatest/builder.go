// Package arenatest builds small symbolic.Arena values from plain vertex
// lists, for use by unit and property-based tests across attractor, buchi,
// zielonka, and gparity. It is not part of the public API.
package arenatest

import (
	"fmt"
	"math/bits"

	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// Vertex describes one arena vertex for Build. Priorities must have one
// entry per dimension.
type Vertex struct {
	ID         int
	Priorities []int
	Owner      int // 0 or 1
	Succ       []int
}

// Build constructs a symbolic.Arena encoding the given vertex list. Vertex
// indices are encoded in binary over a fresh set of "current" and
// "successor" variables, exactly as pgformat's PGSolver loader does for
// real input files.
func Build(vertices []Vertex) (*symbolic.Arena, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("arenatest: no vertices")
	}
	maxIndex := 0
	dims := len(vertices[0].Priorities)
	for _, v := range vertices {
		if v.ID > maxIndex {
			maxIndex = v.ID
		}
		if len(v.Priorities) != dims {
			return nil, fmt.Errorf("arenatest: inconsistent dimension count for vertex %d", v.ID)
		}
	}
	numDigits := bits.Len(uint(maxIndex))
	if numDigits == 0 {
		numDigits = 1
	}

	engine, err := bddengine.New(2 * numDigits)
	if err != nil {
		return nil, err
	}

	vars := make([]int, numDigits)
	varsBis := make([]int, numDigits)
	for i := 0; i < numDigits; i++ {
		vars[i] = i
		varsBis[i] = numDigits + i
	}

	mapping, err := engine.NewPairing(vars, varsBis)
	if err != nil {
		return nil, err
	}
	invMapping, err := engine.NewPairing(varsBis, vars)
	if err != nil {
		return nil, err
	}

	cube := func(index int) (bddengine.Func, error) {
		f := engine.True()
		for i := 0; i < numDigits; i++ {
			bit := (index >> (numDigits - 1 - i)) & 1
			var lit bddengine.Func
			var err error
			if bit == 1 {
				lit, err = engine.Ithvar(vars[i])
			} else {
				lit, err = engine.NIthvar(vars[i])
			}
			if err != nil {
				return bddengine.Func{}, err
			}
			f, err = engine.And(f, lit)
			if err != nil {
				return bddengine.Func{}, err
			}
		}
		return f, nil
	}

	byID := make(map[int]bddengine.Func, len(vertices))
	p0, p1 := engine.False(), engine.False()
	priorities := make([]map[int]bddengine.Func, dims)
	for d := range priorities {
		priorities[d] = map[int]bddengine.Func{}
	}

	for _, v := range vertices {
		vb, err := cube(v.ID)
		if err != nil {
			return nil, err
		}
		byID[v.ID] = vb
		if v.Owner == 0 {
			p0, err = engine.Or(p0, vb)
		} else {
			p1, err = engine.Or(p1, vb)
		}
		if err != nil {
			return nil, err
		}
		for d, p := range v.Priorities {
			cur := priorities[d][p]
			if !hasKey(priorities[d], p) {
				cur = engine.False()
			}
			next, err := engine.Or(cur, vb)
			if err != nil {
				return nil, err
			}
			priorities[d][p] = next
		}
	}

	edges := engine.False()
	for _, v := range vertices {
		from := byID[v.ID]
		for _, s := range v.Succ {
			to, ok := byID[s]
			if !ok {
				return nil, fmt.Errorf("arenatest: vertex %d has successor %d which does not exist", v.ID, s)
			}
			toBis, err := engine.Let(mapping, to)
			if err != nil {
				return nil, err
			}
			edge, err := engine.And(from, toBis)
			if err != nil {
				return nil, err
			}
			edges, err = engine.Or(edges, edge)
			if err != nil {
				return nil, err
			}
		}
	}

	return &symbolic.Arena{
		Engine:          engine,
		Vars:            vars,
		VarsBis:         varsBis,
		Mapping:         mapping,
		InvMapping:      invMapping,
		Player0Vertices: p0,
		Player1Vertices: p1,
		Edges:           edges,
		Priorities:      priorities,
		NumFunctions:    dims,
		NumDigitsVertex: numDigits,
	}, nil
}

func hasKey(m map[int]bddengine.Func, k int) bool {
	_, ok := m[k]
	return ok
}

// VertexFunc returns the Boolean cube for a single vertex ID, for tests that
// need to check membership of a concrete vertex in a winning region.
func VertexFunc(a *symbolic.Arena, id int) (bddengine.Func, error) {
	numDigits := a.NumDigitsVertex
	f := a.Engine.True()
	for i := 0; i < numDigits; i++ {
		bit := (id >> (numDigits - 1 - i)) & 1
		var lit bddengine.Func
		var err error
		if bit == 1 {
			lit, err = a.Engine.Ithvar(a.Vars[i])
		} else {
			lit, err = a.Engine.NIthvar(a.Vars[i])
		}
		if err != nil {
			return bddengine.Func{}, err
		}
		f, err = a.Engine.And(f, lit)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return f, nil
}

// Contains reports whether region contains the cube for vertex id.
func Contains(a *symbolic.Arena, region bddengine.Func, id int) (bool, error) {
	vf, err := VertexFunc(a, id)
	if err != nil {
		return false, err
	}
	sub, err := a.Engine.And(vf, region)
	if err != nil {
		return false, err
	}
	return !sub.IsFalse(), nil
}

// EdgeFunc returns the Boolean function for the single edge from i to j,
// over a's current/successor variables.
func EdgeFunc(a *symbolic.Arena, i, j int) (bddengine.Func, error) {
	from, err := VertexFunc(a, i)
	if err != nil {
		return bddengine.Func{}, err
	}
	to, err := VertexFunc(a, j)
	if err != nil {
		return bddengine.Func{}, err
	}
	toBis, err := a.Engine.Let(a.Mapping, to)
	if err != nil {
		return bddengine.Func{}, err
	}
	return a.Engine.And(from, toBis)
}

// HasEdge reports whether a has an edge from i to j.
func HasEdge(a *symbolic.Arena, i, j int) (bool, error) {
	ef, err := EdgeFunc(a, i, j)
	if err != nil {
		return false, err
	}
	sub, err := a.Engine.And(ef, a.Edges)
	if err != nil {
		return false, err
	}
	return !sub.IsFalse(), nil
}
