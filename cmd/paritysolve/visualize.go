package main

import (
	"fmt"
	"os"

	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/gameconfig"
	"github.com/vparity/gpsolve/symbolic"
	"github.com/vparity/gpsolve/vizexport"
)

// maxVisualizedVertices bounds how many BDD-encoded vertices exportSymbolic
// will enumerate by repeated AnySat calls. Arenas built for realizability
// checking can have far more reachable states than anyone wants drawn on an
// SVG canvas; beyond this bound the diagram is truncated and a warning is
// printed rather than silently dropping vertices.
const maxVisualizedVertices = 256

// exportSymbolic enumerates up to maxVisualizedVertices vertices of a by
// repeated AnySat/exclude, classifies each by owner and winner, and renders
// the result with vizexport. Enumeration is necessarily best-effort: a and
// win0/win1 are BDD-encoded sets with no native "list every element"
// operation, so this is the same technique RestrictToReachable uses for one
// step of successor discovery, just iterated until the remaining set is ⊥.
func exportSymbolic(a *symbolic.Arena, win0, win1 bddengine.Func, opts *gameconfig.VisualizationConfig) error {
	e := a.Engine
	vertices, err := a.Vertices()
	if err != nil {
		return err
	}

	type enumerated struct {
		id   int
		cube bddengine.Func
	}
	var found []enumerated
	remaining := vertices
	truncated := false

	for !remaining.IsFalse() {
		if len(found) >= maxVisualizedVertices {
			truncated = true
			break
		}
		assignment, ok, err := e.AnySat(remaining, a.Vars)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		cube, id, err := cubeFromAssignment(e, a.Vars, assignment)
		if err != nil {
			return err
		}
		found = append(found, enumerated{id: id, cube: cube})

		notCube, err := e.Not(cube)
		if err != nil {
			return err
		}
		remaining, err = e.And(remaining, notCube)
		if err != nil {
			return err
		}
	}
	if truncated {
		fmt.Fprintf(os.Stderr, "warning: visualization truncated to %d of the arena's vertices\n", maxVisualizedVertices)
	}

	g := &vizexport.Graph{}
	varset, err := e.Makeset(a.Vars)
	if err != nil {
		return err
	}
	for _, v := range found {
		owner := 0
		if overlap, err := e.And(v.cube, a.Player1Vertices); err != nil {
			return err
		} else if !overlap.IsFalse() {
			owner = 1
		}

		winner := vizexport.WinnerUnknown
		if overlap, err := e.And(v.cube, win0); err != nil {
			return err
		} else if !overlap.IsFalse() {
			winner = vizexport.WinnerPlayer0
		} else if overlap, err := e.And(v.cube, win1); err != nil {
			return err
		} else if !overlap.IsFalse() {
			winner = vizexport.WinnerPlayer1
		}

		priorities := make([]int, 0, len(a.Priorities))
		for dim := range a.Priorities {
			for p, f := range a.Priorities[dim] {
				overlap, err := e.And(v.cube, f)
				if err != nil {
					return err
				}
				if !overlap.IsFalse() {
					priorities = append(priorities, p)
					break
				}
			}
		}

		g.Vertices = append(g.Vertices, vizexport.Vertex{
			ID:         v.id,
			Owner:      owner,
			Priorities: priorities,
			Winner:     winner,
		})

		succBis, err := e.AndExist(a.Edges, v.cube, varset)
		if err != nil {
			return err
		}
		succ, err := e.Let(a.InvMapping, succBis)
		if err != nil {
			return err
		}
		for _, w := range found {
			overlap, err := e.And(succ, w.cube)
			if err != nil {
				return err
			}
			if !overlap.IsFalse() {
				g.Edges = append(g.Edges, [2]int{v.id, w.id})
			}
		}
	}

	return vizexport.SaveToFile(g, opts.Path, vizOptions(opts))
}

// cubeFromAssignment rebuilds the conjunctive cube for a satisfying
// assignment returned by AnySat, along with the integer index it encodes
// under the same MSB-first binary convention every loader in pgformat uses.
func cubeFromAssignment(e *bddengine.Engine, vars []int, assignment []bool) (bddengine.Func, int, error) {
	f := e.True()
	id := 0
	for i, v := range vars {
		id <<= 1
		var lit bddengine.Func
		var err error
		if assignment[i] {
			id |= 1
			lit, err = e.Ithvar(v)
		} else {
			lit, err = e.NIthvar(v)
		}
		if err != nil {
			return bddengine.Func{}, 0, err
		}
		f, err = e.And(f, lit)
		if err != nil {
			return bddengine.Func{}, 0, err
		}
	}
	return f, id, nil
}
