package pgformat

import (
	"fmt"

	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// Product combines two DPAs loaded against the same engine and AP index
// into their synchronous product, grounded on SymbolicGenDPA.product: state
// spaces concatenate (their variable ranges are already disjoint, since
// callers picked distinct baseVar offsets), transitions and initial states
// conjoin, and priority dimensions concatenate rather than merge — the
// combined automaton tracks d.Dimension == a.Dimension+b.Dimension distinct
// parity conditions simultaneously, matching a generalized-parity
// conjunction of properties.
func (d *DPA) Product(other *DPA) (*DPA, error) {
	if d.Engine != other.Engine {
		return nil, fmt.Errorf("pgformat: product requires both automata on the same engine")
	}
	for name, idx := range other.APVars {
		if existing, ok := d.APVars[name]; ok && existing != idx {
			return nil, fmt.Errorf("pgformat: atomic proposition %q bound to different variables in each automaton", name)
		}
	}

	vars := append(append([]int{}, d.Vars...), other.Vars...)
	varsBis := append(append([]int{}, d.VarsBis...), other.VarsBis...)
	mapping, err := d.Engine.NewPairing(vars, varsBis)
	if err != nil {
		return nil, err
	}

	transitions, err := d.Engine.And(d.Transitions, other.Transitions)
	if err != nil {
		return nil, err
	}
	init, err := d.Engine.And(d.Init, other.Init)
	if err != nil {
		return nil, err
	}

	priorities := make([]map[int]bddengine.Func, 0, d.Dimension+other.Dimension)
	priorities = append(priorities, d.Priorities...)
	priorities = append(priorities, other.Priorities...)

	return &DPA{
		Engine:      d.Engine,
		Vars:        vars,
		VarsBis:     varsBis,
		Mapping:     mapping,
		APVars:      d.APVars,
		NumStates:   d.NumStates * other.NumStates,
		NumDigits:   d.NumDigits + other.NumDigits,
		Dimension:   d.Dimension + other.Dimension,
		Priorities:  priorities,
		Transitions: transitions,
		Init:        init,
	}, nil
}

// BuildGame turns a (possibly product-combined) DPA into a realizability
// game arena by splitting every automaton transition into a Player-1 move
// that picks a valuation of inputNames followed by a Player-0 move that
// picks a valuation of outputNames: the input/output alternation used by
// controller-synthesis encodings built on top of a deterministic parity
// automaton (dpa2bdd.py stops at the automaton; the game-from-automaton
// step is this package's own addition).
//
// A fresh boolean "turn" variable doubles every automaton state: turn=0 is
// Player 1's vertex (environment, picks inputNames freely — an
// unconstrained edge into turn=1), turn=1 is Player 0's vertex (system,
// chooses an outputNames valuation that, together with the input already
// recorded in the vertex's identity, satisfies some transition's label).
// inputNames become persistent vertex-identity bits so that different
// input choices can lead to different reachable destinations; outputNames
// never become vertex identity — they are existentially projected out of
// each transition label before it is compiled into the turn=1-to-turn=0
// edge relation, so Player 0's choice is "is there an output that makes
// this transition fire," exactly the existential semantics buchi, zielonka
// and gparity already compute over a successor set.
//
// BuildGame also returns the arena's initial vertex, since *symbolic.Arena
// itself carries no notion of a distinguished start state — callers
// typically feed it to Arena.RestrictToReachable before solving.
//
// turnVar and turnVarBis must be a pair of variable indices the caller
// reserved on the engine for this purpose when it was created (engines
// declare their full variable budget upfront), disjoint from
// every index already used by d and by inputNames/outputNames.
func (d *DPA) BuildGame(inputNames, outputNames []string, turnVar, turnVarBis int) (*symbolic.Arena, bddengine.Func, error) {
	inputVars, err := d.resolveAPs(inputNames)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	outputVars, err := d.resolveAPs(outputNames)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	e := d.Engine
	turn, turnBis := turnVar, turnVarBis

	vars := append([]int{turn}, append(append([]int{}, d.Vars...), inputVars...)...)
	varsBis := append([]int{turnBis}, append(append([]int{}, d.VarsBis...), inputVars...)...)
	mapping, err := e.NewPairing(vars, varsBis)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	invMapping, err := e.NewPairing(varsBis, vars)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	turn0, err := e.NIthvar(turn)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	turn1, err := e.Ithvar(turn)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	turn0Bis, err := e.NIthvar(turnBis)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	turn1Bis, err := e.Ithvar(turnBis)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	outputSet, err := e.Makeset(outputVars)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	reducedLabel, err := e.Exist(outputSet, d.Transitions)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	inputZeroCube, err := zeroCube(e, inputVars)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	stateIdentityBis, err := stateEqualsBis(e, d.Vars, d.VarsBis)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	// turn0 -> turn1: Player 1 picks any input valuation, state unchanged.
	edge01, err := e.And(turn0, turn1Bis)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	edge01, err = e.And(edge01, inputZeroCube)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	edge01, err = e.And(edge01, stateIdentityBis)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	// turn1 -> turn0: Player 0 picks an output that realizes the transition;
	// inputs reset to the canonical all-zero pattern for the next round.
	edge10, err := e.And(turn1, turn0Bis)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	edge10, err = e.And(edge10, reducedLabel)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	edge10, err = e.And(edge10, inputZeroCube)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	edges, err := e.Or(edge01, edge10)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	// numDigits is rounded up to a whole number of bits per automaton, so
	// some binary codes may not correspond to any declared state; restrict
	// membership to codes every priority dimension actually classifies so
	// Arena.Validate's partition-completeness check holds.
	allValid, err := d.validStates()
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	p0, err := e.And(turn1, allValid)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	p1, err := e.And(turn0, allValid)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	priorities := make([]map[int]bddengine.Func, d.Dimension)
	for dim, classes := range d.Priorities {
		priorities[dim] = make(map[int]bddengine.Func, len(classes))
		for p, f := range classes {
			priorities[dim][p] = f // depends only on d.Vars; turn/input bits are don't-cares
		}
	}

	init, err := e.And(turn0, d.Init)
	if err != nil {
		return nil, bddengine.Func{}, err
	}
	init, err = e.And(init, inputZeroCube)
	if err != nil {
		return nil, bddengine.Func{}, err
	}

	arena := &symbolic.Arena{
		Engine:          e,
		Vars:            vars,
		VarsBis:         varsBis,
		Mapping:         mapping,
		InvMapping:      invMapping,
		Player0Vertices: p0,
		Player1Vertices: p1,
		Edges:           edges,
		Priorities:      priorities,
		NumFunctions:    d.Dimension,
		NumDigitsVertex: len(vars),
	}
	return arena, init, nil
}

// validStates is the conjunction, over every priority dimension, of that
// dimension's classes unioned back together — i.e. the binary codes that
// every dimension actually assigns a priority to. Dimensions belonging to
// the same original automaton yield the same cube, so this reduces to the
// conjunction of each component automaton's real state space.
func (d *DPA) validStates() (bddengine.Func, error) {
	allValid := d.Engine.True()
	for _, classes := range d.Priorities {
		union := d.Engine.False()
		var err error
		for _, f := range classes {
			union, err = d.Engine.Or(union, f)
			if err != nil {
				return bddengine.Func{}, err
			}
		}
		allValid, err = d.Engine.And(allValid, union)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return allValid, nil
}

func (d *DPA) resolveAPs(names []string) ([]int, error) {
	vars := make([]int, len(names))
	for i, n := range names {
		idx, ok := d.APVars[n]
		if !ok {
			return nil, fmt.Errorf("pgformat: atomic proposition %q not declared", n)
		}
		vars[i] = idx
	}
	return vars, nil
}

func zeroCube(e *bddengine.Engine, vars []int) (bddengine.Func, error) {
	f := e.True()
	for _, v := range vars {
		lit, err := e.NIthvar(v)
		if err != nil {
			return bddengine.Func{}, err
		}
		f, err = e.And(f, lit)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return f, nil
}

// stateEqualsBis builds the "identity" relation vars[i] <-> varsBis[i] for
// every i, used to keep a DPA's own state unchanged across the turn0-to-
// turn1 half-move.
func stateEqualsBis(e *bddengine.Engine, vars, varsBis []int) (bddengine.Func, error) {
	f := e.True()
	for i := range vars {
		v, err := e.Ithvar(vars[i])
		if err != nil {
			return bddengine.Func{}, err
		}
		vb, err := e.Ithvar(varsBis[i])
		if err != nil {
			return bddengine.Func{}, err
		}
		nv, err := e.Not(v)
		if err != nil {
			return bddengine.Func{}, err
		}
		nvb, err := e.Not(vb)
		if err != nil {
			return bddengine.Func{}, err
		}
		pos, err := e.And(v, vb)
		if err != nil {
			return bddengine.Func{}, err
		}
		neg, err := e.And(nv, nvb)
		if err != nil {
			return bddengine.Func{}, err
		}
		iff, err := e.Or(pos, neg)
		if err != nil {
			return bddengine.Func{}, err
		}
		f, err = e.And(f, iff)
		if err != nil {
			return bddengine.Func{}, err
		}
	}
	return f, nil
}
