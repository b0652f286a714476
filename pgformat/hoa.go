package pgformat

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vparity/gpsolve/bddengine"
)

// DPA is a symbolic deterministic parity automaton loaded from an HOA
// document, grounded on bdd/dpa2bdd.py's explicit2symbolic_path. Unlike
// *symbolic.Arena it has no player partition yet — BuildGame turns a DPA
// (or several, once combined with Product) into a game arena.
type DPA struct {
	Engine *bddengine.Engine

	Vars    []int
	VarsBis []int
	Mapping bddengine.Pairing

	APVars    map[string]int // atomic proposition name -> engine variable index
	APVarList []int          // the same variables, in this automaton's positional order

	NumStates    int
	NumDigits    int
	Dimension    int
	Priorities   []map[int]bddengine.Func
	Transitions bddengine.Func // over Vars ∪ APVars ∪ VarsBis
	Init        bddengine.Func
}

// LoadHOA parses the textual automaton format produced by tools such as
// ltl2tgba (the "--BODY--"-delimited HOA dialect read by
// explicit2symbolic_path), building every state and transition onto
// engine starting at variable index baseVar. apIndex maps atomic
// proposition names to engine variable indices shared across every
// automaton that will later be combined with Product — callers load every
// component DPA against the same apIndex so labels synchronize correctly.
func LoadHOA(r io.Reader, engine *bddengine.Engine, baseVar int, apIndex map[string]int) (*DPA, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	numStates, initState, apNames, err := readHOAHeader(scanner)
	if err != nil {
		return nil, err
	}
	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	numDigits := bits.Len(uint(numStates - 1))
	if numDigits == 0 {
		numDigits = 1
	}
	vars := make([]int, numDigits)
	varsBis := make([]int, numDigits)
	for i := 0; i < numDigits; i++ {
		vars[i] = baseVar + i
		varsBis[i] = baseVar + numDigits + i
	}
	mapping, err := engine.NewPairing(vars, varsBis)
	if err != nil {
		return nil, err
	}

	apVars := make([]int, len(apNames))
	for i, name := range apNames {
		idx, ok := apIndex[name]
		if !ok {
			return nil, fmt.Errorf("pgformat: atomic proposition %q was not declared in the shared ap index", name)
		}
		apVars[i] = idx
	}

	stateCube := func(n int) (bddengine.Func, error) {
		f := engine.True()
		for i := 0; i < numDigits; i++ {
			bit := (n >> (numDigits - 1 - i)) & 1
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

	states := make([]bddengine.Func, numStates)
	for i := range states {
		f, err := stateCube(i)
		if err != nil {
			return nil, err
		}
		states[i] = f
	}

	dimension := -1
	var priorities []map[int]bddengine.Func
	transitions := engine.False()
	var currentSrc bddengine.Func

	for {
		line, ok := readLine()
		if !ok {
			return nil, fmt.Errorf("pgformat: unexpected end of HOA body")
		}
		if line == "--END--" {
			break
		}
		if strings.HasPrefix(line, "State: ") {
			rest := strings.TrimPrefix(line, "State: ")
			fields := strings.SplitN(rest, " ", 2)
			stateNum, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("pgformat: %w: %v", ErrMalformedVertex, err)
			}
			currentSrc = states[stateNum]
			if len(fields) < 2 {
				return nil, fmt.Errorf("pgformat: state %d missing priority vector", stateNum)
			}
			prioStrs := strings.Split(strings.Trim(fields[1], "{}"), ",")
			if dimension == -1 {
				dimension = len(prioStrs)
				priorities = make([]map[int]bddengine.Func, dimension)
				for d := range priorities {
					priorities[d] = map[int]bddengine.Func{}
				}
			}
			for d, s := range prioStrs {
				p, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return nil, fmt.Errorf("pgformat: %w: %v", ErrMalformedVertex, err)
				}
				cur, ok := priorities[d][p]
				if !ok {
					cur = engine.False()
				}
				next, err := engine.Or(cur, currentSrc)
				if err != nil {
					return nil, err
				}
				priorities[d][p] = next
			}
			continue
		}

		// "[label] dst"
		closeIdx := strings.Index(line, "] ")
		if closeIdx < 0 || !strings.HasPrefix(line, "[") {
			return nil, fmt.Errorf("pgformat: malformed transition line %q", line)
		}
		labelStr := line[1:closeIdx]
		dstStr := line[closeIdx+2:]
		dst, err := strconv.Atoi(strings.TrimSpace(dstStr))
		if err != nil {
			return nil, fmt.Errorf("pgformat: %w: %v", ErrMalformedVertex, err)
		}

		label, err := parseBoolExpr(engine, labelStr, apVars)
		if err != nil {
			return nil, err
		}
		dstBis, err := engine.Let(mapping, states[dst])
		if err != nil {
			return nil, err
		}
		edge, err := engine.And(currentSrc, label)
		if err != nil {
			return nil, err
		}
		edge, err = engine.And(edge, dstBis)
		if err != nil {
			return nil, err
		}
		transitions, err = engine.Or(transitions, edge)
		if err != nil {
			return nil, err
		}
	}

	if dimension == -1 {
		dimension = 1
		priorities = []map[int]bddengine.Func{{}}
	}

	return &DPA{
		Engine:       engine,
		Vars:         vars,
		VarsBis:      varsBis,
		Mapping:      mapping,
		APVars:       apIndex,
		APVarList:    apVars,
		NumStates:    numStates,
		NumDigits:    numDigits,
		Dimension:    dimension,
		Priorities:   priorities,
		Transitions: transitions,
		Init:        states[initState],
	}, nil
}

func parseLabeledInt(line, prefix string) (int, error) {
	idx := strings.Index(line, prefix)
	if idx < 0 {
		return 0, fmt.Errorf("%w: expected %q", ErrMalformedHeader, prefix)
	}
	rest := strings.TrimSpace(line[idx+len(prefix):])
	return strconv.Atoi(rest)
}

// parseAPLine parses an "AP: k \"a\" \"b\" ..." line.
func parseAPLine(line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "AP:" {
		return nil, fmt.Errorf("%w: expected an AP: line", ErrMalformedHeader)
	}
	names := make([]string, 0, len(fields)-2)
	for _, f := range fields[2:] {
		names = append(names, strings.Trim(f, "\""))
	}
	return names, nil
}

// readHOAHeader reads the fixed HOA preamble up to and including
// "--BODY--", returning the state count, the start state and the atomic
// proposition names declared by the document. It is shared by LoadHOA and
// PeekHOAHeader so a caller can size a bddengine.Engine before committing
// to the variable layout LoadHOA needs.
func readHOAHeader(scanner *bufio.Scanner) (numStates, initState int, apNames []string, err error) {
	readLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for i := 0; i < 2; i++ {
		if _, ok := readLine(); !ok {
			return 0, 0, nil, ErrMalformedHeader
		}
	}
	statesLine, ok := readLine()
	if !ok {
		return 0, 0, nil, ErrMalformedHeader
	}
	numStates, err = parseLabeledInt(statesLine, "States:")
	if err != nil {
		return 0, 0, nil, err
	}
	startLine, ok := readLine()
	if !ok {
		return 0, 0, nil, ErrMalformedHeader
	}
	initState, err = parseLabeledInt(startLine, "Start:")
	if err != nil {
		return 0, 0, nil, err
	}
	apLine, ok := readLine()
	if !ok {
		return 0, 0, nil, ErrMalformedHeader
	}
	apNames, err = parseAPLine(apLine)
	if err != nil {
		return 0, 0, nil, err
	}
	for {
		line, ok := readLine()
		if !ok {
			return 0, 0, nil, ErrMalformedHeader
		}
		if line == "--BODY--" {
			break
		}
	}
	return numStates, initState, apNames, nil
}

// PeekHOAHeader reads just enough of an HOA document to learn its state
// count and atomic proposition names, without requiring a *bddengine.Engine
// to already exist. Callers use this to compute how many BDD variables an
// engine needs (state bits for every automaton to be loaded, plus one per
// distinct atomic proposition, plus the turn-bit pair BuildGame needs)
// before constructing the shared engine LoadHOA requires.
func PeekHOAHeader(r io.Reader) (numStates int, apNames []string, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	numStates, _, apNames, err = readHOAHeader(scanner)
	return numStates, apNames, err
}
