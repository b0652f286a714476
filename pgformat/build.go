package pgformat

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vparity/gpsolve/bddengine"
	"github.com/vparity/gpsolve/symbolic"
)

// rawVertex is the format-agnostic intermediate parsed from one vertex line.
type rawVertex struct {
	index      int
	priorities []int
	owner      int
	successors []int
}

// parseHeader reads the first line, returning the declared max vertex index
// and the number of priority dimensions. generalized selects between the
// "parity n;" and "parity n k;" header shapes.
func parseHeader(line string, generalized bool) (maxIndex, dims int, err error) {
	line = strings.TrimSpace(line)
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrMalformedHeader
	}
	if !generalized {
		maxIndex, err = strconv.Atoi(strings.TrimSuffix(fields[1], ";"))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		return maxIndex, 1, nil
	}
	if len(fields) < 3 {
		return 0, 0, ErrMalformedHeader
	}
	maxIndex, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	dims, err = strconv.Atoi(strings.TrimSuffix(fields[2], ";"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	return maxIndex, dims, nil
}

// parseVertexLine parses one "index prios owner succ1,succ2,... [name];"
// line. prios is comma-separated when dims > 1, a bare integer otherwise.
func parseVertexLine(line string, dims int) (rawVertex, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 4 {
		return rawVertex{}, ErrMalformedVertex
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return rawVertex{}, fmt.Errorf("%w: %v", ErrMalformedVertex, err)
	}

	prioStrs := strings.Split(fields[1], ",")
	if len(prioStrs) != dims {
		return rawVertex{}, ErrPriorityArity
	}
	priorities := make([]int, dims)
	for i, s := range prioStrs {
		p, err := strconv.Atoi(s)
		if err != nil {
			return rawVertex{}, fmt.Errorf("%w: %v", ErrMalformedVertex, err)
		}
		priorities[i] = p
	}

	owner, err := strconv.Atoi(fields[2])
	if err != nil {
		return rawVertex{}, fmt.Errorf("%w: %v", ErrMalformedVertex, err)
	}

	succField := strings.TrimSuffix(fields[3], ";")
	succStrs := strings.Split(succField, ",")
	successors := make([]int, 0, len(succStrs))
	for _, s := range succStrs {
		s = strings.TrimSuffix(strings.TrimSpace(s), ";")
		if s == "" {
			continue
		}
		succ, err := strconv.Atoi(s)
		if err != nil {
			return rawVertex{}, fmt.Errorf("%w: %v", ErrMalformedVertex, err)
		}
		successors = append(successors, succ)
	}

	return rawVertex{index: index, priorities: priorities, owner: owner, successors: successors}, nil
}

// parseBody reads every vertex line following the header.
func parseBody(scanner *bufio.Scanner, maxIndex, dims int) ([]rawVertex, error) {
	seen := make([]bool, maxIndex+1)
	vertices := make([]rawVertex, 0, maxIndex+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := parseVertexLine(line, dims)
		if err != nil {
			return nil, err
		}
		if v.index < 0 || v.index > maxIndex {
			return nil, ErrVertexOutOfRange
		}
		if seen[v.index] {
			return nil, ErrDuplicateVertex
		}
		seen[v.index] = true
		vertices = append(vertices, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return vertices, nil
}

// buildArena lays out vertices on a fresh bddengine.Engine using a direct
// binary encoding of vertex indices, exactly as arenatest does for tests.
func buildArena(maxIndex, dims int, vertices []rawVertex) (*symbolic.Arena, error) {
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

	byIndex := make(map[int]bddengine.Func, len(vertices))
	p0, p1 := engine.False(), engine.False()
	priorities := make([]map[int]bddengine.Func, dims)
	for d := range priorities {
		priorities[d] = map[int]bddengine.Func{}
	}

	for _, v := range vertices {
		vb, err := cube(v.index)
		if err != nil {
			return nil, err
		}
		byIndex[v.index] = vb

		if v.owner == 1 {
			p1, err = engine.Or(p1, vb)
		} else {
			p0, err = engine.Or(p0, vb)
		}
		if err != nil {
			return nil, err
		}

		for d, p := range v.priorities {
			cur, ok := priorities[d][p]
			if !ok {
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
		from, ok := byIndex[v.index]
		if !ok {
			return nil, ErrUnknownSuccessor
		}
		for _, s := range v.successors {
			to, ok := byIndex[s]
			if !ok {
				return nil, ErrUnknownSuccessor
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

// loadFormat is shared plumbing for LoadPGSolver and LoadGeneralizedPGSolver.
func loadFormat(r io.Reader, generalized bool) (*symbolic.Arena, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}
	maxIndex, dims, err := parseHeader(scanner.Text(), generalized)
	if err != nil {
		return nil, err
	}

	vertices, err := parseBody(scanner, maxIndex, dims)
	if err != nil {
		return nil, err
	}

	return buildArena(maxIndex, dims, vertices)
}
