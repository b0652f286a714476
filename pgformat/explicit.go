package pgformat

import (
	"bufio"
	"io"

	"github.com/bits-and-blooms/bitset"
	"github.com/vparity/gpsolve/explicit"
)

// LoadPGSolverExplicit parses the same "parity <max>;" text format as
// LoadPGSolver, but builds a non-symbolic explicit.Arena instead of a
// bddengine-backed symbolic.Arena. PGSolver vertex indices are already
// dense integers in [0, maxIndex], so unlike buildArena no binary encoding
// is needed — each declared vertex becomes one explicit.Arena id directly.
func LoadPGSolverExplicit(r io.Reader) (*explicit.Arena, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}
	maxIndex, dims, err := parseHeader(scanner.Text(), false)
	if err != nil {
		return nil, err
	}

	vertices, err := parseBody(scanner, maxIndex, dims)
	if err != nil {
		return nil, err
	}

	a, err := explicit.New(maxIndex+1, dims)
	if err != nil {
		return nil, err
	}
	declared := make([]bool, maxIndex+1)
	for _, v := range vertices {
		declared[v.index] = true
		if err := a.SetOwner(v.index, v.owner); err != nil {
			return nil, err
		}
		for d, p := range v.priorities {
			if err := a.SetPriority(v.index, d, p); err != nil {
				return nil, err
			}
		}
	}
	for _, v := range vertices {
		for _, s := range v.successors {
			if s < 0 || s > maxIndex || !declared[s] {
				return nil, ErrUnknownSuccessor
			}
			if err := a.AddEdge(v.index, s); err != nil {
				return nil, err
			}
		}
	}
	undeclared := bitset.New(uint(maxIndex + 1))
	for i := 0; i <= maxIndex; i++ {
		if !declared[i] {
			undeclared.Set(uint(i))
		}
	}
	return a.Subarena(undeclared), nil
}
