package pgformat

import (
	"io"

	"github.com/vparity/gpsolve/symbolic"
)

// LoadPGSolver parses a single-dimension parity game in PGSolver's "parity
// <max>;" text format into a symbolic arena ready for zielonka or
// buchi.
func LoadPGSolver(r io.Reader) (*symbolic.Arena, error) {
	return loadFormat(r, false)
}

// LoadGeneralizedPGSolver parses a generalized parity game in the extended
// "parity <max> <dims>;" format, where each vertex line's priority field is
// a comma-separated list with one entry per dimension.
func LoadGeneralizedPGSolver(r io.Reader) (*symbolic.Arena, error) {
	return loadFormat(r, true)
}
