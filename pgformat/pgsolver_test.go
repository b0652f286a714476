package pgformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const twoVertexParity = `parity 1;
0 2 0 1;
1 1 1 0;
`

func TestLoadPGSolverBuildsExpectedShape(t *testing.T) {
	a, err := LoadPGSolver(strings.NewReader(twoVertexParity))
	require.NoError(t, err)
	require.Equal(t, 1, a.NumFunctions)

	max, ok := a.MaxPriority(0)
	require.True(t, ok)
	require.Equal(t, 2, max)

	v, err := a.Vertices()
	require.NoError(t, err)
	require.False(t, v.IsFalse())
}

func TestLoadPGSolverRejectsMalformedHeader(t *testing.T) {
	_, err := LoadPGSolver(strings.NewReader("not a header\n"))
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestLoadPGSolverRejectsUnknownSuccessor(t *testing.T) {
	const bad = `parity 0;
0 0 0 5;
`
	_, err := LoadPGSolver(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrUnknownSuccessor)
}

func TestLoadPGSolverRejectsDuplicateVertex(t *testing.T) {
	const bad = `parity 1;
0 0 0 1;
0 1 1 0;
`
	_, err := LoadPGSolver(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrDuplicateVertex)
}

func TestLoadGeneralizedPGSolverParsesPriorityVectors(t *testing.T) {
	const doc = `parity 1 2;
0 2,1 0 1;
1 1,0 1 0;
`
	a, err := LoadGeneralizedPGSolver(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, a.NumFunctions)

	max0, ok := a.MaxPriority(0)
	require.True(t, ok)
	require.Equal(t, 2, max0)

	max1, ok := a.MaxPriority(1)
	require.True(t, ok)
	require.Equal(t, 1, max1)
}

func TestLoadGeneralizedPGSolverRejectsArityMismatch(t *testing.T) {
	const bad = `parity 1 2;
0 2 0 1;
`
	_, err := LoadGeneralizedPGSolver(strings.NewReader(bad))
	require.ErrorIs(t, err, ErrPriorityArity)
}
