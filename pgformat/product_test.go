package pgformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vparity/gpsolve/bddengine"
)

const oneStateHOA = `HOA: v1
name: "trivial"
States: 1
Start: 0
AP: 1 "a"
acc-name: parity max even 1
Acceptance: 1 Inf(0)
--BODY--
State: 0 {0}
[t] 0
--END--
`

func TestProductConcatenatesDimensions(t *testing.T) {
	engine, err := bddengine.New(7)
	require.NoError(t, err)
	apIndex := map[string]int{"a": 4}

	d1, err := LoadHOA(strings.NewReader(twoStateHOA), engine, 0, apIndex)
	require.NoError(t, err)
	d2, err := LoadHOA(strings.NewReader(oneStateHOA), engine, 2, apIndex)
	require.NoError(t, err)

	prod, err := d1.Product(d2)
	require.NoError(t, err)

	require.Equal(t, 2, prod.Dimension)
	require.Len(t, prod.Priorities, 2)
	require.False(t, prod.Init.IsFalse())
	require.False(t, prod.Transitions.IsFalse())
}

func TestProductRejectsMismatchedAPBinding(t *testing.T) {
	engine, err := bddengine.New(7)
	require.NoError(t, err)

	d1, err := LoadHOA(strings.NewReader(twoStateHOA), engine, 0, map[string]int{"a": 4})
	require.NoError(t, err)
	d2, err := LoadHOA(strings.NewReader(oneStateHOA), engine, 2, map[string]int{"a": 5})
	require.NoError(t, err)

	_, err = d1.Product(d2)
	require.Error(t, err)
}

func TestBuildGameProducesTurnBasedArena(t *testing.T) {
	engine, err := bddengine.New(7)
	require.NoError(t, err)
	apIndex := map[string]int{"a": 4}

	d1, err := LoadHOA(strings.NewReader(twoStateHOA), engine, 0, apIndex)
	require.NoError(t, err)
	d2, err := LoadHOA(strings.NewReader(oneStateHOA), engine, 2, apIndex)
	require.NoError(t, err)

	prod, err := d1.Product(d2)
	require.NoError(t, err)

	arena, init, err := prod.BuildGame([]string{"a"}, nil, 5, 6)
	require.NoError(t, err)
	require.Equal(t, 2, arena.NumFunctions)
	require.False(t, init.IsFalse())

	v, err := arena.Vertices()
	require.NoError(t, err)
	require.False(t, v.IsFalse())

	require.NoError(t, arena.Validate())
}
