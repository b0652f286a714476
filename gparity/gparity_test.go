package gparity_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vparity/gpsolve/gparity"
	"github.com/vparity/gpsolve/internal/arenatest"
)

// A single-dimension parity game is a generalized parity game with one
// priority function; GeneralizedRecursive must agree with plain Zielonka
// on this simple forced cycle where player 0 wins throughout.
func TestGeneralizedRecursiveSingleDimension(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{2}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{1}, Succ: []int{0}},
	})
	require.NoError(t, err)

	w0, w1, err := gparity.GeneralizedRecursive(a)
	require.NoError(t, err)

	for id, want := range map[int]bool{0: true, 1: true} {
		got, err := arenatest.Contains(a, w0, id)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, w1.IsFalse())
}

// TestGeneralizedRecursiveWithPartialSolverAgrees runs two algorithm
// variants back to back on the SAME arena value (not two freshly-built
// copies), so that a non-mutating ComplementPriorities is load-bearing: if
// either call shifted a.Priorities in place, the second call would see an
// already-shifted arena and disagree with the first.
func TestGeneralizedRecursiveWithPartialSolverAgrees(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{2}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{1}, Succ: []int{0}},
	})
	require.NoError(t, err)

	w0a, w1a, err := gparity.GeneralizedRecursive(a)
	require.NoError(t, err)
	w0b, w1b, err := gparity.GeneralizedRecursiveWithPartialSolver(a)
	require.NoError(t, err)

	for id := 0; id < 2; id++ {
		in0a, _ := arenatest.Contains(a, w0a, id)
		in0b, _ := arenatest.Contains(a, w0b, id)
		require.Equal(t, in0a, in0b)
		in1a, _ := arenatest.Contains(a, w1a, id)
		in1b, _ := arenatest.Contains(a, w1b, id)
		require.Equal(t, in1a, in1b)
	}
}

// TestGeneralizedRecursiveWithPartialSolverMultipleCallsAgrees reuses one
// shared arena across GeneralizedRecursive and
// GeneralizedRecursiveWithPartialSolverMultipleCalls — both call
// ComplementPriorities on a top-level, caller-owned arena, which is exactly
// the case that a mutating complement corrupts on the second call.
func TestGeneralizedRecursiveWithPartialSolverMultipleCallsAgrees(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{2}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{1}, Succ: []int{0}},
	})
	require.NoError(t, err)

	w0a, w1a, err := gparity.GeneralizedRecursive(a)
	require.NoError(t, err)
	w0b, w1b, err := gparity.GeneralizedRecursiveWithPartialSolverMultipleCalls(a)
	require.NoError(t, err)

	for id := 0; id < 2; id++ {
		in0a, _ := arenatest.Contains(a, w0a, id)
		in0b, _ := arenatest.Contains(a, w0b, id)
		require.Equal(t, in0a, in0b)
		in1a, _ := arenatest.Contains(a, w1a, id)
		in1b, _ := arenatest.Contains(a, w1b, id)
		require.Equal(t, in1a, in1b)
	}
}

// TestComplementPriorities checks that complementing always yields a
// strictly odd maximum per dimension, and that it leaves the source arena's
// own Priorities untouched so a second call against the same arena recomputes
// from the original (unshifted) values rather than double-shifting them.
func TestComplementPriorities(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{4}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{3}, Succ: []int{0}},
	})
	require.NoError(t, err)

	before := a.Priorities[0][4]

	complemented, maxPriorities := gparity.ComplementPriorities(a)
	require.Len(t, maxPriorities, 1)
	require.Equal(t, 1, maxPriorities[0]%2)
	require.Equal(t, 5, maxPriorities[0])
	require.NotSame(t, a, complemented)

	// a's own priorities map is untouched.
	require.Equal(t, before, a.Priorities[0][4])
	require.Contains(t, a.Priorities[0], 4)
	require.NotContains(t, a.Priorities[0], 5)

	// Complementing the same source arena twice yields the same result both
	// times, which would not hold if the first call had mutated a in place.
	_, maxPrioritiesAgain := gparity.ComplementPriorities(a)
	require.Equal(t, maxPriorities, maxPrioritiesAgain)
}

// TestSeedS4 reproduces the 2-vertex, 2-dimension scenario where both
// vertices belong to player 0 and point directly at each other. Since
// player 0 controls every move of a strongly connected arena, attracting to
// either vertex's top priority always closes over the whole arena, so
// DisjParityWin settles it in one pass without ever reaching a non-trivial
// residual game: player 0 wins both vertices.
func TestSeedS4(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{2, 1}, Succ: []int{1}},
		{ID: 1, Owner: 0, Priorities: []int{1, 2}, Succ: []int{0}},
	})
	require.NoError(t, err)

	w0, w1, err := gparity.GeneralizedRecursive(a)
	require.NoError(t, err)

	for _, id := range []int{0, 1} {
		got, err := arenatest.Contains(a, w0, id)
		require.NoError(t, err)
		require.Truef(t, got, "vertex %d expected in player 0's region", id)
	}
	require.True(t, w1.IsFalse())
}

// TestSeedS5 reproduces the 7-vertex, 2-dimension scenario with a known
// decomposition: two disjoint closed cycles, one whose four vertices carry
// an even priority in both dimensions (won entirely by player 0 regardless
// of how it is traversed) and one whose three vertices carry an odd
// priority in both dimensions (won entirely by player 1), with no edges
// crossing between them.
func TestSeedS5(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{2, 2}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{2, 2}, Succ: []int{2}},
		{ID: 2, Owner: 0, Priorities: []int{2, 2}, Succ: []int{3}},
		{ID: 3, Owner: 1, Priorities: []int{2, 2}, Succ: []int{0}},
		{ID: 4, Owner: 0, Priorities: []int{1, 1}, Succ: []int{5}},
		{ID: 5, Owner: 1, Priorities: []int{1, 1}, Succ: []int{6}},
		{ID: 6, Owner: 0, Priorities: []int{1, 1}, Succ: []int{4}},
	})
	require.NoError(t, err)

	w0, w1, err := gparity.GeneralizedRecursive(a)
	require.NoError(t, err)

	for _, id := range []int{0, 1, 2, 3} {
		got, err := arenatest.Contains(a, w0, id)
		require.NoError(t, err)
		require.Truef(t, got, "vertex %d expected in player 0's region", id)
	}
	for _, id := range []int{4, 5, 6} {
		got, err := arenatest.Contains(a, w1, id)
		require.NoError(t, err)
		require.Truef(t, got, "vertex %d expected in player 1's region", id)
	}
}

// TestGeneralizedRecursiveVariantsAgreeAndPartition draws random
// multi-dimension arenas and runs GeneralizedRecursive,
// GeneralizedRecursiveWithPartialSolver, and
// GeneralizedRecursiveWithPartialSolverMultipleCalls sequentially on the
// SAME arena value, checking both that the three variants agree on every
// vertex and that each one's own (w0, w1) pair partitions the arena's
// vertices.
func TestGeneralizedRecursiveVariantsAgreeAndPartition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(rt, "n")
		dims := rapid.IntRange(1, 3).Draw(rt, "dims")
		vertices := make([]arenatest.Vertex, n)
		for i := 0; i < n; i++ {
			succ := rapid.SliceOfN(rapid.IntRange(0, n-1), 1, 3).Draw(rt, "succ")
			prios := make([]int, dims)
			for d := range prios {
				prios[d] = rapid.IntRange(0, 3).Draw(rt, "prio")
			}
			vertices[i] = arenatest.Vertex{
				ID:         i,
				Owner:      rapid.IntRange(0, 1).Draw(rt, "owner"),
				Priorities: prios,
				Succ:       succ,
			}
		}
		a, err := arenatest.Build(vertices)
		if err != nil {
			rt.Skip("invalid random arena")
		}

		w0r, w1r, err := gparity.GeneralizedRecursive(a)
		require.NoError(rt, err)
		w0s, w1s, err := gparity.GeneralizedRecursiveWithPartialSolver(a)
		require.NoError(rt, err)
		w0m, w1m, err := gparity.GeneralizedRecursiveWithPartialSolverMultipleCalls(a)
		require.NoError(rt, err)

		for id := 0; id < n; id++ {
			in0r, _ := arenatest.Contains(a, w0r, id)
			in1r, _ := arenatest.Contains(a, w1r, id)
			require.NotEqualf(rt, in0r, in1r, "vertex %d must be in exactly one region", id)

			in0s, _ := arenatest.Contains(a, w0s, id)
			in1s, _ := arenatest.Contains(a, w1s, id)
			require.Equal(rt, in0r, in0s)
			require.Equal(rt, in1r, in1s)

			in0m, _ := arenatest.Contains(a, w0m, id)
			in1m, _ := arenatest.Contains(a, w1m, id)
			require.Equal(rt, in0r, in0m)
			require.Equal(rt, in1r, in1m)
		}
	})
}
