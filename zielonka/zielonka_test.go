package zielonka_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vparity/gpsolve/internal/arenatest"
	"github.com/vparity/gpsolve/symbolic"
	"github.com/vparity/gpsolve/zielonka"
)

// A 2-vertex game where player 0 wins everywhere: a cycle through an
// even-priority vertex 0 and an odd-priority vertex 1 whose only move is
// back to 0, so the highest priority seen infinitely often is 2.
func buildSimpleWin(t *testing.T) *symbolic.Arena {
	t.Helper()
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{2}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{1}, Succ: []int{0}},
	})
	require.NoError(t, err)
	return a
}

func TestRecursiveAllPlayer0Loop(t *testing.T) {
	a := buildSimpleWin(t)
	w0, w1, err := zielonka.Recursive(a)
	require.NoError(t, err)

	for id, want := range map[int]bool{0: true, 1: true} {
		got, err := arenatest.Contains(a, w0, id)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.True(t, w1.IsFalse())
}

func TestRecursiveOddLoopIsPlayer1(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{1}, Succ: []int{0}},
	})
	require.NoError(t, err)

	w0, w1, err := zielonka.Recursive(a)
	require.NoError(t, err)

	require.True(t, w0.IsFalse())
	got, err := arenatest.Contains(a, w1, 0)
	require.NoError(t, err)
	require.True(t, got)
}

func TestRecursiveWithBuchiAgreesWithRecursive(t *testing.T) {
	a1 := buildSimpleWin(t)
	w0a, w1a, err := zielonka.Recursive(a1)
	require.NoError(t, err)

	a2 := buildSimpleWin(t)
	w0b, w1b, err := zielonka.RecursiveWithBuchi(a2)
	require.NoError(t, err)

	for id := 0; id < 2; id++ {
		in0a, _ := arenatest.Contains(a1, w0a, id)
		in0b, _ := arenatest.Contains(a2, w0b, id)
		require.Equal(t, in0a, in0b)
		in1a, _ := arenatest.Contains(a1, w1a, id)
		in1b, _ := arenatest.Contains(a2, w1b, id)
		require.Equal(t, in1a, in1b)
	}
}

func TestZielonkaWithPartialSolverAgreesWithRecursive(t *testing.T) {
	a1 := buildSimpleWin(t)
	w0a, w1a, err := zielonka.Recursive(a1)
	require.NoError(t, err)

	a2 := buildSimpleWin(t)
	w0b, w1b, err := zielonka.ZielonkaWithPartialSolver(a2)
	require.NoError(t, err)

	for id := 0; id < 2; id++ {
		in0a, _ := arenatest.Contains(a1, w0a, id)
		in0b, _ := arenatest.Contains(a2, w0b, id)
		require.Equal(t, in0a, in0b)
		in1a, _ := arenatest.Contains(a1, w1a, id)
		in1b, _ := arenatest.Contains(a2, w1b, id)
		require.Equal(t, in1a, in1b)
	}
}

// TestSeedS1 reproduces the 3-vertex single-dimension scenario where player
// 0 wins everywhere: vertex 0 moves straight to the even-priority vertex 1,
// and vertex 2, the only other move of vertex 1, is a self-loop of even
// priority 0, so player 1 gains nothing by going there.
func TestSeedS1(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{1}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{2}, Succ: []int{0, 2}},
		{ID: 2, Owner: 0, Priorities: []int{0}, Succ: []int{2}},
	})
	require.NoError(t, err)

	w0, w1, err := zielonka.Recursive(a)
	require.NoError(t, err)

	for id := 0; id < 3; id++ {
		got, err := arenatest.Contains(a, w0, id)
		require.NoError(t, err)
		require.Truef(t, got, "vertex %d expected in player 0's region", id)
	}
	require.True(t, w1.IsFalse())
}

// TestSeedS6 reproduces the single-vertex odd-priority self-loop scenario
// with owner player 1. With only one vertex and a single possible infinite
// play, ownership cannot change the outcome, so this agrees with
// TestRecursiveOddLoopIsPlayer1's otherwise-identical player-0-owned case:
// player 1 wins.
func TestSeedS6(t *testing.T) {
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 1, Priorities: []int{1}, Succ: []int{0}},
	})
	require.NoError(t, err)

	w0, w1, err := zielonka.Recursive(a)
	require.NoError(t, err)

	require.True(t, w0.IsFalse())
	got, err := arenatest.Contains(a, w1, 0)
	require.NoError(t, err)
	require.True(t, got)
}

// TestRecursiveVariantsAgreeAndPartition draws random single-dimension
// arenas and runs Recursive, RecursiveWithBuchi, and
// ZielonkaWithPartialSolver sequentially on the SAME arena value, checking
// both that the three variants agree on every vertex and that each one's
// own (w0, w1) pair partitions the arena's vertices.
func TestRecursiveVariantsAgreeAndPartition(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(rt, "n")
		vertices := make([]arenatest.Vertex, n)
		for i := 0; i < n; i++ {
			succ := rapid.SliceOfN(rapid.IntRange(0, n-1), 1, 3).Draw(rt, "succ")
			vertices[i] = arenatest.Vertex{
				ID:         i,
				Owner:      rapid.IntRange(0, 1).Draw(rt, "owner"),
				Priorities: []int{rapid.IntRange(0, 3).Draw(rt, "prio")},
				Succ:       succ,
			}
		}
		a, err := arenatest.Build(vertices)
		if err != nil {
			rt.Skip("invalid random arena")
		}

		w0r, w1r, err := zielonka.Recursive(a)
		require.NoError(rt, err)
		w0b, w1b, err := zielonka.RecursiveWithBuchi(a)
		require.NoError(rt, err)
		w0p, w1p, err := zielonka.ZielonkaWithPartialSolver(a)
		require.NoError(rt, err)

		for id := 0; id < n; id++ {
			in0r, _ := arenatest.Contains(a, w0r, id)
			in1r, _ := arenatest.Contains(a, w1r, id)
			require.NotEqualf(rt, in0r, in1r, "vertex %d must be in exactly one region", id)

			in0b, _ := arenatest.Contains(a, w0b, id)
			in1b, _ := arenatest.Contains(a, w1b, id)
			require.Equal(rt, in0r, in0b)
			require.Equal(rt, in1r, in1b)

			in0p, _ := arenatest.Contains(a, w0p, id)
			in1p, _ := arenatest.Contains(a, w1p, id)
			require.Equal(rt, in0r, in0p)
			require.Equal(rt, in1r, in1p)
		}
	})
}
