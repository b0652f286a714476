package attractor_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vparity/gpsolve/attractor"
	"github.com/vparity/gpsolve/internal/arenatest"
	"github.com/vparity/gpsolve/symbolic"
)

// smallArena is a tiny fixture with one player-0-reachable sink and a cycle
// a player must escape through it:
//
//	0 -(p0)-> 1 -(p1)-> 2 -(p0)-> 0
//	                 \-> 3 (sink, p0)
func smallArena(t *testing.T) *symbolic.Arena {
	t.Helper()
	a, err := arenatest.Build([]arenatest.Vertex{
		{ID: 0, Owner: 0, Priorities: []int{0}, Succ: []int{1}},
		{ID: 1, Owner: 1, Priorities: []int{1}, Succ: []int{2, 3}},
		{ID: 2, Owner: 0, Priorities: []int{0}, Succ: []int{0}},
		{ID: 3, Owner: 0, Priorities: []int{0}, Succ: []int{3}},
	})
	require.NoError(t, err)
	return a
}

func TestAttractorReachesSink(t *testing.T) {
	a := smallArena(t)

	target, err := arenatest.VertexFunc(a, 3)
	require.NoError(t, err)

	region, err := attractor.Attractor(a, target, 1)
	require.NoError(t, err)

	for id, want := range map[int]bool{0: true, 1: true, 2: true, 3: true} {
		got, err := arenatest.Contains(a, region, id)
		require.NoError(t, err)
		require.Equalf(t, want, got, "vertex %d", id)
	}
}

func TestAttractorOpponentCanEscape(t *testing.T) {
	a := smallArena(t)

	target, err := arenatest.VertexFunc(a, 3)
	require.NoError(t, err)

	region, err := attractor.Attractor(a, target, 0)
	require.NoError(t, err)

	// Vertex 1 belongs to player 1 and can choose vertex 2 to avoid 3
	// forever, so player 0's attractor must not include it.
	got, err := arenatest.Contains(a, region, 1)
	require.NoError(t, err)
	require.False(t, got)

	got, err = arenatest.Contains(a, region, 3)
	require.NoError(t, err)
	require.True(t, got)
}

func TestAttractorIdempotent(t *testing.T) {
	a := smallArena(t)
	target, err := arenatest.VertexFunc(a, 3)
	require.NoError(t, err)

	once, err := attractor.Attractor(a, target, 0)
	require.NoError(t, err)
	twice, err := attractor.Attractor(a, once, 0)
	require.NoError(t, err)

	require.True(t, once.Equal(twice))
}

func TestMonotoneAttractorExcludesSinkOffCycle(t *testing.T) {
	a := smallArena(t)
	target, err := arenatest.VertexFunc(a, 2)
	require.NoError(t, err)

	region, err := attractor.MonotoneAttractor(a, target, 1, 0)
	require.NoError(t, err)

	// Vertex 3 is a self-looping sink off the cycle containing the target;
	// it can never re-enter the target, so it must never show up in the
	// fatal-attractor result.
	got, err := arenatest.Contains(a, region, 3)
	require.NoError(t, err)
	require.False(t, got)
}

func TestSafeAttractorAvoidsForbiddenSet(t *testing.T) {
	a := smallArena(t)
	target, err := arenatest.VertexFunc(a, 3)
	require.NoError(t, err)
	avoid, err := arenatest.VertexFunc(a, 1)
	require.NoError(t, err)

	region, err := attractor.SafeAttractor(a, target, avoid, 0)
	require.NoError(t, err)

	got, err := arenatest.Contains(a, region, 1)
	require.NoError(t, err)
	require.False(t, got, "avoided vertex must never enter a safe attractor")

	got, err = arenatest.Contains(a, region, 0)
	require.NoError(t, err)
	require.False(t, got, "0 can only reach the target through the avoided vertex")
}

// TestAttractorMonotoneInTarget checks that growing the source set
// can only grow (never shrink) the resulting attractor.
func TestAttractorMonotoneInTarget(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(rt, "n")
		vertices := make([]arenatest.Vertex, n)
		for i := 0; i < n; i++ {
			succ := rapid.SliceOfN(rapid.IntRange(0, n-1), 1, 3).Draw(rt, "succ")
			vertices[i] = arenatest.Vertex{
				ID:         i,
				Owner:      rapid.IntRange(0, 1).Draw(rt, "owner"),
				Priorities: []int{rapid.IntRange(0, 2).Draw(rt, "prio")},
				Succ:       succ,
			}
		}
		a, err := arenatest.Build(vertices)
		if err != nil {
			rt.Skip("invalid random arena")
		}

		smallID := rapid.IntRange(0, n-1).Draw(rt, "small")
		smallF, err := arenatest.VertexFunc(a, smallID)
		require.NoError(rt, err)

		bigID := rapid.IntRange(0, n-1).Draw(rt, "big")
		bigF, err := arenatest.VertexFunc(a, bigID)
		require.NoError(rt, err)
		union, err := a.Engine.Or(smallF, bigF)
		require.NoError(rt, err)

		player := rapid.IntRange(0, 1).Draw(rt, "player")
		attrSmall, err := attractor.Attractor(a, smallF, player)
		require.NoError(rt, err)
		attrBig, err := attractor.Attractor(a, union, player)
		require.NoError(rt, err)

		combined, err := a.Engine.Or(attrSmall, attrBig)
		require.NoError(rt, err)
		require.True(rt, combined.Equal(attrBig), "attractor of a superset must contain the attractor of a subset")
	})
}

// TestMonotoneAttractorStaysWithinDeclaredBound checks that
// MonotoneAttractor never returns a vertex whose dimension-0 priority
// exceeds the bound passed to it, across randomly generated arenas.
func TestMonotoneAttractorStaysWithinDeclaredBound(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(rt, "n")
		vertices := make([]arenatest.Vertex, n)
		for i := 0; i < n; i++ {
			succ := rapid.SliceOfN(rapid.IntRange(0, n-1), 1, 3).Draw(rt, "succ")
			vertices[i] = arenatest.Vertex{
				ID:         i,
				Owner:      rapid.IntRange(0, 1).Draw(rt, "owner"),
				Priorities: []int{rapid.IntRange(0, 4).Draw(rt, "prio")},
				Succ:       succ,
			}
		}
		a, err := arenatest.Build(vertices)
		if err != nil {
			rt.Skip("invalid random arena")
		}

		bound := rapid.IntRange(0, 4).Draw(rt, "bound")
		targetID := rapid.IntRange(0, n-1).Draw(rt, "target")
		targetF, err := arenatest.VertexFunc(a, targetID)
		require.NoError(rt, err)

		region, err := attractor.MonotoneAttractor(a, targetF, bound, 0)
		require.NoError(rt, err)

		le, err := a.LessEqual(0, bound)
		require.NoError(rt, err)

		combined, err := a.Engine.Or(region, le)
		require.NoError(rt, err)
		require.True(rt, combined.Equal(le), "monotone attractor must stay within the priority <= bound set")
	})
}
