package explicit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// twoVertexArena builds 0 --> 1 --> 0 with priorities {2, 1}: player 0
// should win both vertices since the max priority seen infinitely often (2)
// is even.
func twoVertexArena(t *testing.T) *Arena {
	t.Helper()
	a, err := New(2, 1)
	require.NoError(t, err)
	require.NoError(t, a.SetPriority(0, 0, 2))
	require.NoError(t, a.SetPriority(1, 0, 1))
	require.NoError(t, a.SetOwner(0, 0))
	require.NoError(t, a.SetOwner(1, 1))
	require.NoError(t, a.AddEdge(0, 1))
	require.NoError(t, a.AddEdge(1, 0))
	return a
}

func TestRecursiveEvenLoopIsPlayer0(t *testing.T) {
	a := twoVertexArena(t)
	w0, w1 := Recursive(a)
	require.True(t, w0.Test(0))
	require.True(t, w0.Test(1))
	require.True(t, w1.None())
}

func TestRecursiveOddSelfLoopIsPlayer1(t *testing.T) {
	a, err := New(1, 1)
	require.NoError(t, err)
	require.NoError(t, a.SetPriority(0, 0, 1))
	require.NoError(t, a.SetOwner(0, 0))
	require.NoError(t, a.AddEdge(0, 0))

	w0, w1 := Recursive(a)
	require.True(t, w0.None())
	require.True(t, w1.Test(0))
}

func TestAttractorReachesForcedSink(t *testing.T) {
	a, err := New(3, 1)
	require.NoError(t, err)
	require.NoError(t, a.SetOwner(0, 0))
	require.NoError(t, a.SetOwner(1, 0))
	require.NoError(t, a.SetOwner(2, 0))
	require.NoError(t, a.AddEdge(0, 1))
	require.NoError(t, a.AddEdge(1, 2))
	require.NoError(t, a.AddEdge(2, 2))

	target := a.Vertices()
	target.ClearAll()
	target.Set(2)

	region := Attractor(a, target, 0)
	require.True(t, region.Test(0))
	require.True(t, region.Test(1))
	require.True(t, region.Test(2))
}

func TestSubarenaRemovesVertex(t *testing.T) {
	a := twoVertexArena(t)
	remove := a.Vertices()
	remove.ClearAll()
	remove.Set(1)

	sub := a.Subarena(remove)
	require.True(t, sub.Alive.Test(0))
	require.False(t, sub.Alive.Test(1))
}
