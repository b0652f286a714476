package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vparity/gpsolve/internal/arenatest"
)

// TestSubarenaEdgeConsistency checks that subarena(v)'s edges are exactly
// the edges of the original arena whose both endpoints lie in v: no edge
// crossing out of v survives, and no edge fully inside v is lost.
func TestSubarenaEdgeConsistency(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(rt, "n")
		vertices := make([]arenatest.Vertex, n)
		for i := 0; i < n; i++ {
			succ := rapid.SliceOfN(rapid.IntRange(0, n-1), 0, 3).Draw(rt, "succ")
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

		kept := make(map[int]bool, n)
		region := a.Engine.False()
		for i := 0; i < n; i++ {
			if rapid.Bool().Draw(rt, "keep") {
				kept[i] = true
				f, err := arenatest.VertexFunc(a, i)
				require.NoError(rt, err)
				region, err = a.Engine.Or(region, f)
				require.NoError(rt, err)
			}
		}

		sub, err := a.Subarena(region)
		require.NoError(rt, err)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				wantInOriginal, err := arenatest.HasEdge(a, i, j)
				require.NoError(rt, err)
				want := wantInOriginal && kept[i] && kept[j]

				got, err := arenatest.HasEdge(sub, i, j)
				require.NoError(rt, err)
				require.Equalf(rt, want, got, "edge %d->%d", i, j)
			}
		}
	})
}
