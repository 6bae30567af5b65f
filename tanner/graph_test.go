package tanner_test

import (
	"testing"

	"github.com/katalvlaran/lvldpc/tanner"
	"github.com/stretchr/testify/require"
)

// TestSumExceptCheck_MatchesDirect cross-checks the two-pass leave-one-out
// sum against a naive O(d^2) direct computation.
func TestSumExceptCheck_MatchesDirect(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)
	g := tanner.NewGraph(mx)

	vals := make([]float64, mx.EdgeCount())
	for e := range vals {
		vals[e] = float64(e) + 1
	}
	edgeVal := func(e int) float64 { return vals[e] }

	for i := 0; i < mx.M(); i++ {
		edges := mx.RowEdges(i)
		got := make([]float64, len(edges))
		g.SumExceptCheck(i, edgeVal, got)

		for p := range edges {
			want := 0.0
			for q, e := range edges {
				if q == p {
					continue
				}
				want += edgeVal(e)
			}
			require.InDelta(t, want, got[p], 1e-12)
		}
	}
}

func TestMinAbsExceptCheck_MatchesDirect(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)
	g := tanner.NewGraph(mx)

	vals := make([]float64, mx.EdgeCount())
	for e := range vals {
		vals[e] = float64(e%5) - 2 // mix of signs and magnitudes
	}
	edgeVal := func(e int) float64 { return vals[e] }

	for i := 0; i < mx.M(); i++ {
		edges := mx.RowEdges(i)
		got := make([]float64, len(edges))
		g.MinAbsExceptCheck(i, edgeVal, got)

		for p := range edges {
			min := -1.0
			for q, e := range edges {
				if q == p {
					continue
				}
				v := edgeVal(e)
				if v < 0 {
					v = -v
				}
				if min < 0 || v < min {
					min = v
				}
			}
			require.InDelta(t, min, got[p], 1e-12)
		}
	}
}

func TestVarAggregate_Sum(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)
	g := tanner.NewGraph(mx)

	for j := 0; j < mx.N(); j++ {
		got := g.VarAggregate(j, func(e int) float64 { return 1 }, func(acc, v float64) float64 { return acc + v }, 0)
		require.Equal(t, float64(mx.DV(j)), got)
	}
}
