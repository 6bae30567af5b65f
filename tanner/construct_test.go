// Package tanner_test exercises the sparse parity-check construction paths.
package tanner_test

import (
	"testing"

	"github.com/katalvlaran/lvldpc/tanner"
	"github.com/stretchr/testify/require"
)

// hammingH is the (7,4) Hamming code parity-check matrix used across the
// decoder test suite as the smallest non-trivial fixture.
var hammingH = [][]int{
	{1, 1, 1, 0, 1, 0, 0},
	{1, 1, 0, 1, 0, 1, 0},
	{1, 0, 1, 1, 0, 0, 1},
}

func TestNewMatrix_Dimensions(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)
	require.Equal(t, 7, mx.N())
	require.Equal(t, 3, mx.M())
	require.Equal(t, 4, mx.K())
	require.Equal(t, 12, mx.EdgeCount())
}

// TestNewMatrix_AdjacencyRoundTrip locks in the C1 invariant: j is in
// row i's neighbor list iff i is in column j's neighbor list.
func TestNewMatrix_AdjacencyRoundTrip(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)

	for i := 0; i < mx.M(); i++ {
		for _, j := range mx.RowCols(i) {
			require.Contains(t, mx.ColRows(j), i)
		}
	}
	for j := 0; j < mx.N(); j++ {
		for _, i := range mx.ColRows(j) {
			require.Contains(t, mx.RowCols(i), j)
		}
	}
}

func TestNewMatrix_NonBinary(t *testing.T) {
	h := [][]int{{0, 2}, {1, 0}}
	_, err := tanner.NewMatrix(h)
	require.ErrorIs(t, err, tanner.ErrNonBinaryMatrix)
}

func TestNewMatrix_BadShape(t *testing.T) {
	_, err := tanner.NewMatrix(nil)
	require.ErrorIs(t, err, tanner.ErrBadShape)

	_, err = tanner.NewMatrix([][]int{{1, 0}, {0, 1, 1}})
	require.ErrorIs(t, err, tanner.ErrBadShape)
}

func TestNewMatrixFromSparse_MatchesDense(t *testing.T) {
	var rows, cols []int
	for i, row := range hammingH {
		for j, v := range row {
			if v == 1 {
				rows = append(rows, i)
				cols = append(cols, j)
			}
		}
	}

	dense, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)
	sparse, err := tanner.NewMatrixFromSparse(3, 7, rows, cols)
	require.NoError(t, err)

	require.Equal(t, dense.EdgeCount(), sparse.EdgeCount())
	for i := 0; i < dense.M(); i++ {
		require.Equal(t, dense.RowCols(i), sparse.RowCols(i))
	}
}

func TestNewMatrixFromSparse_DimensionMismatch(t *testing.T) {
	_, err := tanner.NewMatrixFromSparse(3, 7, []int{0, 1}, []int{0})
	require.ErrorIs(t, err, tanner.ErrDimensionMismatch)
}

func TestNewMatrixFromSparse_OutOfRange(t *testing.T) {
	_, err := tanner.NewMatrixFromSparse(3, 7, []int{5}, []int{0})
	require.ErrorIs(t, err, tanner.ErrBadShape)
}

func TestMatrix_EdgeID(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)

	id, ok := mx.EdgeID(0, 0)
	require.True(t, ok)
	require.GreaterOrEqual(t, id, 0)

	_, ok = mx.EdgeID(0, 6) // H[0][6] == 0
	require.False(t, ok)
}

func TestMatrix_Edges_Canonical(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)

	edges := mx.Edges()
	require.Len(t, edges, mx.EdgeCount())
	for idx, e := range edges {
		require.Equal(t, idx, e.ID)
	}
}

func TestMatrix_DegreeBounds(t *testing.T) {
	mx, err := tanner.NewMatrix(hammingH)
	require.NoError(t, err)

	for i := 0; i < mx.M(); i++ {
		require.LessOrEqual(t, mx.DC(i), mx.MaxDC())
	}
	for j := 0; j < mx.N(); j++ {
		require.LessOrEqual(t, mx.DV(j), mx.MaxDV())
	}
}
