package codeformat_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvldpc/codeformat"
	"github.com/stretchr/testify/require"
)

// hammingRows/hammingCols are the Hamming(7,4) parity-check matrix's non-zero
// entries in COO form, the same fixture used across the decoder and tanner
// packages' tests.
var (
	hammingRows = []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}
	hammingCols = []int{0, 1, 2, 4, 0, 1, 3, 5, 0, 2, 3, 6}
)

func TestAList_FromSparse_ToSparse_RoundTrip(t *testing.T) {
	a := codeformat.FromSparse(3, 7, hammingRows, hammingCols)
	rows, cols := a.ToSparse()
	require.Equal(t, hammingRows, rows)
	require.Equal(t, hammingCols, cols)
}

func TestAList_FromSparse_Weights(t *testing.T) {
	a := codeformat.FromSparse(3, 7, hammingRows, hammingCols)
	require.Equal(t, 3, a.M)
	require.Equal(t, 7, a.N)
	require.Equal(t, 4, a.RowWeights[0])
	require.Equal(t, 4, a.MaxRowWeight)
	require.Equal(t, 3, a.ColWeights[0])
	require.Equal(t, 3, a.MaxColWeight)
}

func TestAList_FileRoundTrip(t *testing.T) {
	a := codeformat.FromSparse(3, 7, hammingRows, hammingCols)

	path := filepath.Join(t.TempDir(), "hamming.alist")
	require.NoError(t, a.WriteFile(path))

	got, err := codeformat.FromFile(path)
	require.NoError(t, err)
	require.Equal(t, a.N, got.N)
	require.Equal(t, a.M, got.M)
	require.Equal(t, a.ColsOfRow, got.ColsOfRow)
	require.Equal(t, a.RowsOfCol, got.RowsOfCol)
}

func TestAList_ToDense(t *testing.T) {
	a := codeformat.FromSparse(3, 7, hammingRows, hammingCols)
	dense := a.ToDense()
	require.Len(t, dense, 3)
	require.Len(t, dense[0], 7)
	require.Equal(t, 1, dense[0][0])
	require.Equal(t, 0, dense[0][3])
}

func TestAList_FromFile_InconsistentHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.alist")
	require.NoError(t, os.WriteFile(path, []byte("7\n"), 0o644))

	_, err := codeformat.FromFile(path)
	require.Error(t, err)
}

func TestAList_FromFile_MissingFile(t *testing.T) {
	_, err := codeformat.FromFile(filepath.Join(t.TempDir(), "does-not-exist.alist"))
	require.Error(t, err)
}
