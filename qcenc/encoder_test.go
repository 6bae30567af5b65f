package qcenc_test

import (
	"testing"

	"github.com/katalvlaran/lvldpc/qcenc"
	"github.com/katalvlaran/lvldpc/tanner"
	"github.com/stretchr/testify/require"
)

// smallGrid is a 3x4 block grid (z=2), the smallest shape NewEncoder accepts
// (rBlocks >= 3). Only the message block-column's shifts matter for the
// zero-message and length/systematic tests below; the parity columns are
// filled with a plausible staircase so Grid/NewGrid's own validation and
// ToDense have realistic structure to exercise.
func smallGrid(t *testing.T) *qcenc.Grid {
	blocks := [][]int{
		{0, 0, -1, -1},
		{-1, 0, 0, -1},
		{-1, -1, 0, 0},
	}
	g, err := qcenc.NewGrid(3, 4, 2, blocks)
	require.NoError(t, err)
	return g
}

func TestGrid_Accessors(t *testing.T) {
	g := smallGrid(t)
	require.Equal(t, 3, g.RBlocks())
	require.Equal(t, 4, g.CBlocks())
	require.Equal(t, 2, g.Z())
	require.Equal(t, 6, g.M())
	require.Equal(t, 8, g.N())
	require.Equal(t, 2, g.K())
}

func TestNewGrid_RejectsBadShape(t *testing.T) {
	_, err := qcenc.NewGrid(0, 4, 2, nil)
	require.ErrorIs(t, err, qcenc.ErrBadShape)

	_, err = qcenc.NewGrid(3, 4, 2, [][]int{{0, 0, -1, -1}})
	require.ErrorIs(t, err, qcenc.ErrBadShape)

	_, err = qcenc.NewGrid(1, 1, 2, [][]int{{2}})
	require.ErrorIs(t, err, qcenc.ErrBadShape)
}

func TestNewEncoder_RequiresThreeBlockRows(t *testing.T) {
	blocks := [][]int{{0, 0}, {0, 0}}
	g, err := qcenc.NewGrid(2, 2, 2, blocks)
	require.NoError(t, err)

	_, err = qcenc.NewEncoder(g)
	require.ErrorIs(t, err, qcenc.ErrBadShape)
}

func TestEncoder_Accessors(t *testing.T) {
	g := smallGrid(t)
	enc, err := qcenc.NewEncoder(g)
	require.NoError(t, err)
	require.Equal(t, g.K(), enc.K())
	require.Equal(t, g.N(), enc.N())
}

func TestEncoder_IncorrectLength(t *testing.T) {
	g := smallGrid(t)
	enc, err := qcenc.NewEncoder(g)
	require.NoError(t, err)

	_, err = enc.Encode([]byte{0, 1, 0})
	require.ErrorIs(t, err, qcenc.ErrIncorrectLength)
}

// TestEncoder_ZeroMessageIsSystematicZero locks in a universally-true
// property of the encoding recursion: for an all-zero information vector,
// every shifted-message XOR is zero regardless of the grid's shift values,
// so every parity block collapses to zero too.
func TestEncoder_ZeroMessageIsSystematicZero(t *testing.T) {
	g := smallGrid(t)
	enc, err := qcenc.NewEncoder(g)
	require.NoError(t, err)

	u := make([]byte, enc.K())
	c, err := enc.Encode(u)
	require.NoError(t, err)
	require.Len(t, c, enc.N())
	for _, b := range c {
		require.Equal(t, byte(0), b)
	}
}

// TestEncoder_SystematicPrefix locks in the systematic property: whatever
// the parity recursion computes, the codeword's first k bits are always
// exactly the input, unmodified.
func TestEncoder_SystematicPrefix(t *testing.T) {
	g := smallGrid(t)
	enc, err := qcenc.NewEncoder(g)
	require.NoError(t, err)

	u := []byte{1, 0}
	c, err := enc.Encode(u)
	require.NoError(t, err)
	require.Equal(t, u, c[:enc.K()])
}

// TestEncoder_Deterministic checks repeated calls against the same scratch
// buffers don't leak state across Encode invocations.
func TestEncoder_Deterministic(t *testing.T) {
	g := smallGrid(t)
	enc, err := qcenc.NewEncoder(g)
	require.NoError(t, err)

	u := []byte{1, 1}
	first, err := enc.Encode(u)
	require.NoError(t, err)
	second, err := enc.Encode(u)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Encoding a different input and then the original again must not be
	// polluted by the intervening call's scratch state.
	_, err = enc.Encode([]byte{0, 1})
	require.NoError(t, err)
	third, err := enc.Encode(u)
	require.NoError(t, err)
	require.Equal(t, first, third)
}

func TestGrid_ToDense_Shape(t *testing.T) {
	g := smallGrid(t)
	dense := g.ToDense()
	require.Len(t, dense, g.M())
	for _, row := range dense {
		require.Len(t, row, g.N())
	}
}

// denseToMatrix converts a Grid's dense parity-check rendering into a
// tanner.Matrix, for cross-checking Encode's output independently of the
// block-shift recursion it was produced by.
func denseToMatrix(t *testing.T, g *qcenc.Grid) *tanner.Matrix {
	dense := g.ToDense()
	var rows, cols []int
	for i, row := range dense {
		for j, v := range row {
			if v != 0 {
				rows = append(rows, i)
				cols = append(cols, j)
			}
		}
	}
	mx, err := tanner.NewMatrixFromSparse(g.M(), g.N(), rows, cols)
	require.NoError(t, err)
	return mx
}

// TestValidateDense_ZeroMessage cross-checks Encode's all-zero output
// against smallGrid's own H via a dense GF(2) multiply, independent of the
// block-shift recursion Encode itself uses. Only the zero message is
// checked: smallGrid's shifts are a synthetic fixture, not a structurally
// self-consistent real code, so non-zero messages aren't guaranteed to
// satisfy H*c=0 here (see DESIGN.md's qcenc fixtures entry).
func TestValidateDense_ZeroMessage(t *testing.T) {
	g := smallGrid(t)
	enc, err := qcenc.NewEncoder(g)
	require.NoError(t, err)
	mx := denseToMatrix(t, g)

	require.NoError(t, qcenc.ValidateDense(enc, mx))
}
