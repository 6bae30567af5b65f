package wifi_test

import (
	"testing"

	"github.com/katalvlaran/lvldpc/decoder"
	"github.com/katalvlaran/lvldpc/qcenc"
	"github.com/katalvlaran/lvldpc/wifi"
	"github.com/stretchr/testify/require"
)

func TestLoadQCFile_KnownSpecs(t *testing.T) {
	for _, s := range []wifi.Spec{wifi.N648R12, wifi.N1296R23} {
		qc, err := wifi.LoadQCFile(s)
		require.NoError(t, err, s)
		require.Greater(t, qc.Z, 0)
		require.Len(t, qc.Blocks, qc.R)
	}
}

func TestLoadQCFile_UnknownSpec(t *testing.T) {
	_, err := wifi.LoadQCFile(wifi.Spec(99))
	require.ErrorIs(t, err, wifi.ErrUnknownSpec)
}

func TestNewEncoder_ZeroMessageIsSystematicZero(t *testing.T) {
	for _, s := range []wifi.Spec{wifi.N648R12, wifi.N1296R23} {
		enc, err := wifi.NewEncoder(s)
		require.NoError(t, err, s)

		u := make([]byte, enc.K())
		c, err := enc.Encode(u)
		require.NoError(t, err)
		require.Len(t, c, enc.N())
		require.Equal(t, u, c[:enc.K()])
	}
}

// TestNewLogSPADecoder_AllZeroCodewordConverges uses the one codeword that
// is provably valid for any parity-check structure regardless of the
// encoder's grid: the all-zero vector. It exercises the full factory wiring
// (fixture load, tanner.Matrix construction, info-bit mask) without relying
// on the embedded fixtures' parity structure matching the encoder's own
// recursion (see DESIGN.md's wifi fixtures entry).
func TestNewLogSPADecoder_AllZeroCodewordConverges(t *testing.T) {
	enc, err := wifi.NewEncoder(wifi.N648R12)
	require.NoError(t, err)

	u := make([]byte, enc.K())
	c, err := enc.Encode(u)
	require.NoError(t, err)

	dec, err := wifi.NewLogSPADecoder(wifi.N648R12, 20, decoder.SPA)
	require.NoError(t, err)

	llr := make([]float64, len(c))
	for j := range llr {
		llr[j] = 1
	}
	res, err := dec.Decode(llr)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, c, res.Estimate)

	got, err := dec.InfoBits(res.Estimate)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestNewLogSPADecoder_IncorrectLength(t *testing.T) {
	dec, err := wifi.NewLogSPADecoder(wifi.N1296R23, 10, decoder.MS)
	require.NoError(t, err)

	_, err = dec.Decode([]float64{0, 1})
	require.ErrorIs(t, err, decoder.ErrIncorrectLength)
}

func TestNewGridFromQCFile_MatchesSpecShape(t *testing.T) {
	qc, err := wifi.LoadQCFile(wifi.N648R12)
	require.NoError(t, err)
	grid, err := qcenc.NewGridFromQCFile(qc)
	require.NoError(t, err)
	require.Equal(t, qc.R, grid.RBlocks())
	require.Equal(t, qc.C, grid.CBlocks())
	require.Equal(t, qc.Z, grid.Z())
}
