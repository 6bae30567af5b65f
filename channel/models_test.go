package channel_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvldpc/channel"
	"github.com/stretchr/testify/require"
)

func TestBSC_SignConvention(t *testing.T) {
	model := channel.BSC(0.01)
	require.Greater(t, model(0), 0.0, "bit 0 must map to positive LLR")
	require.Less(t, model(1), 0.0, "bit 1 must map to negative LLR")
	require.InDelta(t, -model(0), model(1), 1e-12)
}

func TestAWGN_Linear(t *testing.T) {
	model := channel.AWGN(1.0)
	require.InDelta(t, 2.0, model(1.0), 1e-12)
	require.InDelta(t, -4.0, model(-2.0), 1e-12)
}

func TestAWGN_ScalesWithSigma(t *testing.T) {
	sigma := 2.0
	model := channel.AWGN(sigma)
	want := 2 * 1.5 / (sigma * sigma)
	require.InDelta(t, want, model(1.5), 1e-12)
}

func TestTable_DefaultAndOverride(t *testing.T) {
	def := channel.BSC(0.1)
	tbl := channel.NewTable(def)

	require.Equal(t, def(0), tbl.At(3)(0), "unset index falls back to Default")

	override := channel.AWGN(0.5)
	tbl.Set(3, override)
	require.Equal(t, override(1.0), tbl.At(3)(1.0))
	require.Equal(t, def(0), tbl.At(4)(0), "other indices stay on Default")
}

func TestBSC_NotNaN(t *testing.T) {
	model := channel.BSC(0.2)
	require.False(t, math.IsNaN(model(0)))
	require.False(t, math.IsNaN(model(1)))
}
