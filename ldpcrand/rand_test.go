package ldpcrand_test

import (
	"testing"

	"github.com/katalvlaran/lvldpc/ldpcrand"
	"github.com/stretchr/testify/require"
)

func TestNew_Deterministic(t *testing.T) {
	a := ldpcrand.New(42)
	b := ldpcrand.New(42)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNew_ZeroUsesDefaultSeed(t *testing.T) {
	a := ldpcrand.New(0)
	b := ldpcrand.New(ldpcrand.DefaultSeed)
	require.Equal(t, a.Int63(), b.Int63())
}

func TestDerive_DifferentStreamsDiverge(t *testing.T) {
	base := ldpcrand.New(7)
	s1 := ldpcrand.Derive(base, 1)
	s2 := ldpcrand.Derive(base, 2)
	require.NotEqual(t, s1.Int63(), s2.Int63())
}

func TestDerive_NilBaseIsDeterministic(t *testing.T) {
	a := ldpcrand.Derive(nil, 5)
	b := ldpcrand.Derive(nil, 5)
	require.Equal(t, a.Int63(), b.Int63())
}
