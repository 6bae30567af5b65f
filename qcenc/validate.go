// File: validate.go
// Role: a dense GF(2) cross-check of the sparse block encoder, grounded on
// the RLNC demo's use of gonum/mat for small dense linear-algebra checks.
// Not on the hot encode path — for tests and examples over small fixtures.
package qcenc

import (
	"errors"

	"github.com/katalvlaran/lvldpc/tanner"
	"gonum.org/v1/gonum/mat"
)

// ErrSyndromeNonZero indicates a codeword produced by Encode fails H*c=0 mod 2.
var ErrSyndromeNonZero = errors.New("qcenc: encoded codeword has non-zero syndrome")

// ValidateDense encodes every information vector in messages (the
// all-zero vector if messages is empty) through enc, and checks each
// resulting codeword against mx via a dense GF(2) multiply-then-mod,
// mx.M()-by-mx.N(). Intended for small fixtures (tests, examples); the hot
// encode path never builds a dense matrix.
func ValidateDense(enc *Encoder, mx *tanner.Matrix, messages ...[]byte) error {
	h := mat.NewDense(mx.M(), mx.N(), nil)
	for i := 0; i < mx.M(); i++ {
		for _, j := range mx.RowCols(i) {
			h.Set(i, j, 1)
		}
	}

	check := func(u []byte) error {
		c, err := enc.Encode(u)
		if err != nil {
			return err
		}
		cv := mat.NewVecDense(len(c), nil)
		for j, b := range c {
			cv.SetVec(j, float64(b))
		}
		var sv mat.VecDense
		sv.MulVec(h, cv)
		for i := 0; i < sv.Len(); i++ {
			if mod2(sv.AtVec(i)) != 0 {
				return ErrSyndromeNonZero
			}
		}
		return nil
	}

	if len(messages) == 0 {
		messages = [][]byte{make([]byte, enc.K())}
	}
	for _, u := range messages {
		if err := check(u); err != nil {
			return err
		}
	}
	return nil
}

// mod2 reduces a dense-multiply accumulator (a count of set bits) to its
// parity bit.
func mod2(v float64) int {
	return int(v) % 2
}
