// Package decoder implements lvldpc's iterative message-passing decoder
// family (Log-SPA/Min-Sum, Gallager bit-flipping, the weighted bit-flipping
// family, and probabilistic parallel bit-flipping) over a shared
// *tanner.Matrix substrate, plus the uniform decode contract (C8) every
// decoder type satisfies.
//
// Errors:
//
//	ErrIncorrectLength     - input length does not match the code's n.
//	ErrInfoBitsUnavailable - InfoBits called without an info-bit mask configured.
//	ErrInvalidParameter    - a required parameter is missing or out of range
//	                        (e.g. PPBF without a p_vector, or a p_vector of
//	                        the wrong length / out of [0,1]).
//	ErrLoopStuck           - MWBF-NL exhausted every candidate bit in one
//	                        iteration; fatal, indicates a malformed setup.
package decoder

import (
	"errors"

	"github.com/katalvlaran/lvldpc/tanner"
)

// Sentinel errors for decoder package operations.
var (
	// ErrIncorrectLength indicates the decoder input length does not match n.
	ErrIncorrectLength = errors.New("decoder: incorrect input length")

	// ErrInfoBitsUnavailable indicates InfoBits was called without an
	// info-bit mask configured at construction time.
	ErrInfoBitsUnavailable = errors.New("decoder: info bit indices not specified")

	// ErrInvalidParameter indicates a missing or out-of-range parameter.
	ErrInvalidParameter = errors.New("decoder: invalid parameter")

	// ErrLoopStuck indicates MWBF-NL could not find any admissible flip in
	// the current iteration: every bit has been excluded by the loop log.
	ErrLoopStuck = errors.New("decoder: loop detected in MWBF-NL flip sequence")
)

// Result is the uniform output of every decoder's Decode call (C8).
//
// Success is defined solely by Syndrome being all-zero on Estimate, never by
// message convergence. LLR is nil for decoders that produce no soft output
// (GallagerBF, WBF family without synthesis). Diagnostics' meaning is
// decoder-specific: satisfied-minus-unsatisfied check count for LogSPA
// (higher is better), the unsatisfied incident-check count from the last
// flipping iteration for GallagerBF (lower is better), the final
// reliability profile for the WBF family (lower is better), or the
// per-variable energy level for PPBF.
type Result struct {
	Estimate    []byte
	LLR         []float64
	Success     bool
	Iterations  int
	Syndrome    []byte
	Diagnostics []float64
}

// Decoder is the shared decode contract (C8) every concrete decoder type in
// this package implements.
type Decoder interface {
	// Decode runs the decoder to completion (success or max_iter) on input
	// and returns the uniform Result.
	Decode(input []float64) (Result, error)

	// InfoBits extracts the information-bearing bits from a decoded
	// estimate, using the info-bit mask configured at construction.
	// Returns ErrInfoBitsUnavailable if none was configured.
	InfoBits(estimate []byte) ([]byte, error)
}

// infoBits is the shared InfoBits implementation used by every concrete
// decoder type: extract estimate[j] for every j where infoIdx[j] is true.
func infoBits(infoIdx []bool, estimate []byte) ([]byte, error) {
	if infoIdx == nil {
		return nil, ErrInfoBitsUnavailable
	}
	out := make([]byte, 0, len(infoIdx))
	for j, want := range infoIdx {
		if want {
			out = append(out, estimate[j])
		}
	}
	return out, nil
}

// syndromeOf computes H*estimate mod 2 into out (len(out) must be mx.M()).
func syndromeOf(mx *tanner.Matrix, estimate []byte, out []byte) {
	for i := 0; i < mx.M(); i++ {
		var s byte
		for _, j := range mx.RowCols(i) {
			s ^= estimate[j]
		}
		out[i] = s
	}
}

// allZero reports whether every byte in s is zero.
func allZero(s []byte) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}
