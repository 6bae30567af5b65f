// File: gallager.go
// Role: the hard-input majority-vote flipping decoder (C4).
package decoder

import "github.com/katalvlaran/lvldpc/tanner"

// GallagerBF decodes codewords using Gallager's bit-flipping algorithm:
// each iteration flips exactly one bit, the one incident to the most
// currently-unsatisfied checks. It is known to oscillate on cycles and
// relies entirely on its iteration cap to terminate.
type GallagerBF struct {
	mx      *tanner.Matrix
	maxIter int
	infoIdx []bool

	word     []byte
	syndrome []byte
	score    []int
}

// GallagerBFOption configures a GallagerBF at construction time.
type GallagerBFOption func(*GallagerBF)

// WithGallagerInfoIdx installs the information-bit mask used by InfoBits.
func WithGallagerInfoIdx(mask []bool) GallagerBFOption {
	return func(d *GallagerBF) { d.infoIdx = mask }
}

// NewGallagerBF constructs a GallagerBF decoder over mx, bounded at maxIter
// iterations per Decode call. There is no "percent flipped" parameter: the
// algorithm always flips exactly one bit per iteration, per spec.
func NewGallagerBF(mx *tanner.Matrix, maxIter int, opts ...GallagerBFOption) *GallagerBF {
	d := &GallagerBF{
		mx:       mx,
		maxIter:  maxIter,
		word:     make([]byte, mx.N()),
		syndrome: make([]byte, mx.M()),
		score:    make([]int, mx.N()),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode runs Gallager bit-flipping to completion (C8 contract).
//
// input is interpreted as a hard bit vector unless it contains a negative
// element, in which case it is treated as LLR values and hard-sliced by
// sign (positive => 0, negative => 1).
func (d *GallagerBF) Decode(input []float64) (Result, error) {
	if len(input) != d.mx.N() {
		return Result{}, ErrIncorrectLength
	}

	isLLR := false
	for _, v := range input {
		if v < 0 {
			isLLR = true
			break
		}
	}
	for j, v := range input {
		if isLLR {
			if v < 0 {
				d.word[j] = 1
			} else {
				d.word[j] = 0
			}
		} else {
			d.word[j] = byte(v)
		}
	}

	iterations := 0
	for iter := 0; iter < d.maxIter; iter++ {
		iterations = iter + 1
		syndromeOf(d.mx, d.word, d.syndrome)
		if allZero(d.syndrome) {
			break
		}

		// score[j] = number of unsatisfied checks incident to j.
		for j := range d.score {
			d.score[j] = 0
		}
		for i := 0; i < d.mx.M(); i++ {
			if d.syndrome[i] == 0 {
				continue
			}
			for _, j := range d.mx.RowCols(i) {
				d.score[j]++
			}
		}

		flip := 0
		best := d.score[0]
		for j := 1; j < len(d.score); j++ {
			if d.score[j] > best {
				best = d.score[j]
				flip = j
			}
		}
		d.word[flip] ^= 1
	}

	syndromeOf(d.mx, d.word, d.syndrome)
	success := allZero(d.syndrome)

	diag := make([]float64, len(d.score))
	for j, v := range d.score {
		diag[j] = float64(v)
	}

	return Result{
		Estimate:    append([]byte(nil), d.word...),
		Success:     success,
		Iterations:  iterations,
		Syndrome:    append([]byte(nil), d.syndrome...),
		Diagnostics: diag,
	}, nil
}

// InfoBits extracts the information bits from estimate (C8 contract).
func (d *GallagerBF) InfoBits(estimate []byte) ([]byte, error) {
	return infoBits(d.infoIdx, estimate)
}
