// File: ppbf.go
// Role: probabilistic parallel bit-flipping (C6) — every unsatisfied-adjacent
// bit is a flip candidate each iteration, drawn independently via a
// per-energy-level Bernoulli trial instead of a single deterministic argmax.
package decoder

import (
	"math/rand"

	"github.com/katalvlaran/lvldpc/channel"
	"github.com/katalvlaran/lvldpc/ldpcrand"
	"github.com/katalvlaran/lvldpc/tanner"
)

// PPBF decodes codewords using probabilistic parallel bit-flipping: every
// iteration computes an energy level per variable-node, synthesizes a flip
// probability from it via a BSC crossover model, and flips independently.
type PPBF struct {
	mx      *tanner.Matrix
	maxIter int
	infoIdx []bool
	pVector []float64
	rng     *rand.Rand

	word     []byte
	prior    []byte
	syndrome []byte
	energy   []float64
}

// PPBFOption configures a PPBF at construction time.
type PPBFOption func(*PPBF)

// WithPpbfInfoIdx installs the information-bit mask used by InfoBits.
func WithPpbfInfoIdx(mask []bool) PPBFOption {
	return func(d *PPBF) { d.infoIdx = mask }
}

// WithPVector installs the per-energy-level crossover probability table.
// pVector must have exactly mx.MaxDV()+2 entries, one for every attainable
// energy level (0..MaxDV from the degree-normalized unsatisfied-check term,
// plus one for the binary flipped term), and every entry must be in [0,1].
// Decode checks both on every call and returns ErrInvalidParameter if the
// table is missing, has the wrong length, or holds an out-of-range entry.
func WithPVector(pVector []float64) PPBFOption {
	return func(d *PPBF) { d.pVector = pVector }
}

// WithPpbfRand injects a seeded RNG for the Bernoulli flip draws. If
// omitted, a deterministic default stream is used (ldpcrand.New(0)).
func WithPpbfRand(r *rand.Rand) PPBFOption {
	return func(d *PPBF) { d.rng = r }
}

// NewPPBF constructs a PPBF decoder over mx, bounded at maxIter iterations
// per Decode call.
func NewPPBF(mx *tanner.Matrix, maxIter int, opts ...PPBFOption) *PPBF {
	d := &PPBF{
		mx:       mx,
		maxIter:  maxIter,
		word:     make([]byte, mx.N()),
		prior:    make([]byte, mx.N()),
		syndrome: make([]byte, mx.M()),
		energy:   make([]float64, mx.N()),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = ldpcrand.New(0)
	}
	return d
}

// Decode runs PPBF to completion (C8 contract). input is interpreted as a
// hard bit vector unless it contains a negative element, in which case it
// is hard-sliced from LLR by sign (positive => 0, negative => 1); the prior
// word used for energy's "disagree with original estimate" term is the
// initial hard-sliced word itself.
func (d *PPBF) Decode(input []float64) (Result, error) {
	n := d.mx.N()
	if len(input) != n {
		return Result{}, ErrIncorrectLength
	}
	if d.pVector == nil {
		return Result{}, ErrInvalidParameter
	}
	if len(d.pVector) != d.mx.MaxDV()+2 {
		return Result{}, ErrInvalidParameter
	}
	for _, p := range d.pVector {
		if p < 0 || p > 1 {
			return Result{}, ErrInvalidParameter
		}
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
		d.prior[j] = d.word[j]
	}

	// max_iter == 0: return the initial hard word untouched, success defined
	// by its syndrome, zero iterations — never invoke the energy/flip loop.
	if d.maxIter == 0 {
		syndromeOf(d.mx, d.word, d.syndrome)
		return Result{
			Estimate:   append([]byte(nil), d.word...),
			Success:    allZero(d.syndrome),
			Iterations: 0,
			Syndrome:   append([]byte(nil), d.syndrome...),
		}, nil
	}

	iterations := 0
	for iter := 0; iter < d.maxIter; iter++ {
		iterations = iter + 1
		syndromeOf(d.mx, d.word, d.syndrome)
		if allZero(d.syndrome) {
			break
		}

		d.computeEnergy()

		flips := make([]bool, n)
		for j := 0; j < n; j++ {
			level := int(d.energy[j])
			if level < 0 {
				level = 0
			}
			if level >= len(d.pVector) {
				level = len(d.pVector) - 1
			}
			p := d.pVector[level]
			if d.rng.Float64() < p {
				flips[j] = true
			}
		}
		for j, f := range flips {
			if f {
				d.word[j] ^= 1
			}
		}
	}

	syndromeOf(d.mx, d.word, d.syndrome)
	success := allZero(d.syndrome)

	diag := make([]float64, n)
	copy(diag, d.energy)

	return Result{
		Estimate:    append([]byte(nil), d.word...),
		Success:     success,
		Iterations:  iterations,
		Syndrome:    append([]byte(nil), d.syndrome...),
		Diagnostics: diag,
	}, nil
}

// InfoBits extracts the information bits from estimate (C8 contract).
func (d *PPBF) InfoBits(estimate []byte) ([]byte, error) {
	return infoBits(d.infoIdx, estimate)
}

// computeEnergy fills d.energy[j] with unsatisfied + flipped for every
// variable-node j:
//   - unsatisfied: j's unsatisfied incident-check count, rescaled by
//     MaxDV()/d_v(j) and truncated to an integer level, so variables of
//     different degree land on a comparable 0..MaxDV() scale instead of a
//     0..d_v(j) one.
//   - flipped: 1 if j's current bit differs from its initial (channel) word,
//     0 otherwise — a binary indicator, not a cumulative flip count.
func (d *PPBF) computeEnergy() {
	maxDV := float64(d.mx.MaxDV())
	for j := 0; j < d.mx.N(); j++ {
		var unsatisfiedCount float64
		rows := d.mx.ColRows(j)
		for _, i := range rows {
			if d.syndrome[i] != 0 {
				unsatisfiedCount++
			}
		}
		var unsatisfied float64
		if len(rows) > 0 {
			unsatisfied = float64(int(unsatisfiedCount / float64(len(rows)) * maxDV))
		}

		flipped := 0.0
		if d.word[j] != d.prior[j] {
			flipped = 1
		}

		d.energy[j] = unsatisfied + flipped
	}
}

// BSCPVector derives a PPBF p_vector of length levels+1 from a BSC crossover
// probability p, one entry per attainable energy level, using the
// "LLR synthesis via bsc_llr" recipe: level 0 gets p itself, each subsequent
// level compounds p against the channel model's implied LLR magnitude so
// higher-energy variables are flipped more aggressively. To satisfy
// WithPVector's length contract for a given matrix mx, call this with
// levels = mx.MaxDV()+1.
func BSCPVector(p float64, levels int) []float64 {
	out := make([]float64, levels+1)
	llr := channel.BSC(p)(1)
	if llr < 0 {
		llr = -llr
	}
	for level := 0; level <= levels; level++ {
		scaled := p * (1 + float64(level)/llr)
		if scaled > 1 {
			scaled = 1
		}
		out[level] = scaled
	}
	return out
}
