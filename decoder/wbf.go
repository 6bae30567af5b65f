// File: wbf.go
// Role: the weighted bit-flipping family (C5) — WBF, MWBF, and MWBF-NL,
// sharing per-check reliability scaffolding and syndrome-driven iteration.
//
// Based on Ryan's book (Ch. 10.8 for WBF, Ch. 10.9 for MWBF); the no-loops
// variant additionally guards against revisiting a flip-set already tried.
package decoder

import (
	"math/rand"

	"github.com/katalvlaran/lvldpc/ldpcrand"
	"github.com/katalvlaran/lvldpc/tanner"
)

// WbfVariant selects which member of the weighted bit-flipping family to run.
type WbfVariant int

const (
	// WBF uses a single scalar reliability weight per check-node.
	WBF WbfVariant = iota
	// MWBF uses a leave-one-out reliability weight per incident edge, minus
	// a confidence term on the variable's own channel LLR.
	MWBF
	// MWBFNoLoops is MWBF with a loop-avoidance log over visited flip sets.
	MWBFNoLoops
)

// WbfDecoder decodes codewords using the weighted bit-flipping family (C5).
type WbfDecoder struct {
	mx       *tanner.Matrix
	maxIter  int
	variant  WbfVariant
	infoIdx  []bool
	confCoef float64
	rng      *rand.Rand

	// scratch
	graph     *tanner.Graph
	word      []byte
	syndrome  []byte
	absLLR    []float64
	checkW    []float64   // WBF: w_i per check
	edgeW     [][]float64 // MWBF/MWBF-NL: w_{i,j} per edge, indexed [check][position]
	reliab    []float64   // E[j] per variable
	loExclude []map[int]struct{}
	loLast    map[int]struct{}
}

// WBFOption configures a WBF at construction time.
type WBFOption func(*WbfDecoder)

// WithWbfInfoIdx installs the information-bit mask used by InfoBits.
func WithWbfInfoIdx(mask []bool) WBFOption {
	return func(d *WbfDecoder) { d.infoIdx = mask }
}

// WithConfidenceCoefficient overrides MWBF/MWBF-NL's alpha term. If omitted,
// alpha defaults to 1/mean(d_v).
func WithConfidenceCoefficient(alpha float64) WBFOption {
	return func(d *WbfDecoder) { d.confCoef = alpha }
}

// WithWbfRand injects a seeded RNG for WBF/MWBF tie-breaking. If omitted, a
// deterministic default stream is used (ldpcrand.New(0)).
func WithWbfRand(r *rand.Rand) WBFOption {
	return func(d *WbfDecoder) { d.rng = r }
}

// NewWBF constructs a WBF decoder over mx for the given variant, bounded at
// maxIter iterations per Decode call.
func NewWBF(mx *tanner.Matrix, maxIter int, variant WbfVariant, opts ...WBFOption) *WbfDecoder {
	d := &WbfDecoder{
		mx:       mx,
		maxIter:  maxIter,
		variant:  variant,
		graph:    tanner.NewGraph(mx),
		word:     make([]byte, mx.N()),
		syndrome: make([]byte, mx.M()),
		absLLR:   make([]float64, mx.N()),
		reliab:   make([]float64, mx.N()),
	}
	if variant == WBF {
		d.checkW = make([]float64, mx.M())
	} else {
		d.edgeW = make([][]float64, mx.M())
		for i := 0; i < mx.M(); i++ {
			d.edgeW[i] = make([]float64, mx.DC(i))
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.rng == nil {
		d.rng = ldpcrand.New(0)
	}
	if variant != WBF && d.confCoef == 0 {
		total := 0.0
		for j := 0; j < mx.N(); j++ {
			total += float64(mx.DV(j))
		}
		d.confCoef = 1 / (total / float64(mx.N()))
	}
	return d
}

// Decode runs the configured WBF variant with no prior reliability (C8 contract).
func (d *WbfDecoder) Decode(channelLLR []float64) (Result, error) {
	return d.DecodeWithPrior(channelLLR, nil)
}

// InfoBits extracts the information bits from estimate (C8 contract).
func (d *WbfDecoder) InfoBits(estimate []byte) ([]byte, error) {
	return infoBits(d.infoIdx, estimate)
}

// DecodeWithPrior runs the configured WBF variant, subtracting
// priorReliability[j] from every variable's flip metric.
// priorReliability may be nil, meaning all-zero priors.
func (d *WbfDecoder) DecodeWithPrior(channelLLR []float64, priorReliability []float64) (Result, error) {
	n := d.mx.N()
	if len(channelLLR) != n {
		return Result{}, ErrIncorrectLength
	}
	if priorReliability != nil && len(priorReliability) != n {
		return Result{}, ErrIncorrectLength
	}

	for j, v := range channelLLR {
		if v < 0 {
			d.word[j] = 1
		} else {
			d.word[j] = 0
		}
		if v < 0 {
			d.absLLR[j] = -v
		} else {
			d.absLLR[j] = v
		}
	}
	d.computeCheckReliability()

	if d.variant == MWBFNoLoops {
		d.loExclude = d.loExclude[:0]
		d.loLast = map[int]struct{}{}
	}

	iterations := 0
	for iter := 0; iter < d.maxIter; iter++ {
		iterations = iter + 1
		syndromeOf(d.mx, d.word, d.syndrome)
		if allZero(d.syndrome) {
			break
		}

		d.computeReliabilityProfile(priorReliability)

		var flip int
		var err error
		if d.variant == MWBFNoLoops {
			flip, err = d.chooseNextFlipNoLoops()
			if err != nil {
				return Result{}, err
			}
		} else {
			flip = d.argmaxWithRandomTieBreak()
		}
		d.word[flip] ^= 1
	}

	syndromeOf(d.mx, d.word, d.syndrome)
	success := allZero(d.syndrome)

	return Result{
		Estimate:    append([]byte(nil), d.word...),
		Success:     success,
		Iterations:  iterations,
		Syndrome:    append([]byte(nil), d.syndrome...),
		Diagnostics: append([]float64(nil), d.reliab...),
	}, nil
}

// computeCheckReliability computes w_i (WBF) or w_{i,j} (MWBF/MWBF-NL) from
// absLLR, once per decode call.
func (d *WbfDecoder) computeCheckReliability() {
	switch d.variant {
	case WBF:
		for i := 0; i < d.mx.M(); i++ {
			min := -1.0
			for _, j := range d.mx.RowCols(i) {
				if min < 0 || d.absLLR[j] < min {
					min = d.absLLR[j]
				}
			}
			d.checkW[i] = min
		}
	default: // MWBF, MWBFNoLoops
		for i := 0; i < d.mx.M(); i++ {
			d.graph.MinAbsExceptCheck(i, func(e int) float64 {
				// e is an edge id; map back to the variable via the matrix's
				// RowEdges/RowCols listing for check i.
				return d.absLLRForEdge(i, e)
			}, d.edgeW[i])
		}
	}
}

// absLLRForEdge returns absLLR[j] for the variable j at position matching
// edge id e within check i's neighbor list.
func (d *WbfDecoder) absLLRForEdge(i, e int) float64 {
	cols := d.mx.RowCols(i)
	edges := d.mx.RowEdges(i)
	for p, id := range edges {
		if id == e {
			return d.absLLR[cols[p]]
		}
	}
	return 0
}

// computeReliabilityProfile fills d.reliab with E[j] for every variable,
// then subtracts priorReliability if provided.
func (d *WbfDecoder) computeReliabilityProfile(priorReliability []float64) {
	sign := func(i int) float64 {
		if d.syndrome[i] == 0 {
			return -1
		}
		return 1
	}
	for j := 0; j < d.mx.N(); j++ {
		var e float64
		rows := d.mx.ColRows(j)
		switch d.variant {
		case WBF:
			for _, i := range rows {
				e += sign(i) * d.checkW[i]
			}
		default:
			for p, i := range rows {
				pos := positionOf(d.mx.RowCols(i), j)
				_ = p
				e += sign(i) * d.edgeW[i][pos]
			}
			e -= d.confCoef * d.absLLR[j]
		}
		if priorReliability != nil {
			e -= priorReliability[j]
		}
		d.reliab[j] = e
	}
}

// positionOf returns the index of j within the ascending slice cols.
func positionOf(cols []int, j int) int {
	lo, hi := 0, len(cols)
	for lo < hi {
		mid := (lo + hi) / 2
		if cols[mid] < j {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// argmaxWithRandomTieBreak returns the index of the maximum of d.reliab,
// breaking ties by uniform random choice among the tied indices.
func (d *WbfDecoder) argmaxWithRandomTieBreak() int {
	best := d.reliab[0]
	tied := []int{0}
	for j := 1; j < len(d.reliab); j++ {
		switch {
		case d.reliab[j] > best:
			best = d.reliab[j]
			tied = tied[:0]
			tied = append(tied, j)
		case d.reliab[j] == best:
			tied = append(tied, j)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	return tied[d.rng.Intn(len(tied))]
}

// chooseNextFlipNoLoops implements MWBF-NL's loop-avoidance search,
// toggle candidate bits in descending reliability order
// until one produces a flip-set not already logged, excluding tried bits
// as it goes. Returns ErrLoopStuck if every bit is excluded in this iteration.
func (d *WbfDecoder) chooseNextFlipNoLoops() (int, error) {
	n := d.mx.N()
	allowed := make([]bool, n)
	for j := range allowed {
		allowed[j] = true
	}

	for tries := 0; tries < n; tries++ {
		flip := -1
		best := 0.0
		first := true
		var tiedCount int
		for j := 0; j < n; j++ {
			if !allowed[j] {
				continue
			}
			if first || d.reliab[j] > best {
				best = d.reliab[j]
				flip = j
				first = false
				tiedCount = 1
			} else if d.reliab[j] == best {
				tiedCount++
			}
		}
		if flip < 0 {
			break
		}
		if tiedCount > 1 {
			// gather tied indices among allowed, break tie uniformly at random
			tiedIdx := make([]int, 0, tiedCount)
			for j := 0; j < n; j++ {
				if allowed[j] && d.reliab[j] == best {
					tiedIdx = append(tiedIdx, j)
				}
			}
			flip = tiedIdx[d.rng.Intn(len(tiedIdx))]
		}

		candidate := cloneSet(d.loLast)
		if _, in := candidate[flip]; in {
			delete(candidate, flip)
		} else {
			candidate[flip] = struct{}{}
		}

		if !d.seenBefore(candidate) {
			d.loExclude = append(d.loExclude, candidate)
			d.loLast = candidate
			return flip, nil
		}
		allowed[flip] = false
	}
	return 0, ErrLoopStuck
}

// seenBefore reports whether candidate equals any set already logged in d.loExclude.
func (d *WbfDecoder) seenBefore(candidate map[int]struct{}) bool {
	for _, s := range d.loExclude {
		if setsEqual(s, candidate) {
			return true
		}
	}
	return false
}

func setsEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func cloneSet(s map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}
