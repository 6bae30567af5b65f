// File: logspa.go
// Role: the soft iterative decoder (C3) — Log-SPA and Min-Sum, selected by
// Mode, sharing scratch buffers and the syndrome early-exit.
package decoder

import (
	"github.com/katalvlaran/lvldpc/channel"
	"github.com/katalvlaran/lvldpc/internal/numeric"
	"github.com/katalvlaran/lvldpc/tanner"
)

// Mode selects the check-to-variable kernel used by LogSPA.
type Mode int

const (
	// SPA runs the full sum-product (belief propagation) kernel using the
	// clamped phi function.
	SPA Mode = iota
	// MS runs the min-sum approximation: the check-to-variable message
	// magnitude is the minimum, not the phi-sum, of its inputs.
	MS
)

// LogSPA decodes codewords using the sum-product algorithm or its min-sum
// approximation (C3).
type LogSPA struct {
	graph   *tanner.Graph
	maxIter int
	mode    Mode
	infoIdx []bool
	models  *channel.Table

	// scratch, allocated once and reused across Decode calls.
	channelLLR []float64
	q, r       []float64
	llr        []float64
	estimate   []byte
	syndrome   []byte

	loMags  []float64 // reused leave-one-out magnitude buffer, sized maxDC
	loSigns []float64 // reused per-edge sign buffer, sized maxDC
}

// LogSPAOption configures a LogSPA at construction time.
type LogSPAOption func(*LogSPA)

// WithInfoIdx installs the information-bit mask used by InfoBits.
func WithInfoIdx(mask []bool) LogSPAOption {
	return func(d *LogSPA) { d.infoIdx = mask }
}

// WithChannelModels installs a per-variable-node channel model table. If
// omitted, Decode treats its input as LLR values directly.
func WithChannelModels(t *channel.Table) LogSPAOption {
	return func(d *LogSPA) { d.models = t }
}

// NewLogSPA constructs a LogSPA decoder over mx, bounded at maxIter
// iterations per Decode call, using the given kernel mode.
func NewLogSPA(mx *tanner.Matrix, maxIter int, mode Mode, opts ...LogSPAOption) *LogSPA {
	d := &LogSPA{
		graph:      tanner.NewGraph(mx),
		maxIter:    maxIter,
		mode:       mode,
		channelLLR: make([]float64, mx.N()),
		q:          make([]float64, mx.EdgeCount()),
		r:          make([]float64, mx.EdgeCount()),
		llr:        make([]float64, mx.N()),
		estimate:   make([]byte, mx.N()),
		syndrome:   make([]byte, mx.M()),
		loMags:     make([]float64, mx.MaxDC()),
		loSigns:    make([]float64, mx.MaxDC()),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// UpdateChannelModel rectifies the channel model for specific variable-node
// indices, supporting dynamic dispatch of per-node channel models. If no
// table was installed, indices without an override keep reading their
// input as LLR values directly.
func (d *LogSPA) UpdateChannelModel(models map[int]channel.Model) {
	if d.models == nil {
		d.models = channel.NewTable(func(y float64) float64 { return y })
	}
	for j, m := range models {
		d.models.Set(j, m)
	}
}

// Decode runs Log-SPA/Min-Sum to completion (C8 contract).
func (d *LogSPA) Decode(input []float64) (Result, error) {
	return d.DecodeMaxIter(input, d.maxIter)
}

// InfoBits extracts the information bits from estimate (C8 contract).
func (d *LogSPA) InfoBits(estimate []byte) ([]byte, error) {
	return infoBits(d.infoIdx, estimate)
}

// DecodeMaxIter is Decode with a per-call iteration cap override.
func (d *LogSPA) DecodeMaxIter(input []float64, maxIter int) (Result, error) {
	mx := d.graph.Matrix
	n := mx.N()
	if len(input) != n {
		return Result{}, ErrIncorrectLength
	}

	// Initialization: channel_llr[j], r=0, q=channel_llr for every edge.
	for j := 0; j < n; j++ {
		if d.models != nil {
			d.channelLLR[j] = d.models.At(j)(input[j])
		} else {
			d.channelLLR[j] = input[j]
		}
	}
	for e := range d.r {
		d.r[e] = 0
	}
	for j := 0; j < n; j++ {
		for _, e := range mx.ColEdges(j) {
			d.q[e] = d.channelLLR[j]
		}
	}

	iterations := 0
	for iter := 0; iter < maxIter; iter++ {
		iterations = iter + 1

		// Check-to-variable step (horizontal): every edge reads the same
		// previous q, none of this iteration's writes are visible yet.
		for i := 0; i < mx.M(); i++ {
			d.updateCheckToVar(i)
		}

		// Variable update + variable-to-check step (vertical): every edge
		// reads the r just written above, uniformly for the whole iteration.
		for j := 0; j < n; j++ {
			sum := d.graph.VarAggregate(j, func(e int) float64 { return d.r[e] }, func(acc, v float64) float64 { return acc + v }, 0)
			d.llr[j] = d.channelLLR[j] + sum
			if d.llr[j] < 0 {
				d.estimate[j] = 1
			} else {
				d.estimate[j] = 0
			}
			for _, e := range mx.ColEdges(j) {
				d.q[e] = d.llr[j] - d.r[e]
			}
		}

		syndromeOf(mx, d.estimate, d.syndrome)
		if allZero(d.syndrome) {
			break
		}
	}

	success := allZero(d.syndrome)

	return Result{
		Estimate:    append([]byte(nil), d.estimate...),
		LLR:         append([]float64(nil), d.llr...),
		Success:     success,
		Iterations:  iterations,
		Syndrome:    append([]byte(nil), d.syndrome...),
		Diagnostics: d.vnodeValidity(),
	}, nil
}

// updateCheckToVar fills d.r for every edge incident to check-node i, per
// the SPA/MS kernels: a leave-one-out sign product times either the
// phi-sum (SPA) or the plain minimum (MS) of the leave-one-out magnitudes.
func (d *LogSPA) updateCheckToVar(i int) {
	edges := d.graph.Matrix.RowEdges(i)
	degree := len(edges)

	signs := d.loSigns[:degree]
	mags := d.loMags[:degree]
	for p, e := range edges {
		v := d.q[e]
		signs[p] = numeric.Sign(v)
		if v < 0 {
			v = -v
		}
		mags[p] = v
	}

	// Full sign product and, for SPA, full phi-sum — computed once, then
	// divided out per edge (the two-pass leave-one-out trick). signs already
	// holds ±1 per edge, so its own sign product equals the product of the
	// underlying q values' signs.
	signProd, _ := numeric.SignProduct(signs)
	phiSum := 0.0
	minVal, secondMin := -1.0, -1.0
	minIdx := -1
	for p := 0; p < degree; p++ {
		if d.mode == SPA {
			phiSum += numeric.Phi(mags[p])
		} else {
			v := mags[p]
			if minIdx < 0 || v < minVal {
				secondMin = minVal
				minVal = v
				minIdx = p
			} else if secondMin < 0 || v < secondMin {
				secondMin = v
			}
		}
	}
	// degree 1: there's no second edge to leave one out to, so the leave-
	// one-out minimum at the sole position falls back to its own magnitude
	// rather than the unset -1.0 sentinel.
	if d.mode == MS && secondMin < 0 {
		secondMin = minVal
	}

	for p, e := range edges {
		leaveSign := signProd * signs[p] // dividing out a ±1 factor is multiplying by it
		var mag float64
		if d.mode == SPA {
			mag = numeric.Phi(phiSum - numeric.Phi(mags[p]))
		} else if p == minIdx {
			mag = secondMin
		} else {
			mag = minVal
		}
		d.r[e] = leaveSign * mag
	}
}

// vnodeValidity computes, per variable-node, the count of satisfied minus
// unsatisfied neighboring checks (higher is better).
func (d *LogSPA) vnodeValidity() []float64 {
	mx := d.graph.Matrix
	out := make([]float64, mx.N())
	for j := 0; j < mx.N(); j++ {
		var v float64
		for _, i := range mx.ColRows(j) {
			if d.syndrome[i] == 0 {
				v++
			} else {
				v--
			}
		}
		out[j] = v
	}
	return out
}
