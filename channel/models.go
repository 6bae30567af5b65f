// Package channel provides the channel models lvldpc decoders consume to
// turn a raw channel sample into a log-likelihood ratio.
//
// A Model is a pure function, sample -> LLR, with the sign convention
// positive LLR => bit 0, negative LLR => bit 1. When a decoder is given no
// Model at all, its input is treated as LLR values directly.
package channel

import "math"

// Model maps one channel output sample to its log-likelihood ratio.
type Model func(sample float64) float64

// BSC returns the LLR model for a binary symmetric channel with crossover
// probability p: LLR(y) = (-1)^y * log((1-p)/p).
//
// p must be in (0, 1); p==0 or p==1 would make the channel noiseless or
// always-wrong respectively, both degenerate for a log-likelihood model, so
// BSC does not special-case them — callers passing such p get +-Inf, which
// is a caller error, not a channel.Model concern.
func BSC(p float64) Model {
	ratio := math.Log((1 - p) / p)
	return func(y float64) float64 {
		if y == 0 {
			return ratio
		}
		return -ratio
	}
}

// AWGN returns the LLR model for an additive white Gaussian noise channel
// with standard deviation sigma: LLR(y) = 2y/sigma^2.
func AWGN(sigma float64) Model {
	scale := 2 / (sigma * sigma)
	return func(y float64) float64 {
		return scale * y
	}
}

// Table dispatches to a per-variable-node Model, falling back to Default
// when no override is installed for a given index: an indexed table of LLR
// functions used to support non-stationary channels.
type Table struct {
	Default   Model
	overrides map[int]Model
}

// NewTable constructs a Table with the given default model and no overrides.
func NewTable(def Model) *Table {
	return &Table{Default: def, overrides: make(map[int]Model)}
}

// Set installs model as the override for variable-node index j.
func (t *Table) Set(j int, model Model) {
	t.overrides[j] = model
}

// At returns the model that applies to variable-node index j: the override
// if one was installed via Set, otherwise Default.
func (t *Table) At(j int) Model {
	if m, ok := t.overrides[j]; ok {
		return m
	}
	return t.Default
}
