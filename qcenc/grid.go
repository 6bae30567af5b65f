// Package qcenc implements the systematic quasi-cyclic encoder (C7): the
// O(n*z) encoder that exploits H's block-cyclic structure instead of a
// generic O(n^2) generator-matrix multiply.
//
// Errors:
//
//	ErrBadShape         - a Grid's block count or z is non-positive, or a
//	                      block value is out of [-1, z-1].
//	ErrNotIntegral      - k/z or m/z is not an integer (spec's QC invariant).
//	ErrIncorrectLength  - Encode's input length does not match k.
package qcenc

import "errors"

// Sentinel errors for qcenc package operations.
var (
	// ErrBadShape indicates an invalid Grid shape or an out-of-range block value.
	ErrBadShape = errors.New("qcenc: invalid grid shape or block value")

	// ErrNotIntegral indicates k/z or m/z is not an integer.
	ErrNotIntegral = errors.New("qcenc: block count does not divide evenly by z")

	// ErrIncorrectLength indicates Encode's input length does not match k.
	ErrIncorrectLength = errors.New("qcenc: incorrect input length")
)

// Grid is the quasi-cyclic encoder's parity-check representation: an
// rBlocks-by-cBlocks grid of z-by-z blocks, each either the all-zero block
// (-1) or the identity cyclically right-shifted by a value in [0, z-1].
//
// m = rBlocks*z (check-nodes), n = cBlocks*z (variable-nodes), k = n - m
// (information bits). The first k columns of the grid are the message part;
// the remaining m columns are the parity part, per spec's systematic layout.
type Grid struct {
	rBlocks, cBlocks, z int
	blocks              [][]int // blocks[rb][cb] in {-1, 0, ..., z-1}
}

// NewGrid validates and constructs a Grid directly from a dense block table.
func NewGrid(rBlocks, cBlocks, z int, blocks [][]int) (*Grid, error) {
	if rBlocks <= 0 || cBlocks <= 0 || z <= 0 {
		return nil, ErrBadShape
	}
	if len(blocks) != rBlocks {
		return nil, ErrBadShape
	}
	for _, row := range blocks {
		if len(row) != cBlocks {
			return nil, ErrBadShape
		}
		for _, v := range row {
			if v < -1 || v >= z {
				return nil, ErrBadShape
			}
		}
	}
	return &Grid{rBlocks: rBlocks, cBlocks: cBlocks, z: z, blocks: blocks}, nil
}

// RBlocks returns the number of block-rows (m/z).
func (g *Grid) RBlocks() int { return g.rBlocks }

// CBlocks returns the number of block-columns (n/z).
func (g *Grid) CBlocks() int { return g.cBlocks }

// Z returns the block size.
func (g *Grid) Z() int { return g.z }

// M returns the number of check-nodes, rBlocks*z.
func (g *Grid) M() int { return g.rBlocks * g.z }

// N returns the number of variable-nodes, cBlocks*z.
func (g *Grid) N() int { return g.cBlocks * g.z }

// K returns the number of information bits, N()-M().
func (g *Grid) K() int { return g.N() - g.M() }

// Block returns the shift value at block-row rb, block-column cb.
func (g *Grid) Block(rb, cb int) int { return g.blocks[rb][cb] }

// ToDense renders the grid as a dense 0/1 parity-check matrix.
func (g *Grid) ToDense() [][]int {
	out := make([][]int, g.M())
	for i := range out {
		out[i] = make([]int, g.N())
	}
	for rb, row := range g.blocks {
		for cb, shift := range row {
			if shift < 0 {
				continue
			}
			for br := 0; br < g.z; br++ {
				out[rb*g.z+br][cb*g.z+(br+shift)%g.z] = 1
			}
		}
	}
	return out
}
