// File: encoder.go
// Role: the systematic QC encoder itself (C7), grounded on
// ldpc/encoder/ieee802_11_encoder.py's efficient-encoding algorithm
// (Efficient encoding of IEEE 802.11n LDPC codes).
package qcenc

// Encoder encodes information bit vectors into systematic codewords under a
// fixed quasi-cyclic parity-check Grid, in O(n*z) rather than a generic
// dense generator-matrix multiply's O(n^2).
type Encoder struct {
	grid *Grid
	k, n, m, z int
	rBlocks, cBlocks int

	// scratch, reused across Encode calls.
	shifted [][]byte // shifted[i] is block-row i's shifted-message XOR, length z
	parity  [][]byte // parity[i] is block-row i's parity block, length z
}

// NewEncoder precomputes k, n, m, z from g and allocates scratch buffers.
func NewEncoder(g *Grid) (*Encoder, error) {
	if g.RBlocks() < 3 {
		// The efficient-encoding recursion below indexes block-rows 0, 1,
		// and the last one as special cases; it needs at least 3 to be
		// well-defined without them colliding.
		return nil, ErrBadShape
	}

	e := &Encoder{
		grid: g,
		k:    g.K(), n: g.N(), m: g.M(), z: g.Z(),
		rBlocks: g.RBlocks(), cBlocks: g.CBlocks(),
		shifted: make([][]byte, g.RBlocks()),
		parity:  make([][]byte, g.RBlocks()),
	}
	for i := range e.shifted {
		e.shifted[i] = make([]byte, g.Z())
		e.parity[i] = make([]byte, g.Z())
	}
	return e, nil
}

// K returns the number of information bits this encoder expects.
func (e *Encoder) K() int { return e.k }

// N returns the codeword length this encoder produces.
func (e *Encoder) N() int { return e.n }

// Encode encodes u (length k) into c = [u || p] (length n) under the grid's
// QC-structured H. Fails with ErrIncorrectLength if len(u) != k.
//
// Algorithm (spec's three steps):
//  1. Shifted messages: partition u into k/z blocks; for each parity-check
//     block-row i, lambda_i is the XOR of every message block rotated by
//     its grid shift, over message columns with a non-zero block.
//  2. Parity blocks, via the IEEE 802.11n special-structure recursion:
//     P_0 = XOR of every lambda_i; P_1 = lambda_0 XOR rot(P_0, -1);
//     P_last = lambda_last XOR rot(P_0, -1); intermediate blocks
//     P_{i+1} = P_i XOR lambda_i [XOR P_0 if block (i, k/z) >= 0].
//  3. Output is u concatenated with the stacked parity blocks.
func (e *Encoder) Encode(u []byte) ([]byte, error) {
	if len(u) != e.k {
		return nil, ErrIncorrectLength
	}
	kBlocks := e.k / e.z

	e.computeShiftedMessages(u, kBlocks)

	for i := range e.parity {
		for b := range e.parity[i] {
			e.parity[i][b] = 0
		}
	}

	p0 := e.parity[0]
	for i := 0; i < e.rBlocks; i++ {
		xorInto(p0, e.shifted[i])
	}

	// Python's rot(P_0, -1) is np.roll(P_0, -1): out[row] = P_0[(row+1) mod z].
	// rotateRight(v, s, z) computes out[row] = v[(row+s) mod z], so s=1 here.
	rotP0Minus1 := rotateRight(p0, 1, e.z)

	// P_1 = lambda_0 XOR rot(P_0, -1).
	xorInto(e.parity[1], e.shifted[0])
	xorInto(e.parity[1], rotP0Minus1)

	// P_last = lambda_last XOR rot(P_0, -1).
	last := e.rBlocks - 1
	xorInto(e.parity[last], e.shifted[last])
	xorInto(e.parity[last], rotP0Minus1)

	for i := 1; i <= e.rBlocks-3; i++ {
		xorInto(e.parity[i+1], e.parity[i])
		xorInto(e.parity[i+1], e.shifted[i])
		if e.grid.Block(i, kBlocks) >= 0 {
			xorInto(e.parity[i+1], p0)
		}
	}

	out := make([]byte, 0, e.n)
	out = append(out, u...)
	for i := 0; i < e.rBlocks; i++ {
		out = append(out, e.parity[i]...)
	}
	return out, nil
}

// computeShiftedMessages fills e.shifted[i] with the XOR, over every
// message block-column j with a non-negative block, of u's j-th block
// rotated by the grid's shift value at (i, j).
func (e *Encoder) computeShiftedMessages(u []byte, kBlocks int) {
	for i := 0; i < e.rBlocks; i++ {
		row := e.shifted[i]
		for b := range row {
			row[b] = 0
		}
		for j := 0; j < kBlocks; j++ {
			shift := e.grid.Block(i, j)
			if shift < 0 {
				continue
			}
			block := u[j*e.z : (j+1)*e.z]
			rotated := rotateRight(block, shift, e.z)
			xorInto(row, rotated)
		}
	}
}

// rotateRight rotates v by shift positions to match the grid's block
// convention: block(shift)[row][(row+shift)%z] = 1, so multiplying by a
// shift-s block maps v to out[row] = v[(row+shift) mod z].
func rotateRight(v []byte, shift, z int) []byte {
	out := make([]byte, z)
	s := ((shift % z) + z) % z
	for row := 0; row < z; row++ {
		out[row] = v[(row+s)%z]
	}
	return out
}

// xorInto XORs src into dst in place.
func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
