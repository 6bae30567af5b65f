// File: compact.go
// Role: compact binary codec for the QC block form only — the AList form
// stays text-only, matching the reference format's own definition. Packs
// each block value into the minimum bit width instead of paying a
// whitespace-delimited decimal's overhead, one bitio.Writer/Reader pass.
package codeformat

import (
	"io"
	"math/bits"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// WriteCompact writes q in a packed binary form: a fixed 24-bit header
// (C, R, Z as 8-bit fields) followed by R*C fixed-width fields, each
// block value stored as v+1 (so -1 becomes 0) in ceil(log2(Z+1)) bits.
func WriteCompact(w io.Writer, q *QCFile) error {
	if q.C > 255 || q.R > 255 || q.Z > 255 {
		return errors.New("codeformat: compact form requires C, R, Z <= 255")
	}
	bw := bitio.NewWriter(w)

	if err := bw.WriteByte(byte(q.C)); err != nil {
		return errors.Wrap(err, "codeformat: write compact header")
	}
	if err := bw.WriteByte(byte(q.R)); err != nil {
		return errors.Wrap(err, "codeformat: write compact header")
	}
	if err := bw.WriteByte(byte(q.Z)); err != nil {
		return errors.Wrap(err, "codeformat: write compact header")
	}

	width := compactWidth(q.Z)
	for _, row := range q.Blocks {
		for _, v := range row {
			if err := bw.WriteBits(uint64(v+1), width); err != nil {
				return errors.Wrap(err, "codeformat: write compact block")
			}
		}
	}
	return errors.Wrap(bw.Close(), "codeformat: close compact writer")
}

// ReadCompact reads a QCFile written by WriteCompact.
func ReadCompact(r io.Reader) (*QCFile, error) {
	br := bitio.NewReader(r)

	c, err := br.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "codeformat: read compact header")
	}
	rr, err := br.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "codeformat: read compact header")
	}
	z, err := br.ReadByte()
	if err != nil {
		return nil, errors.Wrap(err, "codeformat: read compact header")
	}

	width := compactWidth(int(z))
	blocks := make([][]int, rr)
	for i := range blocks {
		blocks[i] = make([]int, c)
		for j := range blocks[i] {
			v, err := br.ReadBits(width)
			if err != nil {
				return nil, errors.Wrap(err, "codeformat: read compact block")
			}
			blocks[i][j] = int(v) - 1
		}
	}

	q := &QCFile{C: int(c), R: int(rr), Z: int(z), Blocks: blocks}
	if !q.verifyElements() {
		return nil, ErrInconsistentMatrixFile
	}
	return q, nil
}

// compactWidth returns ceil(log2(z+1)) (at least 1), the number of bits
// needed to store v+1 for v in [-1, z-1], i.e. z+1 distinct values.
func compactWidth(z int) byte {
	n := z
	if n < 1 {
		n = 1
	}
	return byte(bits.Len(uint(n)))
}
