// Package codeformat reads and writes the two on-disk parity-check matrix
// formats lvldpc's core consumes as an already-parsed sparse matrix:
// MacKay's AList format and the quasi-cyclic block form used by the IEEE
// 802.11n standard's published code specs.
//
// Errors:
//
//	ErrInconsistentMatrixFile - a parsed file's row/column views disagree,
//	                            or a QC block value is out of [-1, z-1].
package codeformat

import "errors"

// ErrInconsistentMatrixFile indicates a malformed AList or QC file: mismatched
// row/column non-zero lists, or a block value outside [-1, z-1].
var ErrInconsistentMatrixFile = errors.New("codeformat: inconsistent matrix file")

// AList is MacKay's sparse parity-check matrix file format: the matrix is
// described twice, once by column and once by row, each entry 1-based on
// disk and 0-based once parsed into this struct.
type AList struct {
	N, M int // columns (variable-nodes), rows (check-nodes)

	MaxColWeight, MaxRowWeight int
	ColWeights, RowWeights     []int

	// ColsOfRow[i] lists the 0-based column indices non-zero in row i.
	ColsOfRow [][]int
	// RowsOfCol[j] lists the 0-based row indices non-zero in column j.
	RowsOfCol [][]int
}

// QCFile is the quasi-cyclic block form: an r-by-c grid of z-by-z blocks,
// each either the all-zero block (-1) or the identity cyclically shifted by
// a value in [0, z-1].
type QCFile struct {
	C, R, Z int
	Blocks  [][]int // Blocks[row][col] in {-1, 0, ..., Z-1}, len(Blocks)==R, len(Blocks[i])==C
}
