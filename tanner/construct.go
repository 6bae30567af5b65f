// File: construct.go
// Role: NewMatrix / NewMatrixFromSparse — the two ways to build an immutable
// sparse parity-check representation.
//
// Both constructors derive rowCols and colRows from the same source data in
// one pass, then link them with a row-to-column edge-id permutation computed
// once, up front, so every later lookup is O(1) or O(log d) and no decoder
// ever re-derives the adjacency.
package tanner

import "sort"

// NewMatrix builds a Matrix from a dense, row-major m×n binary matrix.
// h[i][j] must be 0 or 1 for every entry; any other value returns
// ErrNonBinaryMatrix. An empty matrix (m==0 or n==0) returns ErrBadShape.
//
// Complexity: O(m*n) time, O(nnz) space.
func NewMatrix(h [][]int) (*Matrix, error) {
	m := len(h)
	if m == 0 {
		return nil, ErrBadShape
	}
	n := len(h[0])
	if n == 0 {
		return nil, ErrBadShape
	}

	rows := make([]int, 0, m*2)
	cols := make([]int, 0, m*2)
	for i := 0; i < m; i++ {
		if len(h[i]) != n {
			return nil, ErrBadShape
		}
		for j := 0; j < n; j++ {
			switch h[i][j] {
			case 0:
				// no edge
			case 1:
				rows = append(rows, i)
				cols = append(cols, j)
			default:
				return nil, ErrNonBinaryMatrix
			}
		}
	}
	return buildFromCOO(m, n, rows, cols)
}

// NewMatrixFromSparse builds a Matrix from coordinate (row, col) triples —
// the shape produced by codeformat.AList.ToSparse / codeformat.QCFile.ToSparse.
// rows and cols must have equal length (ErrDimensionMismatch otherwise) and
// every entry must satisfy 0<=rows[k]<m, 0<=cols[k]<n (ErrBadShape otherwise).
// Duplicate (row, col) pairs are collapsed to a single edge.
//
// Complexity: O(nnz log nnz) time (dominated by the row-major sort), O(nnz) space.
func NewMatrixFromSparse(m, n int, rows, cols []int) (*Matrix, error) {
	if m <= 0 || n <= 0 {
		return nil, ErrBadShape
	}
	if len(rows) != len(cols) {
		return nil, ErrDimensionMismatch
	}
	for k := range rows {
		if rows[k] < 0 || rows[k] >= m || cols[k] < 0 || cols[k] >= n {
			return nil, ErrBadShape
		}
	}
	return buildFromCOO(m, n, rows, cols)
}

// buildFromCOO is the shared construction path for both public constructors.
// It sorts the (row, col) pairs into row-major order, deduplicates, assigns
// row-major edge ids, and derives colRows/colEdge from rowCols/rowEdge.
func buildFromCOO(m, n int, rows, cols []int) (*Matrix, error) {
	type pair struct{ r, c int }
	pairs := make([]pair, len(rows))
	for k := range rows {
		pairs[k] = pair{rows[k], cols[k]}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].r != pairs[b].r {
			return pairs[a].r < pairs[b].r
		}
		return pairs[a].c < pairs[b].c
	})

	rowCols := make([][]int, m)
	rowEdge := make([][]int, m)
	edgeID := 0
	for k := 0; k < len(pairs); k++ {
		if k > 0 && pairs[k] == pairs[k-1] {
			continue // duplicate edge, collapse
		}
		p := pairs[k]
		rowCols[p.r] = append(rowCols[p.r], p.c)
		rowEdge[p.r] = append(rowEdge[p.r], edgeID)
		edgeID++
	}

	colRows := make([][]int, n)
	colEdge := make([][]int, n)
	for i := 0; i < m; i++ {
		for p, j := range rowCols[i] {
			colRows[j] = append(colRows[j], i)
			colEdge[j] = append(colEdge[j], rowEdge[i][p])
		}
	}

	maxDC, maxDV := 0, 0
	for i := 0; i < m; i++ {
		if d := len(rowCols[i]); d > maxDC {
			maxDC = d
		}
	}
	for j := 0; j < n; j++ {
		if d := len(colRows[j]); d > maxDV {
			maxDV = d
		}
	}

	return &Matrix{
		n: n, m: m,
		rowCols: rowCols, colRows: colRows,
		rowEdge: rowEdge, colEdge: colEdge,
		maxDC: maxDC, maxDV: maxDV,
		edgeCount: edgeID,
	}, nil
}
