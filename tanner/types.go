// Package tanner defines the sparse parity-check representation and the
// Tanner-graph substrate that every lvldpc decoder iterates over.
//
// A parity-check matrix H (m rows / check-nodes, n columns / variable-nodes)
// is stored as two CSR-like adjacency views, rowCols and colRows, built in a
// single pass and never mutated again. Edges are addressed by a dense integer
// id assigned in row-major order; both views carry, alongside each neighbor
// index, the edge id connecting to it, so message-passing decoders can read
// and write edge-indexed buffers without any further lookup.
//
// Errors:
//
//	ErrNonBinaryMatrix    - an entry of H is not 0 or 1.
//	ErrBadShape           - a dense matrix has zero rows/columns, or a sparse
//	                        triple list references an out-of-range index.
//	ErrDimensionMismatch  - rows/cols slices passed to a sparse constructor
//	                        have different lengths.
package tanner

import "errors"

// Sentinel errors for tanner package operations.
var (
	// ErrNonBinaryMatrix indicates an entry of H outside {0,1}.
	ErrNonBinaryMatrix = errors.New("tanner: non-binary entry in parity-check matrix")

	// ErrBadShape indicates an invalid matrix shape (m<=0 or n<=0), or an
	// out-of-range row/column index in a sparse constructor.
	ErrBadShape = errors.New("tanner: invalid matrix shape or index")

	// ErrDimensionMismatch indicates mismatched slice lengths in NewMatrixFromSparse.
	ErrDimensionMismatch = errors.New("tanner: dimension mismatch")
)

// Edge describes one non-zero entry of H in canonical (ascending id) order.
type Edge struct {
	Row, Col, ID int
}

// Matrix is the immutable sparse parity-check representation (C1).
//
// Built once via NewMatrix or NewMatrixFromSparse and shared by pointer
// across every decoder and the Tanner graph substrate. Matrix never mutates
// after construction, so it is safe to share across concurrently-running
// decoder instances.
type Matrix struct {
	n, m int

	rowCols [][]int // rowCols[i]: ascending column indices with H[i,j]=1
	colRows [][]int // colRows[j]: ascending row indices with H[i,j]=1

	rowEdge [][]int // rowEdge[i][p] = edge id of (i, rowCols[i][p])
	colEdge [][]int // colEdge[j][p] = edge id of (colRows[j][p], j)

	maxDC, maxDV int
	edgeCount    int
}

// N returns the number of variable-nodes (columns of H).
func (mx *Matrix) N() int { return mx.n }

// M returns the number of check-nodes (rows of H).
func (mx *Matrix) M() int { return mx.m }

// K returns the number of information bits, N()-M(), assuming a
// full-row-rank systematic code. Decoders with an explicit info_idx mask
// should not rely on this for info-bit extraction; use InfoBits instead.
func (mx *Matrix) K() int { return mx.n - mx.m }

// MaxDC returns the largest check-node degree, max_i d_c(i).
func (mx *Matrix) MaxDC() int { return mx.maxDC }

// MaxDV returns the largest variable-node degree, max_j d_v(j).
func (mx *Matrix) MaxDV() int { return mx.maxDV }

// EdgeCount returns the total number of non-zero entries of H, i.e. the
// length every edge-indexed message buffer (q, r) must have.
func (mx *Matrix) EdgeCount() int { return mx.edgeCount }

// RowCols returns check-node i's neighboring column indices, ascending.
// The returned slice is shared; callers must not mutate it.
func (mx *Matrix) RowCols(i int) []int { return mx.rowCols[i] }

// ColRows returns variable-node j's neighboring row indices, ascending.
// The returned slice is shared; callers must not mutate it.
func (mx *Matrix) ColRows(j int) []int { return mx.colRows[j] }

// RowEdges returns the edge ids for check-node i's incident edges, in the
// same order as RowCols(i) (same index p ⇒ same neighbor).
func (mx *Matrix) RowEdges(i int) []int { return mx.rowEdge[i] }

// ColEdges returns the edge ids for variable-node j's incident edges, in the
// same order as ColRows(j).
func (mx *Matrix) ColEdges(j int) []int { return mx.colEdge[j] }

// DC returns check-node i's degree, d_c(i) = |RowCols(i)|.
func (mx *Matrix) DC(i int) int { return len(mx.rowCols[i]) }

// DV returns variable-node j's degree, d_v(j) = |ColRows(j)|.
func (mx *Matrix) DV(j int) int { return len(mx.colRows[j]) }

// EdgeID resolves the edge id for (i, j) with H[i,j]=1, or ok=false if no
// such edge exists. Complexity: O(log d_c(i)) via binary search over the
// row's sorted neighbor list.
func (mx *Matrix) EdgeID(i, j int) (id int, ok bool) {
	cols := mx.rowCols[i]
	lo, hi := 0, len(cols)
	for lo < hi {
		mid := (lo + hi) / 2
		if cols[mid] < j {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(cols) && cols[lo] == j {
		return mx.rowEdge[i][lo], true
	}
	return 0, false
}

// Edges returns every non-zero entry of H as (row, col, id) triples,
// ascending by id (i.e. row-major order, the order edges were assigned in).
func (mx *Matrix) Edges() []Edge {
	out := make([]Edge, 0, mx.edgeCount)
	for i, cols := range mx.rowCols {
		for p, j := range cols {
			out = append(out, Edge{Row: i, Col: j, ID: mx.rowEdge[i][p]})
		}
	}
	return out
}
