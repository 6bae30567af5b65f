// File: graph.go
// Role: Tanner graph substrate (C2) — neighborhood aggregation primitives
// shared by every message-passing decoder.
//
// Graph adds no storage of its own beyond a *Matrix: it is a thin set of
// iteration helpers, the bipartite-graph analogue of a plain adjacency-list
// graph's Neighbors/NeighborIDs APIs, generalized to edge-indexed message
// passing with a leave-one-out aggregate at every node.
package tanner

// Graph wraps an immutable *Matrix with edge-indexed aggregation helpers.
// Graph itself holds no mutable state; it is safe to share across decoders,
// same as the Matrix it wraps.
type Graph struct {
	Matrix *Matrix
}

// NewGraph wraps mx in a Graph. mx must not be nil.
func NewGraph(mx *Matrix) *Graph {
	return &Graph{Matrix: mx}
}

// VarAggregate folds edgeVal over every edge incident to variable-node j,
// starting from identity, using combine.
func (g *Graph) VarAggregate(j int, edgeVal func(edgeID int) float64, combine func(acc, v float64) float64, identity float64) float64 {
	acc := identity
	for _, e := range g.Matrix.ColEdges(j) {
		acc = combine(acc, edgeVal(e))
	}
	return acc
}

// SumExceptCheck returns, for every neighbor position p of check-node i, the
// sum of edgeVal over all of i's incident edges except position p. It uses
// the two-pass total/subtract trick: one pass computes the full sum, a
// second pass divides out each term — O(d) instead of O(d^2).
//
// out must have length >= d_c(i); only out[:d_c(i)] is written.
func (g *Graph) SumExceptCheck(i int, edgeVal func(edgeID int) float64, out []float64) {
	edges := g.Matrix.RowEdges(i)
	total := 0.0
	vals := make([]float64, len(edges))
	for p, e := range edges {
		vals[p] = edgeVal(e)
		total += vals[p]
	}
	for p := range edges {
		out[p] = total - vals[p]
	}
}

// MinAbsExceptCheck fills out[p], for every neighbor position p of check-node
// i, with min(|edgeVal(e)|) over all of i's incident edges except position p.
// Unlike SumExceptCheck, minimum has no closed-form "divide out" inverse, so
// this walks each leave-one-out set directly: O(d^2) per check-node, an
// acceptable fallback for small degrees (LDPC check degrees are typically
// single digits).
func (g *Graph) MinAbsExceptCheck(i int, edgeVal func(edgeID int) float64, out []float64) {
	edges := g.Matrix.RowEdges(i)
	d := len(edges)
	vals := make([]float64, d)
	for p, e := range edges {
		v := edgeVal(e)
		if v < 0 {
			v = -v
		}
		vals[p] = v
	}
	for p := 0; p < d; p++ {
		min := -1.0
		for q := 0; q < d; q++ {
			if q == p {
				continue
			}
			if min < 0 || vals[q] < min {
				min = vals[q]
			}
		}
		out[p] = min
	}
}
