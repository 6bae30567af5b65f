// File: alist.go
// Role: MacKay AList format parsing, writing, and sparse/dense conversion,
// grounded on ldpc/utils/a_list_format.py's from_file/to_file/from_array.
package codeformat

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FromFile parses an AList file at path.
//
// Layout: line 1 = "n m"; line 2 = "max_col_weight max_row_weight"; line 3 =
// n per-column weights; line 4 = m per-row weights; next n lines = 1-based
// row indices non-zero in each column; next m lines = 1-based column indices
// non-zero in each row.
func FromFile(path string) (*AList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "codeformat: open alist file")
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	readInts := func() ([]int, error) {
		if !sc.Scan() {
			return nil, errors.Wrap(sc.Err(), "codeformat: unexpected end of alist file")
		}
		fields := strings.Fields(sc.Text())
		out := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrapf(err, "codeformat: parsing integer field %q", f)
			}
			out[i] = v
		}
		return out, nil
	}

	header, err := readInts()
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, ErrInconsistentMatrixFile
	}
	n, m := header[0], header[1]

	weights, err := readInts()
	if err != nil {
		return nil, err
	}
	if len(weights) < 2 {
		return nil, ErrInconsistentMatrixFile
	}
	maxColWeight, maxRowWeight := weights[0], weights[1]

	colWeights, err := readInts()
	if err != nil {
		return nil, err
	}
	rowWeights, err := readInts()
	if err != nil {
		return nil, err
	}
	if len(colWeights) != n || len(rowWeights) != m {
		return nil, ErrInconsistentMatrixFile
	}

	rowsOfCol := make([][]int, n)
	for j := 0; j < n; j++ {
		raw, err := readInts()
		if err != nil {
			return nil, err
		}
		rowsOfCol[j] = shiftDown(raw)
	}

	colsOfRow := make([][]int, m)
	for i := 0; i < m; i++ {
		raw, err := readInts()
		if err != nil {
			return nil, err
		}
		colsOfRow[i] = shiftDown(raw)
	}

	a := &AList{
		N: n, M: m,
		MaxColWeight: maxColWeight, MaxRowWeight: maxRowWeight,
		ColWeights: colWeights, RowWeights: rowWeights,
		ColsOfRow: colsOfRow, RowsOfCol: rowsOfCol,
	}
	if !a.consistent() {
		return nil, ErrInconsistentMatrixFile
	}
	return a, nil
}

// shiftDown converts a line of 1-based indices (possibly zero-padded with
// trailing zeros, MacKay's convention for ragged rows) to 0-based, dropping
// any padding entries.
func shiftDown(raw []int) []int {
	out := make([]int, 0, len(raw))
	for _, v := range raw {
		if v <= 0 {
			continue
		}
		out = append(out, v-1)
	}
	return out
}

// WriteFile writes a to path in AList format.
func (a *AList) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "codeformat: create alist file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", a.N, a.M)
	fmt.Fprintf(w, "%d %d\n", a.MaxColWeight, a.MaxRowWeight)
	writeInts(w, a.ColWeights)
	writeInts(w, a.RowWeights)
	for _, col := range a.RowsOfCol {
		writeInts(w, shiftUp(col))
	}
	for _, row := range a.ColsOfRow {
		writeInts(w, shiftUp(row))
	}
	return errors.Wrap(w.Flush(), "codeformat: flush alist file")
}

func shiftUp(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = v + 1
	}
	return out
}

func writeInts(w *bufio.Writer, vals []int) {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(w, "%s \n", strings.Join(strs, "\t"))
}

// FromSparse builds an AList from COO triples, the same (m, n, rows, cols)
// shape tanner.NewMatrixFromSparse accepts.
func FromSparse(m, n int, rows, cols []int) *AList {
	colsOfRow := make([][]int, m)
	rowsOfCol := make([][]int, n)
	for k := range rows {
		i, j := rows[k], cols[k]
		colsOfRow[i] = append(colsOfRow[i], j)
		rowsOfCol[j] = append(rowsOfCol[j], i)
	}
	for i := range colsOfRow {
		sort.Ints(colsOfRow[i])
	}
	for j := range rowsOfCol {
		sort.Ints(rowsOfCol[j])
	}

	colWeights := make([]int, n)
	maxColWeight := 0
	for j, r := range rowsOfCol {
		colWeights[j] = len(r)
		if colWeights[j] > maxColWeight {
			maxColWeight = colWeights[j]
		}
	}
	rowWeights := make([]int, m)
	maxRowWeight := 0
	for i, c := range colsOfRow {
		rowWeights[i] = len(c)
		if rowWeights[i] > maxRowWeight {
			maxRowWeight = rowWeights[i]
		}
	}

	return &AList{
		N: n, M: m,
		MaxColWeight: maxColWeight, MaxRowWeight: maxRowWeight,
		ColWeights: colWeights, RowWeights: rowWeights,
		ColsOfRow: colsOfRow, RowsOfCol: rowsOfCol,
	}
}

// ToSparse returns a's non-zero entries as COO (row, col) triples, ascending
// by row then column — the shape tanner.NewMatrixFromSparse expects.
func (a *AList) ToSparse() (rows, cols []int) {
	for i, row := range a.ColsOfRow {
		for _, j := range row {
			rows = append(rows, i)
			cols = append(cols, j)
		}
	}
	return rows, cols
}

// ToDense renders a as a dense 0/1 matrix.
func (a *AList) ToDense() [][]int {
	out := make([][]int, a.M)
	for i := range out {
		out[i] = make([]int, a.N)
	}
	for i, row := range a.ColsOfRow {
		for _, j := range row {
			out[i][j] = 1
		}
	}
	return out
}

// consistent checks that ColsOfRow and RowsOfCol describe the same set of
// non-zero entries, per ldpc's verify_elements.
func (a *AList) consistent() bool {
	fromRows := make(map[[2]int]bool)
	for i, row := range a.ColsOfRow {
		for _, j := range row {
			if j < 0 || j >= a.N {
				return false
			}
			fromRows[[2]int{i, j}] = true
		}
	}
	fromCols := make(map[[2]int]bool)
	for j, col := range a.RowsOfCol {
		for _, i := range col {
			if i < 0 || i >= a.M {
				return false
			}
			fromCols[[2]int{i, j}] = true
		}
	}
	if len(fromRows) != len(fromCols) {
		return false
	}
	for k := range fromRows {
		if !fromCols[k] {
			return false
		}
	}
	return true
}
