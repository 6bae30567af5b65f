// File: qcfile.go
// Role: quasi-cyclic block-form parsing, writing, and block/dense conversion,
// grounded on utils/qc_format.py's from_file/to_file/to_sparse/from_array.
package codeformat

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// QCFromFile parses a QC block-form file at path.
//
// Layout: line 1 = "c r z" (block-columns, block-rows, block size); next r
// lines each hold c integers, -1 for the zero block or 0..z-1 for the
// cyclic right-shift of the z-by-z identity.
func QCFromFile(path string) (*QCFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "codeformat: open qc file")
	}
	defer f.Close()
	return QCParseReader(f)
}

// QCParse parses QC block-form text held in memory, e.g. an embedded fixture.
func QCParse(data []byte) (*QCFile, error) {
	return QCParseReader(bytes.NewReader(data))
}

// QCParseReader parses QC block-form text from r, the shared implementation
// behind QCFromFile and QCParse.
func QCParseReader(r io.Reader) (*QCFile, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	readInts := func() ([]int, error) {
		if !sc.Scan() {
			return nil, errors.Wrap(sc.Err(), "codeformat: unexpected end of qc file")
		}
		fields := strings.Fields(sc.Text())
		out := make([]int, len(fields))
		for i, raw := range fields {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "codeformat: parsing integer field %q", raw)
			}
			out[i] = v
		}
		return out, nil
	}

	header, err := readInts()
	if err != nil {
		return nil, err
	}
	if len(header) < 3 {
		return nil, ErrInconsistentMatrixFile
	}
	c, rows, z := header[0], header[1], header[2]

	blocks := make([][]int, rows)
	for i := 0; i < rows; i++ {
		row, err := readInts()
		if err != nil {
			return nil, err
		}
		if len(row) != c {
			return nil, ErrInconsistentMatrixFile
		}
		blocks[i] = row
	}

	q := &QCFile{C: c, R: rows, Z: z, Blocks: blocks}
	if !q.verifyElements() {
		return nil, ErrInconsistentMatrixFile
	}
	return q, nil
}

// WriteFile writes q to path in QC block-form.
func (q *QCFile) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "codeformat: create qc file")
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d %d\n", q.C, q.R, q.Z)
	for _, row := range q.Blocks {
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = strconv.Itoa(v)
		}
		fmt.Fprintf(w, "%s\n", strings.Join(strs, "\t"))
	}
	return errors.Wrap(w.Flush(), "codeformat: flush qc file")
}

// verifyElements reports whether every block value is in [-1, Z-1] and every
// row has exactly C entries.
func (q *QCFile) verifyElements() bool {
	if len(q.Blocks) != q.R {
		return false
	}
	for _, row := range q.Blocks {
		if len(row) != q.C {
			return false
		}
		for _, v := range row {
			if v < -1 || v >= q.Z {
				return false
			}
		}
	}
	return true
}

// blockAt returns a z-by-z block's dense form: the all-zero block for
// shift == -1, or the identity cyclically right-shifted by shift otherwise,
// i.e. row `row` has its 1 at column (row+shift) mod z.
func blockAt(shift, z int) [][]int {
	out := make([][]int, z)
	for row := range out {
		out[row] = make([]int, z)
		if shift >= 0 {
			out[row][(row+shift)%z] = 1
		}
	}
	return out
}

// ToDense renders q as a dense 0/1 matrix of shape (R*Z, C*Z).
func (q *QCFile) ToDense() [][]int {
	m, n := q.R*q.Z, q.C*q.Z
	out := make([][]int, m)
	for i := range out {
		out[i] = make([]int, n)
	}
	for rb, row := range q.Blocks {
		for cb, shift := range row {
			block := blockAt(shift, q.Z)
			for br := 0; br < q.Z; br++ {
				for bc := 0; bc < q.Z; bc++ {
					if block[br][bc] != 0 {
						out[rb*q.Z+br][cb*q.Z+bc] = 1
					}
				}
			}
		}
	}
	return out
}

// ToSparse returns q's non-zero entries as COO (row, col) triples in block
// order: by block-row, then block-column, then row within the block. The
// triples are not sorted by row.
func (q *QCFile) ToSparse() (rows, cols []int) {
	for rb, row := range q.Blocks {
		for cb, shift := range row {
			if shift < 0 {
				continue
			}
			for br := 0; br < q.Z; br++ {
				rows = append(rows, rb*q.Z+br)
				cols = append(cols, cb*q.Z+(br+shift)%q.Z)
			}
		}
	}
	return rows, cols
}

// QCFromDense derives a QCFile from a dense 0/1 matrix and a known block
// size z, by matching each z-by-z sub-block against the zero block and every
// cyclic shift of the identity. Returns ErrInconsistentMatrixFile if arr's
// shape is not a multiple of z or a sub-block matches none of the z+1
// candidates.
func QCFromDense(arr [][]int, z int) (*QCFile, error) {
	m := len(arr)
	if m == 0 || m%z != 0 {
		return nil, ErrInconsistentMatrixFile
	}
	n := len(arr[0])
	if n%z != 0 {
		return nil, ErrInconsistentMatrixFile
	}
	r, c := m/z, n/z

	blocks := make([][]int, r)
	for rb := 0; rb < r; rb++ {
		blocks[rb] = make([]int, c)
		for cb := 0; cb < c; cb++ {
			shift, err := matchBlock(arr, rb, cb, z)
			if err != nil {
				return nil, err
			}
			blocks[rb][cb] = shift
		}
	}
	return &QCFile{C: c, R: r, Z: z, Blocks: blocks}, nil
}

func matchBlock(arr [][]int, rb, cb, z int) (int, error) {
	isZero := true
	for br := 0; br < z && isZero; br++ {
		for bc := 0; bc < z; bc++ {
			if arr[rb*z+br][cb*z+bc] != 0 {
				isZero = false
				break
			}
		}
	}
	if isZero {
		return -1, nil
	}
	for shift := 0; shift < z; shift++ {
		matches := true
		for br := 0; br < z && matches; br++ {
			for bc := 0; bc < z; bc++ {
				want := 0
				if bc == (br+shift)%z {
					want = 1
				}
				if arr[rb*z+br][cb*z+bc] != want {
					matches = false
					break
				}
			}
		}
		if matches {
			return shift, nil
		}
	}
	return 0, ErrInconsistentMatrixFile
}
