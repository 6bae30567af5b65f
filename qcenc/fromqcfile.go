// File: fromqcfile.go
// Role: bridges codeformat.QCFile (the on-disk representation) into a Grid
// (the encoder's in-memory representation) without going through a dense
// intermediate.
package qcenc

import "github.com/katalvlaran/lvldpc/codeformat"

// NewGridFromQCFile builds a Grid from a parsed codeformat.QCFile.
func NewGridFromQCFile(qc *codeformat.QCFile) (*Grid, error) {
	return NewGrid(qc.R, qc.C, qc.Z, qc.Blocks)
}
