// Package wifi is a named-standard-code factory: it loads a quasi-cyclic
// parity-check structure for a
// named IEEE 802.11n code rate/length pair and builds an encoder or decoder
// over it directly, so a caller never has to handle codeformat.QCFile or
// tanner.Matrix plumbing themselves.
//
// The embedded .qc fixtures here are small synthetic stand-ins sized to
// exercise the same QC block algebra as the real standard's published code
// specs (which are binary/text data assets, not source, and are absent from
// this package's reference material); they are not literal IEEE 802.11n
// matrices. See DESIGN.md's wifi fixtures entry.
package wifi

import (
	"embed"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvldpc/codeformat"
	"github.com/katalvlaran/lvldpc/decoder"
	"github.com/katalvlaran/lvldpc/qcenc"
	"github.com/katalvlaran/lvldpc/tanner"
)

//go:embed fixtures/*.qc
var fixtures embed.FS

// Spec names a published IEEE 802.11n LDPC code by codeword length and rate.
type Spec int

const (
	// N648R12 is the 648-bit codeword, rate-1/2 code.
	N648R12 Spec = iota
	// N1296R23 is the 1296-bit codeword, rate-2/3 code.
	N1296R23
)

// ErrUnknownSpec indicates a Spec value with no registered fixture.
var ErrUnknownSpec = errors.New("wifi: unknown code spec")

var fixtureFile = map[Spec]string{
	N648R12:  "fixtures/n648r12.qc",
	N1296R23: "fixtures/n1296r23.qc",
}

func (s Spec) String() string {
	switch s {
	case N648R12:
		return "N648R12"
	case N1296R23:
		return "N1296R23"
	default:
		return fmt.Sprintf("Spec(%d)", int(s))
	}
}

// LoadQCFile reads s's embedded .qc fixture and parses it into a
// codeformat.QCFile.
func LoadQCFile(s Spec) (*codeformat.QCFile, error) {
	name, ok := fixtureFile[s]
	if !ok {
		return nil, ErrUnknownSpec
	}
	data, err := fixtures.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return codeformat.QCParse(data)
}

// matrix builds the tanner.Matrix backing s's Tanner-graph-based decoders.
func matrix(s Spec) (*tanner.Matrix, error) {
	qc, err := LoadQCFile(s)
	if err != nil {
		return nil, err
	}
	rows, cols := qc.ToSparse()
	return tanner.NewMatrixFromSparse(qc.R*qc.Z, qc.C*qc.Z, rows, cols)
}

// NewEncoder builds the systematic QC encoder (C7) for s.
func NewEncoder(s Spec) (*qcenc.Encoder, error) {
	qc, err := LoadQCFile(s)
	if err != nil {
		return nil, err
	}
	grid, err := qcenc.NewGridFromQCFile(qc)
	if err != nil {
		return nil, err
	}
	return qcenc.NewEncoder(grid)
}

// NewLogSPADecoder builds a Log-SPA/Min-Sum decoder (C3) over s's
// parity-check structure, with the first K() variable-nodes marked as
// information bits (the systematic layout every qcenc.Encoder produces).
func NewLogSPADecoder(s Spec, maxIter int, mode decoder.Mode) (*decoder.LogSPA, error) {
	mx, err := matrix(s)
	if err != nil {
		return nil, err
	}
	return decoder.NewLogSPA(mx, maxIter, mode, decoder.WithInfoIdx(systematicMask(mx))), nil
}

// systematicMask marks the first K() columns of mx as information bits,
// matching qcenc.Encoder's systematic output layout.
func systematicMask(mx *tanner.Matrix) []bool {
	mask := make([]bool, mx.N())
	for j := 0; j < mx.K(); j++ {
		mask[j] = true
	}
	return mask
}
