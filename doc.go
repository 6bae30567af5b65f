// Package lvldpc is a low-density parity-check (LDPC) encoding and
// decoding library in Go.
//
// What is lvldpc?
//
//	A dependency-light library, whose immutable parity-check matrix can be
//	shared across goroutines (decoder instances themselves are not safe for
//	concurrent use), that brings together:
//
//	  - Core substrate: an immutable sparse parity-check matrix and the
//	    Tanner-graph leave-one-out aggregation every decoder shares
//	  - Decoders: Log-SPA/Min-Sum, Gallager bit-flipping, the weighted
//	    bit-flipping family (WBF/MWBF/MWBF-NL), probabilistic parallel
//	    bit-flipping
//	  - A systematic quasi-cyclic encoder for IEEE 802.11n-style codes
//	  - On-disk code formats: MacKay's AList and the QC block form
//
// Why choose lvldpc?
//
//   - Uniform decode contract — every decoder returns the same Result
//     shape, so callers can swap decoders without touching call sites
//   - Pure Go — no cgo
//   - Scratch buffers allocated once at construction and reused across
//     Decode calls; Decode still allocates its returned Result slices, and
//     the bit-flipping decoders allocate small per-iteration working sets
//
// Under the hood, everything is organized under focused subpackages:
//
//	tanner/     — the sparse parity-check matrix and Tanner-graph substrate
//	decoder/    — the decoder family and the shared Decoder contract
//	qcenc/      — the systematic quasi-cyclic encoder
//	codeformat/ — AList and QC block-form file I/O
//	channel/    — channel models (BSC, AWGN) mapping samples to LLRs
//	ldpcrand/   — seedable randomness shared by WBF and PPBF
//	wifi/       — a named-standard-code factory over codeformat/qcenc/decoder
//
//	go get github.com/katalvlaran/lvldpc
package lvldpc
