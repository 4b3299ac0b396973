// Package errs defines the sentinel errors returned by hfm packages.
//
// Callers should match them with errors.Is; most call sites wrap them with
// additional context using fmt.Errorf and the %w verb.
package errs

import "errors"

var (
	// ErrMalformedKey indicates key text that cannot be parsed into symbol/count records.
	ErrMalformedKey = errors.New("malformed key")
	// ErrUnknownSymbol indicates an input byte that has no prefix code.
	ErrUnknownSymbol = errors.New("symbol has no prefix code")
	// ErrTruncatedStream indicates a payload that ended before the end-of-stream code.
	ErrTruncatedStream = errors.New("compressed stream ended before end-of-stream marker")
	// ErrEmptyTree indicates a decode of a non-empty payload without a tree.
	ErrEmptyTree = errors.New("no huffman tree for non-empty payload")
	// ErrDegenerateTree indicates a single-leaf tree whose leaf is not end-of-stream.
	ErrDegenerateTree = errors.New("single-leaf tree without end-of-stream symbol")

	ErrInvalidHeaderSize  = errors.New("invalid archive header size")
	ErrInvalidHeaderFlags = errors.New("invalid archive header flags")
	ErrInvalidMagic       = errors.New("invalid archive magic number")
	ErrInvalidCompression = errors.New("invalid key compression type")
	ErrInvalidSectionSize = errors.New("archive section exceeds data size")
)
