package loadfile

import "errors"

// Sentinel errors returned by Parse. Callers branch with errors.Is;
// the wrapped messages carry the human-readable detail.
var (
	// ErrDecode indicates the input is not valid UTF-8. The parser never
	// guesses an alternate encoding.
	ErrDecode = errors.New("load file is not valid UTF-8")

	// ErrHeaderNotFound indicates no line contains the header marker.
	// A load file with a shuffled or renamed final column is a caller-visible
	// condition, not something the parser should paper over.
	ErrHeaderNotFound = errors.New("header marker not found")

	// ErrEmptyHeader indicates the header block tokenized to zero columns.
	ErrEmptyHeader = errors.New("header contains no columns")

	// ErrSchemaMismatch indicates a row survived reconciliation with a width
	// different from the header. Unreachable unless reconciliation is broken.
	ErrSchemaMismatch = errors.New("row width does not match header width")
)
