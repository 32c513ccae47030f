// Package dimacs serialises a graph.Graph to and from the standard
// graph-coloring DIMACS .col edge-list format.
package dimacs

import "errors"

// Sentinel errors for dimacs operations.
var (
	// ErrWriteFailed wraps an underlying I/O failure encountered while
	// writing a DIMACS document.
	ErrWriteFailed = errors.New("dimacs: write failed")

	// ErrMalformedDocument indicates Parse could not make sense of its
	// input as a DIMACS edge-list document.
	ErrMalformedDocument = errors.New("dimacs: malformed document")
)
