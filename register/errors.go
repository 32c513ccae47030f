// Package register implements the bit-vector handle types: MEM, the
// base handle over an ordered sequence of bit vertices, and its two
// constructors CONST (pinned literal) and VAR (free variable).
package register

import "errors"

// Sentinel errors for register construction.
var (
	// ErrValueOutOfRange indicates a CONST value does not fit in n bits
	// (0 <= value < 2^n).
	ErrValueOutOfRange = errors.New("register: value out of range for bit width")
)
