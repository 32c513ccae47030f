// Package arith implements the multi-bit adder built recursively from gate
// combinators over register.MEM operands.
package arith

import "errors"

// ErrWidthMismatch indicates Add was called with operands of unequal bit
// width.
var ErrWidthMismatch = errors.New("arith: operand widths differ")
