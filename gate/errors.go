package gate

import "errors"

// Sentinel errors for gate combinators.
var (
	// ErrBadSwapDomains indicates the from/to domain pairs passed to Swap
	// violate its preconditions: both must have length 2, neither
	// position may repeat across from/to, and from[1] must equal to[0].
	ErrBadSwapDomains = errors.New("gate: invalid swap domain pair")

	// ErrBadBetween indicates a between domain passed to Not that does not
	// contain exactly two tri-values, so "the complement of x within
	// between" is not well defined.
	ErrBadBetween = errors.New("gate: between domain must contain exactly two values")
)
