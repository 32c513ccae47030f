package arith

import (
	"github.com/lvlath-labs/tricolor/gate"
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/register"
)

// NoCarry is passed as carryIn to Add to request the carry-less base case.
const NoCarry = -1

// Add adds two equal-width MEMs and returns (sum, carryOut).
//
// Base case (n=1): without a carry-in, sum = XOR(a,b), carryOut = AND(a,b);
// with a carry-in, this is the classic full-adder: sum = XOR(XOR(a,b),c),
// carryOut = OR(OR(AND(a,b),AND(a,c)),AND(c,b)).
//
// Recursive case: split both operands into lower/upper halves, add the
// lower halves with this call's carryIn (NoCarry at the top level), add the
// upper halves with the resulting carry, and merge lower-sum with upper-sum (LSB-first) to reconstruct the
// full-width sum; the final carry is the upper add's carry.
//
// Returns ErrWidthMismatch if a and b have different lengths.
// Complexity: O(n log n) gates over an n-bit input (recursive splitting
// schedule with a constant factor per bit at the leaves).
func Add(g *graph.Graph, a, b register.MEM, carryIn int) (register.MEM, int, error) {
	if a.Len() != b.Len() {
		return register.MEM{}, 0, ErrWidthMismatch
	}

	n := a.Len()
	if n == 1 {
		aBit, bBit := a.Bits[0], b.Bits[0]

		if carryIn == NoCarry {
			sum := gate.Xor(g, aBit, bBit)
			carryOut := gate.And(g, aBit, bBit)

			return register.New([]int{sum}), carryOut, nil
		}

		sum := gate.Xor(g, gate.Xor(g, aBit, bBit), carryIn)
		carryOut := gate.Or(g,
			gate.Or(g, gate.And(g, aBit, bBit), gate.And(g, aBit, carryIn)),
			gate.And(g, carryIn, bBit),
		)

		return register.New([]int{sum}), carryOut, nil
	}

	aLower, aUpper := a.LowerHalf(), a.UpperHalf()
	bLower, bUpper := b.LowerHalf(), b.UpperHalf()

	sumLower, carryLower, err := Add(g, aLower, bLower, carryIn)
	if err != nil {
		return register.MEM{}, 0, err
	}

	sumUpper, carryUpper, err := Add(g, aUpper, bUpper, carryLower)
	if err != nil {
		return register.MEM{}, 0, err
	}

	return sumLower.Merge(sumUpper), carryUpper, nil
}
