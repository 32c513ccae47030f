package register

import (
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

// Const builds an n-bit MEM whose bit i has singleton domain equal to the
// i-th binary digit of value, LSB first. It returns ErrValueOutOfRange
// unless 0 <= value < 2^n.
// Complexity: O(n).
func Const(g *graph.Graph, value uint64, n int) (MEM, error) {
	if n < 64 && value>>uint(n) != 0 {
		return MEM{}, ErrValueOutOfRange
	}

	bits := make([]int, n)
	v := value
	for i := 0; i < n; i++ {
		bit := tristate.Zero
		if v&1 != 0 {
			bit = tristate.One
		}
		bits[i] = g.AddVertex(tristate.Of(bit))
		v >>= 1
	}

	return New(bits), nil
}
