package register

import (
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

// Var builds an n-bit MEM, each bit free over {Zero, One}.
// Complexity: O(n).
func Var(g *graph.Graph, n int) MEM {
	bits := make([]int, n)
	for i := 0; i < n; i++ {
		bits[i] = g.AddVertex(tristate.DomainBit)
	}

	return New(bits)
}
