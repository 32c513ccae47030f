package gate

import (
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

// Break injects an unsatisfiability trap: it allocates a vertex
// pinned to domain {One} and connects it to x. If x is forced to One, the
// resulting graph is not 3-colorable; otherwise satisfiability is
// unaffected. Break is the sole mechanism by which a client rejects an
// assignment.
// Complexity: O(1).
func Break(g *graph.Graph, x int) {
	trap := g.AddVertex(tristate.DomainOne)
	_ = g.AddEdge(x, trap)
}
