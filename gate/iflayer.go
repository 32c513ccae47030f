package gate

import (
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

// IfLayer gates a set of vertices on a single toggle. It allocates
// one full-domain output vertex per element of nodes and returns their IDs.
//
// Two branch vertices are built from toggle via composed Not/Swap so that:
//   - when toggle = One, b1 and b2 are both X, so every output is forbidden
//     only X and ranges over {Zero, One}; its value is not tied to the
//     value of the corresponding input.
//   - when toggle = Zero, b1 = One and b2 = Zero, which forbids everything
//     but X: every output is forced to X, which neutralises any downstream
//     Break constraint.
//
// The coupling is mediated by the branch vertices alone: each output is
// wired to b1 and b2, not to its corresponding input in nodes. This is not
// an oversight - it is exactly how one toggle gates a whole set of
// vertices; len(nodes) fixes only how many gated outputs are produced.
// Complexity: O(len(nodes)).
func IfLayer(g *graph.Graph, nodes []int, toggle int) []int {
	branch1 := MustNot(g, MustSwap(g, NotDefault(g, toggle), [2]tristate.T{tristate.Zero, tristate.One}, [2]tristate.T{tristate.One, tristate.X}), tristate.DomainOneX)
	branch2 := MustNot(g, MustSwap(g, toggle, [2]tristate.T{tristate.One, tristate.Zero}, [2]tristate.T{tristate.Zero, tristate.X}), tristate.DomainZeroX)

	outputs := make([]int, len(nodes))
	for i := range nodes {
		out := g.AddVertex(tristate.DomainAll)
		_ = g.AddEdge(out, branch1)
		_ = g.AddEdge(out, branch2)
		outputs[i] = out
	}

	return outputs
}
