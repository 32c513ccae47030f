package gate

import (
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

// Swap translates a bit from the two-element tri-value set {from[0], from[1]}
// to the two-element set {to[0], to[1]}, with from[0] mapping to to[0] and
// from[1] mapping to to[1].
//
// Preconditions, enforced strictly rather than relaxed:
//   - from[0] != to[0] and from[1] != to[1]
//   - from[1] == to[0] (the three tri-values spanning from ∪ to must total
//     three distinct values in this orientation)
//
// ErrBadSwapDomains is returned if any precondition is violated.
// Complexity: O(1).
func Swap(g *graph.Graph, x int, from, to [2]tristate.T) (int, error) {
	if from[0] == to[0] || from[1] == to[1] || from[1] != to[0] {
		return 0, ErrBadSwapDomains
	}

	removed, kept, added := from[0], from[1], to[1]

	out := g.AddVertex(tristate.Pair(kept, added))

	top := g.AddVertex(tristate.Pair(removed, added))
	_ = g.AddEdge(x, top)
	_ = g.AddEdge(top, out)

	bottom1 := g.AddVertex(tristate.Pair(kept, added))
	bottom2 := g.AddVertex(tristate.Pair(kept, added))
	_ = g.AddEdge(x, bottom1)
	_ = g.AddEdge(bottom1, bottom2)
	_ = g.AddEdge(bottom2, out)

	return out, nil
}

// MustSwap calls Swap and panics if its preconditions are violated. Gate
// combinators that hardcode a known-valid from/to pair (AND, IfLayer) use
// this to keep call sites free of error plumbing for combinations that can
// never fail.
func MustSwap(g *graph.Graph, x int, from, to [2]tristate.T) int {
	out, err := Swap(g, x, from, to)
	if err != nil {
		panic(err)
	}

	return out
}
