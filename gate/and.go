package gate

import (
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

// And is the keystone 2-input gate; every other 2-input gate (Nand, Or,
// Nor, Xor, Xnor) is built from And and Not.
//
// It encodes "output = x AND y" as three filter subgraphs merged into a
// staged filter:
//
//  1. R1 forbids output 0 unless both inputs are 1.
//  2. R2 forbids output 1 when both inputs are 1.
//  3. R3 forbids output X when both inputs are 1.
//  4. R1/R2/R3 are merged into a single filter-input vertex.
//  5. The filter input is projected through a two-stage flipper that
//     collapses the intermediate encoding to the canonical Boolean output.
//
// Complexity: O(1) vertices/edges per call (constant-size subgraph).
func And(g *graph.Graph, x, y int) int {
	// R1: don't allow 0 output unless both inputs are 1.
	x1t2f := MustSwap(g, NotDefault(g, x), [2]tristate.T{tristate.Zero, tristate.One}, [2]tristate.T{tristate.One, tristate.X})
	y1t2f := MustSwap(g, NotDefault(g, y), [2]tristate.T{tristate.Zero, tristate.One}, [2]tristate.T{tristate.One, tristate.X})
	firstRestriction := g.AddVertex(tristate.DomainZeroX)
	_ = g.AddEdge(x1t2f, firstRestriction)
	_ = g.AddEdge(y1t2f, firstRestriction)

	// R2: don't allow 1 output when both inputs are 1.
	x2t0f := MustNot(g, MustSwap(g, x, [2]tristate.T{tristate.One, tristate.Zero}, [2]tristate.T{tristate.Zero, tristate.X}), tristate.DomainZeroX)
	y2t0f := MustNot(g, MustSwap(g, y, [2]tristate.T{tristate.One, tristate.Zero}, [2]tristate.T{tristate.Zero, tristate.X}), tristate.DomainZeroX)
	secondRestriction := g.AddVertex(tristate.DomainOneX)
	_ = g.AddEdge(x2t0f, secondRestriction)
	_ = g.AddEdge(y2t0f, secondRestriction)

	// R3: don't allow X output when both inputs are 1.
	thirdRestriction := g.AddVertex(tristate.DomainAll)
	_ = g.AddEdge(x, thirdRestriction)
	_ = g.AddEdge(NotDefault(g, y), thirdRestriction)

	filterInput := g.AddVertex(tristate.DomainAll)
	_ = g.AddEdge(firstRestriction, filterInput)
	_ = g.AddEdge(secondRestriction, filterInput)
	_ = g.AddEdge(thirdRestriction, filterInput)

	tempFlipper := g.AddVertex(tristate.DomainOneX)
	output := g.AddVertex(tristate.DomainBit)
	_ = g.AddEdge(filterInput, tempFlipper)
	_ = g.AddEdge(tempFlipper, output)
	_ = g.AddEdge(filterInput, output)

	return output
}
