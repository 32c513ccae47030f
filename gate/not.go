package gate

import (
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

// Not allocates an output vertex with domain between and connects it to x.
// Because x and the output must take distinct colors and both lie in
// between, the output is forced to the complementary tri-value - which only
// makes sense when between contains exactly two values, so that's enforced
// as a precondition rather than silently tolerated.
//
// The default between = {Zero, One} realises Boolean negation; a custom
// between (e.g. {One, X}) realises the logic-level translation used inside
// And and IfLayer. NotDefault below covers the fixed-domain case so call
// sites that only ever want ordinary negation don't have to pass a domain.
//
// ErrBadBetween is returned if between does not contain exactly two values.
// Complexity: O(1).
func Not(g *graph.Graph, x int, between tristate.Domain) (int, error) {
	if between.Len() != 2 {
		return 0, ErrBadBetween
	}

	out := g.AddVertex(between)
	// AddEdge can only fail on a self-loop or an unknown vertex, neither of
	// which can happen here: out was just allocated by this call.
	_ = g.AddEdge(x, out)

	return out, nil
}

// MustNot calls Not and panics if between is malformed. Call sites that
// hardcode a known-valid two-value domain (And, IfLayer, NotDefault) use
// this to stay free of error plumbing for a precondition that can never
// fail for them.
func MustNot(g *graph.Graph, x int, between tristate.Domain) int {
	out, err := Not(g, x, between)
	if err != nil {
		panic(err)
	}

	return out
}

// NotDefault performs ordinary Boolean negation: Not(g, x, tristate.DomainBit).
func NotDefault(g *graph.Graph, x int) int {
	return MustNot(g, x, tristate.DomainBit)
}
