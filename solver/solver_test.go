package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/tricolor/gate"
	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/solver"
	"github.com/lvlath-labs/tricolor/tristate"
)

func TestSolve_AnchorsGetDistinctColors(t *testing.T) {
	g := graph.New()

	ok, coloring := solver.Solve(g)
	require.True(t, ok)

	assert.NotEqual(t, coloring[graph.AnchorZero], coloring[graph.AnchorOne])
	assert.NotEqual(t, coloring[graph.AnchorOne], coloring[graph.AnchorX])
	assert.NotEqual(t, coloring[graph.AnchorZero], coloring[graph.AnchorX])
}

func TestSolve_EmptyGraphIsSatisfiable(t *testing.T) {
	var g graph.Graph

	ok, coloring := solver.Solve(&g)
	assert.True(t, ok)
	assert.Empty(t, coloring)
}

func TestSolve_RespectsVertexDomain(t *testing.T) {
	g := graph.New()
	v := g.AddVertex(tristate.DomainBit)

	ok, coloring := solver.Solve(g)
	require.True(t, ok)

	assert.NotEqual(t, coloring[v], coloring[graph.AnchorX])
}

func TestSolve_DeterministicAcrossRuns(t *testing.T) {
	build := func() *graph.Graph {
		g := graph.New()
		x := g.AddVertex(tristate.DomainBit)
		y := g.AddVertex(tristate.DomainBit)
		gate.And(g, x, y)

		return g
	}

	first := build()
	ok1, coloring1 := solver.Solve(first)
	require.True(t, ok1)

	second := build()
	ok2, coloring2 := solver.Solve(second)
	require.True(t, ok2)

	assert.Equal(t, coloring1, coloring2)
}

func TestSolve_InfeasibleOnBreakOfOne(t *testing.T) {
	g := graph.New()
	one := g.AddVertex(tristate.DomainOne)
	gate.Break(g, one)

	ok, coloring := solver.Solve(g)
	assert.False(t, ok)
	assert.Nil(t, coloring)
}

func TestHasClique4_AnchorTriangleAloneIsFine(t *testing.T) {
	g := graph.New()
	assert.False(t, solver.HasClique4(g))
}

func TestHasClique4_DetectsInjectedClique(t *testing.T) {
	g := graph.New()
	a := g.AddVertex(tristate.DomainAll)
	b := g.AddVertex(tristate.DomainAll)
	c := g.AddVertex(tristate.DomainAll)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, c))
	require.NoError(t, g.AddEdge(b, c))
	require.NoError(t, g.AddEdge(graph.AnchorZero, a))
	require.NoError(t, g.AddEdge(graph.AnchorZero, b))
	require.NoError(t, g.AddEdge(graph.AnchorZero, c))

	assert.True(t, solver.HasClique4(g))

	ok, _ := solver.Solve(g)
	assert.False(t, ok)
}

func TestSolve_CompleteCircuitStaysColorable(t *testing.T) {
	g := graph.New()
	x := g.AddVertex(tristate.DomainBit)
	y := g.AddVertex(tristate.DomainBit)
	z := g.AddVertex(tristate.DomainBit)

	and1 := gate.And(g, x, y)
	or1 := gate.Or(g, and1, z)
	gate.Xor(g, or1, x)

	ok, _ := solver.Solve(g)
	assert.True(t, ok)
}
