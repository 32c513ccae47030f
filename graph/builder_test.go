package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-labs/tricolor/graph"
	"github.com/lvlath-labs/tricolor/tristate"
)

func TestNew_AnchorTriangle(t *testing.T) {
	g := graph.New()

	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasVertex(graph.AnchorZero))
	assert.True(t, g.HasVertex(graph.AnchorOne))
	assert.True(t, g.HasVertex(graph.AnchorX))

	zero, err := g.Neighbors(graph.AnchorZero)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{graph.AnchorOne, graph.AnchorX}, zero)

	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddVertex_MonotonicIDs(t *testing.T) {
	g := graph.New()

	a := g.AddVertex(tristate.DomainAll)
	b := g.AddVertex(tristate.DomainBit)
	c := g.AddVertex(tristate.Of(tristate.Zero))

	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Equal(t, 3, a)
}

func TestAddVertex_DomainFidelity(t *testing.T) {
	g := graph.New()

	v := g.AddVertex(tristate.DomainBit)
	nbrs, err := g.Neighbors(v)
	require.NoError(t, err)

	// DomainBit = {Zero, One} forbids only X.
	assert.ElementsMatch(t, []int{graph.AnchorX}, nbrs)
}

func TestAddVertex_FullDomainHasNoAnchorEdges(t *testing.T) {
	g := graph.New()

	v := g.AddVertex(tristate.DomainAll)
	nbrs, err := g.Neighbors(v)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestAddEdge_SelfLoopRejected(t *testing.T) {
	g := graph.New()

	v := g.AddVertex(tristate.DomainAll)
	err := g.AddEdge(v, v)
	assert.ErrorIs(t, err, graph.ErrSelfLoop)
}

func TestAddEdge_UnknownVertexRejected(t *testing.T) {
	g := graph.New()

	err := g.AddEdge(999, graph.AnchorZero)
	assert.ErrorIs(t, err, graph.ErrUnknownVertex)
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := graph.New()

	a := g.AddVertex(tristate.DomainAll)
	b := g.AddVertex(tristate.DomainAll)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(a, b))

	nbrs, err := g.Neighbors(a)
	require.NoError(t, err)
	assert.Equal(t, []int{b}, nbrs)
}

func TestEdges_EachOnce(t *testing.T) {
	g := graph.New()

	a := g.AddVertex(tristate.DomainAll)
	b := g.AddVertex(tristate.DomainAll)
	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, a))

	count := 0
	for _, e := range g.Edges() {
		if (e.U == a && e.V == b) || (e.U == b && e.V == a) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
