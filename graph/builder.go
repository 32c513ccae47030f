package graph

import "github.com/lvlath-labs/tricolor/tristate"

// New initialises a Graph containing exactly the three anchor vertices
// (AnchorZero, AnchorOne, AnchorX) and the three edges of their triangle.
// Every valid 3-coloring of a graph produced by New therefore maps
// the anchors to three distinct colors.
// Complexity: O(1).
func New() *Graph {
	g := &Graph{
		nextID:    firstFreeID,
		adjacency: make(map[int]map[int]struct{}),
	}

	g.ensureAdj(AnchorZero)
	g.ensureAdj(AnchorOne)
	g.ensureAdj(AnchorX)

	g.connect(AnchorZero, AnchorOne)
	g.connect(AnchorOne, AnchorX)
	g.connect(AnchorX, AnchorZero)

	return g
}

// ensureAdj lazily creates the adjacency set for v. Callers must hold
// muEdgeAdj.
func (g *Graph) ensureAdj(v int) {
	if g.adjacency[v] == nil {
		g.adjacency[v] = make(map[int]struct{})
	}
}

// AddVertex allocates a new vertex identifier and wires it to every anchor
// NOT in allow, so that its domain is exactly allow. Identifiers are
// assigned in strictly increasing order of creation (a contract the solver
// relies on for its vertex ordering).
// Complexity: O(1).
func (g *Graph) AddVertex(allow tristate.Domain) int {
	g.muVert.Lock()
	id := g.nextID
	g.nextID++
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	g.ensureAdj(id)
	g.muEdgeAdj.Unlock()

	for _, forbidden := range allow.Forbidden() {
		g.connect(id, anchorFor(forbidden))
	}

	return id
}

// anchorFor maps a tristate.T to its fixed anchor vertex identifier.
func anchorFor(v tristate.T) int {
	switch v {
	case tristate.Zero:
		return AnchorZero
	case tristate.One:
		return AnchorOne
	default:
		return AnchorX
	}
}

// AddEdge inserts an undirected edge between u and v. It is idempotent if
// the edge already exists and returns ErrSelfLoop for u == v, or
// ErrUnknownVertex if either endpoint was never allocated.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return ErrSelfLoop
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrUnknownVertex
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.connectLocked(u, v)

	return nil
}

// connect is AddEdge's internal counterpart used during construction
// (New, AddVertex) where endpoints are already known-good; it takes the
// write lock itself.
func (g *Graph) connect(u, v int) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.connectLocked(u, v)
}

// connectLocked performs the actual insertion; callers must hold
// muEdgeAdj for writing.
func (g *Graph) connectLocked(u, v int) {
	g.ensureAdj(u)
	g.ensureAdj(v)

	if _, exists := g.adjacency[u][v]; exists {
		return
	}

	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeOrder = append(g.edgeOrder, Edge{U: u, V: v})
}
