package graph

// Solver is the subset of solver.Solve's signature Computer depends on.
// Kept as a function type (rather than importing package solver directly)
// to avoid a solver->graph->solver import cycle; cmd/tricolorgen and tests
// wire solver.Solve in.
type Solver func(g *Graph) (bool, map[int]int)

// Emitter is the subset of dimacs.Emit's signature Computer depends on, for
// the same reason as Solver.
type Emitter func(g *Graph, name string) (string, error)

// Computer is a thin convenience wrapper pairing a Graph with the solve and
// emit operations: a single object a driver calls to get either a coloring
// or a DIMACS document, without baking a solve/export mode switch into
// Graph itself.
type Computer struct {
	*Graph

	solve Solver
	emit  Emitter
}

// NewComputer wraps g with the given solve and emit functions. It returns
// ErrNilGraph if g is nil, mirroring lvlath's constructor-time validation
// rather than deferring to a nil-pointer panic on first use.
func NewComputer(g *Graph, solve Solver, emit Emitter) (*Computer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Computer{Graph: g, solve: solve, emit: emit}, nil
}

// Solve decides 3-colorability of the wrapped graph.
func (c *Computer) Solve() (bool, map[int]int) {
	return c.solve(c.Graph)
}

// Emit serialises the wrapped graph to DIMACS format under the given name.
func (c *Computer) Emit(name string) (string, error) {
	return c.emit(c.Graph, name)
}
