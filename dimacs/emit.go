package dimacs

import (
	"fmt"
	"strings"

	"github.com/lvlath-labs/tricolor/graph"
)

// Emit serialises g as a standard graph-coloring DIMACS document: an
// optional comment line naming the graph, a `p edge V E` problem
// line, and one `e u v` line per edge, each undirected edge written
// exactly once in the graph's insertion order. Vertex identifiers are
// emitted verbatim - the emitter never renumbers, so the anchors keep
// their construction IDs (0, 1, 2) in the output.
//
// name may be empty, in which case the comment line is omitted.
func Emit(g *graph.Graph, name string) (string, error) {
	var b strings.Builder

	if name != "" {
		if _, err := fmt.Fprintf(&b, "c %s\n", name); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}

	edges := g.Edges()
	if _, err := fmt.Fprintf(&b, "p edge %d %d\n", g.VertexCount(), len(edges)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	for _, e := range edges {
		if _, err := fmt.Fprintf(&b, "e %d %d\n", e.U, e.V); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteFailed, err)
		}
	}

	return b.String(), nil
}
