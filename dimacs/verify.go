package dimacs

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/lvlath-labs/tricolor/graph"
)

// VerifyWithGini cross-checks a graph-coloring instance against an
// external SAT engine (gini), independent of this module's own backtracking
// solver. It encodes "g is 3-colorable" as CNF over three Boolean
// variables per vertex (vertex v is color c iff DIMACS variable 3v+c+1
// holds):
//
//   - at-least-one-color: for every vertex, a clause over its three color
//     variables.
//   - at-most-one-color: for every vertex and every pair of its color
//     variables, a binary clause forbidding both.
//   - edge exclusion: for every edge (u, v) and every color c, a binary
//     clause forbidding u and v from both holding c.
//
// and hands the resulting clauses to gini.Gini.Add, matching gini's IPASIR
// style convention: one literal per Add call, each clause terminated by a
// trailing Add(z.LitNull). This exercises gini purely as an external
// cross-check of the emitted instance - it is never on the solve path of
// the solver package itself.
func VerifyWithGini(g *graph.Graph) bool {
	n := g.VertexCount()
	sat := gini.New()

	litFor := func(v, c int) z.Lit {
		return z.Dimacs2Lit(v*3 + c + 1)
	}

	addClause := func(lits ...z.Lit) {
		for _, l := range lits {
			sat.Add(l)
		}
		sat.Add(z.LitNull)
	}

	for v := 0; v < n; v++ {
		addClause(litFor(v, 0), litFor(v, 1), litFor(v, 2))

		for c := 0; c < 3; c++ {
			for c2 := c + 1; c2 < 3; c2++ {
				addClause(litFor(v, c).Not(), litFor(v, c2).Not())
			}
		}
	}

	for _, e := range g.Edges() {
		for c := 0; c < 3; c++ {
			addClause(litFor(e.U, c).Not(), litFor(e.V, c).Not())
		}
	}

	return sat.Solve() == 1
}
