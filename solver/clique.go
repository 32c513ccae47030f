package solver

import "github.com/lvlath-labs/tricolor/graph"

// HasClique4 reports whether g contains four mutually adjacent vertices.
// A 4-clique is a cheap, sufficient witness of
// non-3-colorability - pigeonhole forces two of the four vertices to share
// a color - so Solve uses it to reject obviously infeasible graphs before
// paying for a full backtracking search.
//
// Complexity: O(E * d^2) where d is the maximum vertex degree: each edge's
// common neighbors are found through the smaller endpoint's neighbor set
// (probing membership in the other endpoint's set) and then checked
// pairwise, rather than enumerating all C(n,4) vertex subsets or scanning
// every vertex per edge.
func HasClique4(g *graph.Graph) bool {
	n := g.VertexCount()

	adjSet := make([]map[int]struct{}, n)
	for v := 0; v < n; v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			continue
		}

		set := make(map[int]struct{}, len(nbrs))
		for _, u := range nbrs {
			set[u] = struct{}{}
		}
		adjSet[v] = set
	}

	for _, e := range g.Edges() {
		u, v := e.U, e.V

		scan, probe := u, v
		if len(adjSet[v]) < len(adjSet[u]) {
			scan, probe = v, u
		}

		var common []int
		for w := range adjSet[scan] {
			if w == u || w == v {
				continue
			}
			if _, ok := adjSet[probe][w]; !ok {
				continue
			}
			common = append(common, w)
		}

		for i := 0; i < len(common); i++ {
			for j := i + 1; j < len(common); j++ {
				if _, ok := adjSet[common[i]][common[j]]; ok {
					return true
				}
			}
		}
	}

	return false
}
