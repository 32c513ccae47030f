// Package solver decides 3-colorability of a graph.Graph and, when
// satisfiable, returns one coloring. The algorithm is depth-first
// backtracking with forward-checking domain propagation and a trail-based
// snapshot/restore discipline, grounded on the same DFS-with-undo style
// lvlath's dfs package uses for cycle detection and the exact TSP solver
// uses for its DP rollback bookkeeping - here adapted to constraint
// propagation instead of dynamic programming.
//
// Complexity: worst case exponential in the number of vertices, as with any
// exact graph-coloring search; the clique-4 fast-reject and ascending-ID
// ordering keep the common case - circuits built from the gate
// package's constant-size, heavily pre-constrained subgraphs - fast in
// practice.
package solver
