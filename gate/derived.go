package gate

import "github.com/lvlath-labs/tricolor/graph"

// Nand(x, y) = Not(And(x, y)). Complexity: O(1).
func Nand(g *graph.Graph, x, y int) int {
	return NotDefault(g, And(g, x, y))
}

// Nor(x, y) = And(Not(x), Not(y)). Complexity: O(1).
func Nor(g *graph.Graph, x, y int) int {
	return And(g, NotDefault(g, x), NotDefault(g, y))
}

// Or(x, y) = Nand(Not(x), Not(y)). Complexity: O(1).
func Or(g *graph.Graph, x, y int) int {
	return Nand(g, NotDefault(g, x), NotDefault(g, y))
}

// Xnor(x, y) = Nand(Or(x, y), Nand(x, y)). Complexity: O(1).
func Xnor(g *graph.Graph, x, y int) int {
	return Nand(g, Or(g, x, y), Nand(g, x, y))
}

// Xor(x, y) = Not(Xnor(x, y)). Complexity: O(1).
func Xor(g *graph.Graph, x, y int) int {
	return NotDefault(g, Xnor(g, x, y))
}
