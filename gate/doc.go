// Package gate implements the combinators that extend a graph.Graph with
// the subgraphs realising Boolean logic gates over the tri-state encoding.
// Each combinator is a pure extension: it allocates vertices and edges and
// never inspects or depends on the graph's current colorability. AND is the
// keystone gate; NAND/OR/NOR/XOR/XNOR are all defined in terms of AND and
// Not.
package gate
