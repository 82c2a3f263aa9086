// Package core defines the graph representations, the pluggable frontier and
// the argument guards shared by the traverse, bfs, dfs and dijkstra packages.
//
// Graphs are plain adjacency mappings owned by the caller:
//
//	g := core.Adjacency[string]{
//		"A": {"B", "C"},
//		"B": {"D"},
//	}
//
//	w := core.WeightedAdjacency[string, int]{
//		"A": {core.NewPair("B", 4), core.NewPair("C", 1)},
//		"C": {core.NewPair("B", 1)},
//	}
//
// A node that is not a key has no outgoing edges; searches treat it exactly
// like a key with an empty slice. The order of a successor slice is the order
// in which searches explore it.
//
// Frontier is the order structure of the general search. NewQueue yields a
// FIFO frontier (breadth-first), NewStack a LIFO one (depth-first).
//
// Errors:
//
//	ErrInvalidArgument - a required search argument was nil.
package core
