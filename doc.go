// Package graphsearch is a small library of generic graph searches over
// caller-owned adjacency mappings.
//
// What is inside:
//
//	core/       - Adjacency and WeightedAdjacency, the Pair value, the Frontier
//	              (queue or stack) and argument guards
//	traverse/   - the general search, parameterized by its Frontier
//	bfs/, dfs/  - breadth-first and depth-first reachability on top of traverse
//	dijkstra/   - shortest distance with non-negative weights; -1 means no path
//	edgelist/   - reader for "from to weight" text files
//	builder/    - deterministic fixture generators (paths, grids, random graphs)
//	converters/ - adapters to gonum/graph for cross-checking
//
// The shortestdistance command under cmd/ loads an edge list and answers
// distance queries interactively.
//
// Quick example:
//
//	    A ──4──▶ B
//	    │        ▲
//	    1        1
//	    ▼        │
//	    C ───────┘
//
//	g := core.WeightedAdjacency[string, int]{
//		"A": {core.NewPair("B", 4), core.NewPair("C", 1)},
//		"C": {core.NewPair("B", 1)},
//	}
//	d, _ := dijkstra.ShortestPath("A", g, "B") // 2
//	ok, _ := bfs.BFS("A", core.Adjacency[string]{"A": {"C"}}, "C") // true
//
// Searches never mutate the mapping and never panic on well-typed input;
// invalid arguments are reported as errors wrapping core.ErrInvalidArgument.
package graphsearch
