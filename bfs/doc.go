// Package bfs provides breadth-first reachability search over a core.Adjacency.
//
// What
//
//   - BFS(start, adj, goal) reports whether goal can be reached from start.
//   - Walk(start, adj, goal) also returns the discovery order and the number
//     of dequeued nodes.
//   - Both are the general search of package traverse with a FIFO frontier.
//
// Determinism
//
//	Successors are scanned in slice order and the queue is FIFO, so the
//	discovery order is fully reproducible: layer by layer, and inside a layer
//	in the order nodes were discovered.
//
// Start exclusion
//
//	goal is only compared against newly discovered successors. Since start is
//	visited before anything else, BFS(s, g, s) is false even when s lies on a
//	cycle. Callers wanting "trivially reachable" must test start == goal first.
//
// Complexity (V = nodes reached, E = edges scanned)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	g := core.Adjacency[string]{"A": {"B", "C"}, "C": {"D"}}
//	ok, err := bfs.BFS("A", g, "D")
//	if err != nil {
//		// core.ErrInvalidArgument, traverse.ErrOptionViolation,
//		// traverse.ErrExpansionLimit or a context error
//	}
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per dequeue.
//   - WithMaxExpansions(n):    fail with traverse.ErrExpansionLimit after n dequeues.
package bfs
