// Package dfs implements depth-first reachability search on core.Adjacency.
//
// Key features:
//   - DFS(start, adj, goal, opts...): reachability boolean
//   - Walk(start, adj, goal, opts...): reachability plus discovery order and pop count
//   - Iterative: the general search of package traverse with a LIFO frontier
//   - Cancellation via context.Context
//
// Order:
//
//	All successors of a node are discovered (and goal-checked) when the node is
//	popped; they are pushed in slice order, so the last successor is expanded
//	first. Nodes are marked visited on push, which means the expansion order
//	differs from the recursive pre-order DFS of textbooks while reachability
//	is identical.
//
// Start exclusion:
//
//	goal is never compared with start, so DFS(s, g, s) is false.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the stack and the visited set.
//
// Errors:
//
//   - core.ErrInvalidArgument    if start, adj or goal is nil.
//   - traverse.ErrOptionViolation for invalid options.
//   - traverse.ErrExpansionLimit  when WithMaxExpansions stops the run.
//   - context.Canceled            if ctx is done.
package dfs
