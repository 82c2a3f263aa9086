// Package traverse implements the general graph search shared by the bfs and
// dfs packages.
//
// What
//
//   - Decide whether goal is reachable from start in a core.Adjacency.
//   - The order of exploration is injected as a core.Frontier: a FIFO
//     core.Queue yields breadth-first search, a LIFO core.Stack depth-first.
//   - Walk additionally returns the discovery order and the expansion count.
//
// Semantics
//
//   - start is marked visited and added to the frontier.
//   - While the frontier is not empty, one node is removed and its successors
//     are scanned in slice order. An unvisited successor equal to goal ends
//     the search with true; any other unvisited successor is marked visited
//     and added.
//   - goal is never compared against start itself, so start == goal reports
//     false. This is deliberate and relied upon by callers.
//   - Nodes are marked visited when added, not when removed, so each node
//     enters the frontier at most once.
//
// Complexity (V = nodes reached, E = edges scanned)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the visited set, the frontier and Result.Order
//
// Options
//
//   - WithContext(ctx)         cooperative cancellation, checked once per removal.
//   - WithMaxExpansions(n)     stop with ErrExpansionLimit after n removals.
//
// Errors
//
//   - core.ErrInvalidArgument  start, frontier, adjacency or goal is nil.
//   - ErrFrontierNotEmpty      the frontier was not empty on entry; the error
//                              also matches core.ErrInvalidArgument.
//   - ErrOptionViolation       an option carried an invalid value.
//   - ErrExpansionLimit        the expansion cap was reached.
//   - ctx.Err()                the context was cancelled.
//
// A missing path is not an error: Search returns false.
package traverse
