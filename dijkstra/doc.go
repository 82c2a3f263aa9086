// Package dijkstra computes single-pair shortest distances on graphs with
// non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(start, adj, goal) returns the minimum total weight of a
//     path from start to goal, or the NotFound sentinel (-1) when no path exists.
//   - Graphs are core.WeightedAdjacency mappings; weights may be any signed
//     integer or floating-point type (core.Weight).
//   - Only the distance is computed; paths are not reconstructed.
//
// Algorithm:
//
//   - Uniform-cost search with a container/heap min-heap keyed by accumulated
//     distance.
//   - "Lazy" decrease-key: a shorter route to a node pushes a new heap entry;
//     stale entries are skipped when popped because the node is already settled.
//   - The search stops as soon as goal is popped for the first time; with
//     non-negative weights that distance is final.
//   - ShortestPath(s, adj, s) is 0 because (s, 0) is popped first.
//
// Performance and complexity:
//
//   - Time:  O(E log E); each relaxation may push one entry.
//   - Space: O(V + E); the heap may hold O(E) entries under lazy deletion.
//
// Error handling:
//
//   - core.ErrInvalidArgument: start, adj or goal is nil.
//   - ErrNegativeWeight: only with WithNegativeWeightCheck().
//   - ctx.Err(): only with WithContext(ctx) and a cancelled ctx.
//
// "No path" is not an error: check the result with IsNotFound.
//
// Thread safety:
//
//   - ShortestPath keeps no state between calls and never writes to adj;
//     concurrent calls on a mapping nobody mutates are safe.
package dijkstra
