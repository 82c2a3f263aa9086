// Package bfs provides breadth-first reachability search over a core.Adjacency.
package bfs

import (
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/traverse"
)

// BFS reports whether goal is reachable from start, exploring nodes in
// non-decreasing hop count. It is traverse.Search with a fresh FIFO frontier.
//
// start itself is never compared with goal: BFS(s, g, s) is false.
// Returns an error wrapping core.ErrInvalidArgument when start, adj or goal
// is nil, traverse.ErrOptionViolation for bad options, or the cancellation /
// expansion-limit error.
func BFS[T comparable](start T, adj core.Adjacency[T], goal T, opts ...Option) (bool, error) {
	return traverse.Search(start, core.Frontier[T](core.NewQueue[T]()), adj, goal, opts...)
}

// Walk runs BFS and also returns the discovery order (layer by layer) and
// the number of dequeued nodes.
func Walk[T comparable](start T, adj core.Adjacency[T], goal T, opts ...Option) (*traverse.Result[T], error) {
	return traverse.Walk(start, core.Frontier[T](core.NewQueue[T]()), adj, goal, opts...)
}
