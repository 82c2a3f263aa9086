package dfs

import (
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/traverse"
)

// DFS reports whether goal is reachable from start, always expanding the
// most recently discovered node next. It is traverse.Search with a fresh
// LIFO frontier, so it runs iteratively and never grows the call stack.
//
// start itself is never compared with goal: DFS(s, g, s) is false.
// Errors are those of traverse.Search.
func DFS[T comparable](start T, adj core.Adjacency[T], goal T, opts ...Option) (bool, error) {
	return traverse.Search(start, core.Frontier[T](core.NewStack[T]()), adj, goal, opts...)
}

// Walk runs DFS and also returns the discovery order and the number of
// popped nodes.
func Walk[T comparable](start T, adj core.Adjacency[T], goal T, opts ...Option) (*traverse.Result[T], error) {
	return traverse.Walk(start, core.Frontier[T](core.NewStack[T]()), adj, goal, opts...)
}
