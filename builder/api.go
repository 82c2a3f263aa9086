// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// api.go: public surface: Constructor, BuildGraph and Unweighted.
//
// Contract:
//   • Every Constructor appends directed edges to the same adjacency, in the
//     order constructors are passed.
//   • Successor order is deterministic for a fixed option set and seed.
//   • Errors are sentinel-wrapped; constructors never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// Graph is the adjacency produced by BuildGraph: string node IDs and
// non-negative int64 weights, matching the edge-list format.
type Graph = core.WeightedAdjacency[string, int64]

// Constructor appends a topology to g using the resolved configuration.
type Constructor func(g Graph, cfg builderConfig) error

// BuildGraph allocates an empty Graph, resolves opts and runs each
// Constructor over it in order.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (Graph, error) {
	cfg := newBuilderConfig(opts...)
	g := make(Graph)
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("%w: constructor %d is nil", ErrConstructFailed, i)
		}
		if err := c(g, cfg); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Unweighted projects g onto a core.Adjacency by dropping weights.
// Every key of g is kept, including keys with an empty successor list.
func Unweighted(g Graph) core.Adjacency[string] {
	out := make(core.Adjacency[string], len(g))
	for from, pairs := range g {
		succ := make([]string, len(pairs))
		for i, p := range pairs {
			succ[i] = p.Node()
		}
		out[from] = succ
	}

	return out
}
