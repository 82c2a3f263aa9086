// SPDX-License-Identifier: MIT
// Package: graphsearch/converters

package converters

import (
	"github.com/katalvlaran/graphsearch/core"
	"gonum.org/v1/gonum/graph/simple"
)

// IDs maps each node of the source adjacency to its gonum node ID.
type IDs[T comparable] map[T]int64

// idOf returns the gonum ID for v, allocating the next free one on first use.
func (ids IDs[T]) idOf(v T) int64 {
	id, ok := ids[v]
	if !ok {
		id = int64(len(ids))
		ids[v] = id
	}

	return id
}

// ToGonumDirected copies adj into a gonum simple.DirectedGraph.
//
// Every key and every successor becomes a node. Self-loops are dropped and
// parallel edges collapse into one, since simple graphs hold neither.
func ToGonumDirected[T comparable](adj core.Adjacency[T]) (*simple.DirectedGraph, IDs[T]) {
	g := simple.NewDirectedGraph()
	ids := make(IDs[T], len(adj))
	ensure := func(v T) int64 {
		id := ids.idOf(v)
		if g.Node(id) == nil {
			g.AddNode(simple.Node(id))
		}
		return id
	}

	for from, succ := range adj {
		fid := ensure(from)
		for _, to := range succ {
			tid := ensure(to)
			if fid == tid {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(fid), T: simple.Node(tid)})
		}
	}

	return g, ids
}

// ToGonumWeighted copies adj into a gonum simple.WeightedDirectedGraph with
// float64 weights. Self-loops are dropped; among parallel edges the lightest
// one is kept, which preserves shortest distances.
func ToGonumWeighted[T comparable, W core.Weight](adj core.WeightedAdjacency[T, W]) (*simple.WeightedDirectedGraph, IDs[T]) {
	g := simple.NewWeightedDirectedGraph(0, 0)
	ids := make(IDs[T], len(adj))
	ensure := func(v T) int64 {
		id := ids.idOf(v)
		if g.Node(id) == nil {
			g.AddNode(simple.Node(id))
		}
		return id
	}

	for from, pairs := range adj {
		fid := ensure(from)
		for _, p := range pairs {
			tid := ensure(p.Node())
			if fid == tid {
				continue
			}
			w := float64(p.Weight())
			if e := g.WeightedEdge(fid, tid); e != nil && e.Weight() <= w {
				continue
			}
			g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(fid), T: simple.Node(tid), W: w})
		}
	}

	return g, ids
}
