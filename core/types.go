// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph representations shared by every search package.
// Policy:
//   - Plain maps and slices only; callers own the data, searches only read it.
//   - A node missing from a mapping has no outgoing edges.

package core

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument indicates that a required search argument was nil.
// Search functions wrap it with the name of the offending argument.
var ErrInvalidArgument = errors.New("core: invalid argument")

// Weight is the set of numeric types usable as edge weights and distances.
// Only signed types are allowed so that the -1 "no path" sentinel fits.
type Weight interface {
	constraints.Signed | constraints.Float
}

// Adjacency maps a node to its ordered successors.
// The slice order is the order in which a search explores them.
type Adjacency[T comparable] map[T][]T

// WeightedAdjacency maps a node to its ordered (successor, weight) pairs.
type WeightedAdjacency[T comparable, W Weight] map[T][]Pair[T, W]

// Successors returns the successors of id, or nil when id has none.
// A missing key and an empty slice are indistinguishable here.
func (a Adjacency[T]) Successors(id T) []T {
	return a[id]
}

// Successors returns the weighted successors of id, or nil when id has none.
func (a WeightedAdjacency[T, W]) Successors(id T) []Pair[T, W] {
	return a[id]
}

// EdgeCount reports the total number of entries across all successor lists.
// Complexity: O(V).
func (a Adjacency[T]) EdgeCount() int {
	n := 0
	for _, s := range a {
		n += len(s)
	}

	return n
}

// EdgeCount reports the total number of weighted edges.
// Complexity: O(V).
func (a WeightedAdjacency[T, W]) EdgeCount() int {
	n := 0
	for _, s := range a {
		n += len(s)
	}

	return n
}

// AddEdge appends the edge from→to with weight w to from's successor list.
// It is a convenience for builders such as edgelist; searches never call it.
func (a WeightedAdjacency[T, W]) AddEdge(from, to T, w W) {
	a[from] = append(a[from], NewPair(to, w))
}

// Pair attaches a weight to a node. It is an immutable value: both fields
// are unexported and Pair values compare with ==.
type Pair[T comparable, W Weight] struct {
	node   T
	weight W
}

// NewPair returns the pair (node, weight).
func NewPair[T comparable, W Weight](node T, weight W) Pair[T, W] {
	return Pair[T, W]{node: node, weight: weight}
}

// Node returns the node component.
func (p Pair[T, W]) Node() T { return p.node }

// Weight returns the numeric component.
func (p Pair[T, W]) Weight() W { return p.weight }

// Less orders pairs by weight only; nodes never take part in the comparison.
func (p Pair[T, W]) Less(q Pair[T, W]) bool { return p.weight < q.weight }
