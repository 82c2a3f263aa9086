// Package converters provides one-way adapters from the graphsearch adjacency
// types to gonum/graph.
//
// Use converters to cross-check search results against gonum's traversal and
// shortest-path implementations, or to hand a fixture to any gonum algorithm.
package converters
