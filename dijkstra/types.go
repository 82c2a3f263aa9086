// Package dijkstra defines the sentinel values, errors and configuration
// options for the weighted shortest-distance search.
package dijkstra

import (
	"context"
	"errors"

	"github.com/katalvlaran/graphsearch/core"
)

// NotFound is the distance reported when goal cannot be reached.
// Distances are never negative, so -1 cannot be mistaken for one.
const NotFound = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that WithNegativeWeightCheck found an edge
	// with a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// IsNotFound reports whether d is the NotFound sentinel.
func IsNotFound[W core.Weight](d W) bool {
	return d == W(NotFound)
}

// Options configures the behavior of ShortestPath.
//
// Ctx                 – cancellation, checked once per heap pop.
// CheckNegativeWeight – if true, scan every edge before searching and fail
//
//	with ErrNegativeWeight instead of returning an undefined distance.
type Options struct {
	Ctx                 context.Context
	CheckNegativeWeight bool
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - Ctx:                 context.Background()
//   - CheckNegativeWeight: false (weights are trusted, as the search never
//     needs to look at edges it does not relax)
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		CheckNegativeWeight: false,
	}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithNegativeWeightCheck enables an O(E) pre-scan of the whole mapping that
// rejects negative weights with ErrNegativeWeight.
func WithNegativeWeightCheck() Option {
	return func(o *Options) {
		o.CheckNegativeWeight = true
	}
}
