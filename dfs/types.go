// Package dfs re-exports the traversal options.
package dfs

import (
	"context"

	"github.com/katalvlaran/graphsearch/traverse"
)

// Option configures DFS behavior via functional arguments.
type Option = traverse.Option

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option { return traverse.WithContext(ctx) }

// WithMaxExpansions stops the search after n pops (n == 0: no limit).
func WithMaxExpansions(n int) Option { return traverse.WithMaxExpansions(n) }
