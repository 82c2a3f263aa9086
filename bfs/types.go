// Package bfs re-exports the traversal options so callers need not import
// traverse for the common cases.
package bfs

import (
	"context"

	"github.com/katalvlaran/graphsearch/traverse"
)

// Option configures BFS behavior via functional arguments.
type Option = traverse.Option

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option { return traverse.WithContext(ctx) }

// WithMaxExpansions stops the search after n dequeues (n == 0: no limit).
func WithMaxExpansions(n int) Option { return traverse.WithMaxExpansions(n) }
