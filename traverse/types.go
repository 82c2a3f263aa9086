// Package traverse provides tunable options, results and error definitions
// for the general graph search.
package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal execution.
var (
	// ErrFrontierNotEmpty is returned when the supplied frontier already holds nodes.
	ErrFrontierNotEmpty = errors.New("traverse: frontier must be empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops a search
	// before it reached an answer.
	ErrExpansionLimit = errors.New("traverse: expansion limit reached")
)

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters to customize a search run.
type Options struct {
	// Ctx allows cancellation and deadlines. It is checked once per
	// frontier removal.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of frontier removals.
	// A value of 0 disables the cap.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion cap (MaxExpansions == 0)
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
	}
}

// WithContext sets a custom context for cancellation.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions stops the search after n frontier removals.
//
//	n > 0: limit to n removals, then fail with ErrExpansionLimit
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result holds the outcome of a search run:
//   - Found: whether goal was discovered as a successor of an expanded node.
//   - Order: nodes in discovery order, start first; goal is last when Found.
//   - Expanded: number of nodes removed from the frontier.
type Result[T comparable] struct {
	Found    bool
	Order    []T
	Expanded int
}
