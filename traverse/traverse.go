package traverse

import (
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// walker encapsulates mutable search state for one call.
type walker[T comparable] struct {
	opts     Options
	frontier core.Frontier[T]
	adj      core.Adjacency[T]
	goal     T
	visited  map[T]struct{}
	res      *Result[T]
}

// Search reports whether goal is reachable from start by expanding nodes in
// the order dictated by frontier: a FIFO frontier gives breadth-first search,
// a LIFO frontier depth-first search.
//
// goal is compared only against newly discovered successors, never against
// start itself. start is marked visited before the first expansion, so it is
// never rediscovered either (not even through a self-loop): a search with
// start == goal reports false.
//
// Returns an error wrapping core.ErrInvalidArgument when start, frontier,
// adj or goal is nil; ErrFrontierNotEmpty (also wrapping
// core.ErrInvalidArgument) for a pre-filled frontier;
// ErrOptionViolation for bad options; ErrExpansionLimit or the context
// error when the run was stopped early.
func Search[T comparable](start T, frontier core.Frontier[T], adj core.Adjacency[T], goal T, opts ...Option) (bool, error) {
	res, err := Walk(start, frontier, adj, goal, opts...)
	if err != nil {
		return false, err
	}

	return res.Found, nil
}

// Walk runs the same search as Search and also reports the discovery order
// and the number of expansions.
//
// On a context or expansion-limit error the partial Result is returned
// alongside the error; on argument errors Result is nil.
func Walk[T comparable](start T, frontier core.Frontier[T], adj core.Adjacency[T], goal T, opts ...Option) (*Result[T], error) {
	if err := core.RequireArgs(
		core.Arg{Name: "start", Value: start},
		core.Arg{Name: "frontier", Value: frontier},
		core.Arg{Name: "adjacency", Value: adj},
		core.Arg{Name: "goal", Value: goal},
	); err != nil {
		return nil, err
	}
	if !frontier.IsEmpty() {
		return nil, fmt.Errorf("%w: %w: holds %d nodes", core.ErrInvalidArgument, ErrFrontierNotEmpty, frontier.Len())
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[T]{
		opts:     o,
		frontier: frontier,
		adj:      adj,
		goal:     goal,
		visited:  make(map[T]struct{}, len(adj)),
		res:      &Result[T]{Order: make([]T, 0, len(adj))},
	}

	// Seed: start is visited but never goal-checked
	w.discover(start)

	return w.res, w.loop()
}

// discover marks id visited, records it and adds it to the frontier.
func (w *walker[T]) discover(id T) {
	w.visited[id] = struct{}{}
	w.res.Order = append(w.res.Order, id)
	w.frontier.Add(id)
}

// loop expands nodes until the goal is seen, the frontier empties,
// the context is done or the expansion cap is hit.
func (w *walker[T]) loop() error {
	for !w.frontier.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}
		if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
			return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.res.Expanded)
		}

		top, _ := w.frontier.Remove()
		w.res.Expanded++
		if w.expand(top) {
			w.res.Found = true
			return nil
		}
	}

	return nil
}

// expand scans the successors of top in order and reports whether goal was
// among the newly discovered ones.
func (w *walker[T]) expand(top T) bool {
	for _, nbr := range w.adj[top] {
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		if nbr == w.goal {
			w.res.Order = append(w.res.Order, nbr)
			return true
		}
		w.discover(nbr)
	}

	return false
}
