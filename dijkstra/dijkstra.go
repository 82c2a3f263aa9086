package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/graphsearch/core"
)

// ShortestPath returns the minimum total weight of a path from start to goal
// in adj, or W(NotFound) if goal cannot be reached.
//
// ShortestPath(s, adj, s) is 0: the seed entry (s, 0) is the first one popped.
//
// Preconditions and validation (in order):
//  1. start, adj and goal must be non-nil (core.ErrInvalidArgument).
//  2. With WithNegativeWeightCheck, no edge may be negative (ErrNegativeWeight).
//
// Without the check, negative weights are not detected and the result is
// undefined. Ties between equal distances are broken by heap order, which
// callers must not rely on.
//
// Complexity:
//
//   - Time:  O(E log E), the heap holds up to one entry per relaxed edge.
//   - Space: O(V + E)
func ShortestPath[T comparable, W core.Weight](start T, adj core.WeightedAdjacency[T, W], goal T, opts ...Option) (W, error) {
	// 1) Validate arguments before any state is created
	if err := core.RequireArgs(
		core.Arg{Name: "start", Value: start},
		core.Arg{Name: "adjacency", Value: adj},
		core.Arg{Name: "goal", Value: goal},
	); err != nil {
		return W(NotFound), err
	}

	// 2) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Optional pre-scan for negative weights
	if cfg.CheckNegativeWeight {
		if err := checkWeights(adj); err != nil {
			return W(NotFound), err
		}
	}

	// 4) Run the search
	r := &runner[T, W]{
		adj:     adj,
		options: cfg,
		settled: make(map[T]struct{}, len(adj)),
		pq:      make(nodePQ[T, W], 0, len(adj)),
	}
	r.init(start)

	return r.process(goal)
}

// checkWeights returns ErrNegativeWeight, annotated with the first offending
// edge found, if any weight in adj is negative.
func checkWeights[T comparable, W core.Weight](adj core.WeightedAdjacency[T, W]) error {
	for from, edges := range adj {
		for _, e := range edges {
			if e.Weight() < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, from, e.Node(), e.Weight())
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single search.
type runner[T comparable, W core.Weight] struct {
	adj     core.WeightedAdjacency[T, W] // read-only input
	options Options
	settled map[T]struct{} // nodes whose distance is final
	pq      nodePQ[T, W]   // lazy min-heap of (node, tentative distance)
}

// init pushes (start, 0) onto an empty heap.
func (r *runner[T, W]) init(start T) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, core.NewPair(start, W(0)))
}

// process pops the closest entry until goal is settled or the heap empties.
// Stale entries for already settled nodes are skipped (lazy deletion).
func (r *runner[T, W]) process(goal T) (W, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return W(NotFound), r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(core.Pair[T, W])
		u, d := item.Node(), item.Weight()

		if _, done := r.settled[u]; done {
			continue
		}
		r.settled[u] = struct{}{}

		// First pop of a node carries its final distance
		if u == goal {
			return d, nil
		}

		r.relax(u, d)
	}

	return W(NotFound), nil
}

// relax pushes (v, d+w) for every edge u→v whose target is not settled yet.
// Duplicates for the same v are expected and resolved when popped.
func (r *runner[T, W]) relax(u T, d W) {
	for _, e := range r.adj[u] {
		v := e.Node()
		if _, done := r.settled[v]; done {
			continue
		}
		heap.Push(&r.pq, core.NewPair(v, d+e.Weight()))
	}
}

// nodePQ is a min-heap of (node, distance) pairs ordered by distance.
type nodePQ[T comparable, W core.Weight] []core.Pair[T, W]

// Len returns the number of items in the heap.
func (pq nodePQ[T, W]) Len() int { return len(pq) }

// Less orders by distance only.
func (pq nodePQ[T, W]) Less(i, j int) bool { return pq[i].Less(pq[j]) }

// Swap swaps two elements in the heap.
func (pq nodePQ[T, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a core.Pair[T, W].
func (pq *nodePQ[T, W]) Push(x any) { *pq = append(*pq, x.(core.Pair[T, W])) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ[T, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
