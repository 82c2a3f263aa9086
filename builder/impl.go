// SPDX-License-Identifier: MIT
// Package: graphsearch/builder
//
// impl.go: deterministic and stochastic topology constructors.
//
// All constructors emit directed edges only.

package builder

import (
	"fmt"
	"strconv"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minGridDim       = 1
)

// Path returns a Constructor for the chain v0→v1→…→v(n-1).
func Path(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn(i+1), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring v0→v1→…→v(n-1)→v0.
func Cycle(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddEdge(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Star returns a Constructor with hub v0 and spokes v0→vi for i in [1..n-1].
func Star(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			g.AddEdge(hub, cfg.idFn(i), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Complete returns a Constructor linking every ordered pair (vi, vj), i ≠ j.
// Successors of vi are listed in ascending j; every vi becomes a key.
func Complete(n int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			from := cfg.idFn(i)
			if _, ok := g[from]; !ok {
				g[from] = nil
			}
			for j := 0; j < n; j++ {
				if i != j {
					g.AddEdge(from, cfg.idFn(j), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice with edges pointing
// right and down. Node IDs are "r,c" and ignore the configured IDFn.
// Each cell lists its right neighbour before its lower neighbour.
func Grid(rows, cols int) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				from := GridID(r, c)
				if c+1 < cols {
					g.AddEdge(from, GridID(r, c+1), cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					g.AddEdge(from, GridID(r+1, c), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}

// GridID formats the node ID of cell (r, c) as used by Grid.
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// RandomSparse returns a Constructor that adds each ordered pair (vi, vj),
// i ≠ j, independently with probability p. Requires an RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%.3f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			from := cfg.idFn(i)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					g.AddEdge(from, cfg.idFn(j), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
