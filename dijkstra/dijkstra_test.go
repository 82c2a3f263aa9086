// Package dijkstra_test contains unit tests for the shortest-distance search:
// validation, the reference scenarios, lazy deletion, float weights,
// cancellation and a randomized cross-check against gonum.
package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/graphsearch/builder"
	"github.com/katalvlaran/graphsearch/converters"
	"github.com/katalvlaran/graphsearch/core"
	"github.com/katalvlaran/graphsearch/dijkstra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
)

type wadj = core.WeightedAdjacency[string, int]

func p(node string, w int) core.Pair[string, int] { return core.NewPair(node, w) }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilArguments(t *testing.T) {
	d, err := dijkstra.ShortestPath[string, int]("A", nil, "B")
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.Equal(t, dijkstra.NotFound, d)

	var nilNode *string
	b := "B"
	_, err = dijkstra.ShortestPath(nilNode, core.WeightedAdjacency[*string, int]{}, &b)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	_, err = dijkstra.ShortestPath(&b, core.WeightedAdjacency[*string, int]{}, nilNode)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestShortestPath_NegativeWeightCheck(t *testing.T) {
	g := wadj{"A": {p("B", -5)}}

	_, err := dijkstra.ShortestPath("A", g, "B", dijkstra.WithNegativeWeightCheck())
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")

	// unchecked: no error, result unspecified
	_, err = dijkstra.ShortestPath("A", g, "B")
	assert.NoError(t, err)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestShortestPath_PrefersCheaperDetour(t *testing.T) {
	// A→B(4), A→C(1), C→B(1): via C costs 2
	g := wadj{"A": {p("B", 4), p("C", 1)}, "C": {p("B", 1)}}
	d, err := dijkstra.ShortestPath("A", g, "B")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := wadj{"A": {p("B", 4), p("C", 1)}, "C": {p("B", 1)}}
	d, err := dijkstra.ShortestPath("A", g, "D")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.NotFound, d)
	assert.True(t, dijkstra.IsNotFound(d))
}

func TestShortestPath_StartIsGoal(t *testing.T) {
	cases := map[string]wadj{
		"empty":     {},
		"isolated":  {"B": {p("A", 3)}},
		"self-loop": {"A": {p("A", 7)}},
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			d, err := dijkstra.ShortestPath("A", g, "A")
			require.NoError(t, err)
			assert.Equal(t, 0, d)
		})
	}
}

func TestShortestPath_DirectedOnly(t *testing.T) {
	g := wadj{"A": {p("B", 1)}}
	d, err := dijkstra.ShortestPath("B", g, "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.NotFound, d, "edges are one-way")
}

func TestShortestPath_EmptyListEqualsMissingKey(t *testing.T) {
	withKey := wadj{"A": {p("B", 2)}, "B": {}}
	without := wadj{"A": {p("B", 2)}}
	for _, goal := range []string{"A", "B", "C"} {
		d1, err := dijkstra.ShortestPath("A", withKey, goal)
		require.NoError(t, err)
		d2, err := dijkstra.ShortestPath("A", without, goal)
		require.NoError(t, err)
		assert.Equal(t, d1, d2, "goal %s", goal)
	}
}

// ------------------------------------------------------------------------
// 3. Algorithm details
// ------------------------------------------------------------------------

func TestShortestPath_LazyDeletionWithParallelEdges(t *testing.T) {
	// several routes and parallel edges push duplicates of D
	g := wadj{
		"S": {p("A", 1), p("B", 5), p("D", 20), p("D", 9)},
		"A": {p("B", 1), p("D", 7)},
		"B": {p("D", 1), p("S", 0)},
	}
	d, err := dijkstra.ShortestPath("S", g, "D")
	require.NoError(t, err)
	assert.Equal(t, 3, d) // S→A→B→D
}

func TestShortestPath_ZeroWeights(t *testing.T) {
	g := wadj{"A": {p("B", 0)}, "B": {p("C", 0)}, "C": {p("A", 0)}}
	d, err := dijkstra.ShortestPath("A", g, "C")
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestShortestPath_FloatWeights(t *testing.T) {
	g := core.WeightedAdjacency[int, float64]{
		1: {core.NewPair(2, 0.5), core.NewPair(3, 2.25)},
		2: {core.NewPair(3, 0.5)},
	}
	d, err := dijkstra.ShortestPath(1, g, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12)

	d, err = dijkstra.ShortestPath(3, g, 1)
	require.NoError(t, err)
	assert.True(t, dijkstra.IsNotFound(d))
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := wadj{"A": {p("B", 4), p("C", 1)}, "C": {p("B", 1), p("D", 6)}, "B": {p("D", 2)}}
	first, err := dijkstra.ShortestPath("A", g, "D")
	require.NoError(t, err)
	second, err := dijkstra.ShortestPath("A", g, "D")
	require.NoError(t, err)
	assert.Equal(t, 4, first)
	assert.Equal(t, first, second)
}

func TestShortestPath_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := wadj{"A": {p("B", 1)}}
	d, err := dijkstra.ShortestPath("A", g, "B", dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, dijkstra.NotFound, d)
}

// ------------------------------------------------------------------------
// 4. Randomized cross-check against gonum's Dijkstra
// ------------------------------------------------------------------------

func TestShortestPath_MatchesGonum(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		const n = 40
		// two passes over the same node set yield parallel edges with different weights
		adj, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 19))},
			builder.RandomSparse(n, 0.05),
			builder.RandomSparse(n, 0.03),
		)
		require.NoError(t, err)
		ref, ids := converters.ToGonumWeighted(adj)

		for i := 0; i < n; i++ {
			s := builder.DefaultIDFn(i)
			var sh path.Shortest
			sid, known := ids[s]
			if known {
				sh = path.DijkstraFrom(ref.Node(sid), ref)
			}
			for j := 0; j < n; j++ {
				g := builder.DefaultIDFn(j)
				got, err := dijkstra.ShortestPath(s, adj, g)
				require.NoError(t, err)

				want := math.Inf(1)
				if s == g {
					want = 0
				} else if gid, ok := ids[g]; known && ok {
					want = sh.WeightTo(gid)
				}
				if math.IsInf(want, 1) {
					require.True(t, dijkstra.IsNotFound(got), "seed %d: %s→%s", seed, s, g)
					continue
				}
				require.Equal(t, int64(want), got, "seed %d: %s→%s", seed, s, g)
			}
		}
	}
}
