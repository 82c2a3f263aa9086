package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/graphsearch/builder"
	"github.com/katalvlaran/graphsearch/dijkstra"
)

// BenchmarkShortestPath_Grid runs corner-to-corner on an M×M grid with random weights.
func BenchmarkShortestPath_Grid(b *testing.B) {
	const M = 100
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 10))},
		builder.Grid(M, M),
	)
	if err != nil {
		b.Fatal(err)
	}
	goal := builder.GridID(M-1, M-1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath("0,0", g, goal)
	}
}

// BenchmarkShortestPath_RandomSparse measures an unreachable goal, forcing a full scan.
func BenchmarkShortestPath_RandomSparse(b *testing.B) {
	const V = 3000
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(0, 99))},
		builder.RandomSparse(V, 4.0/V),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath("0", g, "absent")
	}
}
