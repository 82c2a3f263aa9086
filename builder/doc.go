// Package builder generates deterministic graph fixtures for the search
// packages: paths, cycles, stars, complete graphs, grids and seeded random
// sparse graphs.
//
// Every fixture is a core.WeightedAdjacency[string, int64]; Unweighted drops
// the weights for bfs and dfs. Node IDs come from an IDFn (decimal by
// default), weights from a WeightFn (1 by default).
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.RandomSparse(100, 0.05),
//	)
package builder
