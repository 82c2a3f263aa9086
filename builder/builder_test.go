// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/katalvlaran/graphsearch/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, "1", g.Successors("0")[0].Node())
	assert.Equal(t, int64(1), g.Successors("0")[0].Weight())
	assert.Empty(t, g.Successors("3"))

	_, err = builder.BuildGraph(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCycleStarComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, "0", g.Successors("2")[0].Node())

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Star(4))
	require.NoError(t, err)
	require.Len(t, g.Successors("A"), 3)
	assert.Equal(t, "D", g.Successors("A")[2].Node())

	g, err = builder.BuildGraph(nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	g, err = builder.BuildGraph(nil, builder.Complete(1))
	require.NoError(t, err)
	assert.Contains(t, g, "0")
	assert.Equal(t, 0, g.EdgeCount())

	_, err = builder.BuildGraph(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestGrid(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(5))}, builder.Grid(2, 3))
	require.NoError(t, err)
	// right edges: 2*2, down edges: 1*3
	assert.Equal(t, 7, g.EdgeCount())

	succ := g.Successors(builder.GridID(0, 0))
	require.Len(t, succ, 2)
	assert.Equal(t, "0,1", succ[0].Node())
	assert.Equal(t, "1,0", succ[1].Node())
	assert.Equal(t, int64(5), succ[0].Weight())

	_, err = builder.BuildGraph(nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(10, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(10, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(2, 9))}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(2, 9))}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must give the same graph")

	for from, pairs := range a {
		for _, p := range pairs {
			assert.NotEqual(t, from, p.Node(), "no self-loops")
			assert.GreaterOrEqual(t, p.Weight(), int64(2))
			assert.LessOrEqual(t, p.Weight(), int64(9))
		}
	}

	full, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 20, full.EdgeCount())
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(2), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestUnweighted(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Star(3), builder.Complete(1))
	require.NoError(t, err)
	u := builder.Unweighted(g)
	assert.Equal(t, []string{"1", "2"}, u["0"])
	assert.Equal(t, g.EdgeCount(), u.EdgeCount())
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "ZZ", builder.ExcelColumnIDFn(701))
	assert.Equal(t, "AAA", builder.ExcelColumnIDFn(702))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil))
}
