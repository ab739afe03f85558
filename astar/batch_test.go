package astar_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarmaze/astar"
	"github.com/katalvlaran/astarmaze/gridgraph"
	"github.com/katalvlaran/astarmaze/maze"
)

// TestSearchBatch_MatchesSequential shares one graph between concurrent
// queries and expects exactly the sequential results, in query order.
func TestSearchBatch_MatchesSequential(t *testing.T) {
	cfg := maze.Config{Width: 30, Height: 30, ObstacleProb: 0.2, WeightedProb: 0.2, MinWeight: 2, MaxWeight: 5, Seed: 5}
	grid, err := maze.Generate(cfg)
	require.NoError(t, err)
	g := gridgraph.BuildGraph(grid)

	comps := grid.ConnectedComponents()
	require.NotEmpty(t, comps)
	cells := comps[0]
	for _, c := range comps {
		if len(c) > len(cells) {
			cells = c
		}
	}
	var queries []astar.Query
	for i := 0; i+1 < len(cells) && len(queries) < 40; i += 7 {
		queries = append(queries, astar.Query{Start: cells[i], Goal: cells[len(cells)-1-i]})
	}

	var expanded atomic.Int64
	got, err := astar.SearchBatch(context.Background(), g, queries, 4,
		astar.WithOnExpand(func(gridgraph.Cell, int64) { expanded.Add(1) }))
	require.NoError(t, err)
	require.Len(t, got, len(queries))

	var total int64
	for i, q := range queries {
		want, err := astar.Search(g, q.Start, q.Goal)
		require.NoError(t, err)
		assert.Equal(t, want, got[i], "query %d", i)
		total += int64(want.Expanded)
	}
	assert.Equal(t, total, expanded.Load())
}

func TestSearchBatch_FirstErrorWins(t *testing.T) {
	g := mustGraph(t, uniform(3, 3))
	queries := []astar.Query{
		{Start: cell{X: 0, Y: 0}, Goal: cell{X: 2, Y: 2}},
		{Start: cell{X: 9, Y: 9}, Goal: cell{X: 0, Y: 0}},
	}
	_, err := astar.SearchBatch(context.Background(), g, queries, 0)
	assert.ErrorIs(t, err, gridgraph.ErrCellOutOfBounds)
}

func TestSearchBatch_Canceled(t *testing.T) {
	g := mustGraph(t, uniform(3, 3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.SearchBatch(ctx, g, []astar.Query{{Start: cell{X: 0, Y: 0}, Goal: cell{X: 2, Y: 2}}}, 1)
	assert.ErrorIs(t, err, astar.ErrCanceled)
}

func TestSearchBatch_NilGraphAndEmpty(t *testing.T) {
	_, err := astar.SearchBatch(context.Background(), nil, nil, 1)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	res, err := astar.SearchBatch(context.Background(), mustGraph(t, uniform(1, 1)), nil, 1)
	require.NoError(t, err)
	assert.Empty(t, res)
}
