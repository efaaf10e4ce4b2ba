package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourkit/dijkstra"
)

func TestOptimizeRoute_ABCD(t *testing.T) {
	tab := abcd(t)
	stops, err := tab.Resolve([]string{"A", "B", "C", "D"})
	require.NoError(t, err)

	r, err := dijkstra.OptimizeRoute(tab, stops)
	require.NoError(t, err)
	assert.Equal(t, stops, r.Nodes)
	assert.Equal(t, int64(4), r.Length)
	require.Len(t, r.Segments, 3)
	assert.Equal(t, int64(1), r.Segments[0].Length)
}

func TestOptimizeRoute_ExpandsDetours(t *testing.T) {
	// 0→2 is cheaper through 1, 2→3 is direct.
	m := matrix{
		{-1, 1, 10, -1},
		{1, -1, 2, -1},
		{10, 2, -1, 7},
		{-1, -1, 7, -1},
	}
	r, err := dijkstra.OptimizeRoute(m, []int{0, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, r.Nodes)
	assert.Equal(t, int64(10), r.Length)
	assert.Equal(t, []int{0, 1, 2}, r.Segments[0].Nodes)
	assert.Equal(t, []int{2, 3}, r.Segments[1].Nodes)
}

func TestOptimizeRoute_RepeatedStop(t *testing.T) {
	tab := abcd(t)
	r, err := dijkstra.OptimizeRoute(tab, []int{0, 0, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, r.Nodes)
	assert.Equal(t, int64(3), r.Length)
}

func TestOptimizeRoute_Errors(t *testing.T) {
	_, err := dijkstra.OptimizeRoute(abcd(t), []int{1})
	assert.ErrorIs(t, err, dijkstra.ErrTooFewStops)

	_, err = dijkstra.OptimizeRoute(nil, []int{0, 1})
	assert.ErrorIs(t, err, dijkstra.ErrNilOracle)

	m := matrix{
		{-1, 1, -1},
		{1, -1, -1},
		{-1, -1, -1},
	}
	r, err := dijkstra.OptimizeRoute(m, []int{0, 1, 2})
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	assert.Empty(t, r.Nodes)
	assert.Empty(t, r.Segments)
}
