package dijkstra_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dijkstra"
)

type street struct {
	from, to, dist int
}

func build(t testing.TB, n int, streets []street) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 1; id <= n; id++ {
		require.NoError(t, g.AddNode(id, "Auto Stand"))
	}
	for _, s := range streets {
		require.NoError(t, g.AddEdge(s.from, s.to, core.EdgeInfo{Distance: s.dist}))
	}

	return g
}

// 1→2 (1), 2→3 (1), 1→3 (5), 3→4 (2); 5 isolated.
func sample(t testing.TB) *core.Graph {
	return build(t, 5, []street{{1, 2, 1}, {2, 3, 1}, {1, 3, 5}, {3, 4, 2}})
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra(nil, dijkstra.Source(1))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := sample(t)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source(9))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(1),
		dijkstra.WithWeight(func(core.Edge) float64 { return -1 }))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.Dijkstra(g, dijkstra.Source(1),
		dijkstra.WithWeight(func(core.Edge) float64 { return math.NaN() }))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithWeight(nil) })
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

func TestDijkstra_Distances(t *testing.T) {
	res, err := dijkstra.Dijkstra(sample(t), dijkstra.Source(1))
	require.NoError(t, err)

	assert.Equal(t, map[int]float64{1: 0, 2: 1, 3: 2, 4: 4}, res.Dist)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, path)

	path, err = res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, path)

	_, err = res.PathTo(5)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestDijkstra_CustomWeight(t *testing.T) {
	// Every street costs 1: fewest hops wins.
	res, err := dijkstra.Dijkstra(sample(t), dijkstra.Source(1),
		dijkstra.WithWeight(func(core.Edge) float64 { return 1 }))
	require.NoError(t, err)
	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, path)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(sample(t), dijkstra.Source(1), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{1: 0, 2: 1, 3: 2}, res.Dist)
}

func TestDijkstra_FirstParallelStreet(t *testing.T) {
	// The cheaper second street 1→2 is ignored.
	g := build(t, 2, []street{{1, 2, 7}, {1, 2, 1}})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.Dist[2])
}

func TestDijkstra_Cycle(t *testing.T) {
	g := build(t, 3, []street{{1, 2, 1}, {2, 1, 1}, {2, 3, 1}, {3, 1, 1}})
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(2))
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{2: 0, 1: 1, 3: 1}, res.Dist)
}

func TestDijkstra_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := dijkstra.Dijkstra(sample(t), dijkstra.Source(1), dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
