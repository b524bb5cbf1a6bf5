package dfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
)

// position returns index of v in order or -1 if not found.
func position(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalSort(core.NewGraph())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

func TestTopo_RespectsEdges(t *testing.T) {
	g := buildGraph(t, 6, [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}, {4, 6}, {5, 6}})

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 6)
	for _, e := range g.Edges() {
		assert.Less(t, position(order, e.From), position(order, e.To), "edge %d→%d", e.From, e.To)
	}
}

func TestTopo_Deterministic(t *testing.T) {
	g := buildForward(t, 5)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
}

func TestTopo_Cycle(t *testing.T) {
	g := buildGraph(t, 3, [][2]int{{1, 2}, {2, 3}, {3, 1}})

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopo_Canceled(t *testing.T) {
	g := buildForward(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.TopologicalSort(g, dfs.WithCancelContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCountPaths_MatchesEnumeration(t *testing.T) {
	tests := []struct {
		name       string
		g          *core.Graph
		start, end int
	}{
		{"diamond", buildGraph(t, 4, [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}}), 1, 4},
		{"forward9", buildForward(t, 9), 1, 9},
		{"forward9-mid", buildForward(t, 9), 3, 7},
		{"unreachable", buildForward(t, 4), 4, 1},
		{"parallel", buildGraph(t, 3, [][2]int{{1, 2}, {1, 2}, {2, 3}}), 1, 3},
		{"same", buildForward(t, 4), 2, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			paths, err := dfs.AllPaths(tc.g, tc.start, tc.end)
			require.NoError(t, err)

			n, err := dfs.CountPaths(tc.g, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, uint64(len(paths)), n)
		})
	}
}

func TestCountPaths_Errors(t *testing.T) {
	_, err := dfs.CountPaths(nil, 1, 2)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	g := buildGraph(t, 3, [][2]int{{1, 2}, {2, 3}, {3, 2}})
	_, err = dfs.CountPaths(g, 1, 42)
	assert.ErrorIs(t, err, dfs.ErrInvalidQuery)

	_, err = dfs.CountPaths(g, 1, 3)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}
