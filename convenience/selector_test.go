package convenience_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/convenience"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
)

func TestMinIndex(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   int
	}{
		{"middle", []float64{0.9, 0.4, 1.2}, 1},
		{"single", []float64{3}, 0},
		{"tie keeps first", []float64{2, 1, 1, 5}, 1},
		{"all equal", []float64{7, 7, 7}, 0},
		{"last", []float64{5, 4, 3}, 2},
		{"all inf", []float64{math.Inf(1), math.Inf(1)}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := convenience.MinIndex(tc.scores)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMinIndex_Empty(t *testing.T) {
	idx, err := convenience.MinIndex(nil)
	assert.ErrorIs(t, err, convenience.ErrNoPath)
	assert.Equal(t, -1, idx)
}

func TestScorer_Select(t *testing.T) {
	g := diamond(t)
	paths, err := dfs.AllPaths(g, 1, 4)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 2, 4}, {1, 3, 4}}, paths)

	choice, err := convenience.NewScorer(g).Select(paths)
	require.NoError(t, err)

	// Long edges have the smaller inverse terms.
	assert.Equal(t, []int{1, 3, 4}, choice.Path)
	assert.Equal(t, 1, choice.Index)
	assert.InDelta(t, 2*manual(infoLong), choice.Score, delta)
}

func TestScorer_Select_Empty(t *testing.T) {
	_, err := convenience.NewScorer(diamond(t)).Select([][]int{})
	assert.ErrorIs(t, err, convenience.ErrNoPath)
}

func TestScorer_Select_SameStop(t *testing.T) {
	choice, err := convenience.NewScorer(diamond(t)).Select([][]int{{2}})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, choice.Path)
	assert.Equal(t, 0.0, choice.Score)
}

func TestScorer_Select_BrokenCandidate(t *testing.T) {
	_, err := convenience.NewScorer(diamond(t)).Select([][]int{{1, 2, 4}, {1, 4}})
	assert.ErrorIs(t, err, convenience.ErrBrokenPath)
}

func TestScorer_Rank(t *testing.T) {
	g := core.NewGraph()
	for id := 1; id <= 4; id++ {
		require.NoError(t, g.AddNode(id, "Bus Stop"))
	}
	same := core.EdgeInfo{Distance: 4, Traffic: 4, RedLights: 1}
	require.NoError(t, g.AddEdge(1, 2, same))
	require.NoError(t, g.AddEdge(1, 3, same))
	require.NoError(t, g.AddEdge(2, 4, same))
	require.NoError(t, g.AddEdge(3, 4, same))
	require.NoError(t, g.AddEdge(1, 4, infoShort))

	s := convenience.NewScorer(g)
	paths, err := dfs.AllPaths(g, 1, 4)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	ranked, err := s.Rank(paths)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	// The two equal-score detours keep discovery order.
	assert.Equal(t, []int{1, 2, 4}, ranked[0].Path)
	assert.Equal(t, []int{1, 3, 4}, ranked[1].Path)
	assert.Equal(t, []int{1, 4}, ranked[2].Path)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}

	choice, err := s.Select(paths)
	require.NoError(t, err)
	assert.Equal(t, ranked[0].Path, choice.Path)
}
