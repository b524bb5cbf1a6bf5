package convenience_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/convenience"
	"github.com/katalvlaran/citynav/core"
)

const delta = 1e-9

var (
	infoShort = core.EdgeInfo{Distance: 3, Traffic: 2, RedLights: 0}
	infoLong  = core.EdgeInfo{Distance: 10, Traffic: 8, RedLights: 4}
)

// diamond builds 1→2→4 over short edges and 1→3→4 over long edges.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for id := 1; id <= 4; id++ {
		require.NoError(t, g.AddNode(id, "Bus Stop"))
	}
	require.NoError(t, g.AddEdge(1, 2, infoShort))
	require.NoError(t, g.AddEdge(1, 3, infoLong))
	require.NoError(t, g.AddEdge(2, 4, infoShort))
	require.NoError(t, g.AddEdge(3, 4, infoLong))

	return g
}

func manual(info core.EdgeInfo) float64 {
	return 0.5/(float64(info.Distance)+0.01) +
		0.2/(float64(info.Traffic)+0.01) +
		0.3/(float64(info.RedLights)+0.01)
}

func TestEdgeScore_Formula(t *testing.T) {
	for _, info := range []core.EdgeInfo{
		infoShort,
		infoLong,
		{Distance: 0, Traffic: 0, RedLights: 0},
		{Distance: 7, Traffic: 5, RedLights: 2},
	} {
		assert.InDelta(t, manual(info), convenience.EdgeScore(info), delta, "info=%+v", info)
	}
	// Zero attributes hit the ε floor: 0.5/0.01 + 0.2/0.01 + 0.3/0.01.
	assert.InDelta(t, 100.0, convenience.EdgeScore(core.EdgeInfo{}), 1e-6)
}

func TestScorer_Score(t *testing.T) {
	g := diamond(t)
	s := convenience.NewScorer(g)

	got, err := s.Score([]int{1, 2, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2*manual(infoShort), got, delta)

	got, err = s.Score([]int{1, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 2*manual(infoLong), got, delta)
}

func TestScorer_Score_SingleStop(t *testing.T) {
	s := convenience.NewScorer(diamond(t))
	got, err := s.Score([]int{3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestScorer_Score_Errors(t *testing.T) {
	s := convenience.NewScorer(diamond(t))

	_, err := s.Score(nil)
	assert.ErrorIs(t, err, convenience.ErrEmptyPath)

	_, err = s.Score([]int{1, 4})
	assert.ErrorIs(t, err, convenience.ErrBrokenPath)

	// Reverse direction does not exist.
	_, err = s.Score([]int{4, 2, 1})
	assert.ErrorIs(t, err, convenience.ErrBrokenPath)

	_, err = convenience.NewScorer(nil).Score([]int{1})
	assert.ErrorIs(t, err, convenience.ErrGraphNil)
}

func TestScorer_Score_FirstParallelEdgeWins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, "Bus Stop"))
	require.NoError(t, g.AddNode(2, "Taxi Stand"))
	require.NoError(t, g.AddEdge(1, 2, infoLong))
	require.NoError(t, g.AddEdge(1, 2, infoShort))

	got, err := convenience.NewScorer(g).Score([]int{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, manual(infoLong), got, delta)
}

func TestScorer_Options(t *testing.T) {
	g := diamond(t)
	w := convenience.Weights{Distance: 1}
	s := convenience.NewScorer(g, convenience.WithWeights(w), convenience.WithEpsilon(1))
	assert.Equal(t, w, s.Weights())

	got, err := s.Score([]int{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/4.0, got, delta)

	assert.Equal(t, convenience.DefaultWeights, convenience.NewScorer(g).Weights())
}

func TestScorer_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { convenience.WithEpsilon(0) })
	assert.Panics(t, func() { convenience.WithEpsilon(-1) })
	assert.Panics(t, func() { convenience.WithWeights(convenience.Weights{Traffic: -0.1}) })
}

// Fewer edges always win when per-edge contributions are similar.
func TestScorer_PrefersFewerEdges(t *testing.T) {
	g := core.NewGraph()
	for id := 1; id <= 3; id++ {
		require.NoError(t, g.AddNode(id, "Auto Stand"))
	}
	mid := core.EdgeInfo{Distance: 5, Traffic: 5, RedLights: 2}
	require.NoError(t, g.AddEdge(1, 2, mid))
	require.NoError(t, g.AddEdge(2, 3, mid))
	require.NoError(t, g.AddEdge(1, 3, mid))

	s := convenience.NewScorer(g)
	direct, err := s.Score([]int{1, 3})
	require.NoError(t, err)
	hop, err := s.Score([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Less(t, direct, hop)
}
