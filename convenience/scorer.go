// SPDX-License-Identifier: MIT

package convenience

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Sentinel errors for scoring and selection.
var (
	// ErrEmptyPath indicates a path without any node.
	ErrEmptyPath = errors.New("convenience: empty path")

	// ErrBrokenPath indicates two consecutive stops with no edge between them.
	ErrBrokenPath = errors.New("convenience: no edge between consecutive stops")

	// ErrNoPath indicates an empty candidate set.
	ErrNoPath = errors.New("convenience: no paths found")

	// ErrGraphNil indicates a Scorer built over a nil graph.
	ErrGraphNil = errors.New("convenience: graph is nil")
)

// Default scoring constants.
const (
	DefaultDistanceWeight = 0.5
	DefaultTrafficWeight  = 0.2
	DefaultRedLightWeight = 0.3

	// Epsilon keeps every denominator positive when an attribute is 0.
	Epsilon = 0.01
)

// Weights binds a weight to each named edge attribute.
type Weights struct {
	Distance float64
	Traffic  float64
	RedLight float64
}

// DefaultWeights favors distance, then red lights, then traffic.
var DefaultWeights = Weights{
	Distance: DefaultDistanceWeight,
	Traffic:  DefaultTrafficWeight,
	RedLight: DefaultRedLightWeight,
}

// ScorerOption customizes a Scorer.
type ScorerOption func(*Scorer)

// WithWeights overrides the attribute weights. Panics on a negative weight.
func WithWeights(w Weights) ScorerOption {
	if w.Distance < 0 || w.Traffic < 0 || w.RedLight < 0 {
		panic(fmt.Sprintf("convenience: WithWeights(%+v) has a negative weight", w))
	}
	return func(s *Scorer) { s.weights = w }
}

// WithEpsilon overrides the denominator offset. Panics on eps <= 0.
func WithEpsilon(eps float64) ScorerOption {
	if eps <= 0 {
		panic(fmt.Sprintf("convenience: WithEpsilon(%g) must be > 0", eps))
	}
	return func(s *Scorer) { s.epsilon = eps }
}

// Scorer computes convenience scores against one graph.
// It holds no mutable state and is safe for concurrent use.
type Scorer struct {
	graph   *core.Graph
	weights Weights
	epsilon float64
}

// NewScorer returns a Scorer over g with DefaultWeights and Epsilon unless
// overridden.
func NewScorer(g *core.Graph, opts ...ScorerOption) *Scorer {
	s := &Scorer{graph: g, weights: DefaultWeights, epsilon: Epsilon}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Weights returns the configured weights.
func (s *Scorer) Weights() Weights { return s.weights }

// EdgeScore returns the contribution of a single edge.
func (s *Scorer) EdgeScore(info core.EdgeInfo) float64 {
	return s.weights.Distance/(float64(info.Distance)+s.epsilon) +
		s.weights.RedLight/(float64(info.RedLights)+s.epsilon) +
		s.weights.Traffic/(float64(info.Traffic)+s.epsilon)
}

// Score sums EdgeScore over every consecutive pair of path.
// A single-stop path scores 0. Returns ErrEmptyPath for an empty path and
// ErrBrokenPath when a pair has no edge in the graph.
// Complexity: O(len(path) · max out-degree).
func (s *Scorer) Score(path []int) (float64, error) {
	if s.graph == nil {
		return 0, ErrGraphNil
	}
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		e, ok := s.graph.Edge(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %d→%d in %v", ErrBrokenPath, path[i], path[i+1], path)
		}
		total += s.EdgeScore(e.Info)
	}

	return total, nil
}

// EdgeScore returns the contribution of a single edge under DefaultWeights.
func EdgeScore(info core.EdgeInfo) float64 {
	return (&Scorer{weights: DefaultWeights, epsilon: Epsilon}).EdgeScore(info)
}
