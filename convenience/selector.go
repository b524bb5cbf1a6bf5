// SPDX-License-Identifier: MIT

package convenience

import (
	"fmt"
	"math"
	"sort"
)

// Choice is the selected path with its score and its index among the
// candidates.
type Choice struct {
	Path  []int
	Score float64
	Index int
}

// Scored pairs a candidate path with its score.
type Scored struct {
	Path  []int
	Score float64
}

// MinIndex returns the index of the smallest score. Ties keep the first
// occurrence. Returns ErrNoPath for an empty slice.
// Complexity: O(n).
func MinIndex(scores []float64) (int, error) {
	if len(scores) == 0 {
		return -1, ErrNoPath
	}
	best, bestScore := -1, math.Inf(1)
	for i, sc := range scores {
		if sc < bestScore {
			best, bestScore = i, sc
		}
	}
	if best < 0 {
		// Every score was +Inf or NaN; the first candidate stands.
		best = 0
	}

	return best, nil
}

// ScoreAll scores every candidate in order.
func (s *Scorer) ScoreAll(paths [][]int) ([]float64, error) {
	scores := make([]float64, len(paths))
	for i, p := range paths {
		sc, err := s.Score(p)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		scores[i] = sc
	}

	return scores, nil
}

// Select returns the minimum-score candidate. Returns ErrNoPath when paths
// is empty and propagates scoring errors.
func (s *Scorer) Select(paths [][]int) (Choice, error) {
	scores, err := s.ScoreAll(paths)
	if err != nil {
		return Choice{}, err
	}
	idx, err := MinIndex(scores)
	if err != nil {
		return Choice{}, err
	}

	return Choice{Path: paths[idx], Score: scores[idx], Index: idx}, nil
}

// Rank returns every candidate with its score, sorted ascending by score.
// Equal scores keep their discovery order, so Rank(...)[0] matches Select.
func (s *Scorer) Rank(paths [][]int) ([]Scored, error) {
	scores, err := s.ScoreAll(paths)
	if err != nil {
		return nil, err
	}
	out := make([]Scored, len(paths))
	for i := range paths {
		out[i] = Scored{Path: paths[i], Score: scores[i]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })

	return out, nil
}
