// SPDX-License-Identifier: MIT

package route

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/convenience"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
	"github.com/katalvlaran/citynav/dijkstra"
)

// Fast finds only the most convenient path, running Dijkstra over edge
// scores instead of enumerating every path. Every edge score is positive,
// so the cheapest route is a simple path and its score equals the minimum
// Plan would select. On exact ties Fast may pick a different path than
// Plan's first-discovered one.
//
// The Report holds a single candidate (or none) and Entered is 0.
// Errors mirror Plan: dfs.ErrGraphNil, dfs.ErrInvalidQuery,
// convenience.ErrNoPath and context errors.
func Fast(ctx context.Context, g *core.Graph, start, end int, opts ...Option) (*Report, error) {
	// 1. Apply options and validate the query
	cfg := newConfig(opts)
	log := cfg.log.WithFields(logrus.Fields{"start": start, "end": end, "mode": "fast"})
	if g == nil {
		return nil, dfs.ErrGraphNil
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return nil, fmt.Errorf("%w: %d→%d: %w", dfs.ErrInvalidQuery, start, end, core.ErrNodeNotFound)
	}

	// 2. Cheapest route under the configured scorer
	scorer := convenience.NewScorer(g, cfg.scorer...)
	res, err := dijkstra.Dijkstra(g,
		dijkstra.Source(start),
		dijkstra.WithContext(ctx),
		dijkstra.WithWeight(func(e core.Edge) float64 { return scorer.EdgeScore(e.Info) }),
	)
	if err != nil {
		log.WithError(err).Warn("search stopped early")
		return nil, err
	}
	rep := &Report{
		Start:     start,
		End:       end,
		Paths:     [][]int{},
		Scores:    []float64{},
		BestIndex: -1,
		MinHops:   -1,
	}
	path, err := res.PathTo(end)
	if err != nil {
		log.Info("no paths found")
		return rep, convenience.ErrNoPath
	}

	// 3. Rescore along the path and record hop distance
	score, err := scorer.Score(path)
	if err != nil {
		return rep, fmt.Errorf("route: %w", err)
	}
	hops, _, err := bfs.Reachable(ctx, g, start, end)
	if err != nil {
		return rep, err
	}
	rep.Paths = [][]int{path}
	rep.Scores = []float64{score}
	rep.Best, rep.BestScore, rep.BestIndex = path, score, 0
	rep.MinHops = hops

	log.WithFields(logrus.Fields{"best": path, "best_score": score}).Info("route planned")

	return rep, nil
}
