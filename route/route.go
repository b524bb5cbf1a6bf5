// SPDX-License-Identifier: MIT

// Package route answers "how do I get from stop A to stop B" on a
// core.Graph: it enumerates every simple path, scores each one and picks the
// most convenient.
//
// The phases run strictly in sequence on the caller's goroutine:
//
//  1. bfs.BFS checks that end is reachable and records the fewest hops.
//  2. dfs.Walk collects all simple paths start→end.
//  3. convenience.Scorer scores every path in discovery order.
//  4. convenience.MinIndex selects the lowest score (first wins on ties).
//
// An unreachable end skips the exhaustive search entirely.
//
// Errors:
//
//   - dfs.ErrInvalidQuery   start or end missing; Report is nil.
//   - convenience.ErrNoPath no path exists; Report is returned with empty
//     Paths so callers can still render the query.
//   - dfs.ErrPathLimit      a MaxPaths cap stopped the search; Report holds
//     the truncated set, scored, with Truncated set.
//   - any other search error (context, OnPath hook) with the unscored Report.
package route

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/convenience"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
)

// Report is the outcome of one query.
type Report struct {
	Start int
	End   int

	// Paths and Scores are parallel slices in discovery order.
	Paths  [][]int
	Scores []float64

	// Best is nil when no path exists; BestIndex is then -1.
	Best      []int
	BestScore float64
	BestIndex int

	// MinHops is the fewest edges any route the search may use needs, or
	// -1 when end is unreachable under the search options.
	MinHops int

	// Entered counts node entries made by the search.
	Entered int

	// Truncated is set when a path cap stopped the search; Best is then the
	// best of the paths found so far.
	Truncated bool
}

// Found reports whether at least one path was discovered.
func (r *Report) Found() bool { return r != nil && len(r.Paths) > 0 }

// Option configures Plan.
type Option func(*config)

type config struct {
	scorer []convenience.ScorerOption
	search []dfs.Option
	log    *logrus.Entry
}

func newConfig(opts []Option) config {
	cfg := config{log: logrus.WithField("component", "route")}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithScorerOptions forwards options to convenience.NewScorer.
func WithScorerOptions(opts ...convenience.ScorerOption) Option {
	return func(c *config) { c.scorer = append(c.scorer, opts...) }
}

// WithSearchOptions forwards options to dfs.Walk; Fast ignores them. The
// context passed to Plan is always applied first, so a WithContext here
// overrides it. The resolved context, FilterEdge and MaxDepth also bound the
// reachability check.
func WithSearchOptions(opts ...dfs.Option) Option {
	return func(c *config) { c.search = append(c.search, opts...) }
}

// WithLogger sets the entry used for query summaries. Nil is ignored.
func WithLogger(entry *logrus.Entry) Option {
	return func(c *config) {
		if entry != nil {
			c.log = entry
		}
	}
}

// Plan enumerates, scores and selects the most convenient path from start
// to end.
func Plan(ctx context.Context, g *core.Graph, start, end int, opts ...Option) (*Report, error) {
	// 1. Apply options
	cfg := newConfig(opts)
	log := cfg.log.WithFields(logrus.Fields{"start": start, "end": end})

	// 2. Reachability. Invalid queries fall through so dfs reports them.
	search := append([]dfs.Option{dfs.WithContext(ctx)}, cfg.search...)
	minHops := -1
	if g != nil && g.HasNode(start) && g.HasNode(end) {
		hops, ok, err := reachable(g, start, end, search)
		if err != nil {
			log.WithError(err).Warn("reachability check failed")
			return nil, err
		}
		if !ok {
			log.Info("no paths found")
			return &Report{
				Start:     start,
				End:       end,
				Paths:     [][]int{},
				Scores:    []float64{},
				BestIndex: -1,
				MinHops:   -1,
			}, convenience.ErrNoPath
		}
		minHops = hops
	}

	// 3. Enumerate
	res, err := dfs.Walk(g, start, end, search...)
	if res == nil {
		log.WithError(err).Debug("query rejected")
		return nil, err
	}
	rep := &Report{
		Start:     start,
		End:       end,
		Paths:     res.Paths,
		Scores:    []float64{},
		BestIndex: -1,
		MinHops:   minHops,
		Entered:   res.Entered,
	}
	// A path cap leaves a usable prefix; any other search error does not.
	truncated := errors.Is(err, dfs.ErrPathLimit)
	if err != nil && !truncated {
		log.WithError(err).Warn("search stopped early")
		return rep, err
	}

	// 4. Score
	scores, scoreErr := convenience.NewScorer(g, cfg.scorer...).ScoreAll(rep.Paths)
	if scoreErr != nil {
		return rep, fmt.Errorf("route: %w", scoreErr)
	}
	rep.Scores = scores
	rep.Truncated = truncated

	// 5. Select
	idx, selErr := convenience.MinIndex(scores)
	if errors.Is(selErr, convenience.ErrNoPath) {
		log.Info("no paths found")
		return rep, selErr
	}
	rep.Best, rep.BestScore, rep.BestIndex = rep.Paths[idx], scores[idx], idx

	entry := log.WithFields(logrus.Fields{
		"paths":      len(rep.Paths),
		"entered":    rep.Entered,
		"best":       rep.Best,
		"best_score": rep.BestScore,
	})
	if truncated {
		entry.Warn("route planned over a truncated path set")
		return rep, err
	}
	entry.Info("route planned")

	return rep, nil
}

// reachable runs BFS under the same context, edge filter and depth limit as
// the path search. The filter sees the first street of every pair, matching
// the walker, which skips a pair whose first street is rejected.
func reachable(g *core.Graph, start, end int, search []dfs.Option) (int, bool, error) {
	o := dfs.DefaultOptions()
	for _, opt := range search {
		opt(&o)
	}

	opts := []bfs.Option{bfs.WithContext(o.Ctx)}
	if o.FilterEdge != nil {
		keep := o.FilterEdge
		opts = append(opts, bfs.WithFilterEdge(func(e core.Edge) bool {
			first, ok := g.Edge(e.From, e.To)
			return ok && keep(first)
		}))
	}
	if o.MaxDepth >= 0 {
		if o.MaxDepth == 0 {
			// bfs treats 0 as unlimited; only start itself fits.
			return 0, start == end, nil
		}
		opts = append(opts, bfs.WithMaxDepth(o.MaxDepth))
	}

	res, err := bfs.BFS(g, start, opts...)
	if err != nil {
		return 0, false, err
	}
	hops, ok := res.Depth[end]

	return hops, ok, nil
}
