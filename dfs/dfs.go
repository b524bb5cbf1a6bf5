// SPDX-License-Identifier: MIT

// Package dfs implements exhaustive simple-path enumeration on core.Graph.
//
// Key features:
//   - Walk(g, start, end, opts...): every simple path plus diagnostics
//   - AllPaths(g, start, end, opts...): just the paths
//   - Hooks: OnPath with error aborts
//   - Limits: MaxDepth, MaxPaths, FilterEdge
//   - Cancellation via context.Context
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrInvalidQuery           if start or end is missing.
//   - ErrPathLimit              if MaxPaths stopped the search.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnPath.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// pathWalker encapsulates state during one enumeration.
//
// path and onPath are shared across branches and restored on the way out
// of every node, so a node left by one branch is free for the next.
type pathWalker struct {
	graph  *core.Graph  // underlying graph
	opts   Options      // search options
	target int          // end stop
	path   []int        // current path, start first
	onPath map[int]bool // members of path
	res    *Result      // result collector
}

// AllPaths returns every simple directed path from start to end.
// On error the paths found so far are returned alongside it; an invalid
// query returns no paths at all.
func AllPaths(g *core.Graph, start, end int, opts ...Option) ([][]int, error) {
	res, err := Walk(g, start, end, opts...)
	if res == nil {
		return nil, err
	}

	return res.Paths, err
}

// Walk performs the depth-first backtracking search from start to end and
// returns the discovered paths with diagnostics.
func Walk(g *core.Graph, start, end int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Fail fast on unknown endpoints: no search runs
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: start %d: %w", ErrInvalidQuery, start, core.ErrNodeNotFound)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: end %d: %w", ErrInvalidQuery, end, core.ErrNodeNotFound)
	}

	// 3. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 4. Initialize walker with capacity hints
	n := g.NodeCount()
	w := &pathWalker{
		graph:  g,
		opts:   dopts,
		target: end,
		path:   make([]int, 0, n),
		onPath: make(map[int]bool, n),
		res:    &Result{Paths: make([][]int, 0)},
	}

	// 5. Traverse
	if err := w.enter(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// enter pushes id onto the current path, records a match or descends into
// unvisited successors, then pops id again.
func (w *pathWalker) enter(id int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Push and mark; undo on every exit path
	w.res.Entered++
	w.path = append(w.path, id)
	w.onPath[id] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, id)
	}()

	// 3. Target reached: record a copy and stop this branch
	if id == w.target {
		return w.record()
	}

	// 4. Depth limit: the current path already has len(path)-1 edges
	if w.opts.MaxDepth >= 0 && len(w.path)-1 >= w.opts.MaxDepth {
		return nil
	}

	// 5. Fetch outgoing edges once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}

	// 6. Explore each successor not already on the path.
	// Parallel edges to the same stop describe the same node sequence,
	// so only the first one is considered; when the filter rejects it the
	// pair is skipped, since scores always use the first street.
	tried := make(map[int]struct{}, len(nbs))
	for _, e := range nbs {
		if w.onPath[e.To] {
			continue
		}
		if _, dup := tried[e.To]; dup {
			continue
		}
		tried[e.To] = struct{}{}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.res.Skipped++
			continue
		}
		if err = w.enter(e.To); err != nil {
			return err
		}
	}

	return nil
}

// record stores a copy of the current path and applies hooks and caps.
func (w *pathWalker) record() error {
	found := make([]int, len(w.path))
	copy(found, w.path)
	w.res.Paths = append(w.res.Paths, found)
	if edges := len(found) - 1; edges > w.res.Longest {
		w.res.Longest = edges
	}

	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(found); err != nil {
			return fmt.Errorf("dfs: OnPath hook for %v: %w", found, err)
		}
	}
	if w.opts.MaxPaths > 0 && len(w.res.Paths) >= w.opts.MaxPaths {
		return ErrPathLimit
	}

	return nil
}
