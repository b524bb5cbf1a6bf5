// SPDX-License-Identifier: MIT

// Package dfs provides ordering algorithms on directed networks, including
// topological sort and DAG path counting.
//
// TopologicalSort computes a linear ordering of stops such that for every
// edge u→v, u appears before v. If the network contains a cycle,
// ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each stop and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph // the graph being sorted
	opts  topoOptions // traversal options (cancellation)
	state map[int]int // visitation state: White, Gray, Black
	order []int       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all stops in g.
// Roots are tried in ascending ID order, so the result is deterministic.
// If g is nil, returns ErrGraphNil. If a cycle is detected, returns
// ErrCycleDetected. If neighbor lookup fails, returns ErrNeighborFetch.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]int, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	nodes := g.Nodes()
	sorter := &topoSorter{
		graph: g,
		opts:  opts,
		state: make(map[int]int, len(nodes)),
		order: make([]int, 0, len(nodes)),
	}
	// 4. Drive DFS from every unvisited stop
	for _, n := range nodes {
		if sorter.state[n.ID] == White {
			if err := sorter.visit(n.ID); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id int) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Gray means a back-edge
	if t.state[id] == Gray {
		return fmt.Errorf("%w: back-edge into %d", ErrCycleDetected, id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	// 3. Explore outgoing edges
	neighbors, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, e := range neighbors {
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	// 4. Finish
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}

// CountPaths returns the number of distinct stop sequences from start to end
// in an acyclic network, without enumerating them. Parallel edges between
// the same pair count once, matching what AllPaths reports.
//
// It returns ErrInvalidQuery for unknown endpoints and ErrCycleDetected for
// cyclic networks, in which case callers fall back to enumeration.
// Counts past the uint64 range wrap; networks this package is meant for
// stay far below that.
//
// Complexity: O(V + E).
func CountPaths(g *core.Graph, start, end int) (uint64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return 0, fmt.Errorf("%w: %d → %d: %w", ErrInvalidQuery, start, end, core.ErrNodeNotFound)
	}
	if start == end {
		return 1, nil
	}

	order, err := TopologicalSort(g)
	if err != nil {
		return 0, err
	}

	// ways[v] = number of start→v paths; propagate in topological order.
	ways := make(map[int]uint64, len(order))
	ways[start] = 1
	for _, u := range order {
		if ways[u] == 0 || u == end {
			continue
		}
		nbs, err := g.Neighbors(u)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		seen := make(map[int]struct{}, len(nbs))
		for _, e := range nbs {
			if _, dup := seen[e.To]; dup {
				continue
			}
			seen[e.To] = struct{}{}
			ways[e.To] += ways[u]
		}
	}

	return ways[end], nil
}
