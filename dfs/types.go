// SPDX-License-Identifier: MIT

// Package dfs defines types and options for path enumeration, including
// cancellation, path hooks, length limiting, edge filtering and diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/citynav/core"
)

// Visitation states used by TopologicalSort.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrInvalidQuery indicates that the start or end stop is not in the graph.
	// No search is run.
	ErrInvalidQuery = errors.New("dfs: invalid start or end node")

	// ErrPathLimit indicates the WithMaxPaths cap stopped the search early.
	ErrPathLimit = errors.New("dfs: path limit reached")

	// ErrCycleDetected indicates a cycle was encountered during
	// TopologicalSort or CountPaths.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of Walk and AllPaths.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked each time a node is entered.
	Ctx context.Context

	// OnPath, if non-nil, is invoked with each discovered path (a copy the
	// hook may keep). Returning an error aborts the search with that error.
	OnPath func(path []int) error

	// MaxDepth, if non-negative, limits paths to at most MaxDepth edges.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each outgoing edge before
	// descending. Return false to skip the edge.
	FilterEdge func(e core.Edge) bool

	// MaxPaths, if positive, stops the search once that many paths are found.
	MaxPaths int
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit, no filter and no path cap.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnPath:     nil,
		MaxDepth:   -1,
		FilterEdge: nil,
		MaxPaths:   0,
	}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPath installs fn as the per-path hook.
func WithOnPath(fn func(path []int) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}

// WithMaxDepth limits paths to at most limit edges.
// A limit of 0 only matches start == end.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge skips outgoing edges for which fn returns false.
// Skipped edges are counted in Result.Skipped.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *Options) {
		o.FilterEdge = fn
	}
}

// WithMaxPaths stops the search after n paths. Panics on n < 0.
func WithMaxPaths(n int) Option {
	if n < 0 {
		panic("dfs: WithMaxPaths(n<0)")
	}
	return func(o *Options) {
		o.MaxPaths = n
	}
}

// Result captures the outcome of one enumeration.
type Result struct {
	// Paths lists every discovered path in discovery order. Never nil after
	// a search has run.
	Paths [][]int

	// Entered counts node entries across all branches (a node reachable by
	// k branches is counted k times).
	Entered int

	// Skipped counts edges rejected by FilterEdge.
	Skipped int

	// Longest is the edge count of the longest discovered path.
	Longest int
}
