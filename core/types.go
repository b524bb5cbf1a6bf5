// SPDX-License-Identifier: MIT

// Package core defines the central Graph, Node, Edge and EdgeInfo types,
// the sentinel errors of the store and the NewGraph constructor.
package core

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for graph store operations.
var (
	// ErrInvalidNodeID indicates a node ID that is not a positive integer.
	ErrInvalidNodeID = errors.New("core: node ID must be positive")

	// ErrDuplicateNode indicates AddNode was called twice with the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeLimit indicates the configured node capacity is exhausted.
	ErrNodeLimit = errors.New("core: node limit reached")

	// ErrNegativeAttribute indicates an edge attribute below zero.
	ErrNegativeAttribute = errors.New("core: edge attribute is negative")
)

// Node is a stop in the city network.
type Node struct {
	// ID is the unique positive identifier of the stop.
	ID int

	// Category is a display label such as "Bus Stop". It plays no part
	// in path search or scoring.
	Category string
}

// EdgeInfo carries the three independent attributes of a road segment.
// All values are non-negative.
type EdgeInfo struct {
	Distance  int
	Traffic   int
	RedLights int
}

// Edge is a directed road segment From → To.
type Edge struct {
	From int
	To   int
	Info EdgeInfo
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithNodeLimit caps the number of nodes the store accepts.
// Path enumeration is exponential, so callers keep this small; 0 disables the cap.
// Panics on a negative limit.
func WithNodeLimit(n int) GraphOption {
	if n < 0 {
		panic("core: WithNodeLimit(n<0)")
	}
	return func(g *Graph) { g.nodeLimit = n }
}

// WithLogger routes store diagnostics (dropped edges) to entry.
// A nil entry keeps the default.
func WithLogger(entry *logrus.Entry) GraphOption {
	return func(g *Graph) {
		if entry != nil {
			g.log = entry
		}
	}
}

// Graph is the arena-backed graph store.
//
// nodes and edges are append-only slices; index maps a node ID to its slot
// in nodes, and out[slot] lists the edge indices leaving that node in
// insertion order.
type Graph struct {
	mu sync.RWMutex // guards everything below

	nodeLimit int           // 0 = unlimited
	log       *logrus.Entry // diagnostics sink

	nodes []Node      // slot → node
	index map[int]int // node ID → slot
	edges []Edge      // edge arena
	out   [][]int     // slot → indices into edges
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int]int),
		log:   logrus.WithField("component", "core"),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
