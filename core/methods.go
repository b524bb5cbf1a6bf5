// SPDX-License-Identifier: MIT

// Package core: node and edge method implementations.
//
// Every mutation takes the write lock; every query takes the read lock.
// Adjacency is a per-node slice of edge indices, so Neighbors preserves
// insertion order without sorting.
package core

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// AddNode registers a node with the given ID and category label.
// Returns ErrInvalidNodeID for id <= 0, ErrDuplicateNode if the ID is taken
// and ErrNodeLimit once the configured cap is reached.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int, category string) error {
	// 1) Validate input: IDs are positive by contract
	if id <= 0 {
		return fmt.Errorf("AddNode(%d): %w", id, ErrInvalidNodeID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Duplicate policy: reject, first registration stays
	if _, exists := g.index[id]; exists {
		return fmt.Errorf("AddNode(%d): %w", id, ErrDuplicateNode)
	}
	// 3) Capacity
	if g.nodeLimit > 0 && len(g.nodes) >= g.nodeLimit {
		return fmt.Errorf("AddNode(%d): limit %d: %w", id, g.nodeLimit, ErrNodeLimit)
	}

	// 4) Append to the arena
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Category: category})
	g.out = append(g.out, nil)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Node returns the node with the given ID.
func (g *Graph) Node(id int) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slot, ok := g.index[id]
	if !ok {
		return Node{}, false
	}

	return g.nodes[slot], true
}

// AddEdge creates a directed edge from → to carrying info.
//
// If either endpoint is unknown the call is a silent no-op: nothing is
// stored and nil is returned. Negative attributes are rejected with
// ErrNegativeAttribute. Parallel edges are kept; lookups see the first.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, info EdgeInfo) error {
	// 1) Attribute constraint
	if info.Distance < 0 || info.Traffic < 0 || info.RedLights < 0 {
		return fmt.Errorf("AddEdge(%d→%d, %+v): %w", from, to, info, ErrNegativeAttribute)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Both endpoints must already exist
	src, okFrom := g.index[from]
	_, okTo := g.index[to]
	if !okFrom || !okTo {
		g.log.WithFields(logrus.Fields{
			"from": from,
			"to":   to,
		}).Debug("dropping edge with unknown endpoint")
		return nil
	}

	// 3) Store in the arena and link from the source node
	g.edges = append(g.edges, Edge{From: from, To: to, Info: info})
	g.out[src] = append(g.out[src], len(g.edges)-1)

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.Edge(from, to)
	return ok
}

// Edge returns the first inserted edge from → to.
// Complexity: O(deg(from)).
func (g *Graph) Edge(from, to int) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slot, ok := g.index[from]
	if !ok {
		return Edge{}, false
	}
	for _, ei := range g.out[slot] {
		if g.edges[ei].To == to {
			return g.edges[ei], true
		}
	}

	return Edge{}, false
}

// Neighbors returns a copy of the outgoing edges of id in insertion order.
// Returns ErrNodeNotFound for an unknown node.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slot, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrNodeNotFound)
	}
	out := make([]Edge, len(g.out[slot]))
	for i, ei := range g.out[slot] {
		out[i] = g.edges[ei]
	}

	return out, nil
}

// Nodes returns all nodes sorted by ascending ID.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Edges returns every edge grouped by ascending source ID, each group in
// insertion order.
// Complexity: O(V·log V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	slots := make([]int, len(g.nodes))
	for i := range slots {
		slots[i] = i
	}
	sort.Slice(slots, func(i, j int) bool { return g.nodes[slots[i]].ID < g.nodes[slots[j]].ID })

	out := make([]Edge, 0, len(g.edges))
	for _, slot := range slots {
		for _, ei := range g.out[slot] {
			out = append(out, g.edges[ei])
		}
	}

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
