// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only diagnostics over the store.
// Policy:
//   - No mutation here.
//   - Every exported function documents complexity.

package core

// GraphStats is a read-only snapshot of store sizes and edge orientation.
type GraphStats struct {
	NodeCount int
	EdgeCount int

	// ForwardEdges counts edges with From < To, the only kind the city
	// generator emits. BackwardEdges counts the rest (From > To or loops).
	ForwardEdges  int
	BackwardEdges int

	// Sinks counts nodes without outgoing edges.
	Sinks int

	// NodeLimit echoes the WithNodeLimit configuration (0 = unlimited).
	NodeLimit int
}

// Stats produces a deterministic snapshot of the store.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Count nodes and sinks in one pass over the adjacency slots.
//   - Stage 3: Classify edges in one pass over the edge arena.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: len(g.edges),
		NodeLimit: g.nodeLimit,
	}
	for _, adj := range g.out {
		if len(adj) == 0 {
			stats.Sinks++
		}
	}
	for _, e := range g.edges {
		if e.From < e.To {
			stats.ForwardEdges++
		} else {
			stats.BackwardEdges++
		}
	}

	return stats
}
