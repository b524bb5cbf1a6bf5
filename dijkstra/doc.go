// SPDX-License-Identifier: MIT

// Package dijkstra computes cheapest routes on a core.Graph where the cost
// of a street is given by a caller-supplied weight function.
//
// With any strictly positive additive cost (such as a convenience score)
// the cheapest walk is always a simple path, so Dijkstra finds the minimum
// score route without enumerating every path.
//
// Parallel streets: only the first street a→b is relaxed, matching how
// scores are taken from the first edge between two stops.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-decrease-key binary heap.
//   - Space: O(V + E) for dist/prev maps and stale heap entries.
//
// Errors:
//
//	ErrEmptySource     Source option missing or ≤ 0
//	ErrNilGraph        nil graph
//	ErrVertexNotFound  source not in the graph
//	ErrNegativeWeight  weight function returned < 0 or NaN
//	ErrUnreachable     PathTo on a stop never settled
package dijkstra
