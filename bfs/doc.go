// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order from one start stop.
//
// Hop counts ignore street attributes: every edge is one hop. The route
// planner uses BFS to reject unreachable destinations before enumerating
// paths, and to report the fewest hops any route needs.
//
// Key features:
//   - BFS(g, start, opts...): full traversal result
//   - Result.PathTo(dest): a fewest-hop path
//   - Reachable(g, start, end): O(V+E) reachability check
//   - Hooks: OnVisit with error aborts
//   - Limits: MaxDepth, FilterEdge
//   - Cancellation via context.Context
//
// Complexity: O(V + E) time, O(V) space.
package bfs
