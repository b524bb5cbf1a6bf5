// SPDX-License-Identifier: MIT

// Package dfs enumerates every simple directed path between two stops of a
// core.Graph and provides topological ordering for acyclic networks.
//
// What:
//
//   - AllPaths / Walk: depth-first backtracking search. On entering a node it
//     is appended to the current path and marked; reaching the target records
//     a copy of the path and stops that branch (the target is never explored
//     past); leaving a node pops and unmarks it so later branches may reuse
//     it. Supports:
//   - Cancellation via context.Context
//   - Path length limiting (edges per path)
//   - Edge filtering
//   - Per-path hooks and a path-count cap
//   - TopologicalSort: linear ordering of stops in an acyclic network,
//     returning ErrCycleDetected otherwise.
//   - CountPaths: number of start→end paths in an acyclic network by dynamic
//     programming over the topological order, without enumerating them.
//
// Guarantees:
//
//   - Completeness: every simple path is reported exactly once, even when
//     parallel edges join the same pair of stops.
//   - Termination: no node repeats on the current path, so recursion depth is
//     bounded by the node count.
//   - Determinism: outgoing edges are followed in insertion order, so the
//     same graph and query always yield the same paths in the same order.
//   - start == end yields the single zero-edge path [start].
//
// Complexity:
//
//   - Walk:            Time O(number of simple paths · V) in the worst case,
//     which is exponential in V. Intended for small, bounded networks only.
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - CountPaths:      Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrInvalidQuery   start or end stop not in graph (wraps core.ErrNodeNotFound)
//   - ErrPathLimit      WithMaxPaths cap reached; partial results are returned
//   - ErrCycleDetected  TopologicalSort / CountPaths on a cyclic network
//   - context.Canceled  search canceled via context
//   - hook errors       propagated from OnPath
package dfs
