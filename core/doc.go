// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph store for a small city
// transportation network: stops (nodes) joined by one-way road segments
// (edges) that carry three non-negative attributes.
//
// The Graph G = (V,E) is write-once, read-many:
//
//   - Nodes are identified by unique positive integers and carry a free-form
//     category label ("Bus Stop", "Taxi Stand", ...) used only for display.
//   - Edges are directed. Each edge is owned by its source node's outgoing
//     list; no implicit reverse edge is ever created.
//   - Storage is arena-style: nodes live in one indexed slice, edges in
//     another, and adjacency is a per-node slice of edge indices kept in
//     insertion order. Edges reference endpoints by ID, never by pointer.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int, category string) error   // O(1)
//	HasNode(id int) bool                     // O(1)
//	Node(id int) (Node, bool)                // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to int, info EdgeInfo) error // O(1); dangling endpoints are dropped
//	HasEdge(from, to int) bool                 // O(deg(from))
//	Edge(from, to int) (Edge, bool)            // O(deg(from)), first inserted wins
//
//	// Query
//	Neighbors(id int) ([]Edge, error) // O(deg), insertion order
//	Nodes() []Node                    // O(V·log V), ascending ID
//	Edges() []Edge                    // O(V·log V + E)
//	NodeCount(), EdgeCount() int      // O(1)
//	Stats() GraphStats                // O(V+E)
//
// Ingestion policy:
//
//	AddEdge with an endpoint that is not in the store is a tolerated no-op:
//	nothing is stored, nil is returned and a debug entry is logged. Duplicate
//	node IDs are rejected with ErrDuplicateNode; the first registration stays.
//
// Errors:
//
//	ErrInvalidNodeID     – node ID is zero or negative
//	ErrDuplicateNode     – node ID already registered
//	ErrNodeNotFound      – requested node does not exist
//	ErrNodeLimit         – WithNodeLimit cap reached
//	ErrNegativeAttribute – edge attribute below zero
//
// A single sync.RWMutex guards the store, so one built graph can be queried
// from many goroutines (e.g. concurrent HTTP requests).
package core
