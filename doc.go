// SPDX-License-Identifier: MIT

// Package citynav models a small city transport network as a directed graph
// of stops and streets and answers one question: given two stops, what are
// ALL the simple routes between them, and which one is the most convenient?
//
// Streets carry three attributes: distance, traffic and red lights. A
// route's convenience score blends them per street; the lowest total wins.
//
// Packages:
//
//	core/        thread-safe graph store: stops, streets, lookups
//	dfs/         exhaustive simple-path enumeration (backtracking DFS)
//	convenience/ per-street and per-route scoring, minimum selection
//	route/       Plan: enumerate → score → select, with logging
//	bfs/         reachability and fewest-hop counts
//	dijkstra/    cheapest route under any positive street cost
//	builder/     deterministic random cities and fixed layouts
//	render/      text output of cities and query reports
//	server/      read-only HTTP API (gorilla/mux)
//	cmd/citynav  CLI (cobra): graph, paths, serve
//
// Quick start:
//
//	g, _ := builder.City(42)
//	rep, err := route.Plan(ctx, g, 1, 15)
//	if err != nil { ... }
//	fmt.Println(rep.Best, rep.BestScore)
//
// Enumeration is exponential in the worst case: a 15-stop city with every
// forward street has 2^13 routes from stop 1 to stop 15. Use
// dfs.WithMaxPaths to bound it.
package citynav
