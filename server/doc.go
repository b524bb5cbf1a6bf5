// SPDX-License-Identifier: MIT

// Package server exposes a read-only city network over HTTP.
//
// Routes (gorilla/mux):
//
//	GET /health                  liveness
//	GET /api/stats               store statistics
//	GET /api/nodes               every stop
//	GET /api/nodes/{id}          one stop with its outgoing streets
//	GET /api/nodes/{id}/reachable stops reachable from id, with hop counts
//	GET /api/edges               every street
//	GET /api/paths?from=&to=     all paths, scores and the most convenient
//	GET /api/best?from=&to=      the most convenient path only (Dijkstra)
//
// Every response carries an X-Request-ID header (generated with
// google/uuid unless the client sent a valid one) and is logged through
// logrus with the same ID.
package server
