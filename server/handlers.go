// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/citynav/bfs"
	"github.com/katalvlaran/citynav/convenience"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dfs"
	"github.com/katalvlaran/citynav/render"
	"github.com/katalvlaran/citynav/route"
)

// Error bodies.
const (
	msgInvalidQuery = "invalid start or end node"
	msgBadParams    = "from and to must be integers"
	msgBadID        = "id must be an integer"
	msgNoPaths      = "no paths found"
	msgPathLimit    = "too many paths; narrow the query"
	msgCanceled     = "request canceled"
	msgInternal     = "internal error"
)

// Handler serves one graph. The graph must not be mutated while serving.
type Handler struct {
	graph    *core.Graph
	log      *logrus.Entry
	maxPaths int
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(entry *logrus.Entry) Option {
	return func(h *Handler) {
		if entry != nil {
			h.log = entry
		}
	}
}

// WithMaxPaths caps enumeration per request; 0 disables the cap.
// Panics on n < 0.
func WithMaxPaths(n int) Option {
	if n < 0 {
		panic("server: WithMaxPaths(n<0)")
	}
	return func(h *Handler) { h.maxPaths = n }
}

// NewHandler returns a Handler for g.
func NewHandler(g *core.Graph, opts ...Option) *Handler {
	h := &Handler{graph: g, log: logrus.WithField("component", "server")}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// RegisterRoutes mounts every endpoint on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/stats", h.Stats).Methods(http.MethodGet)
	api.HandleFunc("/nodes", h.ListNodes).Methods(http.MethodGet)
	api.HandleFunc("/nodes/{id}", h.GetNode).Methods(http.MethodGet)
	api.HandleFunc("/nodes/{id}/reachable", h.Reachable).Methods(http.MethodGet)
	api.HandleFunc("/edges", h.ListEdges).Methods(http.MethodGet)
	api.HandleFunc("/paths", h.FindPaths).Methods(http.MethodGet).Queries("from", "{from}", "to", "{to}")
	api.HandleFunc("/paths", h.missingParams).Methods(http.MethodGet)
	api.HandleFunc("/best", h.FindBest).Methods(http.MethodGet).Queries("from", "{from}", "to", "{to}")
	api.HandleFunc("/best", h.missingParams).Methods(http.MethodGet)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	s := h.graph.Stats()
	writeJSON(w, http.StatusOK, StatsResponse{
		Nodes:         s.NodeCount,
		Edges:         s.EdgeCount,
		ForwardEdges:  s.ForwardEdges,
		BackwardEdges: s.BackwardEdges,
		Sinks:         s.Sinks,
	})
}

// ListNodes handles GET /api/nodes.
func (h *Handler) ListNodes(w http.ResponseWriter, r *http.Request) {
	nodes := h.graph.Nodes()
	out := make([]NodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, nodeResponse(n))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"nodes": out,
		"count": len(out),
	})
}

// GetNode handles GET /api/nodes/{id}.
func (h *Handler) GetNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgBadID)
		return
	}
	n, ok := h.graph.Node(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "stop not found")
		return
	}
	out, err := h.graph.Neighbors(id)
	if err != nil {
		h.log.WithError(err).Error("neighbors lookup failed")
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}
	resp := NodeDetailResponse{NodeResponse: nodeResponse(n), Edges: make([]EdgeResponse, 0, len(out))}
	for _, e := range out {
		resp.Edges = append(resp.Edges, edgeResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Reachable handles GET /api/nodes/{id}/reachable.
// Stops are listed in breadth-first order with their hop counts.
func (h *Handler) Reachable(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, msgBadID)
		return
	}
	res, err := bfs.BFS(h.graph, id, bfs.WithContext(r.Context()))
	switch {
	case err == nil:
	case errors.Is(err, bfs.ErrStartNotFound):
		writeError(w, r, http.StatusNotFound, "stop not found")
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusServiceUnavailable, msgCanceled)
		return
	default:
		h.log.WithError(err).Error("reachability failed")
		writeError(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	resp := ReachableResponse{From: id, Stops: make([]ReachableStop, 0, len(res.Order))}
	for _, to := range res.Order {
		if to == id {
			continue
		}
		n, _ := h.graph.Node(to)
		resp.Stops = append(resp.Stops, ReachableStop{NodeResponse: nodeResponse(n), Hops: res.Depth[to]})
	}
	resp.Count = len(resp.Stops)
	writeJSON(w, http.StatusOK, resp)
}

// ListEdges handles GET /api/edges.
func (h *Handler) ListEdges(w http.ResponseWriter, r *http.Request) {
	edges := h.graph.Edges()
	out := make([]EdgeResponse, 0, len(edges))
	for _, e := range edges {
		out = append(out, edgeResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"edges": out,
		"count": len(out),
	})
}

// FindPaths handles GET /api/paths?from=&to=.
func (h *Handler) FindPaths(w http.ResponseWriter, r *http.Request) {
	h.plan(w, r, func(ctx context.Context, from, to int, opts ...route.Option) (*route.Report, error) {
		if h.maxPaths > 0 {
			opts = append(opts, route.WithSearchOptions(dfs.WithMaxPaths(h.maxPaths)))
		}
		return route.Plan(ctx, h.graph, from, to, opts...)
	})
}

// FindBest handles GET /api/best?from=&to=. It returns only the most
// convenient path and is not subject to the path cap.
func (h *Handler) FindBest(w http.ResponseWriter, r *http.Request) {
	h.plan(w, r, func(ctx context.Context, from, to int, opts ...route.Option) (*route.Report, error) {
		return route.Fast(ctx, h.graph, from, to, opts...)
	})
}

type planFunc func(ctx context.Context, from, to int, opts ...route.Option) (*route.Report, error)

// plan parses from/to, runs fn and maps its outcome to a status.
func (h *Handler) plan(w http.ResponseWriter, r *http.Request, fn planFunc) {
	// 1. Parse query
	vars := mux.Vars(r)
	from, errFrom := strconv.Atoi(vars["from"])
	to, errTo := strconv.Atoi(vars["to"])
	if errFrom != nil || errTo != nil {
		writeError(w, r, http.StatusBadRequest, msgBadParams)
		return
	}

	// 2. Plan
	rep, err := fn(r.Context(), from, to, route.WithLogger(h.log.WithField("request_id", RequestID(r.Context()))))

	// 3. Map outcome to status
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, pathsResponse(rep, ""))
	case errors.Is(err, convenience.ErrNoPath):
		writeJSON(w, http.StatusOK, pathsResponse(rep, msgNoPaths))
	case errors.Is(err, dfs.ErrInvalidQuery):
		writeError(w, r, http.StatusNotFound, msgInvalidQuery)
	case errors.Is(err, dfs.ErrPathLimit):
		writeError(w, r, http.StatusUnprocessableEntity, msgPathLimit)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusServiceUnavailable, msgCanceled)
	default:
		h.log.WithError(err).Error("route planning failed")
		writeError(w, r, http.StatusInternalServerError, msgInternal)
	}
}

func (h *Handler) missingParams(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusBadRequest, msgBadParams)
}

func nodeResponse(n core.Node) NodeResponse {
	return NodeResponse{ID: n.ID, Category: n.Category, Label: render.Label(n)}
}

func pathsResponse(rep *route.Report, msg string) PathsResponse {
	resp := PathsResponse{
		From:    rep.Start,
		To:      rep.End,
		Paths:   rep.Paths,
		Scores:  rep.Scores,
		Best:    rep.Best,
		MinHops: rep.MinHops,
		Count:   len(rep.Paths),
		Message: msg,
	}
	if rep.Best != nil {
		score := rep.BestScore
		resp.BestScore = &score
	}

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, RequestID: RequestID(r.Context())})
}
