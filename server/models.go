// SPDX-License-Identifier: MIT

package server

import "github.com/katalvlaran/citynav/core"

// NodeResponse describes one stop.
type NodeResponse struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Label    string `json:"label"`
}

// EdgeResponse describes one street.
type EdgeResponse struct {
	From      int `json:"from"`
	To        int `json:"to"`
	Distance  int `json:"distance"`
	Traffic   int `json:"traffic"`
	RedLights int `json:"red_lights"`
}

// NodeDetailResponse is a stop with its outgoing streets.
type NodeDetailResponse struct {
	NodeResponse
	Edges []EdgeResponse `json:"edges"`
}

// PathsResponse answers GET /api/paths.
type PathsResponse struct {
	From      int       `json:"from"`
	To        int       `json:"to"`
	Paths     [][]int   `json:"paths"`
	Scores    []float64 `json:"scores"`
	Best      []int     `json:"best"`
	BestScore *float64  `json:"best_score"`
	MinHops   int       `json:"min_hops"`
	Count     int       `json:"count"`
	Message   string    `json:"message,omitempty"`
}

// ReachableStop is a stop reachable from the query origin.
type ReachableStop struct {
	NodeResponse
	Hops int `json:"hops"`
}

// ReachableResponse answers GET /api/nodes/{id}/reachable.
type ReachableResponse struct {
	From  int             `json:"from"`
	Stops []ReachableStop `json:"stops"`
	Count int             `json:"count"`
}

// StatsResponse answers GET /api/stats.
type StatsResponse struct {
	Nodes         int `json:"nodes"`
	Edges         int `json:"edges"`
	ForwardEdges  int `json:"forward_edges"`
	BackwardEdges int `json:"backward_edges"`
	Sinks         int `json:"sinks"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func edgeResponse(e core.Edge) EdgeResponse {
	return EdgeResponse{
		From:      e.From,
		To:        e.To,
		Distance:  e.Info.Distance,
		Traffic:   e.Info.Traffic,
		RedLights: e.Info.RedLights,
	}
}
