package server_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynav/builder"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/server"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return logrus.NewEntry(l)
}

// newTestServer serves 1→2→4, 1→3→4 with stop 5 isolated.
func newTestServer(t *testing.T, opts ...server.Option) *httptest.Server {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil,
		builder.Stops(5),
		builder.Links([]builder.Link{
			{From: 1, To: 2, Info: core.EdgeInfo{Distance: 3, Traffic: 2}},
			{From: 1, To: 3, Info: core.EdgeInfo{Distance: 10, Traffic: 8, RedLights: 4}},
			{From: 2, To: 4, Info: core.EdgeInfo{Distance: 3, Traffic: 2}},
			{From: 3, To: 4, Info: core.EdgeInfo{Distance: 10, Traffic: 8, RedLights: 4}},
		}))
	require.NoError(t, err)

	opts = append([]server.Option{server.WithLogger(quietLogger())}, opts...)
	ts := httptest.NewServer(server.NewRouter(server.NewHandler(g, opts...)))
	t.Cleanup(ts.Close)

	return ts
}

func getJSON(t *testing.T, url string, into interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if into != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}

	return resp
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	var body map[string]string
	resp := getJSON(t, ts.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestListNodesAndEdges(t *testing.T) {
	ts := newTestServer(t)

	var nodes struct {
		Nodes []server.NodeResponse `json:"nodes"`
		Count int                   `json:"count"`
	}
	resp := getJSON(t, ts.URL+"/api/nodes", &nodes)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 5, nodes.Count)
	assert.Equal(t, server.NodeResponse{ID: 1, Category: builder.CategoryTaxiStand, Label: "T1"}, nodes.Nodes[0])

	var edges struct {
		Edges []server.EdgeResponse `json:"edges"`
		Count int                   `json:"count"`
	}
	getJSON(t, ts.URL+"/api/edges", &edges)
	assert.Equal(t, 4, edges.Count)
	assert.Equal(t, server.EdgeResponse{From: 1, To: 3, Distance: 10, Traffic: 8, RedLights: 4}, edges.Edges[1])
}

func TestGetNode(t *testing.T) {
	ts := newTestServer(t)

	var node server.NodeDetailResponse
	resp := getJSON(t, ts.URL+"/api/nodes/1", &node)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, node.ID)
	assert.Len(t, node.Edges, 2)

	var e server.ErrorResponse
	resp = getJSON(t, ts.URL+"/api/nodes/42", &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = getJSON(t, ts.URL+"/api/nodes/abc", &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFindBest(t *testing.T) {
	ts := newTestServer(t, server.WithMaxPaths(1))

	var body server.PathsResponse
	resp := getJSON(t, ts.URL+"/api/best?from=1&to=4", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, [][]int{{1, 3, 4}}, body.Paths)
	assert.Equal(t, []int{1, 3, 4}, body.Best)
	assert.Equal(t, 1, body.Count)

	var none server.PathsResponse
	getJSON(t, ts.URL+"/api/best?from=1&to=5", &none)
	assert.Nil(t, none.Best)
	assert.Equal(t, "no paths found", none.Message)

	var e server.ErrorResponse
	resp = getJSON(t, ts.URL+"/api/best?from=1&to=42", &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = getJSON(t, ts.URL+"/api/best?from=1", &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReachable(t *testing.T) {
	ts := newTestServer(t)

	var body server.ReachableResponse
	resp := getJSON(t, ts.URL+"/api/nodes/1/reachable", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, body.From)
	require.Equal(t, 3, body.Count)
	ids := make([]int, 0, body.Count)
	for _, s := range body.Stops {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{2, 3, 4}, ids)
	assert.Equal(t, 2, body.Stops[2].Hops)

	getJSON(t, ts.URL+"/api/nodes/5/reachable", &body)
	assert.Empty(t, body.Stops)

	var e server.ErrorResponse
	resp = getJSON(t, ts.URL+"/api/nodes/42/reachable", &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = getJSON(t, ts.URL+"/api/nodes/x/reachable", &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStats(t *testing.T) {
	ts := newTestServer(t)
	var s server.StatsResponse
	getJSON(t, ts.URL+"/api/stats", &s)
	assert.Equal(t, server.StatsResponse{Nodes: 5, Edges: 4, ForwardEdges: 4, Sinks: 2}, s)
}

func TestFindPaths(t *testing.T) {
	ts := newTestServer(t)

	var body server.PathsResponse
	resp := getJSON(t, ts.URL+"/api/paths?from=1&to=4", &body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, [][]int{{1, 2, 4}, {1, 3, 4}}, body.Paths)
	assert.Len(t, body.Scores, 2)
	assert.Equal(t, []int{1, 3, 4}, body.Best)
	require.NotNil(t, body.BestScore)
	assert.Equal(t, body.Scores[1], *body.BestScore)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, 2, body.MinHops)
	assert.Empty(t, body.Message)
}

func TestFindPaths_SameStop(t *testing.T) {
	ts := newTestServer(t)
	var body server.PathsResponse
	getJSON(t, ts.URL+"/api/paths?from=3&to=3", &body)
	assert.Equal(t, [][]int{{3}}, body.Paths)
	require.NotNil(t, body.BestScore)
	assert.Equal(t, 0.0, *body.BestScore)
}

func TestFindPaths_NoPath(t *testing.T) {
	ts := newTestServer(t)

	var raw map[string]interface{}
	resp := getJSON(t, ts.URL+"/api/paths?from=1&to=5", &raw)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, raw["best"])
	assert.Nil(t, raw["best_score"])
	assert.Equal(t, []interface{}{}, raw["paths"])
	assert.Equal(t, "no paths found", raw["message"])
}

func TestFindPaths_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
		msg    string
	}{
		{"unknown end", "/api/paths?from=1&to=99", http.StatusNotFound, "invalid start or end node"},
		{"unknown start", "/api/paths?from=0&to=4", http.StatusNotFound, "invalid start or end node"},
		{"not a number", "/api/paths?from=x&to=4", http.StatusBadRequest, "from and to must be integers"},
		{"missing to", "/api/paths?from=1", http.StatusBadRequest, "from and to must be integers"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var e server.ErrorResponse
			resp := getJSON(t, ts.URL+tc.query, &e)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.msg, e.Error)
			assert.Equal(t, resp.Header.Get(server.HeaderRequestID), e.RequestID)
		})
	}
}

func TestFindPaths_PathLimit(t *testing.T) {
	ts := newTestServer(t, server.WithMaxPaths(1))
	var e server.ErrorResponse
	resp := getJSON(t, ts.URL+"/api/paths?from=1&to=4", &e)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Post(ts.URL+"/api/nodes", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestWithMaxPaths_Panics(t *testing.T) {
	assert.Panics(t, func() { server.WithMaxPaths(-1) })
}

func TestNewHTTPServer(t *testing.T) {
	srv := server.NewHTTPServer(":0", http.NotFoundHandler())
	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, server.ReadTimeout, srv.ReadTimeout)
	assert.Equal(t, server.IdleTimeout, srv.IdleTimeout)
}

func TestAccessLog(t *testing.T) {
	l, hook := test.NewNullLogger()
	g, err := builder.BuildGraph(nil, nil, builder.Stops(2))
	require.NoError(t, err)
	ts := httptest.NewServer(server.NewRouter(server.NewHandler(g, server.WithLogger(logrus.NewEntry(l)))))
	defer ts.Close()

	resp := getJSON(t, ts.URL+"/health", nil)
	resp.Body.Close()

	var served *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "request served" {
			served = e
		}
	}
	require.NotNil(t, served)
	assert.Equal(t, "/health", served.Data["path"])
	assert.Equal(t, http.StatusOK, served.Data["status"])
	assert.Equal(t, resp.Header.Get(server.HeaderRequestID), served.Data["request_id"])
}
