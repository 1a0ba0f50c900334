// SPDX-License-Identifier: MIT
package httpapi_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/internal/httpapi"
	"github.com/katalvlaran/trafficgraph/session"
)

func TestTraversal(t *testing.T) {
	a := newAPI(t)
	sid := a.createSession()
	va, vb, vc := a.triangle(sid)
	base := "/api/sessions/" + sid + "/traversal"

	var body httpapi.TraversalResponse
	a.decode(a.do(http.MethodGet, base+"?start="+va, nil), http.StatusOK, &body)
	assert.Equal(t, session.TraversalBFS, body.Traversal.Method)
	assert.Equal(t, []string{va, vb, vc}, body.Traversal.Order)

	a.decode(a.do(http.MethodGet, base+"?method=dfs&start="+va, nil), http.StatusOK, &body)
	assert.Equal(t, session.TraversalDFS, body.Traversal.Method)
	assert.Equal(t, [][2]string{{va, vb}, {vb, vc}}, body.Traversal.Edges)

	a.failure(a.do(http.MethodGet, base, nil), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodGet, base+"?method=astar&start="+va, nil), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodGet, base+"?start=ghost", nil), http.StatusBadRequest, session.KindInvalidVertex)
}

func TestBipartiteAndCycle(t *testing.T) {
	a := newAPI(t)
	sid := a.createSession()
	va, vb, vc := a.triangle(sid)

	var bp struct {
		OK        bool     `json:"ok"`
		Bipartite bool     `json:"bipartite"`
		SetA      []string `json:"set_a"`
		OddCycle  []string `json:"odd_cycle"`
	}
	a.decode(a.do(http.MethodGet, "/api/sessions/"+sid+"/bipartite", nil), http.StatusOK, &bp)
	assert.True(t, bp.OK)
	assert.False(t, bp.Bipartite)
	assert.Equal(t, []string{va, vb, vc, va}, bp.OddCycle)

	var cy httpapi.CycleResponse
	a.decode(a.do(http.MethodGet, "/api/sessions/"+sid+"/cycle", nil), http.StatusOK, &cy)
	assert.True(t, cy.Found)
	assert.Len(t, cy.Cycle, 4)

	empty := a.createSession()
	a.decode(a.do(http.MethodGet, "/api/sessions/"+empty+"/bipartite", nil), http.StatusOK, &bp)
	assert.True(t, bp.Bipartite)
	assert.Empty(t, bp.SetA)
}

func TestRepresentation(t *testing.T) {
	a := newAPI(t)
	sid := a.createSession()
	a.triangle(sid)
	base := "/api/sessions/" + sid + "/representation"

	var rep struct {
		OK     bool        `json:"ok"`
		Form   string      `json:"form"`
		Matrix [][]float64 `json:"matrix"`
	}
	a.decode(a.do(http.MethodGet, base, nil), http.StatusOK, &rep)
	assert.Equal(t, "adjacency_matrix", rep.Form)
	assert.Equal(t, [][]float64{{0, 1, 5}, {1, 0, 1}, {5, 1, 0}}, rep.Matrix)

	rr := a.do(http.MethodGet, base+"?form=edges&format=csv", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "edge_list.csv")
	assert.Equal(t, "Node1,Node2,Weight\nBenThanh,NhaTho,1\nNhaTho,DinhDocLap,1\nBenThanh,DinhDocLap,5\n", rr.Body.String())

	a.failure(a.do(http.MethodGet, base+"?form=incidence", nil), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodGet, base+"?format=xml", nil), http.StatusBadRequest, session.KindInvalidInput)
}

func TestGenerate(t *testing.T) {
	a := newAPI(t)
	sid := a.createSession()
	path := "/api/sessions/" + sid + "/generate"

	var graph httpapi.GraphResponse
	a.decode(a.do(http.MethodPost, path, map[string]any{"shape": "cycle", "n": 5, "weight": 2, "name_prefix": "Ga "}), http.StatusOK, &graph)
	require.Len(t, graph.Vertices, 5)
	assert.Equal(t, "Ga 0", graph.Vertices[0].Name)
	require.Len(t, graph.Edges, 5)
	assert.Equal(t, 2.0, graph.Edges[0].Weight)

	a.decode(a.do(http.MethodPost, path, map[string]any{
		"shape": "star", "n": 4, "lat": 10.78, "lon": 106.70, "radius_km": 1,
		"min_weight": 1, "max_weight": 3, "seed": 7,
	}), http.StatusOK, &graph)
	assert.Len(t, graph.Edges, 3)
	for _, e := range graph.Edges {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 3.0)
	}

	a.failure(a.do(http.MethodPost, path, map[string]any{"shape": "grid", "n": 4}), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodPost, path, map[string]any{"shape": "path"}), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodPost, path, map[string]any{"shape": "path", "n": 3, "lat": 10}), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodPost, path, map[string]any{"shape": "path", "n": 3, "radius_km": -1}), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodPost, path, map[string]any{"shape": "path", "n": 3, "min_weight": 4, "max_weight": 3}), http.StatusBadRequest, session.KindInvalidInput)
	a.failure(a.do(http.MethodPost, path, map[string]any{"shape": "complete", "n": 40}), http.StatusConflict, session.KindLimitExceeded)
	a.failure(a.do(http.MethodPost, path, map[string]any{"shape": "cycle", "n": 2}), http.StatusBadRequest, session.KindInvalidInput)
}
