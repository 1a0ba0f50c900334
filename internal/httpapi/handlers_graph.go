// SPDX-License-Identifier: MIT
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/trafficgraph/session"
	"github.com/katalvlaran/trafficgraph/store"
)

// session resolves :sid or writes a 404.
func (h *Handler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		fail(c, err)
		return nil, false
	}

	return s, true
}

// CreateSession starts a new session
func (h *Handler) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "session": SessionView{
		ID:              s.ID(),
		CreatedAt:       s.CreatedAt(),
		MaxVertices:     s.MaxVertices(),
		AnimationStepMs: h.step.Milliseconds(),
	}})
}

// DeleteSession ends a session
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("sid")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetGraph returns vertices, edges, animation state and the current result
func (h *Handler) GetGraph(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, graphResponse(s))
}

func graphResponse(s *session.Session) GraphResponse {
	vs := s.Vertices()
	pos := make(map[string]int, len(vs))
	for _, v := range vs {
		pos[v.ID] = v.Index
	}
	es := s.Edges()
	views := make([]EdgeView, len(es))
	for i, e := range es {
		views[i] = EdgeView{Index: i, From: e.From, To: e.To, FromIndex: pos[e.From], ToIndex: pos[e.To], Weight: e.Weight}
	}

	resp := GraphResponse{OK: true, Vertices: vs, Edges: views, Animation: s.Animation()}
	if cur, ok := s.Current(); ok {
		resp.Current = &cur
	}

	return resp
}

// GetStats summarizes the graph
func (h *Handler) GetStats(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	st, err := s.Stats()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{OK: true, Stats: st})
}

// AddVertex places a vertex at a map click
func (h *Handler) AddVertex(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var body AddVertexRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalid(c, "lat and lon are required")
		return
	}
	if !validCoordinate(*body.Lat, *body.Lon) {
		invalid(c, "lat must be in [-90, 90] and lon in [-180, 180]")
		return
	}

	v, err := s.AddVertex(*body.Lat, *body.Lon, body.Name)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "vertex": v})
}

// RemoveVertex deletes a vertex and its incident edges
func (h *Handler) RemoveVertex(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	if err := s.RemoveVertex(c.Param("vid")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Nearest finds the vertex closest to a click within radius meters
func (h *Handler) Nearest(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil || !validCoordinate(lat, lon) {
		invalid(c, "lat and lon query parameters are required")
		return
	}
	radius := 0.0
	if r := c.Query("radius"); r != "" {
		var err error
		if radius, err = strconv.ParseFloat(r, 64); err != nil || radius < 0 {
			invalid(c, "radius must be a non-negative number of meters")
			return
		}
	}

	v, found := s.FindNearestVertex(lat, lon, radius)
	resp := NearestResponse{OK: true, Found: found}
	if found {
		resp.Vertex = &v
	}
	c.JSON(http.StatusOK, resp)
}

// AddEdge connects two vertices
func (h *Handler) AddEdge(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var body AddEdgeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalid(c, "from and to are required")
		return
	}
	var opts []store.EdgeOption
	if body.Weight != nil {
		opts = append(opts, store.WithWeight(*body.Weight))
	}

	e, err := s.AddEdge(body.From, body.To, opts...)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "edge": e})
}

// RemoveEdge deletes the edge at a positional index
func (h *Handler) RemoveEdge(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		invalid(c, "edge index must be an integer")
		return
	}
	if err := s.RemoveEdge(idx); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func validCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
