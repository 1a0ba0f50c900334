// SPDX-License-Identifier: MIT
package httpapi

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/trafficgraph/matrix"
	"github.com/katalvlaran/trafficgraph/session"
)

// Traversal runs BFS or DFS from ?start=
func (h *Handler) Traversal(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	method := session.TraversalBFS
	if q := c.Query("method"); q != "" {
		m, err := session.ParseTraversal(q)
		if err != nil {
			fail(c, err)
			return
		}
		method = m
	}
	start := c.Query("start")
	if start == "" {
		invalid(c, "start is required")
		return
	}
	tr, err := s.Traverse(c.Request.Context(), method, start)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, TraversalResponse{OK: true, Traversal: tr})
}

// Bipartite reports the two-coloring or an odd cycle
func (h *Handler) Bipartite(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	res, err := s.Bipartite()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BipartiteResponse{OK: true, BipartiteResult: res})
}

// Cycle reports the first cycle, if any
func (h *Handler) Cycle(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	found, cycle, err := s.Cycle()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, CycleResponse{OK: true, Found: found, Cycle: cycle})
}

// Representation converts the graph to ?form=, as JSON or ?format=csv
func (h *Handler) Representation(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	form, err := matrix.ParseForm(c.DefaultQuery("form", string(matrix.FormAdjacencyMatrix)))
	if err != nil {
		fail(c, err)
		return
	}

	switch c.DefaultQuery("format", "json") {
	case "json":
		rep, err := s.Represent(form)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, RepresentationResponse{OK: true, Representation: rep})
	case "csv":
		var buf bytes.Buffer
		if err := s.WriteCSV(&buf, form); err != nil {
			fail(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+string(form)+`.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	default:
		invalid(c, "format must be json or csv")
	}
}
