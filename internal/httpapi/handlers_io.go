// SPDX-License-Identifier: MIT
package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/trafficgraph/geo"
	"github.com/katalvlaran/trafficgraph/graphio"
)

var contentTypes = map[graphio.Format]string{
	graphio.JSON: "application/json; charset=utf-8",
	graphio.YAML: "application/yaml; charset=utf-8",
}

// format picks the codec from ?format=, then the Content-Type, then JSON.
func format(c *gin.Context) (graphio.Format, error) {
	if f := c.Query("format"); f != "" {
		return graphio.ParseFormat(f)
	}
	if strings.Contains(c.ContentType(), "yaml") {
		return graphio.YAML, nil
	}

	return graphio.JSON, nil
}

// Export writes the graph payload as JSON or YAML
func (h *Handler) Export(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	f, err := format(c)
	if err != nil {
		fail(c, err)
		return
	}
	data, err := graphio.Marshal(s.Export(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.Data(http.StatusOK, contentTypes[f], data)
}

// Import replaces the graph with the request body
func (h *Handler) Import(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	f, err := format(c)
	if err != nil {
		fail(c, err)
		return
	}
	doc, err := graphio.Decode(c.Request.Body, f)
	if err != nil {
		fail(c, err)
		return
	}
	if err := s.Import(doc); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, graphResponse(s))
}

// ListRoutes lists saved routes by name
func (h *Handler) ListRoutes(c *gin.Context) {
	list, err := h.routes.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, RoutesResponse{OK: true, Routes: list})
}

// SaveRoute stores the session graph under a name
func (h *Handler) SaveRoute(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	name := c.Param("name")
	if err := h.routes.Save(c.Request.Context(), name, s.Export()); err != nil {
		fail(c, err)
		return
	}
	h.logger.Info("route saved", "session", s.ID(), "route", name)
	c.JSON(http.StatusOK, gin.H{"ok": true, "name": name})
}

// LoadRoute replaces the session graph with a saved route
func (h *Handler) LoadRoute(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	name := c.Param("name")
	doc, err := h.routes.Load(c.Request.Context(), name)
	if err != nil {
		fail(c, err)
		return
	}
	if err := s.Import(doc); err != nil {
		fail(c, err)
		return
	}
	h.logger.Info("route loaded", "session", s.ID(), "route", name)
	c.JSON(http.StatusOK, graphResponse(s))
}

// DeleteRoute removes a saved route
func (h *Handler) DeleteRoute(c *gin.Context) {
	if err := h.routes.Delete(c.Request.Context(), c.Param("name")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Geometry resolves the road path between two points
func (h *Handler) Geometry(c *gin.Context) {
	from, okFrom := parsePoint(c.Query("from"))
	to, okTo := parsePoint(c.Query("to"))
	if !okFrom || !okTo {
		invalid(c, "from and to must be lat,lon pairs")
		return
	}
	c.JSON(http.StatusOK, GeometryResponse{OK: true, Points: h.geometry.ResolvePath(c.Request.Context(), from, to)})
}

// parsePoint reads "lat,lon".
func parsePoint(s string) (geo.Point, bool) {
	latStr, lonStr, found := strings.Cut(s, ",")
	if !found {
		return geo.Point{}, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Point{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil || !validCoordinate(lat, lon) {
		return geo.Point{}, false
	}

	return geo.Point{Lat: lat, Lon: lon}, true
}
