// SPDX-License-Identifier: MIT
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/trafficgraph/builder"
)

// Generate replaces the graph with a fixture topology
func (h *Handler) Generate(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var body GenerateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		invalid(c, "shape and n are required")
		return
	}
	shape, err := builder.ParseShape(body.Shape)
	if err != nil {
		fail(c, err)
		return
	}
	opts, msg := generateOptions(body)
	if msg != "" {
		invalid(c, msg)
		return
	}
	if err := s.Generate(shape, body.N, opts...); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, graphResponse(s))
}

// generateOptions validates the request before any option constructor can
// panic. A non-empty message means the request is rejected.
func generateOptions(body GenerateRequest) ([]builder.BuilderOption, string) {
	var opts []builder.BuilderOption
	if body.Prefix != "" {
		opts = append(opts, builder.WithNamePrefix(body.Prefix))
	}
	if (body.Lat == nil) != (body.Lon == nil) {
		return nil, "lat and lon must be given together"
	}
	if body.Lat != nil {
		if !validCoordinate(*body.Lat, *body.Lon) {
			return nil, "lat must be in [-90, 90] and lon in [-180, 180]"
		}
		opts = append(opts, builder.WithCenter(*body.Lat, *body.Lon))
	}
	switch {
	case body.RadiusKm < 0:
		return nil, "radius_km must be positive"
	case body.RadiusKm > 0:
		opts = append(opts, builder.WithRadiusKm(body.RadiusKm))
	}
	switch {
	case body.Weight < 0:
		return nil, "weight must be positive"
	case body.Weight > 0:
		opts = append(opts, builder.WithConstantWeight(body.Weight))
	case body.MinWeight != 0 || body.MaxWeight != 0:
		if !(body.MinWeight > 0) || body.MaxWeight < body.MinWeight {
			return nil, "weights need 0 < min_weight <= max_weight"
		}
		opts = append(opts, builder.WithUniformWeight(body.MinWeight, body.MaxWeight), builder.WithSeed(body.Seed))
	}

	return opts, ""
}
