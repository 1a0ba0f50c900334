// SPDX-License-Identifier: MIT
// Package httpapi exposes sessions, saved routes and road geometry as a
// JSON API on Gin.
package httpapi

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/trafficgraph/geometry"
	"github.com/katalvlaran/trafficgraph/internal/metrics"
	"github.com/katalvlaran/trafficgraph/routes"
	"github.com/katalvlaran/trafficgraph/session"
)

// RouterDeps collects what the API serves. Sessions and Routes are
// required; a nil Geometry answers with straight segments and a nil Metrics
// disables /metrics.
type RouterDeps struct {
	ServiceName   string
	Version       string
	Sessions      *session.Manager
	Routes        routes.Store
	Geometry      geometry.Resolver
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	CORSOrigins   []string
	AnimationStep time.Duration
}

// Handler serves the API.
type Handler struct {
	sessions *session.Manager
	routes   routes.Store
	geometry geometry.Resolver
	logger   *slog.Logger
	step     time.Duration
}

// BuildRouter wires middleware and every route.
func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Logger == nil {
		dep.Logger = slog.Default()
	}
	if dep.Geometry == nil {
		dep.Geometry = geometry.Straight{}
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), observe(dep.Metrics, dep.Logger), cors.New(corsConfig(dep.CORSOrigins)))

	health := NewHealthHandler(dep.ServiceName, dep.Version)
	health.RegisterRoutes(r)
	if dep.Metrics != nil {
		r.GET("/metrics", gin.WrapH(dep.Metrics.Handler()))
	}

	h := &Handler{
		sessions: dep.Sessions,
		routes:   dep.Routes,
		geometry: dep.Geometry,
		logger:   dep.Logger,
		step:     dep.AnimationStep,
	}
	h.Register(r.Group("/api"))

	return r
}

// Register registers the API routes on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.CreateSession)
	rg.DELETE("/sessions/:sid", h.DeleteSession)

	s := rg.Group("/sessions/:sid")
	s.GET("/graph", h.GetGraph)
	s.GET("/stats", h.GetStats)
	s.POST("/vertices", h.AddVertex)
	s.DELETE("/vertices/:vid", h.RemoveVertex)
	s.GET("/nearest", h.Nearest)
	s.POST("/edges", h.AddEdge)
	s.DELETE("/edges/:index", h.RemoveEdge)
	s.POST("/generate", h.Generate)

	s.POST("/run", h.Run)
	s.GET("/results", h.ListResults)
	s.GET("/results/:rid", h.GetResult)
	s.POST("/results/:rid/select", h.SelectResult)
	s.DELETE("/results/:rid", h.DeleteResult)
	s.DELETE("/results", h.ClearResults)

	s.POST("/animation", h.StartAnimation)
	s.POST("/animation/tick", h.TickAnimation)
	s.DELETE("/animation", h.StopAnimation)

	s.GET("/traversal", h.Traversal)
	s.GET("/bipartite", h.Bipartite)
	s.GET("/cycle", h.Cycle)
	s.GET("/representation", h.Representation)

	s.GET("/export", h.Export)
	s.POST("/import", h.Import)
	s.PUT("/routes/:name", h.SaveRoute)
	s.POST("/routes/:name/load", h.LoadRoute)

	rg.GET("/routes", h.ListRoutes)
	rg.DELETE("/routes/:name", h.DeleteRoute)
	rg.GET("/geometry", h.Geometry)
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

// observe records request metrics and logs each request.
func observe(m *metrics.Metrics, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(began)
		status := c.Writer.Status()
		if m != nil {
			m.ObserveHTTP(c.Request.Method, route, status, elapsed)
		}
		if len(c.Errors) > 0 {
			logger.Error("http request failed", "method", c.Request.Method, "route", route, "status", status, "error", c.Errors.String())
			return
		}
		logger.Debug("http request", "method", c.Request.Method, "route", route, "status", status, "elapsed", elapsed)
	}
}
