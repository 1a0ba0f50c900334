// SPDX-License-Identifier: MIT
package httpapi

import (
	"time"

	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/geo"
	"github.com/katalvlaran/trafficgraph/history"
	"github.com/katalvlaran/trafficgraph/routes"
	"github.com/katalvlaran/trafficgraph/session"
	"github.com/katalvlaran/trafficgraph/stats"
	"github.com/katalvlaran/trafficgraph/store"
)

type SessionView struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	MaxVertices     int       `json:"max_vertices"`
	AnimationStepMs int64     `json:"animation_step_ms"`
}

// EdgeView is a store edge with its positional index and endpoint indices.
type EdgeView struct {
	Index     int     `json:"index"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	FromIndex int     `json:"from_index"`
	ToIndex   int     `json:"to_index"`
	Weight    float64 `json:"weight"`
}

type GraphResponse struct {
	OK        bool                   `json:"ok"`
	Vertices  []store.Vertex         `json:"vertices"`
	Edges     []EdgeView             `json:"edges"`
	Animation session.AnimationState `json:"animation"`
	Current   *history.Entry         `json:"current,omitempty"`
}

type StatsResponse struct {
	OK    bool        `json:"ok"`
	Stats stats.Stats `json:"stats"`
}

type AddVertexRequest struct {
	Lat  *float64 `json:"lat" binding:"required"`
	Lon  *float64 `json:"lon" binding:"required"`
	Name string   `json:"name"`
}

type AddEdgeRequest struct {
	From   string   `json:"from" binding:"required"`
	To     string   `json:"to" binding:"required"`
	Weight *float64 `json:"weight"`
}

type NearestResponse struct {
	OK     bool          `json:"ok"`
	Found  bool          `json:"found"`
	Vertex *store.Vertex `json:"vertex,omitempty"`
}

type RunRequest struct {
	Kind  string `json:"kind" binding:"required"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type EntryResponse struct {
	OK    bool          `json:"ok"`
	Entry history.Entry `json:"entry"`
}

type ResultsResponse struct {
	OK      bool            `json:"ok"`
	Results []history.Entry `json:"results"`
	Current *uint64         `json:"current,omitempty"`
}

type AnimationRequest struct {
	Sequence []string `json:"sequence"`
}

type AnimationResponse struct {
	OK        bool                   `json:"ok"`
	Animation session.AnimationState `json:"animation"`
}

type TickResponse struct {
	OK        bool                   `json:"ok"`
	Node      string                 `json:"node,omitempty"`
	Advanced  bool                   `json:"advanced"`
	Animation session.AnimationState `json:"animation"`
}

type RoutesResponse struct {
	OK     bool             `json:"ok"`
	Routes []routes.Summary `json:"routes"`
}

type GeometryResponse struct {
	OK     bool        `json:"ok"`
	Points []geo.Point `json:"points"`
}

type TraversalResponse struct {
	OK        bool              `json:"ok"`
	Traversal session.Traversal `json:"traversal"`
}

type BipartiteResponse struct {
	OK bool `json:"ok"`
	*bfs.BipartiteResult
}

type CycleResponse struct {
	OK    bool     `json:"ok"`
	Found bool     `json:"found"`
	Cycle []string `json:"cycle,omitempty"`
}

type RepresentationResponse struct {
	OK bool `json:"ok"`
	session.Representation
}

// GenerateRequest picks a fixture. Without weight or max_weight, edges get
// their Haversine length.
type GenerateRequest struct {
	Shape     string   `json:"shape" binding:"required"`
	N         int      `json:"n" binding:"required"`
	Lat       *float64 `json:"lat"`
	Lon       *float64 `json:"lon"`
	RadiusKm  float64  `json:"radius_km"`
	Weight    float64  `json:"weight"`
	MinWeight float64  `json:"min_weight"`
	MaxWeight float64  `json:"max_weight"`
	Seed      int64    `json:"seed"`
	Prefix    string   `json:"name_prefix"`
}
