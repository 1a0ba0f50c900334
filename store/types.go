// SPDX-License-Identifier: MIT
// Package store: sentinel errors, entity types and configuration options.
package store

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by Store operations.
var (
	// ErrLimitExceeded indicates the store already holds MaxVertices vertices.
	ErrLimitExceeded = errors.New("store: vertex limit exceeded")

	// ErrInvalidVertex indicates an edge endpoint does not reference a vertex.
	ErrInvalidVertex = errors.New("store: invalid vertex")

	// ErrSelfLoop indicates an edge from a vertex to itself.
	ErrSelfLoop = errors.New("store: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered pair is already connected.
	ErrDuplicateEdge = errors.New("store: duplicate edge")

	// ErrBadWeight indicates an explicit weight that is not a positive finite number.
	ErrBadWeight = errors.New("store: weight must be positive and finite")

	// ErrNotFound indicates an unknown vertex ID or edge index.
	ErrNotFound = errors.New("store: not found")
)

// DefaultMaxVertices is the vertex ceiling of a store built with DefaultOptions.
const DefaultMaxVertices = 15

// defaultNamePrefix is used for vertices added without a name.
const defaultNamePrefix = "Vertex"

// Vertex is a point placed on the map.
type Vertex struct {
	ID    string  `json:"id"`
	Index int     `json:"index"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Name  string  `json:"name"`
}

// Edge joins two vertices by stable ID. Weight is in kilometers.
type Edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Connects reports whether e joins u and v in either direction.
func (e Edge) Connects(u, v string) bool {
	return (e.From == u && e.To == v) || (e.From == v && e.To == u)
}

// Touches reports whether id is an endpoint of e.
func (e Edge) Touches(id string) bool {
	return e.From == id || e.To == id
}

// VertexInput describes a vertex for bulk loading.
type VertexInput struct {
	Lat  float64
	Lon  float64
	Name string
}

// EdgeInput describes an edge for bulk loading by positional index.
// A zero Weight means "compute from coordinates".
type EdgeInput struct {
	From   int
	To     int
	Weight float64
}

// Options configures a Store.
//
// MaxVertices – vertex ceiling, must be ≥ 1. Default DefaultMaxVertices.
// NewID       – stable ID generator. Default uuid.NewString.
type Options struct {
	MaxVertices int
	NewID       func() string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the default store configuration.
func DefaultOptions() Options {
	return Options{
		MaxVertices: DefaultMaxVertices,
		NewID:       uuid.NewString,
	}
}

// WithMaxVertices sets the vertex ceiling.
// Panics if n < 1.
func WithMaxVertices(n int) Option {
	if n < 1 {
		panic("store: WithMaxVertices requires n >= 1")
	}

	return func(o *Options) { o.MaxVertices = n }
}

// WithIDGenerator overrides the stable ID generator.
// Panics if fn is nil.
func WithIDGenerator(fn func() string) Option {
	if fn == nil {
		panic("store: WithIDGenerator requires a non-nil generator")
	}

	return func(o *Options) { o.NewID = fn }
}

// edgeConfig holds per-call AddEdge settings.
type edgeConfig struct {
	weight    float64
	hasWeight bool
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

// WithWeight sets an explicit edge weight in kilometers instead of the
// Haversine default.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) {
		c.weight = w
		c.hasWeight = true
	}
}
