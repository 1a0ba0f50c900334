// SPDX-License-Identifier: MIT
// Package: trafficgraph/builder
//
// api.go — public entry-points for the builder package.
//
// Design contract:
//   - Build(src) is the only conversion from store contents to core.Graph.
//   - Fixtures: one orchestrator Populate(s, bopts, cons...) resolving
//     options into an immutable builderConfig and running cons in order.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical output.

package builder

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/store"
)

// Source is the read side of a store consumed by Build.
type Source interface {
	Vertices() []store.Vertex
	Edges() []store.Edge
}

// Minimum store size accepted by Build.
const (
	MinBuildVertices = 2
	MinBuildEdges    = 1
)

// Build converts src into an undirected weighted core.Graph.
//
// Steps:
//  1. Reject fewer than MinBuildVertices vertices or MinBuildEdges edges.
//  2. Mirror: add every vertex in positional order, carrying Index, Lat,
//     Lon, Name, then every edge in store order with its weight.
//
// Complexity: O(V+E).
func Build(src Source) (*core.Graph, error) {
	vs, es := src.Vertices(), src.Edges()

	// 1) size checks
	if len(vs) < MinBuildVertices {
		return nil, fmt.Errorf("Build: %d vertices: %w", len(vs), ErrTooFewVertices)
	}
	if len(es) < MinBuildEdges {
		return nil, fmt.Errorf("Build: %w", ErrNoEdges)
	}

	return Mirror(vs, es)
}

// Mirror converts vertices and edges into a core.Graph without the size
// checks of Build. Statistics use it on graphs too small to run algorithms.
func Mirror(vs []store.Vertex, es []store.Edge) (*core.Graph, error) {
	g := core.NewGraph()

	for _, v := range vs {
		cv := core.Vertex{ID: v.ID, Index: v.Index, Lat: v.Lat, Lon: v.Lon, Name: v.Name}
		if err := g.AddVertex(cv); err != nil {
			return nil, fmt.Errorf("Mirror: AddVertex(%s): %w", v.Name, err)
		}
	}

	for _, e := range es {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("Mirror: AddEdge(%s,%s): %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// Constructor applies a deterministic fixture to a store using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(s *store.Store, cfg builderConfig) error

// Populate resolves bopts and applies all constructors to s in order.
// Any constructor error is wrapped with "Populate: %w" and returned
// immediately; vertices already added stay in s.
func Populate(s *store.Store, bopts []BuilderOption, cons ...Constructor) error {
	if s == nil {
		return fmt.Errorf("Populate: nil store: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Populate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return fmt.Errorf("Populate: %w", err)
		}
	}

	return nil
}

// BuildStore creates a store with sopts and populates it.
func BuildStore(sopts []store.Option, bopts []BuilderOption, cons ...Constructor) (*store.Store, error) {
	s := store.New(sopts...)
	if err := Populate(s, bopts, cons...); err != nil {
		return nil, err
	}

	return s, nil
}

// addVertex places a fixture vertex at p and names it prefix+index.
func addVertex(method string, s *store.Store, cfg builderConfig, lat, lon float64, name string) (string, error) {
	if name == "" && cfg.namePrefix != "" {
		name = fmt.Sprintf("%s%d", cfg.namePrefix, s.Len())
	}
	v, err := s.AddVertex(lat, lon, name)
	if err != nil {
		return "", fmt.Errorf("%s: AddVertex: %w: %w", method, ErrConstructFailed, err)
	}

	return v.ID, nil
}

// addRing places n vertices on the configured ring and returns their IDs.
func addRing(method string, s *store.Store, cfg builderConfig, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		p := cfg.ringPoint(i, n)
		id, err := addVertex(method, s, cfg, p.Lat, p.Lon, "")
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	return ids, nil
}

// connect adds u–v using cfg.weightFn, or the store's Haversine weight.
func connect(method string, s *store.Store, cfg builderConfig, u, v string) error {
	var opts []store.EdgeOption
	if cfg.weightFn != nil {
		opts = append(opts, store.WithWeight(cfg.weightFn(cfg.rng)))
	}
	if _, err := s.AddEdge(u, v, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
