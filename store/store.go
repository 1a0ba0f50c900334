// SPDX-License-Identifier: MIT
// File: store.go
// Role: Store mutations (AddVertex/AddEdge/RemoveVertex/RemoveEdge/Replace)
//       and queries (Vertices/Edges/At/IndexOf/Names/FindNearestVertex).
// Determinism:
//   - Vertices() is positional order; Edges() is insertion order.
//   - FindNearestVertex keeps the earliest vertex on distance ties.

package store

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/trafficgraph/geo"
)

// Store is the editable vertex/edge collection of one session.
type Store struct {
	opts     Options
	vertices []Vertex
	edges    []Edge
	byID     map[string]int // vertex ID → position
	revision uint64
}

// New returns an empty Store configured by opts.
func New(opts ...Option) *Store {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Store{opts: o, byID: make(map[string]int)}
}

// MaxVertices returns the configured vertex ceiling.
func (s *Store) MaxVertices() int { return s.opts.MaxVertices }

// Len returns the number of vertices.
func (s *Store) Len() int { return len(s.vertices) }

// EdgeCount returns the number of edges.
func (s *Store) EdgeCount() int { return len(s.edges) }

// Revision returns a counter that grows on every successful mutation.
func (s *Store) Revision() uint64 { return s.revision }

// AddVertex appends a vertex at the next positional index.
// A blank name defaults to "Vertex <index>".
func (s *Store) AddVertex(lat, lon float64, name string) (Vertex, error) {
	if len(s.vertices) >= s.opts.MaxVertices {
		return Vertex{}, fmt.Errorf("store: AddVertex: maximum %d vertices: %w", s.opts.MaxVertices, ErrLimitExceeded)
	}
	idx := len(s.vertices)
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("%s %d", defaultNamePrefix, idx)
	}
	v := Vertex{ID: s.opts.NewID(), Index: idx, Lat: lat, Lon: lon, Name: name}
	s.vertices = append(s.vertices, v)
	s.byID[v.ID] = idx
	s.revision++

	return v, nil
}

// AddEdge connects u and v. Without WithWeight the weight is the Haversine
// distance in kilometers rounded to two decimals.
//
// Steps:
//  1. Reject u == v.
//  2. Resolve both endpoints.
//  3. Reject an existing edge in either direction.
//  4. Resolve the weight.
//  5. Append.
func (s *Store) AddEdge(u, v string, opts ...EdgeOption) (Edge, error) {
	// 1) self-loop
	if u == v {
		return Edge{}, fmt.Errorf("store: AddEdge(%q,%q): %w", u, v, ErrSelfLoop)
	}

	// 2) endpoints
	iu, ok := s.byID[u]
	if !ok {
		return Edge{}, fmt.Errorf("store: AddEdge: from %q: %w", u, ErrInvalidVertex)
	}
	iv, ok := s.byID[v]
	if !ok {
		return Edge{}, fmt.Errorf("store: AddEdge: to %q: %w", v, ErrInvalidVertex)
	}

	// 3) duplicate in either direction
	if s.HasEdge(u, v) {
		return Edge{}, fmt.Errorf("store: AddEdge(%s,%s): %w",
			s.vertices[iu].Name, s.vertices[iv].Name, ErrDuplicateEdge)
	}

	// 4) weight
	var cfg edgeConfig
	for _, fn := range opts {
		fn(&cfg)
	}
	w := cfg.weight
	if cfg.hasWeight {
		if !(w > 0) || math.IsInf(w, 0) {
			return Edge{}, fmt.Errorf("store: AddEdge: weight %v: %w", w, ErrBadWeight)
		}
	} else {
		a, b := s.vertices[iu], s.vertices[iv]
		w = geo.EdgeWeightKm(geo.Point{Lat: a.Lat, Lon: a.Lon}, geo.Point{Lat: b.Lat, Lon: b.Lon})
	}

	// 5) append
	e := Edge{From: u, To: v, Weight: w}
	s.edges = append(s.edges, e)
	s.revision++

	return e, nil
}

// HasEdge reports whether u and v are connected in either direction.
func (s *Store) HasEdge(u, v string) bool {
	for _, e := range s.edges {
		if e.Connects(u, v) {
			return true
		}
	}

	return false
}

// RemoveVertex deletes the vertex with the given ID together with its
// incident edges, then renumbers the remaining vertices.
func (s *Store) RemoveVertex(id string) error {
	pos, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("store: RemoveVertex(%q): %w", id, ErrNotFound)
	}

	// drop incident edges; survivors keep their order and weights
	kept := s.edges[:0]
	for _, e := range s.edges {
		if !e.Touches(id) {
			kept = append(kept, e)
		}
	}
	s.edges = kept

	s.vertices = append(s.vertices[:pos], s.vertices[pos+1:]...)
	s.reindex()
	s.revision++

	return nil
}

// RemoveEdge deletes the edge at the given position of Edges().
func (s *Store) RemoveEdge(index int) error {
	if index < 0 || index >= len(s.edges) {
		return fmt.Errorf("store: RemoveEdge(%d): %w", index, ErrNotFound)
	}
	s.edges = append(s.edges[:index], s.edges[index+1:]...)
	s.revision++

	return nil
}

// Replace swaps the whole content for the given vertices and edges.
// Edges reference vertices by position in vs. Validation matches AddVertex
// and AddEdge; on any error the store is left unchanged.
func (s *Store) Replace(vs []VertexInput, es []EdgeInput) error {
	next := &Store{opts: s.opts, byID: make(map[string]int)}
	for i, in := range vs {
		if _, err := next.AddVertex(in.Lat, in.Lon, in.Name); err != nil {
			return fmt.Errorf("store: Replace: vertex %d: %w", i, err)
		}
	}
	for i, in := range es {
		if in.From < 0 || in.From >= len(next.vertices) || in.To < 0 || in.To >= len(next.vertices) {
			return fmt.Errorf("store: Replace: edge %d (%d,%d): %w", i, in.From, in.To, ErrInvalidVertex)
		}
		var opts []EdgeOption
		if in.Weight != 0 {
			opts = append(opts, WithWeight(in.Weight))
		}
		if _, err := next.AddEdge(next.vertices[in.From].ID, next.vertices[in.To].ID, opts...); err != nil {
			return fmt.Errorf("store: Replace: edge %d: %w", i, err)
		}
	}

	s.vertices, s.edges, s.byID = next.vertices, next.edges, next.byID
	s.revision++

	return nil
}

// Vertices returns a copy of all vertices in positional order.
func (s *Store) Vertices() []Vertex {
	out := make([]Vertex, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// Edges returns a copy of all edges in insertion order.
func (s *Store) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Vertex returns the vertex with the given stable ID.
func (s *Store) Vertex(id string) (Vertex, error) {
	pos, ok := s.byID[id]
	if !ok {
		return Vertex{}, fmt.Errorf("store: Vertex(%q): %w", id, ErrNotFound)
	}

	return s.vertices[pos], nil
}

// At returns the vertex at the given positional index.
func (s *Store) At(index int) (Vertex, error) {
	if index < 0 || index >= len(s.vertices) {
		return Vertex{}, fmt.Errorf("store: At(%d): %w", index, ErrNotFound)
	}

	return s.vertices[index], nil
}

// IndexOf returns the current positional index of a stable ID.
func (s *Store) IndexOf(id string) (int, bool) {
	pos, ok := s.byID[id]

	return pos, ok
}

// Names returns the ID → name lookup table.
func (s *Store) Names() map[string]string {
	out := make(map[string]string, len(s.vertices))
	for _, v := range s.vertices {
		out[v.ID] = v.Name
	}

	return out
}

// FindNearestVertex returns the vertex closest to (lat, lon) within
// maxDistanceM meters. ok is false when the store is empty or nothing is in
// range.
func (s *Store) FindNearestVertex(lat, lon, maxDistanceM float64) (Vertex, bool) {
	best := -1
	bestD := math.Inf(1)
	for i, v := range s.vertices {
		d := geo.Haversine(lat, lon, v.Lat, v.Lon)
		if d < bestD && d <= maxDistanceM {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return Vertex{}, false
	}

	return s.vertices[best], true
}

// reindex rewrites Index and the ID lookup after a deletion.
func (s *Store) reindex() {
	s.byID = make(map[string]int, len(s.vertices))
	for i := range s.vertices {
		s.vertices[i].Index = i
		s.byID[s.vertices[i].ID] = i
	}
}
