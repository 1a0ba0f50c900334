// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex and Edge types and the
// sentinel errors shared by its methods.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex with the same ID already exists.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a node of the graph together with the display attributes of the
// map point it represents.
type Vertex struct {
	// ID is the stable identifier of this vertex.
	ID string

	// Index is the positional index of the vertex in its source store.
	Index int

	// Lat and Lon are decimal degrees.
	Lat float64
	Lon float64

	// Name is the human-readable label.
	Name string
}

// Edge is an undirected weighted connection between two vertices.
//
// From/To keep the orientation the edge was inserted with; algorithms treat
// the pair as unordered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs.
	From string
	To   string

	// Weight is the edge length in kilometers.
	Weight float64

	// seq is the insertion sequence number; it defines enumeration order.
	seq uint64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint, From is returned.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// Graph is an undirected weighted simple graph.
//
// muVert protects vertices and order; muEdgeAdj protects edges and adjacency.
// nextEdgeID is the edge sequence counter.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards edges, adjacency, nextEdgeID

	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // vertex IDs in insertion order

	nextEdgeID uint64           // last issued edge sequence number
	edges      map[string]*Edge // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for both orientations.
	adjacency map[string]map[string]string
}

// GraphStats is a read-only summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	TotalWeight float64
	MinDegree   int
	MaxDegree   int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
