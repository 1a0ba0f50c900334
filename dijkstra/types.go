// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on the traffic graph.
//
// Dijkstra computes the minimum-cost route from a single source vertex to all
// other reachable vertices. Edge weights are kilometers and must be
// non-negative.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	– Space: O(V + E) (lazy decrease-key keeps up to E heap entries)
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source or target vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrNoPath          if the target is unreachable from the source.
//
// Example usage:
//
//	p, err := dijkstra.ShortestPath(g, "A", "C")
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(p.Vertices, p.Distance)
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/trafficgraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID.
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Must be > 0. Default +Inf.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if !(max >= 0) {
		panic("dijkstra: MaxDistance must be non-negative")
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are non-traversable. Panics if threshold is not positive.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic("dijkstra: InfEdgeThreshold must be positive")
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options for the given source with no distance cap
// and no impassable edges.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Path is a reconstructed shortest route.
//
// Vertices  – vertex IDs from source to target, both included.
// Edges     – traversed edges in route order (len(Vertices)-1 entries).
// Distance  – sum of the traversed edge weights.
type Path struct {
	Vertices []string
	Edges    []*core.Edge
	Distance float64
}
