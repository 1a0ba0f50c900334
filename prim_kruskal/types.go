// SPDX-License-Identifier: MIT
// Package prim_kruskal defines configuration options, result types and
// sentinel errors for minimum spanning tree computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// ErrNilGraph indicates a nil *core.Graph.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrUnknownMethod indicates MSTOptions.Method is neither MethodPrim nor MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// TreeEdge is an edge selected into the tree, oriented the way the
// algorithm reached it (Prim: visited → new vertex; Kruskal: stored order).
type TreeEdge struct {
	ID     string
	From   string
	To     string
	Weight float64
}

// Tree is the outcome of an MST computation.
//
// Edges        – selected edges in selection order.
// TotalWeight  – sum of selected edge weights.
// Spanning     – true iff the tree reaches every vertex (len(Edges) == |V|-1).
//
// A disconnected graph is not an error: Prim returns the tree of the root's
// component and Kruskal the minimum spanning forest, both with Spanning false.
type Tree struct {
	Edges       []TreeEdge
	TotalWeight float64
	Spanning    bool
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: start vertex ID for Prim; ignored when Method == MethodKruskal.
type MSTOptions struct {
	Method string
	Root   string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute selects and runs the MST algorithm based on opts.
func Compute(graph *core.Graph, opts ...Option) (Tree, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, o.Root)
	default:
		return Tree{}, fmt.Errorf("prim_kruskal: %q: %w", o.Method, ErrUnknownMethod)
	}
}
