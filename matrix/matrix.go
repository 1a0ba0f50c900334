// SPDX-License-Identifier: MIT
package matrix

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/trafficgraph/core"
)

// Sentinel errors.
var (
	ErrNilGraph       = errors.New("matrix: graph is nil")
	ErrUnknownForm    = errors.New("matrix: unknown representation")
	ErrVertexNotFound = errors.New("matrix: vertex not found")
)

// Form names a graph representation.
type Form string

// Supported forms.
const (
	FormAdjacencyMatrix Form = "adjacency_matrix"
	FormAdjacencyList   Form = "adjacency_list"
	FormEdgeList        Form = "edge_list"
)

// ParseForm accepts a form name case-insensitively; "matrix", "list" and
// "edges" are accepted as short names.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacency_matrix", "matrix":
		return FormAdjacencyMatrix, nil
	case "adjacency_list", "list":
		return FormAdjacencyList, nil
	case "edge_list", "edges":
		return FormEdgeList, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownForm, s)
}

// Label identifies one row/column of the matrix.
type Label struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Option configures NewAdjacencyMatrix.
type Option func(*options)

type options struct {
	binary bool
}

// WithBinary writes 1 for every edge instead of its weight.
func WithBinary() Option {
	return func(o *options) { o.binary = true }
}

// AdjacencyMatrix is a symmetric n×n matrix over the vertices of a graph.
type AdjacencyMatrix struct {
	// Mat holds the cells; nil when the graph has no vertices.
	Mat    *mat.Dense
	Labels []Label
	index  map[string]int
}

// NewAdjacencyMatrix builds the adjacency matrix of g.
//
// Steps:
//  1. Index vertices in insertion order.
//  2. Write each edge weight (or 1) into both mirrored cells.
//
// Complexity: O(V² + E).
func NewAdjacencyMatrix(g *core.Graph, opts ...Option) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.Vertices()
	am := &AdjacencyMatrix{
		Labels: make([]Label, len(ids)),
		index:  make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}
		am.Labels[i] = Label{ID: id, Name: v.Name}
		am.index[id] = i
	}
	if len(ids) == 0 {
		return am, nil
	}

	am.Mat = mat.NewDense(len(ids), len(ids), nil)
	for _, e := range g.Edges() {
		w := e.Weight
		if o.binary {
			w = 1
		}
		i, j := am.index[e.From], am.index[e.To]
		am.Mat.Set(i, j, w)
		am.Mat.Set(j, i, w)
	}

	return am, nil
}

// Size is the number of vertices.
func (am *AdjacencyMatrix) Size() int { return len(am.Labels) }

// At returns the cell for the pair (u, v).
func (am *AdjacencyMatrix) At(u, v string) (float64, error) {
	i, ok := am.index[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, u)
	}
	j, ok := am.index[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, v)
	}

	return am.Mat.At(i, j), nil
}

// Rows copies the matrix into a row-major slice, suitable for JSON.
func (am *AdjacencyMatrix) Rows() [][]float64 {
	n := am.Size()
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		if am.Mat != nil {
			mat.Row(out[i], i, am.Mat)
		}
	}

	return out
}

// Degrees counts the non-zero cells of every row, following Labels.
func (am *AdjacencyMatrix) Degrees() []int {
	out := make([]int, am.Size())
	for i := range out {
		for j := range out {
			if am.Mat.At(i, j) != 0 {
				out[i]++
			}
		}
	}

	return out
}
