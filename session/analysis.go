// SPDX-License-Identifier: MIT
// File: analysis.go
// Role: Read-only views over the current graph: traversal order, bipartite
//       split and textbook representations. None of them touch history or
//       the animation.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/builder"
	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/dfs"
	"github.com/katalvlaran/trafficgraph/matrix"
	"github.com/katalvlaran/trafficgraph/store"
)

// ErrUnknownTraversal is returned for a traversal method other than bfs or dfs.
var ErrUnknownTraversal = errors.New("session: unknown traversal method")

// TraversalMethod selects the search used by Traverse.
type TraversalMethod string

// Traversal methods.
const (
	TraversalBFS TraversalMethod = "bfs"
	TraversalDFS TraversalMethod = "dfs"
)

// ParseTraversal accepts "bfs" or "dfs" case-insensitively.
func ParseTraversal(s string) (TraversalMethod, error) {
	switch m := TraversalMethod(strings.ToLower(strings.TrimSpace(s))); m {
	case TraversalBFS, TraversalDFS:
		return m, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTraversal, s)
}

// Traversal is the visit order of a search from Start together with the
// tree edges that discovered each vertex.
type Traversal struct {
	Method TraversalMethod `json:"method"`
	Start  string          `json:"start"`
	Order  []string        `json:"order"`
	Edges  [][2]string     `json:"edges"`
}

// viewGraph is the graph used by read-only views. Unlike Run it accepts
// graphs with a single vertex or no edges. Caller holds mu.
func (s *Session) viewGraph() (*core.Graph, error) {
	g, err := s.buildGraph()
	if errors.Is(err, builder.ErrInsufficientGraph) {
		return builder.Mirror(s.store.Vertices(), s.store.Edges())
	}

	return g, err
}

// Traverse runs BFS or DFS from start. Neighbors are visited in edge
// insertion order; only the component of start is covered.
func (s *Session) Traverse(ctx context.Context, method TraversalMethod, start string) (Traversal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.store.IndexOf(start); !ok {
		return Traversal{}, fmt.Errorf("session: traverse from %q: %w", start, store.ErrInvalidVertex)
	}
	g, err := s.viewGraph()
	if err != nil {
		return Traversal{}, err
	}

	out := Traversal{Method: method, Start: start}
	switch method {
	case TraversalBFS:
		res, err := bfs.BFS(g, start, bfs.WithContext(ctx))
		if err != nil {
			return Traversal{}, err
		}
		out.Order, out.Edges = res.Order, res.TreeEdges()
	case TraversalDFS:
		res, err := dfs.DFS(g, start, dfs.WithContext(ctx))
		if err != nil {
			return Traversal{}, err
		}
		out.Order = res.PreOrder
		out.Edges = make([][2]string, len(res.TreeEdges))
		for i, e := range res.TreeEdges {
			out.Edges[i] = [2]string{e.From, e.To}
		}
	default:
		return Traversal{}, fmt.Errorf("%w: %q", ErrUnknownTraversal, method)
	}
	s.logger.Debug("traversal", "session", s.id, "method", method, "start", start, "visited", len(out.Order))

	return out, nil
}

// Bipartite two-colors the current graph.
func (s *Session) Bipartite() (*bfs.BipartiteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.viewGraph()
	if err != nil {
		return nil, err
	}

	return bfs.Bipartite(g)
}

// Cycle reports the first cycle of the current graph, if any.
func (s *Session) Cycle() (bool, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.viewGraph()
	if err != nil {
		return false, nil, err
	}

	return dfs.FindCycle(g)
}

// Representation is one textbook form of the graph. Exactly one of the
// payload fields is set, matching Form.
type Representation struct {
	Form          matrix.Form           `json:"form"`
	Labels        []matrix.Label        `json:"labels,omitempty"`
	Matrix        [][]float64           `json:"matrix,omitempty"`
	AdjacencyList []matrix.AdjacencyRow `json:"adjacency_list,omitempty"`
	EdgeList      []matrix.EdgeRow      `json:"edge_list,omitempty"`
}

// Represent converts the current graph into form.
func (s *Session) Represent(form matrix.Form) (Representation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.viewGraph()
	if err != nil {
		return Representation{}, err
	}

	out := Representation{Form: form}
	switch form {
	case matrix.FormAdjacencyMatrix:
		am, err := matrix.NewAdjacencyMatrix(g)
		if err != nil {
			return Representation{}, err
		}
		out.Labels, out.Matrix = am.Labels, am.Rows()
	case matrix.FormAdjacencyList:
		out.AdjacencyList, err = matrix.AdjacencyList(g)
	case matrix.FormEdgeList:
		out.EdgeList, err = matrix.EdgeList(g)
	default:
		err = fmt.Errorf("%w: %q", matrix.ErrUnknownForm, form)
	}
	if err != nil {
		return Representation{}, err
	}

	return out, nil
}

// WriteCSV writes the current graph in form as CSV.
func (s *Session) WriteCSV(w io.Writer, form matrix.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.viewGraph()
	if err != nil {
		return err
	}

	return matrix.WriteCSV(w, g, form)
}
