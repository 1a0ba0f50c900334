// SPDX-License-Identifier: MIT
// File: connectivity.go
// Role: Reachability helpers built on BFS, used by Euler validation and the
//       Fleury bridge test.
// Determinism:
//   - Components are listed in order of their first vertex in g.Vertices();
//     members follow BFS visit order.

package bfs

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// Reachable returns the number of vertices reachable from start, start
// included. Options (filters, context) are forwarded to BFS.
func Reachable(g *core.Graph, start string, opts ...Option) (int, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return 0, err
	}

	return len(res.Order), nil
}

// IsConnected reports whether every vertex of g is reachable from every
// other. Isolated vertices count: a graph with an isolated vertex and at
// least one other vertex is not connected. The empty graph is connected.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vs := g.Vertices()
	if len(vs) == 0 {
		return true, nil
	}
	n, err := Reachable(g, vs[0])
	if err != nil {
		return false, err
	}

	return n == len(vs), nil
}

// Components partitions the vertices of g into connected components.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, fmt.Errorf("bfs: Components: %w", err)
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}

// SkipEdge returns a neighbor filter that hides the undirected edge u–v.
func SkipEdge(u, v string) Option {
	return WithFilterNeighbor(func(curr, nbr string) bool {
		return !((curr == u && nbr == v) || (curr == v && nbr == u))
	})
}
