// SPDX-License-Identifier: MIT
// File: api.go
// Role: Whole-graph summaries and convenience lookups used by algorithms.

package core

import "fmt"

// Stats returns a summary of the graph.
// MinDegree and MaxDegree are 0 on an empty graph.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := GraphStats{VertexCount: len(g.vertices), EdgeCount: len(g.edges)}
	for _, e := range g.edges {
		st.TotalWeight += e.Weight
	}
	for i, id := range g.order {
		d := len(g.adjacency[id])
		if i == 0 || d < st.MinDegree {
			st.MinDegree = d
		}
		if d > st.MaxDegree {
			st.MaxDegree = d
		}
	}

	return st
}

// Weight returns the weight of the edge joining u and v.
func (g *Graph) Weight(u, v string) (float64, error) {
	e, ok := g.EdgeBetween(u, v)
	if !ok {
		return 0, fmt.Errorf("core: Weight(%q,%q): %w", u, v, ErrEdgeNotFound)
	}

	return e.Weight, nil
}

// Degrees returns the degree of every vertex keyed by ID.
func (g *Graph) Degrees() map[string]int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string]int, len(g.order))
	for _, id := range g.order {
		out[id] = len(g.adjacency[id])
	}

	return out
}
