// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/NeighborIDs/Degree.
// Determinism:
//   - Neighbors() returns incident edges in insertion order.
// Concurrency:
//   - Reads under muVert then muEdgeAdj read locks.

package core

import "fmt"

// Neighbors returns the edges incident to id in insertion order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("core: Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	row := g.adjacency[id]
	out := make([]*Edge, 0, len(row))
	for _, eid := range row {
		out = append(out, g.edges[eid])
	}
	g.muEdgeAdj.RUnlock()

	sortBySeq(out)

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, following Neighbors order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	es, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Other(id)
	}

	return out, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("core: Degree(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	d := len(g.adjacency[id])
	g.muEdgeAdj.RUnlock()

	return d, nil
}
