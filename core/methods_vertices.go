// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns IDs in insertion order.
// Concurrency:
//   - Mutations under muVert write lock (+ muEdgeAdj for the adjacency row).
//   - Reads under muVert read lock.

package core

import "fmt"

// AddVertex inserts v into the graph.
//
// Steps:
//  1. Reject an empty ID.
//  2. Lock muVert, reject a duplicate ID.
//  3. Store a copy of v and append its ID to the insertion order.
//  4. Lock muEdgeAdj and create the empty adjacency row.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) error {
	// 1) validate
	if v.ID == "" {
		return ErrEmptyVertexID
	}

	// 2) uniqueness
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[v.ID]; ok {
		return fmt.Errorf("core: AddVertex(%q): %w", v.ID, ErrDuplicateVertex)
	}

	// 3) catalog
	vv := v
	g.vertices[v.ID] = &vv
	g.order = append(g.order, v.ID)

	// 4) adjacency row (lock order muVert -> muEdgeAdj)
	g.muEdgeAdj.Lock()
	g.adjacency[v.ID] = make(map[string]string)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("core: Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return *v, nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	out := make([]string, len(g.order))
	copy(out, g.order)
	g.muVert.RUnlock()

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	n := len(g.vertices)
	g.muVert.RUnlock()

	return n
}
