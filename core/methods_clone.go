// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Deep copy of a Graph.
// Determinism:
//   - The clone keeps vertex order, edge IDs and edge sequence numbers.
// Concurrency:
//   - Source is read under muVert then muEdgeAdj read locks.

package core

// Clone returns a deep copy of g. Mutating the clone never affects g.
//
// Steps:
//  1. Copy vertices and their order.
//  2. Copy edges (fresh *Edge values) and adjacency rows.
//  3. Carry over the edge sequence counter.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := NewGraph()

	// 1) vertices
	c.order = make([]string, len(g.order))
	copy(c.order, g.order)
	for id, v := range g.vertices {
		vv := *v
		c.vertices[id] = &vv
	}

	// 2) edges + adjacency
	for eid, e := range g.edges {
		ee := *e
		c.edges[eid] = &ee
	}
	for u, row := range g.adjacency {
		nr := make(map[string]string, len(row))
		for v, eid := range row {
			nr[v] = eid
		}
		c.adjacency[u] = nr
	}

	// 3) counter
	c.nextEdgeID = g.nextEdgeID

	return c
}
