// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeBetween/GetEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Edge IDs are monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = "e"

// AddEdge creates an undirected edge between two existing vertices and
// returns its ID.
//
// Steps:
//  1. Validate IDs, weight and loop constraint.
//  2. Check both endpoints exist.
//  3. Lock muEdgeAdj, reject a parallel edge in either orientation.
//  4. Issue the next edge ID and store the edge.
//  5. Mirror the adjacency entry.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("core: AddEdge(%q,%q): %w", from, to, ErrBadWeight)
	}
	if from == to {
		return "", fmt.Errorf("core: AddEdge(%q,%q): %w", from, to, ErrLoopNotAllowed)
	}

	// 2) endpoints (lock order muVert -> muEdgeAdj)
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return "", fmt.Errorf("core: AddEdge: from %q: %w", from, ErrVertexNotFound)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", fmt.Errorf("core: AddEdge: to %q: %w", to, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) simple-graph constraint
	if _, dup := g.adjacency[from][to]; dup {
		return "", fmt.Errorf("core: AddEdge(%q,%q): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	// 4) catalog
	g.nextEdgeID++
	eid := edgeIDPrefix + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: g.nextEdgeID}

	// 5) mirror
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
// Complexity: O(1).
func (g *Graph) RemoveEdge(edgeID string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return fmt.Errorf("core: RemoveEdge(%q): %w", edgeID, ErrEdgeNotFound)
	}
	delete(g.edges, edgeID)
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.EdgeBetween(u, v)

	return ok
}

// EdgeBetween returns the edge joining u and v, in either orientation.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v string) (*Edge, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return nil, false
	}

	return g.edges[eid], true
}

// GetEdge returns the edge with the given ID.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, fmt.Errorf("core: GetEdge(%q): %w", edgeID, ErrEdgeNotFound)
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sortBySeq(out)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	n := len(g.edges)
	g.muEdgeAdj.RUnlock()

	return n
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
