// SPDX-License-Identifier: MIT
// Package prim_kruskal provides Prim's Minimum Spanning Tree algorithm.
// It grows the tree from a root vertex using a min-heap frontier.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// Prim computes the minimum spanning tree of the root's component.
//
// Error Conditions:
//   - ErrNilGraph           : graph is nil.
//   - ErrEmptyRoot          : root is empty.
//   - core.ErrVertexNotFound: root does not exist.
//
// Steps:
//  1. Validate graph and root.
//  2. Mark root visited; push every (weight, root, neighbor) candidate.
//  3. While the frontier is not empty and the tree has < |V|-1 edges:
//     a. Pop the minimum-weight candidate (u→v).
//     b. If v is visited, skip (the edge would close a cycle).
//     c. Otherwise select it, mark v visited, push v's candidates to unvisited neighbors.
//  4. Spanning reports whether all vertices were reached.
//
// Equal weights pop in push order.
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (Tree, error) {
	// 1. validation
	if graph == nil {
		return Tree{}, ErrNilGraph
	}
	if root == "" {
		return Tree{}, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return Tree{}, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	n := graph.VertexCount()
	visited := make(map[string]bool, n)
	tree := Tree{Edges: make([]TreeEdge, 0, n-1)}
	pq := &edgePQ{}
	heap.Init(pq)
	var pushes uint64

	// frontier pushes all edges from u to unvisited neighbors.
	frontier := func(u string) error {
		neighbors, err := graph.Neighbors(u)
		if err != nil {
			return fmt.Errorf("prim_kruskal: neighbors of %q: %w", u, err)
		}
		for _, e := range neighbors {
			v := e.Other(u)
			if !visited[v] {
				pushes++
				heap.Push(pq, &candidate{edge: e, from: u, to: v, seq: pushes})
			}
		}

		return nil
	}

	// 2. seed
	visited[root] = true
	if err := frontier(root); err != nil {
		return Tree{}, err
	}

	// 3. grow
	for pq.Len() > 0 && len(tree.Edges) < n-1 {
		c := heap.Pop(pq).(*candidate)
		if visited[c.to] {
			continue
		}
		visited[c.to] = true
		tree.Edges = append(tree.Edges, TreeEdge{ID: c.edge.ID, From: c.from, To: c.to, Weight: c.edge.Weight})
		tree.TotalWeight += c.edge.Weight
		if err := frontier(c.to); err != nil {
			return Tree{}, err
		}
	}

	// 4. coverage
	tree.Spanning = len(tree.Edges) == n-1

	return tree, nil
}

// candidate is a frontier edge from a visited vertex to an unvisited one.
type candidate struct {
	edge *core.Edge
	from string
	to   string
	seq  uint64
}

// edgePQ implements heap.Interface for a min-heap of candidates ordered by
// (weight, push sequence).
type edgePQ []*candidate

func (pq edgePQ) Len() int { return len(pq) }
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}
	return pq[i].seq < pq[j].seq
}
func (pq edgePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*candidate)) }
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
