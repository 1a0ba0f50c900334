// SPDX-License-Identifier: MIT
// Package prim_kruskal provides Kruskal's Minimum Spanning Tree algorithm.
// It produces the minimum spanning forest of an undirected weighted *core.Graph.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/trafficgraph/core"
)

// Kruskal computes the minimum spanning tree (or forest, if the graph is
// disconnected) using a disjoint-set with path compression and union by rank.
//
// Steps:
//  1. Validate graph != nil.
//  2. Collect edges in insertion order, stable-sort by ascending weight.
//  3. Initialize DSU parent[v]=v, rank[v]=0.
//  4. For each edge (u,v): if find(u) != find(v), union and select it.
//  5. Stop once |V|-1 edges are selected; Spanning reports that case.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (Tree, error) {
	// 1. validation
	if graph == nil {
		return Tree{}, ErrNilGraph
	}
	vertices := graph.Vertices()
	n := len(vertices)
	if n <= 1 {
		return Tree{Edges: []TreeEdge{}, Spanning: true}, nil
	}

	// 2. stable sort keeps insertion order among equal weights
	edges := graph.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 3. disjoint-set
	parent := make(map[string]string, n)
	rank := make(map[string]int, n)
	for _, vid := range vertices {
		parent[vid] = vid
	}
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}

		return u
	}
	union := func(ru, rv string) {
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	// 4. selection
	tree := Tree{Edges: make([]TreeEdge, 0, n-1)}
	for _, e := range edges {
		ru, rv := find(e.From), find(e.To)
		if ru == rv {
			continue
		}
		union(ru, rv)
		tree.Edges = append(tree.Edges, TreeEdge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight})
		tree.TotalWeight += e.Weight
		if len(tree.Edges) == n-1 {
			break
		}
	}

	// 5. coverage
	tree.Spanning = len(tree.Edges) == n-1

	return tree, nil
}
