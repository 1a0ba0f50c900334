// SPDX-License-Identifier: MIT
// Package prim_kruskal provides two algorithms for the Minimum Spanning Tree
// (MST) of an undirected weighted *core.Graph: Prim and Kruskal.
//
// What
//
//	Given G = (V, E), an MST is a subset T ⊆ E connecting all of V with
//	minimum total weight. For a road network it is the cheapest set of
//	streets that keeps every point reachable.
//
// Algorithms Provided
//
//   - Prim(g, root) (Tree, error)
//     Grow from root with a min-heap of frontier edges (weight, from, to).
//     Time O(E log E), memory O(V + E).
//
//   - Kruskal(g) (Tree, error)
//     Stable-sort all edges by weight, merge components with a disjoint-set
//     (path compression + union by rank), stop at |V|−1 edges.
//     Time O(E log E + α(V)·E), memory O(V + E).
//
//   - Compute(g, opts...) (Tree, error)
//     Dispatch by WithMethod(MethodPrim|MethodKruskal), WithRoot(id).
//
// Disconnected graphs
//
//	Neither algorithm fails on a disconnected graph. Prim returns the tree of
//	the root's component, Kruskal the minimum spanning forest; Tree.Spanning
//	is false and len(Tree.Edges) < |V|−1.
//
// Determinism
//
//	Equal weights are resolved by edge insertion order (Kruskal) or frontier
//	push order (Prim). On a connected graph both produce the same
//	TotalWeight even when the selected edge sets differ.
package prim_kruskal
