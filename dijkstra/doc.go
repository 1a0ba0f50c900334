// SPDX-License-Identifier: MIT

// Package dijkstra provides Dijkstra's shortest-path algorithm over the
// undirected traffic graph, with optional distance caps and impassable-edge
// thresholds, and ShortestPath for single-pair route reconstruction.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source to every
//     vertex in O((V + E) log V).
//   - ShortestPath(g, src, dst) rebuilds the route, its edges and the total
//     distance (sum of the traversed edge weights); it fails with ErrNoPath
//     when dst is unreachable.
//   - src == dst is a valid query: the route is [src] with Distance 0.
//
// Key features:
//
//   - ReturnPath: returns the predecessor map so any route can be rebuilt.
//   - MaxDistance: stops exploring beyond a distance (kilometers).
//   - InfEdgeThreshold: treats edges with weight ≥ threshold as closed roads.
//   - Deterministic tie-breaking: equal distances are settled in push order.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]float64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, src, dst string, opts ...Option) (Path, error)
//
// Errors: ErrEmptySource, ErrNilGraph, ErrVertexNotFound, ErrNegativeWeight,
// ErrNoPath. Invalid MaxDistance/InfEdgeThreshold panic in the option
// constructors.
package dijkstra
