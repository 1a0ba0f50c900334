// SPDX-License-Identifier: MIT

// Package matrix converts a core.Graph into its classic textbook
// representations: a dense adjacency matrix (backed by gonum's mat.Dense),
// an adjacency list and an edge list, and writes any of them as CSV.
//
// Ordering
//
//   - Rows and columns follow g.Vertices() (insertion order).
//   - Adjacency-list neighbors and edge-list rows follow edge insertion order.
//
// Weights
//
//	By default cells hold edge weights in kilometers; WithBinary() writes 1
//	for every edge instead. Absent edges and the diagonal are 0.
//
// Errors
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrUnknownForm    if a representation name is not recognized.
//   - ErrVertexNotFound for lookups of an unknown vertex ID.
package matrix
