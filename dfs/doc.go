// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, plus undirected cycle detection.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Results: post-order, pre-order, tree edges, depths and parents
//   - FindCycle(g): the first cycle of an undirected graph as a closed walk
//   - Cancellation via context.Context
//
// Determinism:
//
//	core.Graph yields neighbors in edge insertion order, so every traversal
//	is reproducible for a given build sequence.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
