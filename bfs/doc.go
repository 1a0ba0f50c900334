// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus the reachability helpers
// the Euler algorithms rely on.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a BFSResult (Order, Depth, Parent) with PathTo.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - WithFilterNeighbor prunes individual edges; SkipEdge hides one edge,
//     which is how Fleury asks "is this edge a bridge?" without copying.
//   - WithMaxDepth(d) limits exploration (d>0) or disables the limit (d==0).
//   - Reachable, IsConnected and Components answer connectivity questions.
//
// Determinism
//
//	core.Graph returns neighbors in edge insertion order and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E log d) per BFS
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Neighbors fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
