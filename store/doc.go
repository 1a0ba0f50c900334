// SPDX-License-Identifier: MIT

// Package store holds the user-editable map graph: vertices placed on the map
// and the weighted edges drawn between them.
//
// Every vertex has two identities:
//
//   - ID    – stable opaque identifier (UUID by default), never reused.
//   - Index – dense positional index in [0, Len()), rewritten on every deletion.
//
// Edges reference vertices by stable ID, so RemoveVertex only has to drop the
// incident edges and renumber Index; surviving edges keep their endpoints and
// weights untouched.
//
// Invariants:
//
//   - Len() ≤ MaxVertices (default 15).
//   - Indices are contiguous: Vertices()[i].Index == i.
//   - No self-loops; at most one edge per unordered pair; endpoints exist.
//   - Every edge weight is > 0 (kilometers).
//   - Revision() increases on every successful mutation.
//
// A Store is not safe for concurrent use; callers serialize access.
//
// Errors (sentinel):
//
//	ErrLimitExceeded – vertex limit reached
//	ErrInvalidVertex – unknown endpoint or index
//	ErrSelfLoop      – edge from a vertex to itself
//	ErrDuplicateEdge – edge already present in either direction
//	ErrBadWeight     – non-positive or non-finite explicit weight
//	ErrNotFound      – unknown vertex ID or edge index
package store
