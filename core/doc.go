// SPDX-License-Identifier: MIT

// Package core provides the algorithm-ready graph used by every traffic
// algorithm: an undirected, weighted, simple graph whose vertices carry the
// display attributes of the map points they were built from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only; adjacency is mirrored (adjacency[u][v] == adjacency[v][u]).
//   - Float64 weights in kilometers (any finite value; algorithms validate sign).
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrMultiEdgeNotAllowed).
//   - Vertices carry ID, positional Index, Lat/Lon and Name for downstream display.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj);
//     lock order is always muVert -> muEdgeAdj.
//
// Determinism:
//
//   - Vertices() returns IDs in insertion order (the store's positional order).
//   - Edges() and Neighbors() return edges in insertion order.
//   - NeighborIDs() follows Neighbors() order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v Vertex) error             // O(1)
//	HasVertex(id string) bool             // O(1)
//	Vertex(id string) (Vertex, error)     // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) (edgeID string, err error) // O(1)
//	RemoveEdge(edgeID string) error       // O(1)
//	HasEdge(u, v string) bool             // O(1)
//	EdgeBetween(u, v string) (*Edge, bool)// O(1)
//
//	// Query
//	Neighbors(id string) ([]*Edge, error) // O(d log d)
//	NeighborIDs(id string) ([]string, error)
//	Degree(id string) (int, error)        // O(1)
//	Vertices() []string                   // O(V)
//	Edges() []*Edge                       // O(E log E)
//	VertexCount() int / EdgeCount() int   // O(1)
//
//	// Cloning & summary
//	Clone() *Graph                        // O(V+E)
//	Stats() GraphStats                    // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrDuplicateVertex     – vertex ID already present
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN or infinite weight
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – second edge between the same endpoints
package core
