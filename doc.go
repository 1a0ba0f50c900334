// SPDX-License-Identifier: MIT

// Package trafficgraph is an interactive graph playground over a map of Ho
// Chi Minh City: click points, join them with roads, and watch classic graph
// algorithms run on them step by step.
//
// What is inside?
//
//	A session-oriented HTTP service and the packages it is built from:
//		• Editable vertex/edge store with a per-session vertex cap
//		• Shortest path: Dijkstra
//		• Minimum spanning trees: Prim, Kruskal
//		• Hamiltonian cycle (backtracking) and Euler circuits (Fleury, Hierholzer)
//		• Traversals: BFS, DFS, bipartite check and cycle detection
//		• Representations: adjacency matrix, adjacency list, edge list (JSON or CSV)
//		• Result history with selection and node-by-node animation
//		• JSON/YAML import-export and named saved routes (memory or Redis)
//		• Road geometry from OSRM, with a straight-line fallback
//		• Fixture graphs (complete, cycle, path, star, wheel) on a ring around a center
//
// Layout:
//
//	core/                    Graph, Vertex, Edge types shared by every algorithm
//	store/                   the editable source of truth; builder/ mirrors it into core
//	bfs/ dfs/                traversals, bipartite check, cycle detection
//	dijkstra/ prim_kruskal/  shortest path and spanning trees
//	hamilton/ euler/         tours over vertices and over edges
//	matrix/                  textbook graph representations and CSV export
//	result/ engine/          running algorithms into uniform results
//	history/ animation/      replaying results
//	session/                 one user's store, history and animation behind a mutex
//	graphio/ routes/         import, export and saved routes
//	geometry/ geo/ stats/    road shapes, distances and summaries
//	internal/                config, metrics and the gin HTTP API
//	cmd/trafficgraph/        the server binary
//
// Quick ASCII example:
//
//	BenThanh ──1.1── NhaTho
//	        \         /
//	        1.0     0.9
//	          \     /
//	         DinhDocLap
//
// is three vertices and three weighted edges (kilometers); Dijkstra from
// BenThanh to NhaTho takes the direct 1.1 km road.
//
//	go run ./cmd/trafficgraph
package trafficgraph
