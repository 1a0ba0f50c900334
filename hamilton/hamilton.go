// SPDX-License-Identifier: MIT
// File: hamilton.go
// Role: Backtracking Hamiltonian cycle search with weight-ordered branching.
// Determinism:
//   - Neighbors are tried by ascending weight, ties by edge insertion order.
// Concurrency:
//   - Reads the graph only; safe to run concurrently on the same graph.

package hamilton

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/trafficgraph/core"
)

// Search finds a Hamiltonian cycle that starts and ends at start.
//
// Steps:
//  1. Validate graph and start.
//  2. Snapshot every adjacency row, stable-sorted by weight.
//  3. Depth-first extend the path with unvisited neighbors; undo on failure.
//  4. Once the path holds all |V| vertices, accept only if an edge closes it
//     back to start.
//
// A graph with a single edge between two vertices yields [a, b, a].
// Complexity: O(V!) worst case; intended for small graphs.
func Search(g *core.Graph, start string, opts ...Option) (Cycle, error) {
	// 1. validation
	if g == nil {
		return Cycle{}, ErrNilGraph
	}
	if start == "" {
		return Cycle{}, ErrEmptyStart
	}
	if !g.HasVertex(start) {
		return Cycle{}, fmt.Errorf("hamilton: start %q: %w", start, core.ErrVertexNotFound)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. ordered adjacency
	ids := g.Vertices()
	adj := make(map[string][]*core.Edge, len(ids))
	for _, id := range ids {
		nbs, err := g.Neighbors(id)
		if err != nil {
			return Cycle{}, fmt.Errorf("hamilton: neighbors of %q: %w", id, err)
		}
		sort.SliceStable(nbs, func(i, j int) bool { return nbs[i].Weight < nbs[j].Weight })
		adj[id] = nbs
	}

	s := &searcher{
		opts:    o,
		adj:     adj,
		n:       len(ids),
		start:   start,
		visited: map[string]bool{start: true},
		path:    []string{start},
	}

	// 3-4. recursive search
	found, err := s.extend(start)
	if err != nil {
		return Cycle{}, err
	}
	if !found {
		return Cycle{}, fmt.Errorf("hamilton: from %q: %w", start, ErrNoHamiltonianCycle)
	}

	c := Cycle{Vertices: s.path, Edges: s.edges}
	for _, e := range s.edges {
		c.TotalWeight += e.Weight
	}

	return c, nil
}

// searcher holds the mutable backtracking state.
type searcher struct {
	opts       Options
	adj        map[string][]*core.Edge
	n          int
	start      string
	visited    map[string]bool
	path       []string
	edges      []*core.Edge
	expansions int
}

// extend tries to complete the cycle from u. It returns true once the path
// is closed; on false the path is restored to its state on entry.
func (s *searcher) extend(u string) (bool, error) {
	if err := s.opts.Ctx.Err(); err != nil {
		return false, err
	}
	s.expansions++
	if s.opts.MaxExpansions > 0 && s.expansions > s.opts.MaxExpansions {
		return false, ErrSearchLimit
	}

	if len(s.path) == s.n {
		if s.n < 2 {
			return false, nil
		}
		for _, e := range s.adj[u] {
			if e.Other(u) == s.start {
				s.path = append(s.path, s.start)
				s.edges = append(s.edges, e)

				return true, nil
			}
		}

		return false, nil
	}

	for _, e := range s.adj[u] {
		v := e.Other(u)
		if s.visited[v] {
			continue
		}
		s.visited[v] = true
		s.path = append(s.path, v)
		s.edges = append(s.edges, e)

		ok, err := s.extend(v)
		if err != nil || ok {
			return ok, err
		}

		// backtrack
		s.visited[v] = false
		s.path = s.path[:len(s.path)-1]
		s.edges = s.edges[:len(s.edges)-1]
	}

	return false, nil
}
