// SPDX-License-Identifier: MIT
// Package dijkstra implements Dijkstra's shortest-path algorithm.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable "wall".
//   - Exploration stops once the minimum distance in the heap exceeds MaxDistance.
//   - "Lazy" decrease-key: duplicates are pushed and stale entries ignored.
//   - Equal distances pop in push order, so results are reproducible.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/trafficgraph/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath (nil otherwise); prev[v] == "" for
//     the source and unreachable vertices.
//
// Validation order:
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. g contains Source (ErrVertexNotFound).
//  4. No negative edge weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	// 1) options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("dijkstra: source %q: %w", cfg.Source, ErrVertexNotFound)
	}

	// 2) negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s–%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 3) run
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight route from src to dst.
// src == dst yields the single-vertex path with Distance 0.
func ShortestPath(g *core.Graph, src, dst string, opts ...Option) (Path, error) {
	if g == nil {
		return Path{}, ErrNilGraph
	}
	if !g.HasVertex(dst) {
		return Path{}, fmt.Errorf("dijkstra: target %q: %w", dst, ErrVertexNotFound)
	}
	opts = append(opts, Source(src), WithReturnPath())
	dist, prev, err := Dijkstra(g, opts...)
	if err != nil {
		return Path{}, err
	}
	if math.IsInf(dist[dst], 1) {
		return Path{}, fmt.Errorf("dijkstra: %s → %s: %w", src, dst, ErrNoPath)
	}

	// walk predecessors back from dst
	rev := []string{dst}
	for cur := dst; cur != src; {
		cur = prev[cur]
		rev = append(rev, cur)
	}
	p := Path{Vertices: make([]string, len(rev))}
	for i, id := range rev {
		p.Vertices[len(rev)-1-i] = id
	}
	for i := 0; i+1 < len(p.Vertices); i++ {
		e, ok := g.EdgeBetween(p.Vertices[i], p.Vertices[i+1])
		if !ok {
			return Path{}, fmt.Errorf("dijkstra: %s–%s: %w", p.Vertices[i], p.Vertices[i+1], core.ErrEdgeNotFound)
		}
		p.Edges = append(p.Edges, e)
		p.Distance += e.Weight
	}

	return p, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]float64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
	pushes  uint64 // heap insertion counter for tie-breaking
}

// init sets dist to +Inf everywhere, the source to 0, and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

// process pops the closest unfinalized vertex until the heap is empty or the
// next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves distances to the neighbors of a finalized vertex u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}
	for _, e := range neighbors {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.Other(u)
		nd := r.dist[u] + e.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.push(v, nd)
	}

	return nil
}

func (r *runner) push(id string, d float64) {
	r.pushes++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.pushes})
}

// nodeItem is a heap entry: vertex, tentative distance, push sequence.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
