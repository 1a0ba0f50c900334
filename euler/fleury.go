// SPDX-License-Identifier: MIT
// File: fleury.go
// Role: Fleury's construction: walk edge by edge, never crossing a bridge of
//       the remaining graph unless it is the only edge left.
// Determinism:
//   - Candidate edges are examined in insertion order.

package euler

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/core"
)

// Fleury builds an Eulerian trail from start.
//
// Steps:
//  1. Validate and resolve the start vertex.
//  2. Clone g; consumed edges are removed from the clone only.
//  3. At vertex u, take the first incident edge whose removal keeps the same
//     number of vertices reachable from u. If every edge is a bridge take
//     the first one.
//  4. Record a trace step, remove the edge, move to its far end.
//
// Complexity: O(E·(V+E)) because of a BFS per candidate edge.
func Fleury(g *core.Graph, start string) (Trail, error) {
	// 1. validation
	from, odd, err := prepare(g, start)
	if err != nil {
		return Trail{}, err
	}

	// 2. working copy
	work := g.Clone()
	total := work.EdgeCount()
	t := Trail{Vertices: []string{from}, Edges: make([]*core.Edge, 0, total)}

	u := from
	for len(t.Edges) < total {
		// 3. choose
		e, status, err := nextFleuryEdge(work, u)
		if err != nil {
			return Trail{}, err
		}
		orig, err := g.GetEdge(e.ID)
		if err != nil {
			return Trail{}, fmt.Errorf("euler: Fleury: %w", err)
		}
		v := e.Other(u)

		// 4. consume
		t.Trace = append(t.Trace, Step{
			Step: len(t.Edges) + 1, Vertex: u, EdgeID: e.ID, To: v, Weight: e.Weight, Status: status,
		})
		if err = work.RemoveEdge(e.ID); err != nil {
			return Trail{}, fmt.Errorf("euler: Fleury: %w", err)
		}
		t.Edges = append(t.Edges, orig)
		t.Vertices = append(t.Vertices, v)
		u = v
	}

	finish(&t, odd)

	return t, nil
}

// nextFleuryEdge picks the edge to leave u by.
func nextFleuryEdge(work *core.Graph, u string) (*core.Edge, string, error) {
	nbs, err := work.Neighbors(u)
	if err != nil {
		return nil, "", fmt.Errorf("euler: Fleury: %w", err)
	}
	if len(nbs) == 0 {
		// validated graphs never strand the walk
		return nil, "", fmt.Errorf("euler: Fleury: stranded at %q: %w", u, ErrDisconnected)
	}
	if len(nbs) == 1 {
		return nbs[0], StatusBridge, nil
	}

	before, err := bfs.Reachable(work, u)
	if err != nil {
		return nil, "", fmt.Errorf("euler: Fleury: %w", err)
	}
	for _, e := range nbs {
		after, err := bfs.Reachable(work, u, bfs.SkipEdge(u, e.Other(u)))
		if err != nil {
			return nil, "", fmt.Errorf("euler: Fleury: %w", err)
		}
		if after == before {
			return e, StatusSafe, nil
		}
	}

	return nbs[0], StatusBridge, nil
}
