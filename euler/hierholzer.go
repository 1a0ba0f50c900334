// SPDX-License-Identifier: MIT
// File: hierholzer.go
// Role: Hierholzer's linear-time construction with an explicit stack.
// Determinism:
//   - Unused edges are taken in insertion order.

package euler

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// frame is a stack entry: the vertex reached and the edge used to reach it.
type frame struct {
	v    string
	edge *core.Edge
}

// Hierholzer builds an Eulerian trail from start.
//
// Steps:
//  1. Validate and resolve the start vertex.
//  2. Push start. While the stack is not empty, look at its top u:
//     a. if u has an unused edge, mark it used and push its far end;
//     b. otherwise pop u onto the output.
//  3. Reverse the output to get the trail; emit one trace step per edge.
//
// Complexity: O(V+E).
func Hierholzer(g *core.Graph, start string) (Trail, error) {
	// 1. validation
	from, odd, err := prepare(g, start)
	if err != nil {
		return Trail{}, err
	}

	// snapshot adjacency so each row is read once
	rows := make(map[string][]*core.Edge, g.VertexCount())
	for _, id := range g.Vertices() {
		nbs, err := g.Neighbors(id)
		if err != nil {
			return Trail{}, fmt.Errorf("euler: Hierholzer: %w", err)
		}
		rows[id] = nbs
	}
	next := make(map[string]int, len(rows))
	used := make(map[string]bool, g.EdgeCount())

	// 2. stitch
	stack := []frame{{v: from}}
	out := make([]frame, 0, g.EdgeCount()+1)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		row := rows[top.v]
		for next[top.v] < len(row) && used[row[next[top.v]].ID] {
			next[top.v]++
		}
		if next[top.v] < len(row) {
			e := row[next[top.v]]
			used[e.ID] = true
			stack = append(stack, frame{v: e.Other(top.v), edge: e})
			continue
		}
		stack = stack[:len(stack)-1]
		out = append(out, top)
	}

	// 3. reverse
	t := Trail{
		Vertices: make([]string, 0, len(out)),
		Edges:    make([]*core.Edge, 0, len(out)-1),
	}
	for i := len(out) - 1; i >= 0; i-- {
		t.Vertices = append(t.Vertices, out[i].v)
		if i > 0 {
			e := out[i-1].edge
			t.Edges = append(t.Edges, e)
			t.Trace = append(t.Trace, Step{
				Step: len(t.Edges), Vertex: out[i].v, EdgeID: e.ID, To: out[i-1].v, Weight: e.Weight, Status: StatusTraverse,
			})
		}
	}

	finish(&t, odd)

	return t, nil
}
