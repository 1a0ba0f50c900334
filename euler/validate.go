// SPDX-License-Identifier: MIT
// File: validate.go
// Role: Euler's theorem check and start-vertex resolution.
// Determinism:
//   - Odd vertices are reported in graph insertion order.

package euler

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/core"
)

// Validate checks that g admits an Eulerian trail.
//
// Steps:
//  1. Collect odd-degree vertices; a count other than 0 or 2 returns
//     *OddDegreeError.
//  2. Require every vertex, isolated ones included, to be mutually reachable.
//
// On success the odd vertices are returned (empty for a circuit).
func Validate(g *core.Graph) ([]VertexDegree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// 1. parity
	deg := g.Degrees()
	odd := make([]VertexDegree, 0, 2)
	for _, id := range g.Vertices() {
		if deg[id]%2 == 1 {
			odd = append(odd, VertexDegree{ID: id, Degree: deg[id]})
		}
	}
	if len(odd) != 0 && len(odd) != 2 {
		return odd, &OddDegreeError{Odd: odd}
	}

	// 2. connectivity
	ok, err := bfs.IsConnected(g)
	if err != nil {
		return odd, fmt.Errorf("euler: connectivity: %w", err)
	}
	if !ok {
		return odd, ErrDisconnected
	}

	return odd, nil
}

// prepare validates inputs and resolves the actual start vertex.
// An open trail must start at an odd vertex: start itself when it is odd,
// otherwise the first odd vertex.
func prepare(g *core.Graph, start string) (string, []VertexDegree, error) {
	if g == nil {
		return "", nil, ErrNilGraph
	}
	if start == "" {
		return "", nil, ErrEmptyStart
	}
	if !g.HasVertex(start) {
		return "", nil, fmt.Errorf("euler: start %q: %w", start, core.ErrVertexNotFound)
	}
	odd, err := Validate(g)
	if err != nil {
		return "", odd, err
	}
	if len(odd) == 0 || odd[0].ID == start || odd[1].ID == start {
		return start, odd, nil
	}

	return odd[0].ID, odd, nil
}

// finish fills the derived fields of a trail.
func finish(t *Trail, odd []VertexDegree) {
	t.Odd = odd
	t.Circuit = len(odd) == 0
	t.TotalWeight = 0
	for _, e := range t.Edges {
		t.TotalWeight += e.Weight
	}
}
