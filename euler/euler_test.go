// SPDX-License-Identifier: MIT
package euler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/euler"
)

type builderFn func(g *core.Graph, start string) (euler.Trail, error)

var methods = map[string]builderFn{
	"fleury":     euler.Fleury,
	"hierholzer": euler.Hierholzer,
}

// graphOf builds a graph from "u-v" pairs with weight 1 per edge unless
// weights is given.
func graphOf(t *testing.T, ids []string, pairs [][2]string, weights ...float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range ids {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id, Index: i, Name: id}))
	}
	for i, p := range pairs {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		_, err := g.AddEdge(p[0], p[1], w)
		require.NoError(t, err)
	}

	return g
}

// assertTrail checks that t uses every edge of g exactly once along a walk.
func assertTrail(t *testing.T, g *core.Graph, tr euler.Trail) {
	t.Helper()
	require.Len(t, tr.Edges, g.EdgeCount())
	require.Len(t, tr.Vertices, g.EdgeCount()+1)
	require.Len(t, tr.Trace, g.EdgeCount())

	used := make(map[string]bool)
	var sum float64
	for i, e := range tr.Edges {
		assert.False(t, used[e.ID], "edge %s reused", e.ID)
		used[e.ID] = true
		assert.Equal(t, tr.Vertices[i+1], e.Other(tr.Vertices[i]), "step %d", i)
		assert.Equal(t, tr.Vertices[i], tr.Trace[i].Vertex)
		assert.Equal(t, e.ID, tr.Trace[i].EdgeID)
		assert.Equal(t, i+1, tr.Trace[i].Step)
		sum += e.Weight
	}
	assert.InDelta(t, sum, tr.TotalWeight, 1e-9)
	assert.Equal(t, tr.Circuit, tr.Vertices[0] == tr.Vertices[len(tr.Vertices)-1])
}

func TestCircuit_AllEven(t *testing.T) {
	// bowtie: two triangles sharing C
	ids := []string{"A", "B", "C", "D", "E"}
	pairs := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}, {"D", "E"}, {"E", "C"}}
	for name, fn := range methods {
		t.Run(name, func(t *testing.T) {
			g := graphOf(t, ids, pairs, 1, 2, 3, 4, 5, 6)
			tr, err := fn(g, "A")
			require.NoError(t, err)
			assert.True(t, tr.Circuit)
			assert.Empty(t, tr.Odd)
			assert.Equal(t, "A", tr.Vertices[0])
			assert.Equal(t, "A", tr.Vertices[len(tr.Vertices)-1])
			assert.Equal(t, 21.0, tr.TotalWeight)
			assertTrail(t, g, tr)
			assert.Equal(t, 6, g.EdgeCount(), "input graph must not be consumed")
		})
	}
}

func TestOpenPath_TwoOdd(t *testing.T) {
	// house with a diagonal: square A-B-C-D, roof B-E-C, diagonal A-C.
	// A and B have degree 3.
	ids := []string{"A", "B", "C", "D", "E"}
	pairs := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"B", "E"}, {"E", "C"}, {"A", "C"}}
	for name, fn := range methods {
		t.Run(name, func(t *testing.T) {
			g := graphOf(t, ids, pairs)
			// D is even, so the trail starts at the first odd vertex
			tr, err := fn(g, "D")
			require.NoError(t, err)
			assert.False(t, tr.Circuit)
			require.Len(t, tr.Odd, 2)
			assert.Equal(t, "A", tr.Odd[0].ID)
			assert.Equal(t, "B", tr.Odd[1].ID)
			assert.Equal(t, "A", tr.Vertices[0])
			assert.Equal(t, "B", tr.Vertices[len(tr.Vertices)-1])
			assertTrail(t, g, tr)

			// an odd start is honored
			tr, err = fn(g, "B")
			require.NoError(t, err)
			assert.Equal(t, "B", tr.Vertices[0])
			assert.Equal(t, "A", tr.Vertices[len(tr.Vertices)-1])
			assertTrail(t, g, tr)
		})
	}
}

func TestFleury_AvoidsBridge(t *testing.T) {
	// bowtie at A: triangles A-B-C and A-D-E
	ids := []string{"A", "B", "C", "D", "E"}
	pairs := [][2]string{{"A", "D"}, {"A", "B"}, {"B", "C"}, {"C", "A"}, {"D", "E"}, {"E", "A"}}
	g := graphOf(t, ids, pairs)
	tr, err := euler.Fleury(g, "B")
	require.NoError(t, err)
	assertTrail(t, g, tr)
	for _, s := range tr.Trace {
		assert.Contains(t, []string{euler.StatusSafe, euler.StatusBridge}, s.Status)
	}

	h, err := euler.Hierholzer(g, "B")
	require.NoError(t, err)
	assertTrail(t, g, h)
	for _, s := range h.Trace {
		assert.Equal(t, euler.StatusTraverse, s.Status)
	}
}

func TestFleury_BridgeOnOpenPath(t *testing.T) {
	// path with a triangle: A-B bridge, B-C-D-B triangle. Odd: A (1), B (3).
	ids := []string{"A", "B", "C", "D"}
	pairs := [][2]string{{"B", "A"}, {"B", "C"}, {"C", "D"}, {"D", "B"}}
	g := graphOf(t, ids, pairs)
	tr, err := euler.Fleury(g, "B")
	require.NoError(t, err)
	assertTrail(t, g, tr)
	// leaving B over the bridge first would strand the triangle
	assert.Equal(t, []string{"B", "C", "D", "B", "A"}, tr.Vertices)
	assert.Equal(t, euler.StatusSafe, tr.Trace[0].Status)
	assert.Equal(t, euler.StatusBridge, tr.Trace[3].Status)
}

func TestOddDegreeViolation(t *testing.T) {
	// star with three leaves: four odd vertices
	ids := []string{"H", "X", "Y", "Z"}
	pairs := [][2]string{{"H", "X"}, {"H", "Y"}, {"H", "Z"}}
	for name, fn := range methods {
		t.Run(name, func(t *testing.T) {
			_, err := fn(graphOf(t, ids, pairs), "H")
			require.ErrorIs(t, err, euler.ErrEulerCondition)
			var oe *euler.OddDegreeError
			require.True(t, errors.As(err, &oe))
			assert.Equal(t, []euler.VertexDegree{{"H", 3}, {"X", 1}, {"Y", 1}, {"Z", 1}}, oe.Odd)
			assert.Contains(t, err.Error(), "H(deg 3)")
		})
	}
}

func TestValidate(t *testing.T) {
	// A has degree 3 and D degree 1: a valid open trail
	g := graphOf(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}})
	odd, err := euler.Validate(g)
	require.NoError(t, err)
	assert.Equal(t, []euler.VertexDegree{{"A", 3}, {"D", 1}}, odd)

	// with B-D added the odd pair moves to A and B
	_, err = g.AddEdge("B", "D", 1)
	require.NoError(t, err)
	odd, err = euler.Validate(g)
	require.NoError(t, err)
	assert.Equal(t, []euler.VertexDegree{{"A", 3}, {"B", 3}}, odd)

	// adding C-D makes every degree odd
	_, err = g.AddEdge("C", "D", 1)
	require.NoError(t, err)
	odd, err = euler.Validate(g)
	assert.ErrorIs(t, err, euler.ErrEulerCondition)
	assert.Len(t, odd, 4)

	_, err = euler.Validate(nil)
	assert.ErrorIs(t, err, euler.ErrNilGraph)
}

func TestDisconnected(t *testing.T) {
	// two disjoint triangles: all even but disconnected
	ids := []string{"A", "B", "C", "X", "Y", "Z"}
	pairs := [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"X", "Y"}, {"Y", "Z"}, {"Z", "X"}}
	for name, fn := range methods {
		t.Run(name, func(t *testing.T) {
			_, err := fn(graphOf(t, ids, pairs), "A")
			assert.ErrorIs(t, err, euler.ErrDisconnected)
		})
	}

	// an isolated vertex also counts
	g := graphOf(t, []string{"A", "B", "C", "I"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	_, err := euler.Hierholzer(g, "A")
	assert.ErrorIs(t, err, euler.ErrDisconnected)
}

func TestInputValidation(t *testing.T) {
	for name, fn := range methods {
		t.Run(name, func(t *testing.T) {
			_, err := fn(nil, "A")
			assert.ErrorIs(t, err, euler.ErrNilGraph)
			g := graphOf(t, []string{"A"}, nil)
			_, err = fn(g, "")
			assert.ErrorIs(t, err, euler.ErrEmptyStart)
			_, err = fn(g, "Q")
			assert.ErrorIs(t, err, core.ErrVertexNotFound)

			tr, err := fn(g, "A")
			require.NoError(t, err)
			assert.Equal(t, []string{"A"}, tr.Vertices)
			assert.True(t, tr.Circuit)
		})
	}
}
