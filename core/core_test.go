// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id, Index: i, Name: id}))
	}
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 2)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 3)
	require.NoError(t, err)

	return g
}

func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(core.Vertex{}), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(core.Vertex{ID: "A"}))
	assert.ErrorIs(t, g.AddVertex(core.Vertex{ID: "A"}), core.ErrDuplicateVertex)
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdge_Constraints(t *testing.T) {
	g := triangle(t)

	_, err := g.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("B", "A", 5)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("A", "Z", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge("A", "B", math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "B", math.Inf(1))
	assert.ErrorIs(t, err, core.ErrBadWeight)

	assert.Equal(t, 3, g.EdgeCount())
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := triangle(t)
	es := g.Edges()
	require.Len(t, es, 3)
	assert.Equal(t, []string{"e1", "e2", "e3"}, []string{es[0].ID, es[1].ID, es[2].ID})
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestNeighbors_Mirrored(t *testing.T) {
	g := triangle(t)
	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, ids)

	e, ok := g.EdgeBetween("A", "C")
	require.True(t, ok)
	assert.Equal(t, 3.0, e.Weight)
	assert.Equal(t, "A", e.Other("C"))

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestRemoveEdge(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.RemoveEdge("e1"))
	assert.False(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	d, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, d)
	assert.ErrorIs(t, g.RemoveEdge("e1"), core.ErrEdgeNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := triangle(t)
	c := g.Clone()
	require.NoError(t, c.RemoveEdge("e2"))
	assert.True(t, g.HasEdge("B", "C"))
	assert.False(t, c.HasEdge("B", "C"))

	// the clone keeps issuing IDs after the source counter
	id, err := c.AddEdge("B", "C", 9)
	require.NoError(t, err)
	assert.Equal(t, "e4", id)
}

func TestStats(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex(core.Vertex{ID: "D"}))
	st := g.Stats()
	assert.Equal(t, 4, st.VertexCount)
	assert.Equal(t, 3, st.EdgeCount)
	assert.InDelta(t, 6.0, st.TotalWeight, 1e-9)
	assert.Equal(t, 0, st.MinDegree)
	assert.Equal(t, 2, st.MaxDegree)

	w, err := g.Weight("C", "B")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
	assert.Equal(t, map[string]int{"A": 2, "B": 2, "C": 2, "D": 0}, g.Degrees())
}

func TestConcurrentReads(t *testing.T) {
	g := triangle(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Edges()
			_, _ = g.Neighbors("B")
			_ = g.Stats()
		}()
	}
	wg.Wait()
}
