// SPDX-License-Identifier: MIT
package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/stats"
)

func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id, Index: i}))
	}
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "D", 3)

	return g
}

func TestCompute_Path(t *testing.T) {
	st, err := stats.Compute(pathGraph(t))
	require.NoError(t, err)

	assert.Equal(t, 4, st.NumVertices)
	assert.Equal(t, 3, st.NumEdges)
	assert.Equal(t, 6.0, st.TotalWeight)
	assert.Equal(t, 1.0, st.MinWeight)
	assert.Equal(t, 3.0, st.MaxWeight)
	assert.Equal(t, 2.0, st.AvgWeight)
	assert.InDelta(t, 0.5, st.Density, 1e-12)
	assert.Equal(t, 1, st.MinDegree)
	assert.Equal(t, 2, st.MaxDegree)
	assert.InDelta(t, 1.5, st.AvgDegree, 1e-12)
	assert.Equal(t, 2, st.OddDegree)
	assert.Zero(t, st.Isolated)
	assert.Equal(t, 1, st.Components)
	assert.True(t, st.Connected)

	assert.Equal(t, 3, st.Diameter)
	assert.InDelta(t, 10.0/6, st.AvgPathLength, 1e-12)
	assert.InDelta(t, 6.0, st.DiameterKm, 1e-12)
	assert.InDelta(t, 20.0/6, st.AvgPathLengthKm, 1e-12)
}

func TestCompute_Disconnected(t *testing.T) {
	g := pathGraph(t)
	require.NoError(t, g.AddVertex(core.Vertex{ID: "E", Index: 4}))
	st, err := stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Components)
	assert.False(t, st.Connected)
	assert.Equal(t, 1, st.Isolated)
	assert.Zero(t, st.Diameter)
	assert.Zero(t, st.DiameterKm)
}

func TestCompute_Edges(t *testing.T) {
	_, err := stats.Compute(nil)
	assert.ErrorIs(t, err, stats.ErrNilGraph)

	st, err := stats.Compute(core.NewGraph())
	require.NoError(t, err)
	assert.True(t, st.Connected)
	assert.Zero(t, st.NumVertices)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex(core.Vertex{ID: "solo"}))
	st, err = stats.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Components)
	assert.Zero(t, st.Density)
	assert.Zero(t, st.AvgPathLength)
}
