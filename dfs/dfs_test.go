// SPDX-License-Identifier: MIT
package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/dfs"
)

// buildGraph creates an undirected unit-weight graph from vertex IDs and pairs.
func buildGraph(t *testing.T, ids []string, pairs [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range ids {
		require.NoError(t, g.AddVertex(core.Vertex{ID: id, Index: i, Name: id}))
	}
	for _, p := range pairs {
		_, err := g.AddEdge(p[0], p[1], 1)
		require.NoError(t, err)
	}

	return g
}

// buildChain creates a path graph N0–N1–…–N(n-1).
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	ids := make([]string, n)
	var pairs [][2]string
	for i := range ids {
		ids[i] = "N" + strconv.Itoa(i)
		if i > 0 {
			pairs = append(pairs, [2]string{ids[i-1], ids[i]})
		}
	}

	return buildGraph(t, ids, pairs)
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := buildGraph(t, []string{"A"}, nil)
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, []string{"A"}, res.PreOrder)
	assert.Empty(t, res.TreeEdges)
	assert.Equal(t, 0, res.Depth["A"])
}

// TestDFS_Orders checks pre-order, post-order and tree edges on
// A–B, A–C, B–D, C–D.
func TestDFS_Orders(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.PreOrder)
	assert.Equal(t, []string{"C", "D", "B", "A"}, res.Order)
	assert.Equal(t, []dfs.TreeEdge{{From: "A", To: "B"}, {From: "B", To: "D"}, {From: "D", To: "C"}}, res.TreeEdges)
	assert.Equal(t, 3, res.Depth["C"])
	assert.Equal(t, "D", res.Parent["C"])
	_, isRoot := res.Parent["A"]
	assert.False(t, isRoot)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 5)

	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0"}, res.PreOrder)

	res, err = dfs.DFS(g, "N0", dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.PreOrder)
	assert.False(t, res.Visited["N3"])
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"A", "C"}})

	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "B" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, res.PreOrder)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"C", "D"}})

	res, err := dfs.DFS(g, "", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.PreOrder)
	assert.Equal(t, 0, res.Depth["C"])
	assert.Len(t, res.TreeEdges, 2)
}

func TestDFS_Hooks(t *testing.T) {
	g := buildChain(t, 3)
	var visits, exits []string

	_, err := dfs.DFS(g, "N0",
		dfs.WithOnVisit(func(id string) error { visits = append(visits, id); return nil }),
		dfs.WithOnExit(func(id string) error { exits = append(exits, id); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, visits)
	assert.Equal(t, []string{"N2", "N1", "N0"}, exits)

	stop := errors.New("stop")
	res, err := dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string) error {
		if id == "N1" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Nil(t, res.Order)

	_, err = dfs.DFS(g, "N0", dfs.WithOnExit(func(string) error { return stop }))
	assert.ErrorIs(t, err, stop)
}

func TestDFS_ContextCanceled(t *testing.T) {
	g := buildChain(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
