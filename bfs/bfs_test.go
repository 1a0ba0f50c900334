// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/core"
)

// mustGraph builds an undirected unit-weight graph from vertex IDs and pairs.
func mustGraph(t *testing.T, ids []string, pairs [][2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range ids {
		if err := g.AddVertex(core.Vertex{ID: id, Index: i, Name: id}); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	for _, p := range pairs {
		if _, err := g.AddEdge(p[0], p[1], 1); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", p[0], p[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := mustGraph(t, []string{"A"}, nil)
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleDepths covers a 4-cycle A–B–C–D–A.
func TestBFS_CycleDepths(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["C"]; d != 2 {
		t.Errorf("Depth[C] = %d; want 2", d)
	}
	path, err := res.PathTo("C")
	if err != nil || !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v, %v", path, err)
	}
}

// TestBFS_MaxDepthAndHook checks depth limiting and OnVisit abort.
func TestBFS_MaxDepthAndHook(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 2 {
		t.Errorf("MaxDepth(1) visited %v", res.Order)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: got %v", err)
	}
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestConnectivity covers IsConnected, Components and SkipEdge.
func TestConnectivity(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}})
	ok, err := bfs.IsConnected(g)
	if err != nil || ok {
		t.Errorf("isolated D: IsConnected = %v, %v; want false", ok, err)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	if want := [][]string{{"A", "B", "C"}, {"D"}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}

	// B–C is a bridge: hiding it leaves only A and B reachable from B.
	n, err := bfs.Reachable(g, "B", bfs.SkipEdge("C", "B"))
	if err != nil || n != 2 {
		t.Errorf("Reachable without B–C = %d, %v; want 2", n, err)
	}

	empty := core.NewGraph()
	if ok, _ := bfs.IsConnected(empty); !ok {
		t.Error("empty graph should be connected")
	}
}
