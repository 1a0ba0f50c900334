// SPDX-License-Identifier: MIT
package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/trafficgraph/bfs"
	"github.com/katalvlaran/trafficgraph/core"
)

func TestBipartite_Nil(t *testing.T) {
	if _, err := bfs.Bipartite(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("want ErrGraphNil, got %v", err)
	}
}

func TestBipartite_Empty(t *testing.T) {
	res, err := bfs.Bipartite(core.NewGraph())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Bipartite || len(res.SetA) != 0 || len(res.SetB) != 0 {
		t.Errorf("empty graph: got %+v", res)
	}
}

// TestBipartite_EvenCycle splits a 4-cycle plus an isolated vertex.
func TestBipartite_EvenCycle(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
	res, err := bfs.Bipartite(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Bipartite {
		t.Fatalf("4-cycle should be bipartite")
	}
	if want := []string{"A", "C", "E"}; !reflect.DeepEqual(res.SetA, want) {
		t.Errorf("SetA = %v; want %v", res.SetA, want)
	}
	if want := []string{"B", "D"}; !reflect.DeepEqual(res.SetB, want) {
		t.Errorf("SetB = %v; want %v", res.SetB, want)
	}
	if res.OddCycle != nil {
		t.Errorf("OddCycle = %v; want nil", res.OddCycle)
	}
}

func TestBipartite_Triangle(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}})
	res, err := bfs.Bipartite(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bipartite || res.SetA != nil || res.SetB != nil {
		t.Fatalf("triangle: got %+v", res)
	}
	if want := []string{"A", "B", "C", "A"}; !reflect.DeepEqual(res.OddCycle, want) {
		t.Errorf("OddCycle = %v; want %v", res.OddCycle, want)
	}
}

// TestBipartite_Pentagon checks the witness on a longer odd cycle hanging
// off a tail vertex.
func TestBipartite_Pentagon(t *testing.T) {
	g := mustGraph(t, []string{"T", "A", "B", "C", "D", "E"},
		[][2]string{{"T", "A"}, {"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"E", "A"}})
	res, err := bfs.Bipartite(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Bipartite {
		t.Fatalf("pentagon should not be bipartite")
	}
	if want := []string{"A", "B", "C", "D", "E", "A"}; !reflect.DeepEqual(res.OddCycle, want) {
		t.Errorf("OddCycle = %v; want %v", res.OddCycle, want)
	}
}

func TestBFSResult_TreeEdges(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}})
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}}
	if got := res.TreeEdges(); !reflect.DeepEqual(got, want) {
		t.Errorf("TreeEdges = %v; want %v", got, want)
	}
}
