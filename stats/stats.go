// SPDX-License-Identifier: MIT
// Package stats summarizes a *core.Graph: sizes, density, degrees,
// connectivity and path-length figures. Graph-theoretic measures are
// computed with gonum on a mirror of the graph.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/trafficgraph/core"
)

// ErrNilGraph is returned when Compute receives a nil graph.
var ErrNilGraph = errors.New("stats: graph is nil")

// Stats is a graph summary.
//
// Diameter and AvgPathLength count hops; the Km variants use edge weights.
// Path figures are only set when the graph is connected and has at least two
// vertices.
type Stats struct {
	NumVertices     int     `json:"num_vertices"`
	NumEdges        int     `json:"num_edges"`
	TotalWeight     float64 `json:"total_weight"`
	MinWeight       float64 `json:"min_weight"`
	MaxWeight       float64 `json:"max_weight"`
	AvgWeight       float64 `json:"avg_weight"`
	Density         float64 `json:"density"`
	MinDegree       int     `json:"min_degree"`
	MaxDegree       int     `json:"max_degree"`
	AvgDegree       float64 `json:"avg_degree"`
	OddDegree       int     `json:"odd_degree"`
	Isolated        int     `json:"isolated"`
	Components      int     `json:"components"`
	Connected       bool    `json:"connected"`
	Diameter        int     `json:"diameter,omitempty"`
	AvgPathLength   float64 `json:"avg_path_length,omitempty"`
	DiameterKm      float64 `json:"diameter_km,omitempty"`
	AvgPathLengthKm float64 `json:"avg_path_length_km,omitempty"`
}

// Compute returns the summary of g.
//
// Steps:
//  1. Fold sizes, weights and degrees from core.
//  2. Mirror g into gonum graphs keyed by insertion position.
//  3. Count components with topo.ConnectedComponents.
//  4. When connected, run all-pairs Dijkstra twice (hops, km).
func Compute(g *core.Graph) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGraph
	}

	// 1. core figures
	cs := g.Stats()
	st := Stats{
		NumVertices: cs.VertexCount,
		NumEdges:    cs.EdgeCount,
		TotalWeight: cs.TotalWeight,
		MinDegree:   cs.MinDegree,
		MaxDegree:   cs.MaxDegree,
	}
	n := st.NumVertices
	if n == 0 {
		st.Connected = true
		return st, nil
	}
	if n > 1 {
		st.Density = 2 * float64(st.NumEdges) / float64(n*(n-1))
	}
	st.AvgDegree = 2 * float64(st.NumEdges) / float64(n)
	for _, d := range g.Degrees() {
		if d%2 == 1 {
			st.OddDegree++
		}
		if d == 0 {
			st.Isolated++
		}
	}

	// 2. mirrors
	ids := g.Vertices()
	pos := make(map[string]int64, n)
	hops := simple.NewUndirectedGraph()
	km := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i, id := range ids {
		pos[id] = int64(i)
		hops.AddNode(simple.Node(i))
		km.AddNode(simple.Node(i))
	}
	for i, e := range g.Edges() {
		if i == 0 || e.Weight < st.MinWeight {
			st.MinWeight = e.Weight
		}
		if e.Weight > st.MaxWeight {
			st.MaxWeight = e.Weight
		}
		u, v := simple.Node(pos[e.From]), simple.Node(pos[e.To])
		hops.SetEdge(hops.NewEdge(u, v))
		km.SetWeightedEdge(km.NewWeightedEdge(u, v, e.Weight))
	}
	if st.NumEdges > 0 {
		st.AvgWeight = st.TotalWeight / float64(st.NumEdges)
	}

	// 3. components
	st.Components = len(topo.ConnectedComponents(hops))
	st.Connected = st.Components == 1

	// 4. path figures
	if st.Connected && n > 1 {
		maxHops, meanHops := eccentricity(hops, n)
		st.Diameter = int(maxHops)
		st.AvgPathLength = meanHops
		st.DiameterKm, st.AvgPathLengthKm = eccentricity(km, n)
	}

	return st, nil
}

// eccentricity returns the largest and mean shortest-path weight over all
// unordered pairs of a connected graph with nodes 0..n-1.
func eccentricity(g graph.Graph, n int) (float64, float64) {
	all := path.DijkstraAllPaths(g)
	var maxW, sum float64
	pairs := 0
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			w := all.Weight(int64(u), int64(v))
			if w > maxW {
				maxW = w
			}
			sum += w
			pairs++
		}
	}

	return maxW, sum / float64(pairs)
}
