// SPDX-License-Identifier: MIT
package matrix

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
)

// Neighbor is one entry of an adjacency list.
type Neighbor struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// AdjacencyRow lists the neighbors of one vertex.
type AdjacencyRow struct {
	Label
	Neighbors []Neighbor `json:"neighbors"`
}

// EdgeRow is one line of an edge list.
type EdgeRow struct {
	ID     string  `json:"id"`
	From   Label   `json:"from"`
	To     Label   `json:"to"`
	Weight float64 `json:"weight"`
}

// AdjacencyList returns one row per vertex in insertion order. Isolated
// vertices get an empty, non-nil neighbor slice.
func AdjacencyList(g *core.Graph) ([]AdjacencyRow, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	names, err := namesOf(g)
	if err != nil {
		return nil, err
	}

	ids := g.Vertices()
	out := make([]AdjacencyRow, 0, len(ids))
	for _, id := range ids {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}
		row := AdjacencyRow{Label: Label{ID: id, Name: names[id]}, Neighbors: make([]Neighbor, 0, len(edges))}
		for _, e := range edges {
			nb := e.Other(id)
			row.Neighbors = append(row.Neighbors, Neighbor{ID: nb, Name: names[nb], Weight: e.Weight})
		}
		out = append(out, row)
	}

	return out, nil
}

// EdgeList returns every edge once, in insertion order, with the endpoint
// orientation it was added with.
func EdgeList(g *core.Graph) ([]EdgeRow, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	names, err := namesOf(g)
	if err != nil {
		return nil, err
	}

	edges := g.Edges()
	out := make([]EdgeRow, len(edges))
	for i, e := range edges {
		out[i] = EdgeRow{
			ID:     e.ID,
			From:   Label{ID: e.From, Name: names[e.From]},
			To:     Label{ID: e.To, Name: names[e.To]},
			Weight: e.Weight,
		}
	}

	return out, nil
}

func namesOf(g *core.Graph) (map[string]string, error) {
	ids := g.Vertices()
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}
		out[id] = v.Name
	}

	return out, nil
}
