// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/trafficgraph/core"
	"github.com/katalvlaran/trafficgraph/dijkstra"
)

// ExampleShortestPath routes across District 1 where the direct road is
// longer than the detour through Nha Tho.
func ExampleShortestPath() {
	g := core.NewGraph()
	for i, id := range []string{"BenThanh", "NhaTho", "TanDinh"} {
		_ = g.AddVertex(core.Vertex{ID: id, Index: i, Name: id})
	}
	_, _ = g.AddEdge("BenThanh", "NhaTho", 1.1)
	_, _ = g.AddEdge("NhaTho", "TanDinh", 1.6)
	_, _ = g.AddEdge("BenThanh", "TanDinh", 3.2)

	p, err := dijkstra.ShortestPath(g, "BenThanh", "TanDinh")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Vertices)
	fmt.Printf("%.1f km\n", p.Distance)
	// Output:
	// [BenThanh NhaTho TanDinh]
	// 2.7 km
}
