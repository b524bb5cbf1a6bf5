package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/dijkstra"
)

// ExampleDijkstra finds the shortest drive between two stops.
//
//	1 ─1→ 2 ─1→ 3
//	 └────5─────┘
func ExampleDijkstra() {
	g := core.NewGraph()
	for id := 1; id <= 3; id++ {
		_ = g.AddNode(id, "Bus Stop")
	}
	_ = g.AddEdge(1, 2, core.EdgeInfo{Distance: 1})
	_ = g.AddEdge(2, 3, core.EdgeInfo{Distance: 1})
	_ = g.AddEdge(1, 3, core.EdgeInfo{Distance: 5})

	res, err := dijkstra.Dijkstra(g, dijkstra.Source(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(3)
	fmt.Println(path, res.Dist[3])

	// Output:
	// [1 2 3] 2
}
