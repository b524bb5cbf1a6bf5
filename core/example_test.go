package core_test

import (
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// ExampleGraph demonstrates building a tiny network and querying it.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddNode(1, "Taxi Stand")
	_ = g.AddNode(2, "Auto Stand")
	_ = g.AddNode(3, "Bus Stop")

	_ = g.AddEdge(1, 2, core.EdgeInfo{Distance: 4, Traffic: 2, RedLights: 1})
	_ = g.AddEdge(2, 3, core.EdgeInfo{Distance: 7, Traffic: 5, RedLights: 0})
	// Unknown endpoint: silently dropped.
	_ = g.AddEdge(3, 9, core.EdgeInfo{Distance: 1})

	nbs, _ := g.Neighbors(1)
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("1 → 2 exists?", g.HasEdge(1, 2))
	fmt.Println("2 → 1 exists?", g.HasEdge(2, 1))
	fmt.Printf("first hop from 1: %+v\n", nbs[0].Info)

	// Output:
	// edges: 2
	// 1 → 2 exists? true
	// 2 → 1 exists? false
	// first hop from 1: {Distance:4 Traffic:2 RedLights:1}
}
