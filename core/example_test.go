package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphgen/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge C-B exists?", g.HasEdge("C", "B"))
	// Output:
	// Vertices: [A B C]
	// Edge C-B exists? true
}

// ExampleDisjointUnion shows the renumbering of both operands.
func ExampleDisjointUnion() {
	a := core.NewGraph()
	_, _ = a.AddEdge("p", "q")
	b := core.NewGraph()
	_ = b.AddVertex("solo")

	u, _ := core.DisjointUnion(a, b)
	fmt.Println(u.Vertices())
	for _, e := range u.Edges() {
		fmt.Println(e.From, "-", e.To)
	}
	// Output:
	// [0 1 2]
	// 0 - 1
}
