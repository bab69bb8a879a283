package bfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphgen/bfs"
	"github.com/katalvlaran/graphgen/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid.
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFS_onVisitAbort stops the walk from inside OnVisit.
func ExampleBFS_onVisitAbort() {
	g := core.NewGraph()
	for i := 0; i < 6; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}
	errDeepEnough := errors.New("deep enough")

	res, err := bfs.BFS(g, "n0",
		bfs.WithOnVisit(func(_ string, d int) error {
			if d == 2 {
				return errDeepEnough
			}
			return nil
		}),
	)
	fmt.Println(errors.Is(err, errDeepEnough))
	fmt.Println("visited:", res.Order)
	// Output:
	// true
	// visited: [n0 n1 n2]
}

// ExampleComponentSizes lists component sizes of a graph with three pieces.
func ExampleComponentSizes() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("x", "y")
	_ = g.AddVertex("lonely")

	sizes, _ := bfs.ComponentSizes(g)
	fmt.Println(sizes)
	// Output:
	// [1 2 3]
}
