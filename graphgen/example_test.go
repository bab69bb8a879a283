package graphgen_test

import (
	"fmt"

	"github.com/katalvlaran/graphgen/draw"
	"github.com/katalvlaran/graphgen/graphgen"
)

// ExampleGenerator_Draw replays an all-zero choice sequence: the simplest
// draw under the constraints.
func ExampleGenerator_Draw() {
	g, err := graphgen.New(graphgen.Constraints{
		MinNodes:         10,
		MaxNodes:         graphgen.Int(14),
		MinComponents:    graphgen.Int(3),
		MinComponentSize: 2,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	out, err := g.Draw(draw.Replay(nil, nil))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.VertexCount(), graphgen.Sizes(out), out.EdgeCount())
	// Output:
	// 10 [3 3 4] 7
}

// ExampleSizes shows a seeded draw satisfying a component-size cap.
func ExampleSizes() {
	g, _ := graphgen.New(graphgen.Constraints{
		MinNodes:         8,
		MaxNodes:         graphgen.Int(8),
		MaxComponentSize: graphgen.Int(3),
	})
	out, _ := g.Draw(draw.NewSeeded(1))

	largest := 0
	for _, s := range graphgen.Sizes(out) {
		largest = max(largest, s)
	}
	fmt.Println(out.VertexCount(), largest <= 3)
	// Output:
	// 8 true
}
