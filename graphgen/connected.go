package graphgen

import (
	"github.com/katalvlaran/graphgen/builder"
	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/draw"
)

// DefaultEdgeProbability is the extra-edge probability of the default
// ConnectedBuilder.
const DefaultEdgeProbability = 0.25

// ConnectedBuilder returns one connected simple graph on exactly n ≥ 1
// vertices. Random builders must take every choice from d so the whole draw
// stays replayable.
type ConnectedBuilder func(d draw.Drawer, n int) (*core.Graph, error)

// RandomConnected returns a builder drawing a random spanning tree plus
// each remaining edge with probability p (see builder.RandomConnected).
// A minimized draw is a star.
func RandomConnected(p float64) ConnectedBuilder {
	return func(d draw.Drawer, n int) (*core.Graph, error) {
		return builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithDrawer(d)},
			builder.RandomConnected(n, p))
	}
}

// PathConnected returns a builder producing the path P_n without drawing.
func PathConnected() ConnectedBuilder {
	return func(_ draw.Drawer, n int) (*core.Graph, error) {
		return builder.BuildGraph(nil, nil, builder.Path(n))
	}
}

// CompleteConnected returns a builder producing K_n without drawing.
func CompleteConnected() ConnectedBuilder {
	return func(_ draw.Drawer, n int) (*core.Graph, error) {
		return builder.BuildGraph(nil, nil, builder.Complete(n))
	}
}

// CycleConnected returns a builder producing C_n, or P_n below three nodes.
func CycleConnected() ConnectedBuilder {
	return func(_ draw.Drawer, n int) (*core.Graph, error) {
		if n < builder.MinCycleNodes {
			return builder.BuildGraph(nil, nil, builder.Path(n))
		}
		return builder.BuildGraph(nil, nil, builder.Cycle(n))
	}
}

// WheelConnected returns a builder producing W_n, or K_n below four nodes.
func WheelConnected() ConnectedBuilder {
	return func(_ draw.Drawer, n int) (*core.Graph, error) {
		if n < builder.MinWheelNodes {
			return builder.BuildGraph(nil, nil, builder.Complete(n))
		}
		return builder.BuildGraph(nil, nil, builder.Wheel(n))
	}
}
