// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// connectivity and determinism.
package builder_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/bfs"
	"github.com/katalvlaran/graphgen/builder"
	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/draw"
)

// requireConnected asserts g has exactly n vertices in one component.
func requireConnected(t *testing.T, g *core.Graph, n int) {
	t.Helper()
	sizes, err := bfs.ComponentSizes(g)
	require.NoError(t, err)
	require.Equal(t, []int{n}, sizes)
}

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 3; i++ {
					assert.True(t, g.HasEdge(strconv.Itoa(i), strconv.Itoa(i+1)))
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				nbrs, err := g.NeighborIDs("0")
				require.NoError(t, err)
				assert.Len(t, nbrs, 4)
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					nbrs, err := g.NeighborIDs(id)
					require.NoError(t, err)
					assert.Len(t, nbrs, 2, id)
				}
				assert.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				nbrs, err := g.NeighborIDs("4")
				require.NoError(t, err)
				assert.Len(t, nbrs, 4, "hub is the last vertex")
			},
		},
		{name: "Cycle(3)", ctor: builder.Cycle(3), wantV: 3, wantE: 3},
		{name: "Wheel(4)", ctor: builder.Wheel(4), wantV: 4, wantE: 6},
		{name: "Path(1)", ctor: builder.Path(1), wantV: 1, wantE: 0},
		{name: "Star(1)", ctor: builder.Star(1), wantV: 1, wantE: 0},
		{name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			requireConnected(t, g, tc.wantV)
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_TooFewVertices(t *testing.T) {
	t.Parallel()
	for _, ctor := range []builder.Constructor{
		builder.Path(0), builder.Star(0), builder.Complete(-1), builder.RandomConnected(0, 0.5),
		builder.Cycle(2), builder.Wheel(3),
	} {
		_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, ctor)
		require.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_IDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestRandomConnected_Validation(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomConnected(3, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	opts := []builder.BuilderOption{builder.WithSeed(1)}
	_, err = builder.BuildGraph(nil, opts, builder.RandomConnected(3, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
	_, err = builder.BuildGraph(nil, opts, builder.RandomConnected(3, -0.1))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRandomConnected_AlwaysConnected(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 50; seed++ {
		for _, p := range []float64{0, 0.2, 1} {
			n := int(seed%12) + 1
			g, err := builder.BuildGraph(nil,
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomConnected(n, p))
			require.NoError(t, err)
			requireConnected(t, g, n)
			switch p {
			case 0:
				assert.Equal(t, n-1, g.EdgeCount(), "p=0 yields a tree")
			case 1:
				assert.Equal(t, n*(n-1)/2, g.EdgeCount(), "p=1 yields K_n")
			}
		}
	}
}

func TestRandomConnected_DeterministicPerSeed(t *testing.T) {
	build := func() []*core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(99)},
			builder.RandomConnected(15, 0.3))
		require.NoError(t, err)
		return g.Edges()
	}
	require.Equal(t, build(), build())
}

func TestRandomConnected_ZeroChoicesYieldStar(t *testing.T) {
	src := draw.Replay(nil, nil)
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithDrawer(src)},
		builder.RandomConnected(6, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	nbrs, err := g.NeighborIDs("0")
	require.NoError(t, err)
	assert.Len(t, nbrs, 5)
	assert.Len(t, src.Choices(), 5+10, "5 parents plus one trial per non-tree pair")
}

func TestRandomConnected_ReplayReproducesTopology(t *testing.T) {
	orig := draw.NewSeeded(5)
	g1, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithDrawer(orig)},
		builder.RandomConnected(9, 0.4))
	require.NoError(t, err)

	g2, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithDrawer(draw.Replay(orig.Choices(), nil))},
		builder.RandomConnected(9, 0.4))
	require.NoError(t, err)
	require.Equal(t, g1.Edges(), g2.Edges())
}

func TestOptions_NilPanics(t *testing.T) {
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithDrawer(nil) })
}
