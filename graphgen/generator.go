package graphgen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphgen/bfs"
	"github.com/katalvlaran/graphgen/core"
	"github.com/katalvlaran/graphgen/draw"
	"github.com/katalvlaran/graphgen/partition"
)

// Generator draws graphs satisfying fixed Constraints.
// It is safe for concurrent use as long as each goroutine brings its own Drawer.
type Generator struct {
	c         Constraints
	cache     *partition.Cache
	connected ConnectedBuilder
	logger    *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithCache shares a partition cache between generators. Panics on nil.
func WithCache(c *partition.Cache) Option {
	if c == nil {
		panic("graphgen: WithCache(nil)")
	}
	return func(g *Generator) { g.cache = c }
}

// WithConnectedBuilder replaces the default RandomConnected(DefaultEdgeProbability).
// Panics on nil.
func WithConnectedBuilder(b ConnectedBuilder) Option {
	if b == nil {
		panic("graphgen: WithConnectedBuilder(nil)")
	}
	return func(g *Generator) { g.connected = b }
}

// WithLogger sets the logger for draw diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("graphgen: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// New validates c and returns a Generator. Validation happens here, before
// any value is drawn, so its outcome never depends on randomness.
// Without WithCache the Generator owns a private cache that logs to the
// Generator's logger.
func New(c Constraints, opts ...Option) (*Generator, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	g := &Generator{
		c:         c,
		connected: RandomConnected(DefaultEdgeProbability),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = partition.NewCache(partition.WithLogger(g.logger))
	}

	return g, nil
}

// Constraints returns the constraints g was built with.
func (g *Generator) Constraints() Constraints { return g.c }

// Draw produces one graph, taking every random decision from d.
//
// The returned graph has vertex IDs "0".."n-1"; its component sizes are
// exactly the drawn partition. A node count of 0 yields the empty graph.
//
// Errors:
//   - draw.ErrEmptyRange / draw.ErrNoChoices from d, wrapped.
//   - ErrOverConstrained (also matching the partition sentinel, if any).
//   - ErrBuilderContract, or the ConnectedBuilder's own error, wrapped.
func (g *Generator) Draw(d draw.Drawer) (*core.Graph, error) {
	if d == nil {
		return nil, fmt.Errorf("Draw: nil drawer: %w", ErrInvalidArgument)
	}

	n, err := d.IntRange(g.c.MinNodes, g.c.nodeCeiling())
	if err != nil {
		return nil, fmt.Errorf("Draw: node count: %w", err)
	}
	if n == 0 {
		return core.NewGraph(), nil
	}

	lo, hi := g.c.componentBounds(n)
	if lo > hi {
		g.overConstrained(n, lo, hi, 0)
		return nil, fmt.Errorf("Draw: %w: n=%d allows no component count in [%d,%d]",
			ErrOverConstrained, n, lo, hi)
	}
	k, err := d.IntRange(lo, hi)
	if err != nil {
		return nil, fmt.Errorf("Draw: component count: %w", err)
	}

	parts, err := g.cache.Restricted(n, k,
		partition.WithMinSize(g.c.componentSizeFloor()),
		partition.WithOptionalMaxSize(g.c.MaxComponentSize))
	if err != nil {
		if errors.Is(err, partition.ErrInvalidArgument) || errors.Is(err, partition.ErrNoPartitions) {
			g.overConstrained(n, lo, hi, k)
			return nil, fmt.Errorf("Draw: %w: %w", ErrOverConstrained, err)
		}
		return nil, fmt.Errorf("Draw: %w", err)
	}
	idx, err := d.Index(len(parts))
	if err != nil {
		return nil, fmt.Errorf("Draw: partition: %w", err)
	}
	sizes := parts[idx]

	g.logger.Debug("graph draw",
		zap.Int("nodes", n),
		zap.Int("minComponents", lo),
		zap.Int("maxComponents", hi),
		zap.Int("components", k),
		zap.Stringer("partition", sizes),
		zap.Int("partitionIndex", idx),
		zap.Int("partitionChoices", len(parts)),
	)

	out := core.NewGraph()
	for _, size := range sizes {
		sub, err := g.component(d, size)
		if err != nil {
			return nil, fmt.Errorf("Draw: %w", err)
		}
		if out, err = core.DisjointUnion(out, sub); err != nil {
			return nil, fmt.Errorf("Draw: %w", err)
		}
	}

	return out, nil
}

// component asks the ConnectedBuilder for one component and checks its shape.
func (g *Generator) component(d draw.Drawer, size int) (*core.Graph, error) {
	sub, err := g.connected(d, size)
	if err != nil {
		return nil, fmt.Errorf("component of %d nodes: %w", size, err)
	}
	if sub == nil {
		return nil, fmt.Errorf("component of %d nodes: nil graph: %w", size, ErrBuilderContract)
	}
	got, err := bfs.ComponentSizes(sub)
	if err != nil {
		return nil, fmt.Errorf("component of %d nodes: %w", size, err)
	}
	if len(got) != 1 || got[0] != size {
		return nil, fmt.Errorf("component of %d nodes: got component sizes %v: %w", size, got, ErrBuilderContract)
	}

	return sub, nil
}

func (g *Generator) overConstrained(n, lo, hi, k int) {
	g.logger.Warn("graph draw over-constrained",
		zap.Stringer("constraints", g.c),
		zap.Int("nodes", n),
		zap.Int("minComponents", lo),
		zap.Int("maxComponents", hi),
		zap.Int("components", k),
	)
}

// Sizes returns the connected-component sizes of g in ascending order.
// An empty graph yields an empty non-nil slice; nil means the sizes could
// not be computed (a nil graph). Use bfs.ComponentSizes for the cause.
func Sizes(g *core.Graph) []int {
	sizes, err := bfs.ComponentSizes(g)
	if err != nil {
		return nil
	}

	return sizes
}
