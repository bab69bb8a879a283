package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphgen/draw"
	"github.com/katalvlaran/graphgen/graphgen"
	"github.com/katalvlaran/graphgen/partition"
)

// Builder names accepted by --builder.
const (
	builderRandom   = "random"
	builderPath     = "path"
	builderComplete = "complete"
	builderCycle    = "cycle"
	builderWheel    = "wheel"
)

type sampleFlags struct {
	config string

	minNodes, maxNodes           int
	minComponents, maxComponents int
	minSize, maxSize             int

	seed   int64
	count  int
	replay []int

	builder         string
	edgeProbability float64

	edges   bool
	metrics bool
}

func newSampleCmd() *cobra.Command {
	f := &sampleFlags{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw graphs satisfying node and component constraints",
		Long: `Draw --count graphs. Constraints come from the YAML profile given by
--config; any constraint flag set on the command line overrides the profile.

Draw i uses seed --seed+i. Each line ends with the recorded choice sequence;
pass it to --replay to reproduce that graph exactly.`,
		Example: `  graphgen sample --min-nodes 10 --max-nodes 20 --max-component-size 4 --count 3
  graphgen sample --config profile.yaml --seed 7 --edges
  graphgen sample --min-nodes 6 --replay 2,1,0,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return f.run(cmd)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML constraints profile")
	fl.IntVar(&f.minNodes, "min-nodes", 0, "fewest nodes")
	fl.IntVar(&f.maxNodes, "max-nodes", 0, "most nodes (default: min-nodes+10)")
	fl.IntVar(&f.minComponents, "min-components", 0, "fewest connected components")
	fl.IntVar(&f.maxComponents, "max-components", 0, "most connected components")
	fl.IntVar(&f.minSize, "min-component-size", 1, "smallest component")
	fl.IntVar(&f.maxSize, "max-component-size", 0, "largest component")
	fl.Int64Var(&f.seed, "seed", 1, "seed of the first draw")
	fl.IntVarP(&f.count, "count", "n", 1, "number of graphs to draw")
	fl.IntSliceVar(&f.replay, "replay", nil, "replay a recorded choice sequence instead of seeding")
	fl.StringVar(&f.builder, "builder", builderRandom, "component builder: random, path, complete, cycle or wheel")
	fl.Float64Var(&f.edgeProbability, "edge-probability", graphgen.DefaultEdgeProbability,
		"extra-edge probability of the random builder")
	fl.BoolVar(&f.edges, "edges", false, "print the edges of every graph")
	fl.BoolVar(&f.metrics, "metrics", false, "print partition cache metrics after sampling")

	return cmd
}

func (f *sampleFlags) run(cmd *cobra.Command) error {
	logger := loggerFromContext(cmd.Context())

	c, err := f.constraints(cmd)
	if err != nil {
		return err
	}
	connected, err := f.connected()
	if err != nil {
		return err
	}
	if f.count < 1 {
		return fmt.Errorf("--count must be ≥ 1, got %d", f.count)
	}

	cache := partition.NewCache(partition.WithLogger(logger))
	gen, err := graphgen.New(c,
		graphgen.WithCache(cache),
		graphgen.WithConnectedBuilder(connected),
		graphgen.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("sampling", zap.Stringer("constraints", c), zap.String("builder", f.builder), zap.Int("count", f.count))

	replay := cmd.Flags().Changed("replay")
	w := cmd.OutOrStdout()
	for i := 0; i < f.count; i++ {
		src := draw.NewSeeded(f.seed + int64(i))
		if replay {
			src = draw.Replay(f.replay, nil)
		}
		g, err := gen.Draw(src)
		if err != nil {
			return fmt.Errorf("sample %d: %w", i, err)
		}

		sizes := graphgen.Sizes(g)
		if sizes == nil {
			return fmt.Errorf("sample %d: component sizes unavailable", i)
		}
		st := g.Stats()
		fmt.Fprintf(w, "sample %d: nodes=%d edges=%d components=%v choices=%v\n",
			i, st.VertexCount, st.EdgeCount, sizes, joinInts(src.Choices()))
		if f.edges {
			for _, e := range g.Edges() {
				fmt.Fprintf(w, "  %s - %s\n", e.From, e.To)
			}
		}
	}

	if f.metrics {
		return writeMetrics(w, cache)
	}

	return nil
}

// constraints loads the profile, if any, and applies explicitly set flags.
func (f *sampleFlags) constraints(cmd *cobra.Command) (graphgen.Constraints, error) {
	var c graphgen.Constraints
	if f.config != "" {
		var err error
		if c, err = graphgen.LoadConstraints(f.config); err != nil {
			return graphgen.Constraints{}, err
		}
	}

	set := cmd.Flags().Changed
	if set("min-nodes") {
		c.MinNodes = f.minNodes
	}
	if set("max-nodes") {
		c.MaxNodes = graphgen.Int(f.maxNodes)
	}
	if set("min-components") {
		c.MinComponents = graphgen.Int(f.minComponents)
	}
	if set("max-components") {
		c.MaxComponents = graphgen.Int(f.maxComponents)
	}
	if set("min-component-size") {
		c.MinComponentSize = f.minSize
	}
	if set("max-component-size") {
		c.MaxComponentSize = graphgen.Int(f.maxSize)
	}

	return c, nil
}

func (f *sampleFlags) connected() (graphgen.ConnectedBuilder, error) {
	switch f.builder {
	case builderRandom:
		return graphgen.RandomConnected(f.edgeProbability), nil
	case builderPath:
		return graphgen.PathConnected(), nil
	case builderComplete:
		return graphgen.CompleteConnected(), nil
	case builderCycle:
		return graphgen.CycleConnected(), nil
	case builderWheel:
		return graphgen.WheelConnected(), nil
	default:
		return nil, fmt.Errorf("unknown --builder %q (want one of %s, %s, %s, %s, %s)",
			f.builder, builderRandom, builderPath, builderComplete, builderCycle, builderWheel)
	}
}

// joinInts renders choices in the comma-separated form --replay accepts.
func joinInts(xs []int) string {
	var b []byte
	for i, x := range xs {
		if i > 0 {
			b = append(b, ',')
		}
		b = fmt.Appendf(b, "%d", x)
	}

	return string(b)
}

// writeMetrics renders the cache counters in the Prometheus text format.
func writeMetrics(w io.Writer, cache *partition.Cache) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(partition.NewCollector(cache, nil)); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
