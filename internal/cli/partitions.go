package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphgen/partition"
)

func newPartitionsCmd() *cobra.Command {
	var (
		items, parts     int
		minSize, maxSize int
		countOnly        bool
	)

	cmd := &cobra.Command{
		Use:   "partitions",
		Short: "List partitions of --items into exactly --parts bounded parts",
		Example: `  graphgen partitions --items 10 --parts 3 --min 2
  graphgen partitions --items 12 --parts 4 --max 4 --count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())
			cache := partition.NewCache(partition.WithLogger(logger))

			opts := []partition.Option{partition.WithMinSize(minSize)}
			if cmd.Flags().Changed("max") {
				opts = append(opts, partition.WithMaxSize(maxSize))
			}

			w := cmd.OutOrStdout()
			if countOnly {
				n, err := cache.Count(items, parts, opts...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, n)
				return err
			}

			ps, err := cache.Restricted(items, parts, opts...)
			if err != nil {
				return err
			}
			logger.Debug("partitions listed", zap.Int("items", items), zap.Int("parts", parts), zap.Int("count", len(ps)))
			for _, p := range ps {
				if _, err := fmt.Fprintln(w, p); err != nil {
					return err
				}
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&items, "items", 0, "total to split")
	f.IntVar(&parts, "parts", 1, "exact number of parts")
	f.IntVar(&minSize, "min", partition.DefaultMinSize, "smallest permitted part")
	f.IntVar(&maxSize, "max", 0, "largest permitted part (default: no cap)")
	f.BoolVar(&countOnly, "count", false, "print only the number of partitions")
	_ = cmd.MarkFlagRequired("items")

	return cmd
}
