package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. Results go to out, logs and
// errors to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "graphgen",
		Short:         "Generate random graphs under component constraints",
		Long:          `graphgen draws random undirected graphs whose node count, component count and component sizes stay within configured bounds, and lists the restricted integer partitions behind those draws.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), verbose)))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newPartitionsCmd())
	root.AddCommand(newSampleCmd())

	return root
}

// Execute runs the CLI against the process streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}
