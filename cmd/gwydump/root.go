package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// newRootCmd builds the gwydump command tree. The logger travels in the
// command context so every subcommand reports through the same one.
func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "gwydump",
		Short:         "Inspect measurement container files",
		Long:          "gwydump reads a measurement container file and shows what it holds:\nthe channel and graph inventories, the raw item tree and single curves\nexported as plain text.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}

			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(newChannelsCmd())
	cmd.AddCommand(newGraphsCmd())
	cmd.AddCommand(newTreeCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}

func render(tw table.Writer, csv bool) {
	if csv {
		tw.RenderCSV()

		return
	}

	tw.Render()
}
