package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	gwyfile "github.com/gwyddion/go-gwyfile"
	"github.com/gwyddion/go-gwyfile/graph"
)

// newGraphsCmd lists the graphs of a container file.
func newGraphsCmd() *cobra.Command {
	var csv bool

	cmd := &cobra.Command{
		Use:   "graphs <file>",
		Short: "List the graphs of a container file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			root, err := gwyfile.ReadFile(args[0])
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"ID", "TITLE", "CURVES", "X UNIT", "Y UNIT", "VISIBLE"})

			for _, id := range gwyfile.EnumerateGraphIDs(root) {
				m, err := graph.DecodeModel(root, id)
				if err != nil {
					logger.Warnf("Skipping graph %d: %v", id, err)

					continue
				}

				visible := "-"
				if v, found := m.Visible.Get(); found {
					visible = strconv.FormatBool(v)
				}

				tw.AppendRow(table.Row{id, m.Title, len(m.Curves), m.XUnit, m.YUnit, visible})
			}

			render(tw, csv)

			return nil
		},
	}

	cmd.Flags().BoolVar(&csv, "csv", false, "render the table as CSV")

	return cmd
}
