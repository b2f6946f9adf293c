package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	gwyfile "github.com/gwyddion/go-gwyfile"
	"github.com/gwyddion/go-gwyfile/channel"
	"github.com/gwyddion/go-gwyfile/selection"
)

// newChannelsCmd lists the channels of a container file. A channel that
// fails to decode is logged and skipped so the rest still shows.
func newChannelsCmd() *cobra.Command {
	var csv bool

	cmd := &cobra.Command{
		Use:   "channels <file>",
		Short: "List the channels of a container file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			root, err := gwyfile.ReadFile(args[0])
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{
				"ID", "TITLE", "XRES", "YRES", "XREAL", "YREAL",
				"XY UNIT", "Z UNIT", "MASK", "SHOW", "SELECTIONS",
			})

			for _, id := range gwyfile.EnumerateChannelIDs(root) {
				ch, err := channel.Decode(root, id)
				if err != nil {
					logger.Warnf("Skipping channel %d: %v", id, err)

					continue
				}

				tw.AppendRow(table.Row{
					id,
					ch.Title,
					ch.Data.XRes,
					ch.Data.YRes,
					ch.Data.XReal,
					ch.Data.YReal,
					ch.Data.SIUnitXY,
					ch.Data.SIUnitZ,
					mark(ch.Mask != nil),
					mark(ch.Show != nil),
					selectionNames(ch),
				})
			}

			render(tw, csv)

			return nil
		},
	}

	cmd.Flags().BoolVar(&csv, "csv", false, "render the table as CSV")

	return cmd
}

func mark(set bool) string {
	if set {
		return "yes"
	}

	return "-"
}

func selectionNames(ch *channel.Channel) string {
	var names []string

	for _, kind := range selection.Kinds() {
		if ch.Selection(kind) != nil {
			names = append(names, kind.PathWord())
		}
	}

	if len(names) == 0 {
		return "-"
	}

	return strings.Join(names, ",")
}
