package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gwyfile "github.com/gwyddion/go-gwyfile"
	"github.com/gwyddion/go-gwyfile/graph"
)

// newExportCmd writes one curve of one graph as two-column text, one
// "abscissa ordinate" pair per line.
func newExportCmd() *cobra.Command {
	var (
		graphID  int
		curveIdx int
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export one curve as two-column text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := gwyfile.ReadFile(args[0])
			if err != nil {
				return err
			}

			m, err := graph.DecodeModel(root, graphID)
			if err != nil {
				return err
			}

			if curveIdx < 0 || curveIdx >= len(m.Curves) {
				return fmt.Errorf("graph %d holds %d curves, there is no curve %d", graphID, len(m.Curves), curveIdx)
			}

			curve := m.Curves[curveIdx]

			if output == "" {
				return writeSamples(cmd.OutOrStdout(), curve)
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}

			if err := writeSamples(f, curve); err != nil {
				f.Close()

				return err
			}

			return f.Close()
		},
	}

	cmd.Flags().IntVarP(&graphID, "graph", "g", 1, "graph id")
	cmd.Flags().IntVarP(&curveIdx, "curve", "c", 0, "curve index within the graph")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

func writeSamples(w io.Writer, c *graph.Curve) error {
	for i := 0; i < len(c.XData); i++ {
		if _, err := fmt.Fprintf(w, "%g\t%g\n", c.XData[i], c.YData[i]); err != nil {
			return err
		}
	}

	return nil
}
