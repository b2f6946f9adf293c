package main

import (
	"github.com/spf13/cobra"

	gwyfile "github.com/gwyddion/go-gwyfile"
	"github.com/gwyddion/go-gwyfile/marshaller"
)

// newTreeCmd dumps the raw item tree of a container file as YAML,
// nested objects and all.
func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Dump the raw item tree as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := gwyfile.ReadFile(args[0])
			if err != nil {
				return err
			}

			data, err := marshaller.MarshalYAML(root)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	return cmd
}
