package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/blush"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List registered transform and converter kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			r := blush.Default()
			for _, name := range r.Transforms() {
				fmt.Fprintf(out, "transform  %s\n", name)
			}
			for _, name := range r.Converters() {
				fmt.Fprintf(out, "converter  %s\n", name)
			}
			return nil
		},
	}
}
