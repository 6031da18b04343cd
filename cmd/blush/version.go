package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/blush"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display the library version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "blush %s\n", blush.Version)
			return nil
		},
	}
}
