package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTransformCmd() *cobra.Command {
	in := &colorFlags{}

	cmd := &cobra.Command{
		Use:     "transform <kind> <amount>",
		Short:   "Apply a numeric transform to a color",
		Example: "  blush transform darken 0.5 -r 255 -g 255 -b 255",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			c, err := in.color()
			if err != nil {
				return err
			}
			out, err := c.Transform(args[0], amount)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatColor(out))
			return nil
		},
	}

	in.register(cmd)
	return cmd
}
