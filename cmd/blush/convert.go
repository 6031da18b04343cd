package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/blush"
)

func newConvertCmd() *cobra.Command {
	in := &colorFlags{}

	cmd := &cobra.Command{
		Use:     "convert <kind>",
		Short:   "Convert a color to another color model",
		Example: "  blush convert hsl --red 255\n  blush convert hsl -r 10 -g 200 -b 30 -a 128",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := in.color()
			if err != nil {
				return err
			}
			m, err := c.Convert(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if hsb, ok := m.(blush.HSLColorModel); ok {
				fmt.Fprintf(out, "hue=%.4f saturation=%.4f brightness=%.4f\n",
					hsb.Hue(), hsb.Saturation(), hsb.Brightness())
			}
			fmt.Fprintf(out, "r=%d g=%d b=%d a=%d\n", m.Red(), m.Green(), m.Blue(), m.Alpha())
			return nil
		},
	}

	in.register(cmd)
	return cmd
}
