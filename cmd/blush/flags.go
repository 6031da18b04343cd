package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/blush"
)

// colorFlags holds the channel inputs shared by convert and transform.
type colorFlags struct {
	red, green, blue, alpha int
}

func (f *colorFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.red, "red", "r", 0, "Red component (0-255)")
	cmd.Flags().IntVarP(&f.green, "green", "g", 0, "Green component (0-255)")
	cmd.Flags().IntVarP(&f.blue, "blue", "b", 0, "Blue component (0-255)")
	cmd.Flags().IntVarP(&f.alpha, "alpha", "a", 255, "Alpha component (0-255)")
}

func (f *colorFlags) color() (blush.Color, error) {
	c, err := blush.NewRGBA(f.red, f.green, f.blue, f.alpha)
	if err != nil {
		return blush.Color{}, fmt.Errorf("invalid color: %w", err)
	}
	return c, nil
}

func formatColor(c blush.Color) string {
	return fmt.Sprintf("r=%d g=%d b=%d a=%d packed=0x%08x", c.Red(), c.Green(), c.Blue(), c.Alpha(), c.Packed())
}
