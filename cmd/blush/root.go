package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/blush"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "blush",
		Short:         "Convert and transform RGBA colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !flags.verbose {
				blush.SetLogger(nil)
				return
			}
			blush.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newTransformCmd())
	cmd.AddCommand(newKindsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
