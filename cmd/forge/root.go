package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dryRun  bool
	file    string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "forge",
		Short:         "forge runs declarative task graphs defined in a task file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "trace every strategy seam crossing")
	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "announce tasks without invoking their actions")
	cmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "forge.yaml", "path to the task file")

	cmd.AddCommand(newRunCmd(flags, app))
	cmd.AddCommand(newListCmd(flags, app))
	cmd.AddCommand(newValidateCmd(flags, app))
	cmd.AddCommand(newGraphCmd(flags, app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
