package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(flags *rootFlags, app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list every task registered in the task file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(flags)
			if err != nil {
				return err
			}
			for _, name := range eng.TaskNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
