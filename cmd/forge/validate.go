package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(flags *rootFlags, app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [target]",
		Short: "check the task file parses and its graph has no structural errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(flags)
			if err != nil {
				return err
			}
			target := ""
			if len(args) == 1 {
				target = args[0]
			}
			if _, err := eng.Validate(target); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
