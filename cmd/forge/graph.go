package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGraphCmd(flags *rootFlags, app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <target>",
		Short: "print target's dependency order, grouped by parallel eligibility",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(flags)
			if err != nil {
				return err
			}
			target := args[0]
			graph, err := eng.Validate(target)
			if err != nil {
				return err
			}
			groups, err := graph.TraverseAndGroup(target)
			if err != nil {
				return err
			}
			for i, group := range groups {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %v\n", i, []string(group))
			}
			return nil
		},
	}
}
