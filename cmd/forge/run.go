package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/forge/internal/strategy"
	"github.com/alexisbeaulieu97/forge/internal/watch"
)

func newRunCmd(flags *rootFlags, app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <target>",
		Short: "run every task target transitively depends on, then target itself",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTarget(cmd, app, flags, args[0])
		},
	}
	return cmd
}

func runTarget(cmd *cobra.Command, app *AppContext, flags *rootFlags, target string) error {
	eng, _, err := loadEngine(flags)
	if err != nil {
		return err
	}

	var strat strategy.Strategy = strategy.NewDefault()
	if flags.dryRun {
		strat = strategy.NewDryRun(func(name string) {
			fmt.Fprintf(cmd.OutOrStdout(), "would run: %s\n", name)
		})
	} else if flags.verbose {
		strat = strategy.NewVerbose(zerolog.New(os.Stderr).With().Timestamp().Logger())
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if interactive && !flags.dryRun {
		events := make(chan watch.Event, 64)
		watched := watch.Wrap(strat, events)

		done := make(chan error, 1)
		go func() {
			_, err := eng.RunTarget(context.Background(), watched, target)
			close(events)
			done <- err
		}()

		if err := watch.Run(events); err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		return <-done
	}

	rpt, err := eng.RunTarget(context.Background(), strat, target)
	if err != nil {
		return err
	}
	for _, entry := range rpt.Entries() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", entry.Name, entry.Duration)
	}
	return nil
}
