package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
)

func resetCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all local records",
		Long: `Delete every expense, income, budget, goal, insight, and the
profile. This only touches the local database; any server copy is
left alone.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !forceFlag {
				return fmt.Errorf("reset deletes all local data; re-run with --force to confirm")
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			if err := led.Reset(ctx); err != nil {
				return fmt.Errorf("failed to reset: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("All local data deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "confirm deleting all local data")
	return cmd
}
