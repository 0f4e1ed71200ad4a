package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/sync"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror records to or from the sync server",
		Long: `Mirror records to or from the configured sync server. Syncing is
best effort: failures never touch local data. Insights never sync;
they are regenerated locally.

Configure the server and account in the config file:

  sync:
    url: https://sync.example.com
    user_id: your-user-id`,
	}
	cmd.AddCommand(syncPushCmd())
	cmd.AddCommand(syncPullCmd())
	return cmd
}

func syncClient() *sync.Client {
	return sync.NewClient(
		viper.GetString("sync.url"),
		viper.GetString("sync.user_id"),
		slog.Default(),
	)
}

func syncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload local records to the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			result := syncClient().Push(ctx, sync.Payload{
				Profile:  snap.Profile,
				UserID:   viper.GetString("sync.user_id"),
				Expenses: snap.Expenses,
				Incomes:  snap.Incomes,
				Budgets:  snap.Budgets,
				Goals:    snap.Goals,
			})
			led.RecordSyncResult(result)

			if !result.Success {
				fmt.Println(cli.ErrorStyle.Render("Sync failed: " + result.Error))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Pushed all records"))
			return nil
		},
	}
}

func syncPullCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Replace local records with the server copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if !forceFlag {
				return fmt.Errorf("pull replaces all local data; re-run with --force to confirm")
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			payload, result := syncClient().Pull(ctx)
			led.RecordSyncResult(result)
			if !result.Success {
				fmt.Println(cli.ErrorStyle.Render("Sync failed: " + result.Error))
				return nil
			}

			if err := led.ReplaceAll(ctx, payload.Expenses, payload.Incomes, payload.Budgets, payload.Goals, payload.Profile); err != nil {
				return fmt.Errorf("failed to apply pulled records: %w", err)
			}

			fmt.Printf("%s %d expenses, %d incomes, %d budgets, %d goals\n",
				cli.SuccessStyle.Render("Pulled"),
				len(payload.Expenses), len(payload.Incomes),
				len(payload.Budgets), len(payload.Goals))
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "confirm replacing all local data")
	return cmd
}
