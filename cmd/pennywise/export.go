package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records to CSV or a JSON backup",
	}
	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportBackupCmd())
	cmd.AddCommand(exportRestoreCmd())
	return cmd
}

func exportCSVCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write all cash movements as CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()

			out := os.Stdout
			if outFlag != "" {
				f, err := os.Create(outFlag)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outFlag, err)
				}
				defer f.Close() //nolint:errcheck
				out = f
			}

			if err := export.WriteCSV(out, snap.Expenses, snap.Incomes); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}

			if outFlag != "" {
				fmt.Printf("%s %d rows to %s\n", cli.SuccessStyle.Render("Wrote"),
					len(snap.Expenses)+len(snap.Incomes), outFlag)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func exportBackupCmd() *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a versioned JSON backup of all records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			backup := export.Backup{
				ExportedAt: time.Now().UTC(),
				Profile:    snap.Profile,
				Expenses:   snap.Expenses,
				Incomes:    snap.Incomes,
				Budgets:    snap.Budgets,
				Goals:      snap.Goals,
				Version:    export.BackupVersion,
			}

			out := os.Stdout
			if outFlag != "" {
				f, err := os.Create(outFlag)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outFlag, err)
				}
				defer f.Close() //nolint:errcheck
				out = f
			}

			if err := export.WriteBackup(out, backup); err != nil {
				return fmt.Errorf("failed to write backup: %w", err)
			}

			if outFlag != "" {
				fmt.Printf("%s backup to %s\n", cli.SuccessStyle.Render("Wrote"), outFlag)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "output file (default: stdout)")
	return cmd
}

func exportRestoreCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "restore <backup.json>",
		Short: "Replace all local records from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if !forceFlag {
				return fmt.Errorf("restore replaces all local data; re-run with --force to confirm")
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close() //nolint:errcheck

			backup, err := export.ReadBackup(f)
			if err != nil {
				return fmt.Errorf("failed to read backup: %w", err)
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			if err := led.ReplaceAll(ctx, backup.Expenses, backup.Incomes, backup.Budgets, backup.Goals, backup.Profile); err != nil {
				return fmt.Errorf("failed to restore: %w", err)
			}

			fmt.Printf("%s %d expenses, %d incomes, %d budgets, %d goals\n",
				cli.SuccessStyle.Render("Restored"),
				len(backup.Expenses), len(backup.Incomes),
				len(backup.Budgets), len(backup.Goals))
			return nil
		},
	}

	cmd.Flags().BoolVar(&forceFlag, "force", false, "confirm replacing all local data")
	return cmd
}
