package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/importer"
)

func importCmd() *cobra.Command {
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "import <file.ofx> [more files...]",
		Short: "Import bank statements (OFX/QFX)",
		Long: `Import OFX or QFX bank statements. Debits become expenses with an
automatically assigned category, credits become income. Transactions
already recorded (same date, description, and amount) are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			parser := importer.NewParser()
			var entries []importer.Entry
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", path, err)
				}
				parsed, err := parser.ParseFile(ctx, f)
				_ = f.Close()
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", path, err)
				}
				entries = append(entries, parsed...)
			}

			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no transactions found"))
				return nil
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			var progressOut io.Writer = os.Stderr
			if quietFlag {
				progressOut = io.Discard
			}

			result := importer.Import(ctx, led, entries, progressOut)

			fmt.Printf("%s %d transactions (%d duplicates skipped)\n",
				cli.SuccessStyle.Render("Imported"),
				result.Imported, result.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress the progress bar")
	return cmd
}
