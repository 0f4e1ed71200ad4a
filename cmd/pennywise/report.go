package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/model"
)

func reportCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly statistics and financial health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			led.SetMonth(ctx, month)
			snap := led.Snapshot()
			currency := activeCurrency(snap)
			stats := snap.Stats

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Report %s", month)))

			fmt.Printf("  Income:   %s\n", cli.Amount(currency, stats.TotalIncome))
			fmt.Printf("  Expenses: %s\n", cli.Amount(currency, stats.TotalExpenses))
			savings := cli.Amount(currency, stats.Savings)
			if stats.Savings < 0 {
				savings = cli.ErrorStyle.Render(savings)
			}
			fmt.Printf("  Savings:  %s\n", savings)

			fmt.Println()
			fmt.Println(cli.BoldStyle.Render("  By category"))
			for _, c := range model.Categories() {
				amount := stats.ByCategory[c]
				if amount == 0 {
					continue
				}
				fmt.Printf("    %-14s %10s\n", c.DisplayName(), cli.Amount(currency, amount))
			}
			if stats.TotalExpenses == 0 {
				fmt.Println(cli.SubtleStyle.Render("    no spending this month"))
			}

			fmt.Println()
			health := snap.Health
			fmt.Printf("  %s %s (%.0f/100)\n",
				cli.BoldStyle.Render("Health:"),
				cli.HealthStyle(health.Status).Render(string(health.Status)),
				health.Score)

			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month YYYY-MM (default: current)")
	return cmd
}
