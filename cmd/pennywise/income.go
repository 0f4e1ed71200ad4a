package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/ledger"
)

func incomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Record and manage income",
	}
	cmd.AddCommand(incomeAddCmd())
	cmd.AddCommand(incomeListCmd())
	cmd.AddCommand(incomeRemoveCmd())
	return cmd
}

func incomeAddCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "add <amount> <source>",
		Short: "Record income",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			source := joinWords(args[1:])

			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			income := led.AddIncome(ctx, ledger.IncomeInput{
				Date:   date,
				Source: source,
				Amount: amount,
			})

			snap := led.Snapshot()
			fmt.Printf("%s %s from %s\n",
				cli.SuccessStyle.Render("Recorded"),
				cli.Amount(activeCurrency(snap), income.Amount),
				income.Source)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date YYYY-MM-DD (default: today)")
	return cmd
}

func incomeListCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List income for a month",
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

			snap := led.Snapshot()
			currency := activeCurrency(snap)

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Income %s", month)))

			var total float64
			shown := 0
			for _, in := range snap.Incomes {
				if !month.Contains(in.Date) {
					continue
				}
				fmt.Printf("  %s  %s  %10s  %s\n",
					cli.SubtleStyle.Render(shortID(in.ID)),
					in.Date.Format("2006-01-02"),
					cli.Amount(currency, in.Amount),
					in.Source)
				total += in.Amount
				shown++
			}

			if shown == 0 {
				fmt.Println(cli.SubtleStyle.Render("  no income recorded"))
				if snap.Profile != nil && snap.Profile.MonthlyIncome > 0 {
					fmt.Printf("  %s %s\n",
						cli.SubtleStyle.Render("profile baseline:"),
						cli.Amount(currency, snap.Profile.MonthlyIncome))
				}
				return nil
			}

			fmt.Printf("\n  %s %s\n", cli.BoldStyle.Render("Total:"), cli.Amount(currency, total))
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month YYYY-MM (default: current)")
	return cmd
}

func incomeRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an income record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			ids := make([]string, len(snap.Incomes))
			for i, in := range snap.Incomes {
				ids[i] = in.ID
			}

			id, err := resolveID(args[0], ids)
			if err != nil {
				return err
			}

			led.DeleteIncome(ctx, id)
			fmt.Println(cli.SuccessStyle.Render("Deleted " + shortID(id)))
			return nil
		},
	}
}
