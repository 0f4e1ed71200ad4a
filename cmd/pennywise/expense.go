package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/ledger"
	"github.com/pennywise-app/pennywise/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and manage expenses",
	}
	cmd.AddCommand(expenseAddCmd())
	cmd.AddCommand(expenseListCmd())
	cmd.AddCommand(expenseRemoveCmd())
	return cmd
}

func expenseAddCmd() *cobra.Command {
	var (
		categoryFlag string
		dateFlag     string
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <description>",
		Short: "Record an expense",
		Long: `Record an expense. Without --category the description is classified
automatically: a remote zero-shot model if one is configured, otherwise
a local keyword table.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			description := joinWords(args[1:])

			date, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			var category model.Category
			if categoryFlag != "" {
				category, err = model.ParseCategory(categoryFlag)
				if err != nil {
					return err
				}
			} else {
				category = buildClassifier().Classify(ctx, description)
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			expense := led.AddExpense(ctx, ledger.ExpenseInput{
				Date:        date,
				Description: description,
				Category:    category,
				Amount:      amount,
			})

			snap := led.Snapshot()
			fmt.Printf("%s %s %s (%s)\n",
				cli.SuccessStyle.Render("Recorded"),
				cli.Amount(activeCurrency(snap), expense.Amount),
				expense.Description,
				expense.Category.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "category (default: auto-classified)")
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "date YYYY-MM-DD (default: today)")
	return cmd
}

func expenseListCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses for a month",
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

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Expenses %s", month)))

			var total float64
			shown := 0
			for _, e := range snap.Expenses {
				if !month.Contains(e.Date) {
					continue
				}
				fmt.Printf("  %s  %s  %10s  %-14s %s\n",
					cli.SubtleStyle.Render(shortID(e.ID)),
					e.Date.Format("2006-01-02"),
					cli.Amount(currency, e.Amount),
					e.Category.DisplayName(),
					e.Description)
				total += e.Amount
				shown++
			}

			if shown == 0 {
				fmt.Println(cli.SubtleStyle.Render("  no expenses recorded"))
				return nil
			}

			fmt.Printf("\n  %s %s across %d entries\n",
				cli.BoldStyle.Render("Total:"),
				cli.Amount(currency, total), shown)
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month YYYY-MM (default: current)")
	return cmd
}

func expenseRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			ids := make([]string, len(snap.Expenses))
			for i, e := range snap.Expenses {
				ids[i] = e.ID
			}

			id, err := resolveID(args[0], ids)
			if err != nil {
				return err
			}

			led.DeleteExpense(ctx, id)
			fmt.Println(cli.SuccessStyle.Render("Deleted " + shortID(id)))
			return nil
		},
	}
}
