package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Set and review category budgets",
	}
	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetRemoveCmd())
	return cmd
}

func budgetSetCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set a category limit for a month",
		Long: `Set the spending limit for one category in one month. Setting a
limit for a category that already has one replaces it; the budget's
spent figure is recomputed, never edited directly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			category, err := model.ParseCategory(args[0])
			if err != nil {
				return err
			}
			limit, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			month, err := parseMonthFlag(monthFlag)
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			budget := led.SetBudget(ctx, category, month, limit)

			snap := led.Snapshot()
			fmt.Printf("%s %s budget for %s: %s\n",
				cli.SuccessStyle.Render("Set"),
				category.DisplayName(), month,
				cli.Amount(activeCurrency(snap), budget.Limit))
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month YYYY-MM (default: current)")
	return cmd
}

func budgetListCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show budgets and their consumption",
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

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Budgets %s", month)))

			shown := 0
			for _, b := range snap.Budgets {
				if b.Month != month {
					continue
				}
				line := fmt.Sprintf("  %s  %-14s %10s of %10s",
					cli.SubtleStyle.Render(shortID(b.ID)),
					b.Category.DisplayName(),
					cli.Amount(currency, b.Spent),
					cli.Amount(currency, b.Limit))
				if b.Limit > 0 && b.Spent > b.Limit {
					line += "  " + cli.ErrorStyle.Render(fmt.Sprintf("over by %s", cli.Amount(currency, b.Spent-b.Limit)))
				}
				fmt.Println(line)
				shown++
			}

			if shown == 0 {
				fmt.Println(cli.SubtleStyle.Render("  no budgets set"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month YYYY-MM (default: current)")
	return cmd
}

func budgetRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			ids := make([]string, len(snap.Budgets))
			for i, b := range snap.Budgets {
				ids[i] = b.ID
			}

			id, err := resolveID(args[0], ids)
			if err != nil {
				return err
			}

			led.DeleteBudget(ctx, id)
			fmt.Println(cli.SuccessStyle.Render("Deleted " + shortID(id)))
			return nil
		},
	}
}
