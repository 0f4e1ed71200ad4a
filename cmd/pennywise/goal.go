package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/ledger"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Track savings goals",
	}
	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalFundCmd())
	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalRemoveCmd())
	return cmd
}

func goalAddCmd() *cobra.Command {
	var (
		deadlineFlag string
		colorFlag    string
		iconFlag     string
	)

	cmd := &cobra.Command{
		Use:   "add <target> <name>",
		Short: "Create a savings goal",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			name := joinWords(args[1:])

			var deadline *time.Time
			if deadlineFlag != "" {
				d, err := parseDate(deadlineFlag)
				if err != nil {
					return err
				}
				deadline = &d
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			goal := led.AddGoal(ctx, ledger.GoalInput{
				Deadline:     deadline,
				Name:         name,
				Color:        colorFlag,
				Icon:         iconFlag,
				TargetAmount: target,
			})

			snap := led.Snapshot()
			fmt.Printf("%s goal %q targeting %s\n",
				cli.SuccessStyle.Render("Created"),
				goal.Name,
				cli.Amount(activeCurrency(snap), goal.TargetAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&deadlineFlag, "deadline", "", "target date YYYY-MM-DD")
	cmd.Flags().StringVar(&colorFlag, "color", "", "display color")
	cmd.Flags().StringVar(&iconFlag, "icon", "", "display icon")
	return cmd
}

func goalFundCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fund <id> <amount>",
		Short: "Add funds toward a goal",
		Long: `Add funds toward a goal. Goal balances only ever grow; to correct a
mistake, delete the goal and recreate it.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			ids := make([]string, len(snap.Goals))
			for i, g := range snap.Goals {
				ids[i] = g.ID
			}

			id, err := resolveID(args[0], ids)
			if err != nil {
				return err
			}

			led.AddFunds(ctx, id, amount)

			snap = led.Snapshot()
			currency := activeCurrency(snap)
			for _, g := range snap.Goals {
				if g.ID != id {
					continue
				}
				msg := fmt.Sprintf("%s now at %s of %s (%.0f%%)",
					g.Name,
					cli.Amount(currency, g.CurrentAmount),
					cli.Amount(currency, g.TargetAmount),
					g.Progress())
				if g.Completed() {
					fmt.Println(cli.SuccessStyle.Render("Goal reached! " + msg))
				} else {
					fmt.Println(msg)
				}
			}
			return nil
		},
	}
}

func goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			currency := activeCurrency(snap)

			fmt.Println(cli.TitleStyle.Render("Savings Goals"))

			if len(snap.Goals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  no goals yet"))
				return nil
			}

			for _, g := range snap.Goals {
				status := fmt.Sprintf("%.0f%%", g.Progress())
				if g.Completed() {
					status = cli.SuccessStyle.Render("done")
				}
				line := fmt.Sprintf("  %s  %-20s %10s / %-10s %s",
					cli.SubtleStyle.Render(shortID(g.ID)),
					g.Name,
					cli.Amount(currency, g.CurrentAmount),
					cli.Amount(currency, g.TargetAmount),
					status)
				if g.Deadline != nil {
					line += cli.SubtleStyle.Render("  by " + g.Deadline.Format("2006-01-02"))
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func goalRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			ids := make([]string, len(snap.Goals))
			for i, g := range snap.Goals {
				ids[i] = g.ID
			}

			id, err := resolveID(args[0], ids)
			if err != nil {
				return err
			}

			led.DeleteGoal(ctx, id)
			fmt.Println(cli.SuccessStyle.Render("Deleted " + shortID(id)))
			return nil
		},
	}
}
