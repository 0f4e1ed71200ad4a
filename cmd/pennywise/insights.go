package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/insight"
	"github.com/pennywise-app/pennywise/internal/model"
)

func insightsCmd() *cobra.Command {
	var (
		monthFlag     string
		anomaliesFlag bool
		readFlag      string
	)

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Rule-based insights for the active month",
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

			if readFlag != "" {
				snap := led.Snapshot()
				ids := make([]string, len(snap.Insights))
				for i, ins := range snap.Insights {
					ids[i] = ins.ID
				}
				id, err := resolveID(readFlag, ids)
				if err != nil {
					return err
				}
				led.MarkInsightRead(ctx, id)
				fmt.Println(cli.SuccessStyle.Render("Marked read " + shortID(id)))
				return nil
			}

			snap := led.Snapshot()

			fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Insights %s", month)))

			if len(snap.Insights) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  nothing to report yet"))
			}
			for _, ins := range snap.Insights {
				marker := insightStyle(ins.Type).Render("●")
				read := ""
				if ins.IsRead {
					read = cli.SubtleStyle.Render(" (read)")
				}
				fmt.Printf("  %s %s %s%s\n", marker,
					cli.SubtleStyle.Render(shortID(ins.ID)),
					cli.BoldStyle.Render(ins.Title), read)
				fmt.Printf("      %s\n", ins.Description)
			}

			if anomaliesFlag {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("  Unusual spending"))
				anomalies := led.Anomalies()
				if len(anomalies) == 0 {
					fmt.Println(cli.SubtleStyle.Render("    none detected"))
				}
				for _, a := range anomalies {
					fmt.Printf("    %s %s\n", cli.WarningStyle.Render("!"), a)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month YYYY-MM (default: current)")
	cmd.Flags().BoolVar(&anomaliesFlag, "anomalies", false, "also list statistically unusual expenses")
	cmd.Flags().StringVar(&readFlag, "mark-read", "", "mark an insight read by id instead of listing")
	return cmd
}

func tipsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "Show this week's saving tips",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(cli.TitleStyle.Render("Weekly Tips"))
			for _, tip := range insight.WeeklyTips() {
				fmt.Printf("  %s %s\n", cli.SuccessStyle.Render("·"), tip)
			}
		},
	}
}

func insightStyle(t model.InsightType) lipgloss.Style {
	switch t {
	case model.InsightWarning:
		return cli.WarningStyle
	case model.InsightAchievement:
		return cli.SuccessStyle
	case model.InsightTip:
		return cli.SubtleStyle
	default:
		return cli.BoldStyle
	}
}
