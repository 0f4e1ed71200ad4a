package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pennywise-app/pennywise/internal/chat"
	"github.com/pennywise-app/pennywise/internal/cli"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a budgeting question",
		Long: `Ask a freeform budgeting question. With a configured API key the
question goes to a hosted model; without one, a built-in set of
canned guidance answers common questions offline.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			completer := chat.New(chat.Config{
				APIKey:  viper.GetString("chat.api_key"),
				BaseURL: viper.GetString("chat.base_url"),
				Model:   viper.GetString("chat.model"),
				Timeout: viper.GetDuration("chat.timeout"),
			}, slog.Default())

			answer := completer.Complete(ctx, joinWords(args))
			fmt.Println(cli.TitleStyle.Render("Pennywise says"))
			fmt.Println(answer)
			return nil
		},
	}
}
