package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pennywise-app/pennywise/internal/cli"
	"github.com/pennywise-app/pennywise/internal/ledger"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
	}
	cmd.AddCommand(profileSetupCmd())
	cmd.AddCommand(profileShowCmd())
	return cmd
}

func profileSetupCmd() *cobra.Command {
	var (
		nameFlag     string
		emailFlag    string
		currencyFlag string
		incomeFlag   float64
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or update the profile",
		Long: `Create or update the device profile. The monthly income set here is
the baseline used for statistics in months without recorded income.
Running setup completes onboarding.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if nameFlag == "" {
				return fmt.Errorf("--name is required")
			}
			if incomeFlag < 0 {
				return fmt.Errorf("--income must not be negative")
			}

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			profile := led.SaveProfile(ctx, ledger.ProfileInput{
				Name:          nameFlag,
				Email:         emailFlag,
				Currency:      currencyFlag,
				MonthlyIncome: incomeFlag,
			})
			led.CompleteOnboarding(ctx)

			fmt.Printf("%s profile for %s (%s, %s/month)\n",
				cli.SuccessStyle.Render("Saved"),
				profile.Name, profile.Currency,
				cli.Amount(profile.Currency, profile.MonthlyIncome))
			return nil
		},
	}

	cmd.Flags().StringVar(&nameFlag, "name", "", "display name (required)")
	cmd.Flags().StringVar(&emailFlag, "email", "", "email address")
	cmd.Flags().StringVar(&currencyFlag, "currency", "USD", "currency code")
	cmd.Flags().Float64Var(&incomeFlag, "income", 0, "baseline monthly income")
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, store, err := openLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close() //nolint:errcheck

			snap := led.Snapshot()
			if snap.Profile == nil {
				fmt.Println(cli.SubtleStyle.Render("no profile; run 'pennywise profile setup'"))
				return nil
			}

			p := snap.Profile
			fmt.Println(cli.TitleStyle.Render("Profile"))
			fmt.Printf("  Name:     %s\n", p.Name)
			if p.Email != "" {
				fmt.Printf("  Email:    %s\n", p.Email)
			}
			fmt.Printf("  Currency: %s\n", p.Currency)
			fmt.Printf("  Income:   %s/month\n", cli.Amount(p.Currency, p.MonthlyIncome))
			if !p.OnboardingCompleted {
				fmt.Println(cli.WarningStyle.Render("  onboarding not completed"))
			}
			return nil
		},
	}
}
