package insight

import (
	"fmt"

	"github.com/pennywise-app/pennywise/internal/model"
)

// Generate runs the insight rule cascade over one month's aggregates
// and raw expenses, returning structured insights in rule order. Each
// rule is independently gated: when its data is absent the rule is
// skipped, never replaced with a placeholder.
func Generate(stats model.MonthlyStats, expenses []model.Expense, currency string) []model.Insight {
	var out []model.Insight

	// Rule 1: savings-rate commentary, always present.
	out = append(out, savingsInsight(stats))

	// Rule 2: dominant spending category, only with positive spend.
	if in, ok := topCategoryInsight(stats, currency); ok {
		out = append(out, in)
	}

	// Rule 3: outlier expense above 3x the mean for the period.
	if in, ok := outlierInsight(expenses, currency); ok {
		out = append(out, in)
	}

	// Rule 4: entertainment vs food comparison.
	if stats.ByCategory[model.CategoryEntertainment] > stats.ByCategory[model.CategoryFood] {
		out = append(out, model.Insight{
			Type:        model.InsightTip,
			Title:       "Entertainment outpacing food",
			Description: "You spent more on entertainment than on food this month. Worth a look if you're trying to trim costs.",
			Category:    model.CategoryEntertainment,
			Priority:    model.PriorityLow,
		})
	}

	// Rule 5: subscriptions reminder.
	if stats.ByCategory[model.CategorySubscriptions] > 0 {
		out = append(out, model.Insight{
			Type: model.InsightTip,
			Title: "Review your subscriptions",
			Description: fmt.Sprintf("Subscriptions cost you %s this month. Cancel the ones you no longer use.",
				formatAmount(currency, stats.ByCategory[model.CategorySubscriptions])),
			Category: model.CategorySubscriptions,
			Priority: model.PriorityLow,
		})
	}

	return out
}

// Messages flattens generated insights to their natural-language form.
func Messages(insights []model.Insight) []string {
	msgs := make([]string, 0, len(insights))
	for _, in := range insights {
		msgs = append(msgs, in.Description)
	}
	return msgs
}

func savingsInsight(stats model.MonthlyStats) model.Insight {
	var rate float64
	if stats.TotalIncome > 0 {
		rate = stats.Savings / stats.TotalIncome * 100
	}

	switch {
	case stats.TotalIncome > 0 && rate >= 20:
		return model.Insight{
			Type:        model.InsightAchievement,
			Title:       "Strong savings rate",
			Description: fmt.Sprintf("You're saving %.0f%% of your income this month. Excellent work, keep it up!", rate),
			Priority:    model.PriorityLow,
		}
	case stats.TotalIncome > 0 && rate >= 10:
		return model.Insight{
			Type:        model.InsightTip,
			Title:       "Decent savings rate",
			Description: fmt.Sprintf("You're saving %.0f%% of your income. Nudging that above 20%% would put you in great shape.", rate),
			Priority:    model.PriorityLow,
		}
	case stats.TotalIncome > 0 && rate > 0:
		return model.Insight{
			Type:        model.InsightWarning,
			Title:       "Thin savings margin",
			Description: fmt.Sprintf("You're only saving %.0f%% of your income this month. Small recurring cuts can make a big difference.", rate),
			Priority:    model.PriorityMedium,
		}
	default:
		return model.Insight{
			Type:        model.InsightWarning,
			Title:       "Spending exceeds income",
			Description: "You spent more than you earned this month. Review your biggest categories and set a budget.",
			Priority:    model.PriorityHigh,
		}
	}
}

func topCategoryInsight(stats model.MonthlyStats, currency string) (model.Insight, bool) {
	var top model.Category
	var topAmount float64
	for _, c := range model.Categories() {
		if stats.ByCategory[c] > topAmount {
			top = c
			topAmount = stats.ByCategory[c]
		}
	}
	if topAmount <= 0 {
		return model.Insight{}, false
	}

	share := 0.0
	if stats.TotalExpenses > 0 {
		share = topAmount / stats.TotalExpenses * 100
	}

	if share > 40 {
		return model.Insight{
			Type:  model.InsightWarning,
			Title: fmt.Sprintf("%s dominates your spending", top.DisplayName()),
			Description: fmt.Sprintf("%s accounts for %.0f%% of this month's spending (%s). That's a big share for one category.",
				top.DisplayName(), share, formatAmount(currency, topAmount)),
			Category: top,
			Priority: model.PriorityMedium,
		}, true
	}

	return model.Insight{
		Type:  model.InsightPattern,
		Title: fmt.Sprintf("Top category: %s", top.DisplayName()),
		Description: fmt.Sprintf("Your biggest spending category this month is %s at %s.",
			top.DisplayName(), formatAmount(currency, topAmount)),
		Category: top,
		Priority: model.PriorityLow,
	}, true
}

func outlierInsight(expenses []model.Expense, currency string) (model.Insight, bool) {
	if len(expenses) == 0 {
		return model.Insight{}, false
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	mean := total / float64(len(expenses))

	for _, e := range expenses {
		if e.Amount > mean*3 {
			return model.Insight{
				Type:  model.InsightPattern,
				Title: "Unusually large expense",
				Description: fmt.Sprintf("%q (%s) is more than three times your average expense this month.",
					e.Description, formatAmount(currency, e.Amount)),
				Category: e.Category,
				Priority: model.PriorityMedium,
			}, true
		}
	}
	return model.Insight{}, false
}

func formatAmount(currency string, amount float64) string {
	switch currency {
	case "USD", "":
		return fmt.Sprintf("$%.2f", amount)
	case "EUR":
		return fmt.Sprintf("€%.2f", amount)
	case "GBP":
		return fmt.Sprintf("£%.2f", amount)
	default:
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
}
