// Package stats recomputes the derived monthly aggregates: totals,
// per-category sums, budget adherence, and goal progress. All functions
// are pure; persistence of derived fields is the caller's concern.
package stats

import (
	"math"

	"github.com/pennywise-app/pennywise/internal/model"
)

// Compute builds the MonthlyStats for one calendar month from the full
// record set. Records outside the month window are ignored. When the
// month has no income records, profile.MonthlyIncome is used as an
// estimate; that fallback is an approximation, not a real income
// record, and disappears as soon as an income is logged.
func Compute(month model.Month, expenses []model.Expense, incomes []model.Income, profile *model.UserProfile) model.MonthlyStats {
	byCategory := make(map[model.Category]float64, len(model.Categories()))
	for _, c := range model.Categories() {
		byCategory[c] = 0
	}

	var totalExpenses float64
	for _, e := range expenses {
		if !month.Contains(e.Date) {
			continue
		}
		totalExpenses += e.Amount
		byCategory[e.Category] += e.Amount
	}

	var totalIncome float64
	var haveIncome bool
	for _, in := range incomes {
		if !month.Contains(in.Date) {
			continue
		}
		totalIncome += in.Amount
		haveIncome = true
	}
	if !haveIncome && profile != nil {
		totalIncome = profile.MonthlyIncome
	}

	return model.MonthlyStats{
		Month:         month,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		Savings:       totalIncome - totalExpenses,
		ByCategory:    byCategory,
	}
}

// ApplySpent overwrites each budget's derived Spent field from the
// month's per-category sums. Budgets outside the stats month are left
// untouched. Returns the indexes of the budgets that changed so the
// caller can persist exactly those.
func ApplySpent(budgets []model.Budget, stats model.MonthlyStats) []int {
	var changed []int
	for i := range budgets {
		if budgets[i].Month != stats.Month {
			continue
		}
		spent := stats.ByCategory[budgets[i].Category]
		if budgets[i].Spent != spent {
			budgets[i].Spent = spent
			changed = append(changed, i)
		}
	}
	return changed
}

// BudgetAdherence scores limit compliance for one month's budgets. Each
// budget contributes 100 unless it is over its limit, in which case the
// contribution is reduced by the overage percentage, floored at zero;
// the result is the mean contribution. With no budgets the score is a
// full 100. A budget at or under its limit never scores above one that
// is exactly at its limit; this shape is kept deliberately (see
// DESIGN.md).
func BudgetAdherence(budgets []model.Budget) float64 {
	if len(budgets) == 0 {
		return 100
	}

	var total float64
	for _, b := range budgets {
		total += adherenceContribution(b)
	}
	return total / float64(len(budgets))
}

func adherenceContribution(b model.Budget) float64 {
	if b.Limit <= 0 {
		if b.Spent <= 0 {
			return 100
		}
		return 0
	}

	overage := b.Spent/b.Limit*100 - 100
	return 100 - math.Min(100, math.Max(0, overage))
}

// GoalProgress is the mean completion percentage across all goals,
// unclamped above 100. No goals means no progress credit.
func GoalProgress(goals []model.SavingsGoal) float64 {
	if len(goals) == 0 {
		return 0
	}

	var total float64
	for _, g := range goals {
		total += g.Progress()
	}
	return total / float64(len(goals))
}
