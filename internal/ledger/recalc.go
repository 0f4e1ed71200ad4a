package ledger

import (
	"context"

	"github.com/pennywise-app/pennywise/internal/insight"
	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/stats"
)

// recalculateLocked recomputes every derived aggregate for the active
// month and publishes them into the state in one step. Callers must
// hold the write lock. Persistence of derived fields (budget spent,
// regenerated insights) is fire-and-forget: a failed write is logged
// and the computation continues from the in-memory record set.
func (l *Ledger) recalculateLocked(ctx context.Context) {
	monthly := stats.Compute(l.state.Month, l.state.Expenses, l.state.Incomes, l.state.Profile)

	changed := stats.ApplySpent(l.state.Budgets, monthly)
	for _, i := range changed {
		budget := l.state.Budgets[i]
		l.persist("update budget spent", func() error {
			return l.store.PutBudget(ctx, &budget)
		})
	}

	var monthBudgets []model.Budget
	for _, b := range l.state.Budgets {
		if b.Month == l.state.Month {
			monthBudgets = append(monthBudgets, b)
		}
	}
	adherence := stats.BudgetAdherence(monthBudgets)
	progress := stats.GoalProgress(l.state.Goals)
	health := insight.Health(monthly.TotalIncome, monthly.TotalExpenses, progress, adherence)

	currency := "USD"
	if l.state.Profile != nil && l.state.Profile.Currency != "" {
		currency = l.state.Profile.Currency
	}

	var monthExpenses []model.Expense
	for _, e := range l.state.Expenses {
		if l.state.Month.Contains(e.Date) {
			monthExpenses = append(monthExpenses, e)
		}
	}

	// Insights are replaced wholesale, never merged.
	generated := insight.Generate(monthly, monthExpenses, currency)
	ts := now()
	insights := make([]model.Insight, 0, len(generated))
	for _, g := range generated {
		g.ID = newID()
		g.CreatedAt = ts
		insights = append(insights, g)
	}
	l.state.Insights = insights
	l.persist("replace insights", func() error {
		return l.store.ReplaceInsights(ctx, insights)
	})

	l.state.Stats = monthly
	l.state.Health = health
}

// Anomalies flags statistical outliers among the active month's
// expenses.
func (l *Ledger) Anomalies() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var monthExpenses []model.Expense
	for _, e := range l.state.Expenses {
		if l.state.Month.Contains(e.Date) {
			monthExpenses = append(monthExpenses, e)
		}
	}
	return insight.DetectAnomalies(monthExpenses)
}
