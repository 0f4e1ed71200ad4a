package ledger

import (
	"context"

	"github.com/pennywise-app/pennywise/internal/model"
)

// SetBudget upserts the budget for a (category, month) pair. One budget
// per pair is enforced here by lookup, not by a storage constraint: an
// existing budget gets its limit replaced, otherwise a new record is
// created. Spent is derived and never set by callers.
func (l *Ledger) SetBudget(ctx context.Context, category model.Category, month model.Month, limit float64) model.Budget {
	ts := now()

	l.mu.Lock()
	idx := -1
	for i := range l.state.Budgets {
		if l.state.Budgets[i].Category == category && l.state.Budgets[i].Month == month {
			idx = i
			break
		}
	}

	var budget model.Budget
	if idx >= 0 {
		l.state.Budgets[idx].Limit = limit
		l.state.Budgets[idx].UpdatedAt = ts
		budget = l.state.Budgets[idx]
	} else {
		budget = model.Budget{
			ID:        newID(),
			Category:  category,
			Month:     month,
			Limit:     limit,
			CreatedAt: ts,
			UpdatedAt: ts,
		}
		l.state.Budgets = append(l.state.Budgets, budget)
	}

	l.recalculateLocked(ctx)
	// Spent may have been filled in by the recalculation.
	for i := range l.state.Budgets {
		if l.state.Budgets[i].ID == budget.ID {
			budget = l.state.Budgets[i]
			break
		}
	}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("set budget", func() error {
		return l.store.PutBudget(ctx, &budget)
	})
	l.notify(snap)
	return budget
}

// DeleteBudget removes a budget by id; missing ids are a no-op.
func (l *Ledger) DeleteBudget(ctx context.Context, id string) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Budgets {
		if l.state.Budgets[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	l.state.Budgets = append(l.state.Budgets[:idx], l.state.Budgets[idx+1:]...)

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("delete budget", func() error {
		return l.store.DeleteBudget(ctx, id)
	})
	l.notify(snap)
}
