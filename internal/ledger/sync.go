package ledger

import (
	"context"

	"github.com/pennywise-app/pennywise/internal/model"
	"github.com/pennywise-app/pennywise/internal/service"
)

// ReplaceAll swaps the local record collections for a remote snapshot:
// clear-then-insert, no merging. Insights are not part of the snapshot;
// they are regenerated from the new records by the recalculation.
func (l *Ledger) ReplaceAll(ctx context.Context, expenses []model.Expense, incomes []model.Income, budgets []model.Budget, goals []model.SavingsGoal, profile *model.UserProfile) error {
	for _, clear := range []func(context.Context) error{
		l.store.ClearExpenses,
		l.store.ClearIncomes,
		l.store.ClearBudgets,
		l.store.ClearGoals,
		l.store.ClearProfile,
	} {
		if err := clear(ctx); err != nil {
			return err
		}
	}

	for i := range expenses {
		if err := l.store.PutExpense(ctx, &expenses[i]); err != nil {
			return err
		}
	}
	for i := range incomes {
		if err := l.store.PutIncome(ctx, &incomes[i]); err != nil {
			return err
		}
	}
	for i := range budgets {
		if err := l.store.PutBudget(ctx, &budgets[i]); err != nil {
			return err
		}
	}
	for i := range goals {
		if err := l.store.PutGoal(ctx, &goals[i]); err != nil {
			return err
		}
	}
	if profile != nil {
		if err := l.store.SaveProfile(ctx, profile); err != nil {
			return err
		}
	}

	l.mu.Lock()
	l.state.Expenses = append([]model.Expense(nil), expenses...)
	l.state.Incomes = append([]model.Income(nil), incomes...)
	l.state.Budgets = append([]model.Budget(nil), budgets...)
	l.state.Goals = append([]model.SavingsGoal(nil), goals...)
	l.state.Profile = profile
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
	return nil
}

// RecordSyncResult stores the outcome of the last sync attempt so the
// caller can surface the error as a transient, dismissible message.
func (l *Ledger) RecordSyncResult(result service.SyncResult) {
	l.mu.Lock()
	if result.Success {
		l.state.LastSync = now()
		l.state.SyncError = ""
	} else {
		l.state.SyncError = result.Error
	}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
}
