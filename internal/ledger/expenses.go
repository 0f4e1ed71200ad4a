package ledger

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise/internal/categorize"
	"github.com/pennywise-app/pennywise/internal/model"
)

// ExpenseInput carries the caller-validated fields for a new expense.
// Callers pre-validate (amount > 0, non-empty description); the ledger
// does not re-check. An empty Category gets a keyword-derived guess.
type ExpenseInput struct {
	Date        time.Time
	Description string
	Category    model.Category
	Amount      float64
}

// ExpensePatch holds partial updates; nil fields are left unchanged.
type ExpensePatch struct {
	Date        *time.Time
	Description *string
	Category    *model.Category
	Amount      *float64
}

// AddExpense appends a new expense with a fresh id and timestamps,
// persists it, and recomputes the monthly aggregates.
func (l *Ledger) AddExpense(ctx context.Context, input ExpenseInput) model.Expense {
	category := input.Category
	if category == "" {
		category = categorize.Local(input.Description)
	}

	ts := now()
	expense := model.Expense{
		ID:          newID(),
		Amount:      input.Amount,
		Description: input.Description,
		Category:    category,
		Date:        input.Date,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	l.mu.Lock()
	l.state.Expenses = append([]model.Expense{expense}, l.state.Expenses...)
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("add expense", func() error {
		return l.store.AddExpense(ctx, &expense)
	})
	l.notify(snap)
	return expense
}

// UpdateExpense merges a patch into an existing expense and bumps its
// UpdatedAt. Updating a missing id is a silent no-op.
func (l *Ledger) UpdateExpense(ctx context.Context, id string, patch ExpensePatch) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Expenses {
		if l.state.Expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}

	e := &l.state.Expenses[idx]
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Category != nil {
		e.Category = *patch.Category
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	e.UpdatedAt = now()
	updated := *e

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("update expense", func() error {
		return l.store.PutExpense(ctx, &updated)
	})
	l.notify(snap)
}

// DeleteExpense removes an expense by id; missing ids are a no-op.
func (l *Ledger) DeleteExpense(ctx context.Context, id string) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Expenses {
		if l.state.Expenses[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	l.state.Expenses = append(l.state.Expenses[:idx], l.state.Expenses[idx+1:]...)

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("delete expense", func() error {
		return l.store.DeleteExpense(ctx, id)
	})
	l.notify(snap)
}

// IncomeInput carries the caller-validated fields for a new income.
type IncomeInput struct {
	Date   time.Time
	Source string
	Amount float64
}

// IncomePatch holds partial updates; nil fields are left unchanged.
type IncomePatch struct {
	Date   *time.Time
	Source *string
	Amount *float64
}

// AddIncome appends a new income record and recomputes aggregates.
func (l *Ledger) AddIncome(ctx context.Context, input IncomeInput) model.Income {
	ts := now()
	income := model.Income{
		ID:        newID(),
		Amount:    input.Amount,
		Source:    input.Source,
		Date:      input.Date,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	l.mu.Lock()
	l.state.Incomes = append([]model.Income{income}, l.state.Incomes...)
	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("add income", func() error {
		return l.store.AddIncome(ctx, &income)
	})
	l.notify(snap)
	return income
}

// UpdateIncome merges a patch into an existing income record.
func (l *Ledger) UpdateIncome(ctx context.Context, id string, patch IncomePatch) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Incomes {
		if l.state.Incomes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}

	in := &l.state.Incomes[idx]
	if patch.Amount != nil {
		in.Amount = *patch.Amount
	}
	if patch.Source != nil {
		in.Source = *patch.Source
	}
	if patch.Date != nil {
		in.Date = *patch.Date
	}
	in.UpdatedAt = now()
	updated := *in

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("update income", func() error {
		return l.store.PutIncome(ctx, &updated)
	})
	l.notify(snap)
}

// DeleteIncome removes an income record by id; missing ids are a no-op.
func (l *Ledger) DeleteIncome(ctx context.Context, id string) {
	l.mu.Lock()
	idx := -1
	for i := range l.state.Incomes {
		if l.state.Incomes[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return
	}
	l.state.Incomes = append(l.state.Incomes[:idx], l.state.Incomes[idx+1:]...)

	l.recalculateLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.persist("delete income", func() error {
		return l.store.DeleteIncome(ctx, id)
	})
	l.notify(snap)
}
