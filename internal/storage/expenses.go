package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// AddExpense inserts a new expense. It fails with ErrDuplicateID when a
// record with the same id already exists.
func (s *SQLiteStorage) AddExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, amount, description, category, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, expense.ID, expense.Amount, expense.Description, string(expense.Category),
		expense.Date, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: expense %s", ErrDuplicateID, expense.ID)
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// PutExpense inserts or overwrites an expense by id.
func (s *SQLiteStorage) PutExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO expenses (id, amount, description, category, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, expense.ID, expense.Amount, expense.Description, string(expense.Category),
		expense.Date, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert expense: %w", err)
	}
	return nil
}

// GetExpense returns the expense with the given id, or nil when absent.
func (s *SQLiteStorage) GetExpense(ctx context.Context, id string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, description, category, date, created_at, updated_at
		FROM expenses WHERE id = ?
	`, id)

	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// GetAllExpenses returns every expense, most recent first.
func (s *SQLiteStorage) GetAllExpenses(ctx context.Context) ([]model.Expense, error) {
	return s.queryExpenses(ctx, `
		SELECT id, amount, description, category, date, created_at, updated_at
		FROM expenses ORDER BY date DESC
	`)
}

// GetExpensesByCategory returns every expense with the given category.
func (s *SQLiteStorage) GetExpensesByCategory(ctx context.Context, category model.Category) ([]model.Expense, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	return s.queryExpenses(ctx, `
		SELECT id, amount, description, category, date, created_at, updated_at
		FROM expenses WHERE category = ? ORDER BY date DESC
	`, string(category))
}

// GetExpensesByPeriod returns expenses with start <= date < end.
func (s *SQLiteStorage) GetExpensesByPeriod(ctx context.Context, start, end time.Time) ([]model.Expense, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %v .. %v", ErrInvalidDateRange, start, end)
	}
	return s.queryExpenses(ctx, `
		SELECT id, amount, description, category, date, created_at, updated_at
		FROM expenses WHERE date >= ? AND date < ? ORDER BY date DESC
	`, start, end)
}

// DeleteExpense removes an expense. Deleting a missing id is a no-op.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// ClearExpenses wipes the expense collection.
func (s *SQLiteStorage) ClearExpenses(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) queryExpenses(ctx context.Context, query string, args ...any) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var expenses []model.Expense
	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", scanErr)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*model.Expense, error) {
	var expense model.Expense
	var category string
	if err := row.Scan(&expense.ID, &expense.Amount, &expense.Description, &category,
		&expense.Date, &expense.CreatedAt, &expense.UpdatedAt); err != nil {
		return nil, err
	}
	expense.Category = model.Category(category)
	return &expense, nil
}
