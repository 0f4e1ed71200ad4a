package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pennywise-app/pennywise/internal/model"
)

// AddBudget inserts a new budget, failing on a duplicate id. One budget
// per (category, month) is enforced by lookup in the state container,
// not by a storage constraint.
func (s *SQLiteStorage) AddBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (id, category, month, limit_amount, spent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, budget.ID, string(budget.Category), budget.Month.String(), budget.Limit, budget.Spent,
		budget.CreatedAt, budget.UpdatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: budget %s", ErrDuplicateID, budget.ID)
		}
		return fmt.Errorf("failed to insert budget: %w", err)
	}
	return nil
}

// PutBudget inserts or overwrites a budget by id.
func (s *SQLiteStorage) PutBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO budgets (id, category, month, limit_amount, spent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, budget.ID, string(budget.Category), budget.Month.String(), budget.Limit, budget.Spent,
		budget.CreatedAt, budget.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetBudget returns the budget with the given id, or nil when absent.
func (s *SQLiteStorage) GetBudget(ctx context.Context, id string) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, category, month, limit_amount, spent, created_at, updated_at
		FROM budgets WHERE id = ?
	`, id)

	budget, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// GetAllBudgets returns every budget.
func (s *SQLiteStorage) GetAllBudgets(ctx context.Context) ([]model.Budget, error) {
	return s.queryBudgets(ctx, `
		SELECT id, category, month, limit_amount, spent, created_at, updated_at
		FROM budgets ORDER BY month DESC, category
	`)
}

// GetBudgetsByMonth returns every budget for the given month.
func (s *SQLiteStorage) GetBudgetsByMonth(ctx context.Context, month model.Month) ([]model.Budget, error) {
	return s.queryBudgets(ctx, `
		SELECT id, category, month, limit_amount, spent, created_at, updated_at
		FROM budgets WHERE month = ? ORDER BY category
	`, month.String())
}

// GetBudgetByMonthCategory returns the budget for a (month, category)
// pair, or nil when none exists.
func (s *SQLiteStorage) GetBudgetByMonthCategory(ctx context.Context, month model.Month, category model.Category) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, category, month, limit_amount, spent, created_at, updated_at
		FROM budgets WHERE month = ? AND category = ?
	`, month.String(), string(category))

	budget, err := scanBudget(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// DeleteBudget removes a budget. Deleting a missing id is a no-op.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

// ClearBudgets wipes the budget collection.
func (s *SQLiteStorage) ClearBudgets(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets`); err != nil {
		return fmt.Errorf("failed to clear budgets: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) queryBudgets(ctx context.Context, query string, args ...any) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		budget, scanErr := scanBudget(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", scanErr)
		}
		budgets = append(budgets, *budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}

func scanBudget(row rowScanner) (*model.Budget, error) {
	var budget model.Budget
	var category, month string
	if err := row.Scan(&budget.ID, &category, &month, &budget.Limit, &budget.Spent,
		&budget.CreatedAt, &budget.UpdatedAt); err != nil {
		return nil, err
	}
	budget.Category = model.Category(category)
	m, err := model.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	budget.Month = m
	return &budget, nil
}
