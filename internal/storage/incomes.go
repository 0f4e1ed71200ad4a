package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// AddIncome inserts a new income record, failing on a duplicate id.
func (s *SQLiteStorage) AddIncome(ctx context.Context, income *model.Income) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateIncome(income); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO incomes (id, amount, source, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, income.ID, income.Amount, income.Source, income.Date, income.CreatedAt, income.UpdatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: income %s", ErrDuplicateID, income.ID)
		}
		return fmt.Errorf("failed to insert income: %w", err)
	}
	return nil
}

// PutIncome inserts or overwrites an income record by id.
func (s *SQLiteStorage) PutIncome(ctx context.Context, income *model.Income) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateIncome(income); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO incomes (id, amount, source, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, income.ID, income.Amount, income.Source, income.Date, income.CreatedAt, income.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert income: %w", err)
	}
	return nil
}

// GetIncome returns the income record with the given id, or nil when absent.
func (s *SQLiteStorage) GetIncome(ctx context.Context, id string) (*model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, source, date, created_at, updated_at
		FROM incomes WHERE id = ?
	`, id)

	income, err := scanIncome(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get income: %w", err)
	}
	return income, nil
}

// GetAllIncomes returns every income record, most recent first.
func (s *SQLiteStorage) GetAllIncomes(ctx context.Context) ([]model.Income, error) {
	return s.queryIncomes(ctx, `
		SELECT id, amount, source, date, created_at, updated_at
		FROM incomes ORDER BY date DESC
	`)
}

// GetIncomesByPeriod returns income records with start <= date < end.
func (s *SQLiteStorage) GetIncomesByPeriod(ctx context.Context, start, end time.Time) ([]model.Income, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %v .. %v", ErrInvalidDateRange, start, end)
	}
	return s.queryIncomes(ctx, `
		SELECT id, amount, source, date, created_at, updated_at
		FROM incomes WHERE date >= ? AND date < ? ORDER BY date DESC
	`, start, end)
}

// DeleteIncome removes an income record. Deleting a missing id is a no-op.
func (s *SQLiteStorage) DeleteIncome(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM incomes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	return nil
}

// ClearIncomes wipes the income collection.
func (s *SQLiteStorage) ClearIncomes(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM incomes`); err != nil {
		return fmt.Errorf("failed to clear incomes: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) queryIncomes(ctx context.Context, query string, args ...any) ([]model.Income, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var incomes []model.Income
	for rows.Next() {
		income, scanErr := scanIncome(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan income: %w", scanErr)
		}
		incomes = append(incomes, *income)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incomes: %w", err)
	}
	return incomes, nil
}

func scanIncome(row rowScanner) (*model.Income, error) {
	var income model.Income
	if err := row.Scan(&income.ID, &income.Amount, &income.Source,
		&income.Date, &income.CreatedAt, &income.UpdatedAt); err != nil {
		return nil, err
	}
	return &income, nil
}
