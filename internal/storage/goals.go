package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// AddGoal inserts a new savings goal, failing on a duplicate id.
func (s *SQLiteStorage) AddGoal(ctx context.Context, goal *model.SavingsGoal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, name, target_amount, current_amount, deadline, color, icon, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, goal.ID, goal.Name, goal.TargetAmount, goal.CurrentAmount, nullableTime(goal.Deadline),
		goal.Color, goal.Icon, goal.CreatedAt, goal.UpdatedAt)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: goal %s", ErrDuplicateID, goal.ID)
		}
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// PutGoal inserts or overwrites a savings goal by id.
func (s *SQLiteStorage) PutGoal(ctx context.Context, goal *model.SavingsGoal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO goals (id, name, target_amount, current_amount, deadline, color, icon, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, goal.ID, goal.Name, goal.TargetAmount, goal.CurrentAmount, nullableTime(goal.Deadline),
		goal.Color, goal.Icon, goal.CreatedAt, goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert goal: %w", err)
	}
	return nil
}

// GetGoal returns the savings goal with the given id, or nil when absent.
func (s *SQLiteStorage) GetGoal(ctx context.Context, id string) (*model.SavingsGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, target_amount, current_amount, deadline, color, icon, created_at, updated_at
		FROM goals WHERE id = ?
	`, id)

	goal, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

// GetAllGoals returns every savings goal, oldest first.
func (s *SQLiteStorage) GetAllGoals(ctx context.Context) ([]model.SavingsGoal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, target_amount, current_amount, deadline, color, icon, created_at, updated_at
		FROM goals ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.SavingsGoal
	for rows.Next() {
		goal, scanErr := scanGoal(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", scanErr)
		}
		goals = append(goals, *goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}
	return goals, nil
}

// DeleteGoal removes a savings goal. Deleting a missing id is a no-op.
func (s *SQLiteStorage) DeleteGoal(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	return nil
}

// ClearGoals wipes the goal collection.
func (s *SQLiteStorage) ClearGoals(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("failed to clear goals: %w", err)
	}
	return nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func scanGoal(row rowScanner) (*model.SavingsGoal, error) {
	var goal model.SavingsGoal
	var deadline sql.NullTime
	if err := row.Scan(&goal.ID, &goal.Name, &goal.TargetAmount, &goal.CurrentAmount,
		&deadline, &goal.Color, &goal.Icon, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
		return nil, err
	}
	if deadline.Valid {
		d := deadline.Time
		goal.Deadline = &d
	}
	return &goal, nil
}
