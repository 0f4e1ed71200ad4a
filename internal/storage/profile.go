package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pennywise-app/pennywise/internal/model"
)

// SaveProfile upserts the profile record. Exactly one profile is
// expected per database; reads always take the oldest row.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile *model.UserProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateProfile(profile); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO profile (id, name, email, monthly_income, currency, onboarding_completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, profile.ID, profile.Name, profile.Email, profile.MonthlyIncome, profile.Currency,
		profile.OnboardingCompleted, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile returns the profile record, or nil when none exists yet.
func (s *SQLiteStorage) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, monthly_income, currency, onboarding_completed, created_at, updated_at
		FROM profile ORDER BY created_at LIMIT 1
	`)

	var profile model.UserProfile
	err := row.Scan(&profile.ID, &profile.Name, &profile.Email, &profile.MonthlyIncome,
		&profile.Currency, &profile.OnboardingCompleted, &profile.CreatedAt, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// ClearProfile removes the profile record.
func (s *SQLiteStorage) ClearProfile(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profile`); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}
