package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS expenses (
					id TEXT PRIMARY KEY,
					amount REAL NOT NULL,
					description TEXT NOT NULL,
					category TEXT NOT NULL,
					date DATETIME NOT NULL,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_expenses_date ON expenses(date)`,
				`CREATE INDEX idx_expenses_category ON expenses(category)`,

				`CREATE TABLE IF NOT EXISTS incomes (
					id TEXT PRIMARY KEY,
					amount REAL NOT NULL,
					source TEXT NOT NULL,
					date DATETIME NOT NULL,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_incomes_date ON incomes(date)`,

				`CREATE TABLE IF NOT EXISTS budgets (
					id TEXT PRIMARY KEY,
					category TEXT NOT NULL,
					month TEXT NOT NULL,
					limit_amount REAL NOT NULL,
					spent REAL NOT NULL DEFAULT 0,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_budgets_month ON budgets(month)`,
				`CREATE INDEX idx_budgets_category ON budgets(category)`,

				`CREATE TABLE IF NOT EXISTS goals (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					target_amount REAL NOT NULL,
					current_amount REAL NOT NULL DEFAULT 0,
					deadline DATETIME,
					color TEXT,
					icon TEXT,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS profile (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					email TEXT,
					monthly_income REAL NOT NULL DEFAULT 0,
					currency TEXT NOT NULL DEFAULT 'USD',
					onboarding_completed INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME NOT NULL,
					updated_at DATETIME NOT NULL
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add insights table",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS insights (
					id TEXT PRIMARY KEY,
					type TEXT NOT NULL,
					title TEXT NOT NULL,
					description TEXT NOT NULL,
					category TEXT,
					priority TEXT NOT NULL,
					is_read INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME NOT NULL
				)`,
				`CREATE INDEX idx_insights_type ON insights(type)`,
				`CREATE INDEX idx_insights_created_at ON insights(created_at)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version. It is
// idempotent; already-applied migrations are skipped.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var current int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		slog.Debug("Applied migration", "version", m.Version, "description", m.Description)
	}

	var final int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&final); err != nil {
		return fmt.Errorf("failed to verify schema version: %w", err)
	}
	if final != ExpectedSchemaVersion {
		return fmt.Errorf("schema version mismatch: have %d, want %d", final, ExpectedSchemaVersion)
	}

	return nil
}
