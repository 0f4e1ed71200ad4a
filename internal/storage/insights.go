package storage

import (
	"context"
	"fmt"

	"github.com/pennywise-app/pennywise/internal/model"
)

// ReplaceInsights swaps the whole insight collection for the given set.
// Insights are regenerated wholesale on every recalculation, so the
// replacement is clear-then-insert inside one transaction.
func (s *SQLiteStorage) ReplaceInsights(ctx context.Context, insights []model.Insight) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM insights`); err != nil {
		return fmt.Errorf("failed to clear insights: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO insights (id, type, title, description, category, priority, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insight insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range insights {
		in := &insights[i]
		if err := validateInsight(in); err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, in.ID, string(in.Type), in.Title, in.Description,
			string(in.Category), string(in.Priority), in.IsRead, in.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert insight: %w", err)
		}
	}

	return tx.Commit()
}

// PutInsight inserts or overwrites a single insight, used to persist
// read-state changes on dismiss.
func (s *SQLiteStorage) PutInsight(ctx context.Context, insight *model.Insight) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateInsight(insight); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO insights (id, type, title, description, category, priority, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, insight.ID, string(insight.Type), insight.Title, insight.Description,
		string(insight.Category), string(insight.Priority), insight.IsRead, insight.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert insight: %w", err)
	}
	return nil
}

// GetAllInsights returns every insight, newest first.
func (s *SQLiteStorage) GetAllInsights(ctx context.Context) ([]model.Insight, error) {
	return s.queryInsights(ctx, `
		SELECT id, type, title, description, category, priority, is_read, created_at
		FROM insights ORDER BY created_at DESC
	`)
}

// GetInsightsByType returns every insight of the given type.
func (s *SQLiteStorage) GetInsightsByType(ctx context.Context, insightType model.InsightType) ([]model.Insight, error) {
	return s.queryInsights(ctx, `
		SELECT id, type, title, description, category, priority, is_read, created_at
		FROM insights WHERE type = ? ORDER BY created_at DESC
	`, string(insightType))
}

// ClearInsights wipes the insight collection.
func (s *SQLiteStorage) ClearInsights(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM insights`); err != nil {
		return fmt.Errorf("failed to clear insights: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) queryInsights(ctx context.Context, query string, args ...any) ([]model.Insight, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query insights: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var insights []model.Insight
	for rows.Next() {
		var in model.Insight
		var insightType, category, priority string
		if err := rows.Scan(&in.ID, &insightType, &in.Title, &in.Description,
			&category, &priority, &in.IsRead, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan insight: %w", err)
		}
		in.Type = model.InsightType(insightType)
		in.Category = model.Category(category)
		in.Priority = model.InsightPriority(priority)
		insights = append(insights, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate insights: %w", err)
	}
	return insights, nil
}
