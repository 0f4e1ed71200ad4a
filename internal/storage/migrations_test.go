package storage

import (
	"context"
	"testing"
)

func TestMigrateIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// createTestStorage already migrated; a second run is a no-op.
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Second migrate returned error: %v", err)
	}

	var version int
	if err := store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("Failed to read user_version: %v", err)
	}
	if version != ExpectedSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, ExpectedSchemaVersion)
	}
}

func TestMigrateCreatesAllTables(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for _, table := range []string{"expenses", "incomes", "budgets", "goals", "profile", "insights"} {
		var name string
		err := store.db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s missing: %v", table, err)
		}
	}
}
