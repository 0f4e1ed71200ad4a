package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func testExpense(id string, amount float64, category model.Category, date time.Time) *model.Expense {
	now := time.Now().UTC().Truncate(time.Second)
	return &model.Expense{
		ID:          id,
		Amount:      amount,
		Description: "test expense " + id,
		Category:    category,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestExpenseCRUD(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	expense := testExpense("exp-1", 42.50, model.CategoryFood, date)

	if err := store.AddExpense(ctx, expense); err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}

	got, err := store.GetExpense(ctx, "exp-1")
	if err != nil {
		t.Fatalf("Failed to get expense: %v", err)
	}
	if got == nil {
		t.Fatal("Expected expense, got nil")
	}
	if got.Amount != 42.50 {
		t.Errorf("Amount = %v, want 42.50", got.Amount)
	}
	if got.Category != model.CategoryFood {
		t.Errorf("Category = %v, want food", got.Category)
	}
	if !got.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", got.Date, date)
	}

	// Put replaces the record under the same id.
	expense.Amount = 99.99
	if err := store.PutExpense(ctx, expense); err != nil {
		t.Fatalf("Failed to put expense: %v", err)
	}
	got, err = store.GetExpense(ctx, "exp-1")
	if err != nil {
		t.Fatalf("Failed to get expense after put: %v", err)
	}
	if got.Amount != 99.99 {
		t.Errorf("Amount after put = %v, want 99.99", got.Amount)
	}

	if err := store.DeleteExpense(ctx, "exp-1"); err != nil {
		t.Fatalf("Failed to delete expense: %v", err)
	}
	got, err = store.GetExpense(ctx, "exp-1")
	if err != nil {
		t.Fatalf("Get after delete returned error: %v", err)
	}
	if got != nil {
		t.Error("Expected nil after delete")
	}
}

func TestAddExpenseDuplicateID(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	expense := testExpense("dup-1", 10, model.CategoryOther, time.Now().UTC())
	if err := store.AddExpense(ctx, expense); err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}

	err := store.AddExpense(ctx, expense)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID, got %v", err)
	}
}

func TestDeleteExpenseIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	// Deleting a missing id is not an error.
	if err := store.DeleteExpense(ctx, "never-existed"); err != nil {
		t.Errorf("Delete of missing id returned error: %v", err)
	}
}

func TestGetExpensesByCategory(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, cat := range []model.Category{model.CategoryFood, model.CategoryFood, model.CategoryTransport} {
		e := testExpense(string(rune('a'+i)), 10, cat, base.AddDate(0, 0, i))
		if err := store.AddExpense(ctx, e); err != nil {
			t.Fatalf("Failed to add expense: %v", err)
		}
	}

	food, err := store.GetExpensesByCategory(ctx, model.CategoryFood)
	if err != nil {
		t.Fatalf("Failed to query by category: %v", err)
	}
	if len(food) != 2 {
		t.Errorf("Expected 2 food expenses, got %d", len(food))
	}
}

func TestGetExpensesByPeriod(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		date := time.Date(2025, 6, 10+i, 12, 0, 0, 0, time.UTC)
		e := testExpense(string(rune('a'+i)), 10, model.CategoryOther, date)
		if err := store.AddExpense(ctx, e); err != nil {
			t.Fatalf("Failed to add expense: %v", err)
		}
	}

	// Window is half-open: [start, end).
	start := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	got, err := store.GetExpensesByPeriod(ctx, start, end)
	if err != nil {
		t.Fatalf("Failed to query by period: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected 2 expenses in window, got %d", len(got))
	}
}

func TestGetAllExpensesOrder(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	older := testExpense("old", 10, model.CategoryOther, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := testExpense("new", 10, model.CategoryOther, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	if err := store.AddExpense(ctx, older); err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}
	if err := store.AddExpense(ctx, newer); err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}

	all, err := store.GetAllExpenses(ctx)
	if err != nil {
		t.Fatalf("Failed to get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 expenses, got %d", len(all))
	}
	if all[0].ID != "new" {
		t.Errorf("Expected newest first, got %s", all[0].ID)
	}
}

func TestClearExpenses(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.AddExpense(ctx, testExpense("x", 10, model.CategoryOther, time.Now().UTC())); err != nil {
		t.Fatalf("Failed to add expense: %v", err)
	}
	if err := store.ClearExpenses(ctx); err != nil {
		t.Fatalf("Failed to clear: %v", err)
	}
	all, err := store.GetAllExpenses(ctx)
	if err != nil {
		t.Fatalf("Failed to get all: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("Expected empty store, got %d expenses", len(all))
	}

	// Clearing an empty store is fine too.
	if err := store.ClearExpenses(ctx); err != nil {
		t.Errorf("Clear of empty store returned error: %v", err)
	}
}

func TestValidationErrors(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.AddExpense(ctx, nil); err == nil {
		t.Error("Expected error for nil expense")
	}
	if err := store.AddExpense(ctx, &model.Expense{Amount: 10}); err == nil {
		t.Error("Expected error for expense without id")
	}
	if err := store.AddExpense(ctx, testExpense("bad-cat", 10, model.Category("nonsense"), time.Now())); err == nil {
		t.Error("Expected error for invalid category")
	}
	if _, err := store.GetExpense(ctx, ""); err == nil {
		t.Error("Expected error for empty id")
	}
}
