// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/pennywise-app/pennywise/internal/model"
)

// Storage defines the contract for the persistence layer. Not-found
// reads return nil or an empty slice, never an error.
type Storage interface {
	// Expense operations
	AddExpense(ctx context.Context, expense *model.Expense) error
	PutExpense(ctx context.Context, expense *model.Expense) error
	GetExpense(ctx context.Context, id string) (*model.Expense, error)
	GetAllExpenses(ctx context.Context) ([]model.Expense, error)
	GetExpensesByCategory(ctx context.Context, category model.Category) ([]model.Expense, error)
	GetExpensesByPeriod(ctx context.Context, start, end time.Time) ([]model.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	ClearExpenses(ctx context.Context) error

	// Income operations
	AddIncome(ctx context.Context, income *model.Income) error
	PutIncome(ctx context.Context, income *model.Income) error
	GetIncome(ctx context.Context, id string) (*model.Income, error)
	GetAllIncomes(ctx context.Context) ([]model.Income, error)
	GetIncomesByPeriod(ctx context.Context, start, end time.Time) ([]model.Income, error)
	DeleteIncome(ctx context.Context, id string) error
	ClearIncomes(ctx context.Context) error

	// Budget operations
	AddBudget(ctx context.Context, budget *model.Budget) error
	PutBudget(ctx context.Context, budget *model.Budget) error
	GetBudget(ctx context.Context, id string) (*model.Budget, error)
	GetAllBudgets(ctx context.Context) ([]model.Budget, error)
	GetBudgetsByMonth(ctx context.Context, month model.Month) ([]model.Budget, error)
	GetBudgetByMonthCategory(ctx context.Context, month model.Month, category model.Category) (*model.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
	ClearBudgets(ctx context.Context) error

	// Savings goal operations
	AddGoal(ctx context.Context, goal *model.SavingsGoal) error
	PutGoal(ctx context.Context, goal *model.SavingsGoal) error
	GetGoal(ctx context.Context, id string) (*model.SavingsGoal, error)
	GetAllGoals(ctx context.Context) ([]model.SavingsGoal, error)
	DeleteGoal(ctx context.Context, id string) error
	ClearGoals(ctx context.Context) error

	// Insight operations
	ReplaceInsights(ctx context.Context, insights []model.Insight) error
	GetAllInsights(ctx context.Context) ([]model.Insight, error)
	GetInsightsByType(ctx context.Context, insightType model.InsightType) ([]model.Insight, error)
	PutInsight(ctx context.Context, insight *model.Insight) error
	ClearInsights(ctx context.Context) error

	// Profile operations (singleton record)
	SaveProfile(ctx context.Context, profile *model.UserProfile) error
	GetProfile(ctx context.Context) (*model.UserProfile, error)
	ClearProfile(ctx context.Context) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// TextClassifier derives a category from a free-text expense
// description. Implementations must never return an error to the
// caller for remote failures; they fall back to a local result.
type TextClassifier interface {
	Classify(ctx context.Context, description string) model.Category
}

// ChatCompleter answers free-form budgeting questions. Implementations
// degrade to a canned local response on any remote failure.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) string
}

// SyncResult reports the outcome of a single sync attempt. Remote
// failures are carried in Error rather than returned as Go errors so
// the caller can surface them as a transient message.
type SyncResult struct {
	Error   string
	Success bool
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
