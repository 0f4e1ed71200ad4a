package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise/internal/model"
)

var june = model.Month{Year: 2025, Month: time.June}

func day(d int) time.Time {
	return time.Date(2025, time.June, d, 12, 0, 0, 0, time.UTC)
}

func TestComputeEmpty(t *testing.T) {
	stats := Compute(june, nil, nil, nil)

	assert.Equal(t, june, stats.Month)
	assert.Zero(t, stats.TotalIncome)
	assert.Zero(t, stats.TotalExpenses)
	assert.Zero(t, stats.Savings)

	// Every category key is present even with no records.
	require.Len(t, stats.ByCategory, 10)
	for _, c := range model.Categories() {
		v, ok := stats.ByCategory[c]
		assert.True(t, ok, "missing category %s", c)
		assert.Zero(t, v)
	}
}

func TestComputeFiltersToMonth(t *testing.T) {
	expenses := []model.Expense{
		{Amount: 100, Category: model.CategoryFood, Date: day(5)},
		{Amount: 50, Category: model.CategoryFood, Date: day(20)},
		{Amount: 999, Category: model.CategoryFood, Date: time.Date(2025, time.May, 31, 12, 0, 0, 0, time.UTC)},
		{Amount: 999, Category: model.CategoryFood, Date: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)},
	}
	incomes := []model.Income{
		{Amount: 3000, Date: day(1)},
		{Amount: 500, Date: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)},
	}

	stats := Compute(june, expenses, incomes, nil)

	assert.InDelta(t, 150, stats.TotalExpenses, 0.001)
	assert.InDelta(t, 3000, stats.TotalIncome, 0.001)
	assert.InDelta(t, 2850, stats.Savings, 0.001)
	assert.InDelta(t, 150, stats.ByCategory[model.CategoryFood], 0.001)
}

func TestComputeProfileIncomeFallback(t *testing.T) {
	profile := &model.UserProfile{MonthlyIncome: 3000, Currency: "USD"}
	expenses := []model.Expense{
		{Amount: 100, Category: model.CategoryFood, Date: day(3)},
	}

	stats := Compute(june, expenses, nil, profile)

	assert.InDelta(t, 3000, stats.TotalIncome, 0.001)
	assert.InDelta(t, 100, stats.TotalExpenses, 0.001)
	assert.InDelta(t, 2900, stats.Savings, 0.001)
	assert.InDelta(t, 100, stats.ByCategory[model.CategoryFood], 0.001)
	for _, c := range model.Categories() {
		if c == model.CategoryFood {
			continue
		}
		assert.Zero(t, stats.ByCategory[c])
	}
}

func TestComputeRealIncomeBeatsFallback(t *testing.T) {
	profile := &model.UserProfile{MonthlyIncome: 3000}
	incomes := []model.Income{{Amount: 1200, Date: day(1)}}

	stats := Compute(june, nil, incomes, profile)

	// A single recorded income replaces the estimate entirely.
	assert.InDelta(t, 1200, stats.TotalIncome, 0.001)
}

func TestApplySpent(t *testing.T) {
	stats := Compute(june, []model.Expense{
		{Amount: 80, Category: model.CategoryFood, Date: day(2)},
		{Amount: 40, Category: model.CategoryFood, Date: day(9)},
		{Amount: 25, Category: model.CategoryTransport, Date: day(4)},
	}, nil, nil)

	budgets := []model.Budget{
		{ID: "b1", Category: model.CategoryFood, Month: june, Limit: 200, Spent: 0},
		{ID: "b2", Category: model.CategoryTransport, Month: june, Limit: 100, Spent: 25},
		{ID: "b3", Category: model.CategoryFood, Month: june.Prev(), Limit: 200, Spent: 500},
	}

	changed := ApplySpent(budgets, stats)

	// Only the stale in-month budget is rewritten.
	assert.Equal(t, []int{0}, changed)
	assert.InDelta(t, 120, budgets[0].Spent, 0.001)
	assert.InDelta(t, 25, budgets[1].Spent, 0.001)
	assert.InDelta(t, 500, budgets[2].Spent, 0.001, "budgets outside the month are untouched")
}

func TestBudgetAdherence(t *testing.T) {
	tests := []struct {
		name    string
		budgets []model.Budget
		want    float64
	}{
		{name: "no budgets", budgets: nil, want: 100},
		{
			name:    "under limit",
			budgets: []model.Budget{{Limit: 100, Spent: 50}},
			want:    100,
		},
		{
			name:    "exactly at limit",
			budgets: []model.Budget{{Limit: 100, Spent: 100}},
			want:    100,
		},
		{
			name:    "fifty percent over",
			budgets: []model.Budget{{Limit: 100, Spent: 150}},
			want:    50,
		},
		{
			name:    "double the limit floors at zero",
			budgets: []model.Budget{{Limit: 100, Spent: 300}},
			want:    0,
		},
		{
			name: "mean across budgets",
			budgets: []model.Budget{
				{Limit: 100, Spent: 50},
				{Limit: 100, Spent: 150},
			},
			want: 75,
		},
		{
			name:    "zero limit with no spend",
			budgets: []model.Budget{{Limit: 0, Spent: 0}},
			want:    100,
		},
		{
			name:    "zero limit with spend",
			budgets: []model.Budget{{Limit: 0, Spent: 10}},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BudgetAdherence(tt.budgets), 0.001)
		})
	}
}

func TestGoalProgress(t *testing.T) {
	assert.Zero(t, GoalProgress(nil))

	goals := []model.SavingsGoal{
		{TargetAmount: 1000, CurrentAmount: 500}, // 50
		{TargetAmount: 100, CurrentAmount: 150},  // 150, unclamped
	}
	assert.InDelta(t, 100, GoalProgress(goals), 0.001)
}
