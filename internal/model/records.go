package model

import "time"

// Expense is a single spend record.
type Expense struct {
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Amount      float64   `json:"amount"`
}

// Income is a single earning record.
type Income struct {
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Amount    float64   `json:"amount"`
}

// Budget is a per-category spending limit for one calendar month.
// Spent is derived by the aggregation engine and overwritten on every
// recalculation; nothing else may write it.
type Budget struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Month     Month     `json:"month"`
	Limit     float64   `json:"limit"`
	Spent     float64   `json:"spent"`
}

// SavingsGoal tracks money put aside toward a target. CurrentAmount only
// ever grows through AddFunds-style actions.
type SavingsGoal struct {
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Color         string     `json:"color"`
	Icon          string     `json:"icon"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
}

// Completed reports whether the goal has been reached. Completion is a
// derived predicate, not a stored flag.
func (g SavingsGoal) Completed() bool {
	return g.CurrentAmount >= g.TargetAmount
}

// Progress returns the completion percentage, unclamped above 100.
func (g SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount * 100
}

// UserProfile is the singleton per-device user record.
type UserProfile struct {
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Email               string    `json:"email,omitempty"`
	Currency            string    `json:"currency"`
	MonthlyIncome       float64   `json:"monthlyIncome"`
	OnboardingCompleted bool      `json:"onboardingCompleted"`
}
