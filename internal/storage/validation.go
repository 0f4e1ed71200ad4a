package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pennywise-app/pennywise/internal/model"
)

// Validation errors.
var (
	ErrNilContext       = errors.New("context cannot be nil")
	ErrEmptyString      = errors.New("string parameter cannot be empty")
	ErrNilParameter     = errors.New("parameter cannot be nil")
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrInvalidCategory  = errors.New("invalid category")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateCategory ensures c belongs to the closed category set.
func validateCategory(c model.Category) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, c)
	}
	return nil
}

// validateExpense validates a single expense record.
func validateExpense(e *model.Expense) error {
	if e == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if err := validateString(e.ID, "expense.ID"); err != nil {
		return err
	}
	return validateCategory(e.Category)
}

// validateIncome validates a single income record.
func validateIncome(in *model.Income) error {
	if in == nil {
		return fmt.Errorf("%w: income", ErrNilParameter)
	}
	return validateString(in.ID, "income.ID")
}

// validateBudget validates a single budget record.
func validateBudget(b *model.Budget) error {
	if b == nil {
		return fmt.Errorf("%w: budget", ErrNilParameter)
	}
	if err := validateString(b.ID, "budget.ID"); err != nil {
		return err
	}
	if b.Month.IsZero() {
		return fmt.Errorf("%w: budget.Month", ErrNilParameter)
	}
	return validateCategory(b.Category)
}

// validateGoal validates a single savings goal record.
func validateGoal(g *model.SavingsGoal) error {
	if g == nil {
		return fmt.Errorf("%w: goal", ErrNilParameter)
	}
	return validateString(g.ID, "goal.ID")
}

// validateInsight validates a single insight record.
func validateInsight(in *model.Insight) error {
	if in == nil {
		return fmt.Errorf("%w: insight", ErrNilParameter)
	}
	return validateString(in.ID, "insight.ID")
}

// validateProfile validates the profile record.
func validateProfile(p *model.UserProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}
	return validateString(p.ID, "profile.ID")
}
