// Package insight computes the financial health score and generates
// rule-based insights, anomaly flags, and rotating tips. Everything in
// this package is pure and synchronous; it operates only on records and
// aggregates already in memory.
package insight

import (
	"math"

	"github.com/pennywise-app/pennywise/internal/model"
)

// Health computes the weighted 0-100 financial health score and its
// status tier. Savings rate contributes up to 40 points in fixed tiers,
// budget adherence and goal progress up to 30 points each, linearly.
func Health(income, expenses, goalProgress, budgetAdherence float64) model.FinancialHealth {
	var score float64

	if income > 0 {
		savingsRate := (income - expenses) / income * 100
		switch {
		case savingsRate >= 20:
			score += 40
		case savingsRate >= 10:
			score += 30
		case savingsRate >= 5:
			score += 20
		case savingsRate > 0:
			score += 10
		}
	}

	score += math.Min(30, budgetAdherence*0.3)
	score += math.Min(30, goalProgress*0.3)

	score = math.Max(0, math.Min(100, score))

	return model.FinancialHealth{
		Score:  score,
		Status: statusFor(score),
	}
}

func statusFor(score float64) model.HealthStatus {
	switch {
	case score >= 80:
		return model.HealthExcellent
	case score >= 60:
		return model.HealthGood
	case score >= 40:
		return model.HealthFair
	default:
		return model.HealthPoor
	}
}
