package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pennywise-app/pennywise/internal/model"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name            string
		income          float64
		expenses        float64
		goalProgress    float64
		budgetAdherence float64
		wantScore       float64
		wantStatus      model.HealthStatus
	}{
		{
			name:   "everything maxed",
			income: 5000, expenses: 3000, // 40% savings rate
			goalProgress: 100, budgetAdherence: 100,
			wantScore: 100, wantStatus: model.HealthExcellent,
		},
		{
			name:   "no income",
			income: 0, expenses: 500,
			goalProgress: 0, budgetAdherence: 100,
			wantScore: 30, wantStatus: model.HealthPoor,
		},
		{
			name:   "deficit month",
			income: 1000, expenses: 1500,
			goalProgress: 0, budgetAdherence: 0,
			wantScore: 0, wantStatus: model.HealthPoor,
		},
		{
			name:   "savings tier 20 percent boundary",
			income: 1000, expenses: 800, // exactly 20%
			goalProgress: 0, budgetAdherence: 0,
			wantScore: 40, wantStatus: model.HealthFair,
		},
		{
			name:   "savings tier 10 percent boundary",
			income: 1000, expenses: 900,
			goalProgress: 0, budgetAdherence: 0,
			wantScore: 30, wantStatus: model.HealthPoor,
		},
		{
			name:   "savings tier 5 percent boundary",
			income: 1000, expenses: 950,
			goalProgress: 0, budgetAdherence: 0,
			wantScore: 20, wantStatus: model.HealthPoor,
		},
		{
			name:   "barely positive savings",
			income: 1000, expenses: 999,
			goalProgress: 0, budgetAdherence: 0,
			wantScore: 10, wantStatus: model.HealthPoor,
		},
		{
			name:   "overfunded goals capped at 30",
			income: 0, expenses: 0,
			goalProgress: 250, budgetAdherence: 0,
			wantScore: 30, wantStatus: model.HealthPoor,
		},
		{
			name:   "mixed mid-range",
			income: 3000, expenses: 2500, // ~16.7% -> 30 points
			goalProgress: 50, budgetAdherence: 100, // 15 + 30
			wantScore: 75, wantStatus: model.HealthGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Health(tt.income, tt.expenses, tt.goalProgress, tt.budgetAdherence)
			assert.InDelta(t, tt.wantScore, got.Score, 0.01)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestHealthStatusTiers(t *testing.T) {
	assert.Equal(t, model.HealthExcellent, statusFor(80))
	assert.Equal(t, model.HealthGood, statusFor(79.9))
	assert.Equal(t, model.HealthGood, statusFor(60))
	assert.Equal(t, model.HealthFair, statusFor(59.9))
	assert.Equal(t, model.HealthFair, statusFor(40))
	assert.Equal(t, model.HealthPoor, statusFor(39.9))
	assert.Equal(t, model.HealthPoor, statusFor(0))
}

func TestHealthScoreBounds(t *testing.T) {
	for _, income := range []float64{0, 100, 10000} {
		for _, expenses := range []float64{0, 50, 20000} {
			for _, progress := range []float64{0, 100, 500} {
				for _, adherence := range []float64{0, 50, 100} {
					got := Health(income, expenses, progress, adherence)
					assert.GreaterOrEqual(t, got.Score, 0.0)
					assert.LessOrEqual(t, got.Score, 100.0)
				}
			}
		}
	}
}
