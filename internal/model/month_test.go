package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2025-03")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2025, Month: time.March}, m)
	assert.Equal(t, "2025-03", m.String())

	_, err = ParseMonth("2025-13")
	assert.Error(t, err)
	_, err = ParseMonth("march 2025")
	assert.Error(t, err)
	_, err = ParseMonth("")
	assert.Error(t, err)
}

func TestMonthContains(t *testing.T) {
	m := Month{Year: 2025, Month: time.February}

	assert.True(t, m.Contains(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Contains(time.Date(2025, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))

	// Membership follows the civil date, not the UTC instant.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.True(t, m.Contains(time.Date(2025, 2, 1, 1, 0, 0, 0, tokyo)))
}

func TestMonthWindow(t *testing.T) {
	m := Month{Year: 2024, Month: time.February} // leap year
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), m.Start())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), m.End())
}

func TestMonthPrevNext(t *testing.T) {
	m := Month{Year: 2025, Month: time.January}
	assert.Equal(t, Month{Year: 2024, Month: time.December}, m.Prev())
	assert.Equal(t, Month{Year: 2025, Month: time.February}, m.Next())

	dec := Month{Year: 2025, Month: time.December}
	assert.Equal(t, Month{Year: 2026, Month: time.January}, dec.Next())
}

func TestMonthJSON(t *testing.T) {
	m := Month{Year: 2025, Month: time.July}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07"`, string(data))

	var decoded Month
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, m, decoded)

	var bad Month
	assert.Error(t, json.Unmarshal([]byte(`"not-a-month"`), &bad))
}

func TestSavingsGoalProgress(t *testing.T) {
	tests := []struct {
		name      string
		goal      SavingsGoal
		progress  float64
		completed bool
	}{
		{name: "halfway", goal: SavingsGoal{TargetAmount: 1000, CurrentAmount: 500}, progress: 50, completed: false},
		{name: "exactly complete", goal: SavingsGoal{TargetAmount: 1000, CurrentAmount: 1000}, progress: 100, completed: true},
		{name: "overfunded unclamped", goal: SavingsGoal{TargetAmount: 1000, CurrentAmount: 1500}, progress: 150, completed: true},
		{name: "zero target", goal: SavingsGoal{TargetAmount: 0, CurrentAmount: 50}, progress: 0, completed: true},
		{name: "empty goal", goal: SavingsGoal{TargetAmount: 300}, progress: 0, completed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.progress, tt.goal.Progress(), 0.01)
			assert.Equal(t, tt.completed, tt.goal.Completed())
		})
	}
}
