package insight

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise/internal/model"
)

func expensesWithAmounts(amounts ...float64) []model.Expense {
	out := make([]model.Expense, len(amounts))
	for i, a := range amounts {
		out[i] = model.Expense{
			ID:          fmt.Sprintf("e%d", i),
			Description: fmt.Sprintf("expense %d", i),
			Amount:      a,
		}
	}
	return out
}

func TestDetectAnomaliesSmallSample(t *testing.T) {
	assert.Nil(t, DetectAnomalies(nil))
	// Four entries is below the minimum sample, outlier or not.
	assert.Nil(t, DetectAnomalies(expensesWithAmounts(10, 10, 10, 1000)))
}

func TestDetectAnomaliesFlagsOutlier(t *testing.T) {
	// Nine 10s and one 110: mean 20, population stddev 30, threshold 80.
	amounts := []float64{10, 10, 10, 10, 110, 10, 10, 10, 10, 10}
	flags := DetectAnomalies(expensesWithAmounts(amounts...))

	require.Len(t, flags, 1)
	assert.Contains(t, flags[0], "expense 4")
	assert.Contains(t, flags[0], "110.00")
}

func TestDetectAnomaliesStrictBoundary(t *testing.T) {
	// Four equal values plus one outlier put the threshold exactly at
	// the outlier: mean 48, stddev 76, threshold 200. The comparison is
	// strictly greater-than, so a value sitting on the threshold is
	// not flagged.
	flags := DetectAnomalies(expensesWithAmounts(10, 10, 10, 10, 200))
	assert.Empty(t, flags)
}

func TestDetectAnomaliesNoOutliers(t *testing.T) {
	flags := DetectAnomalies(expensesWithAmounts(10, 12, 11, 9, 10, 13, 8))
	assert.Empty(t, flags)
}

func TestDetectAnomaliesCapInInputOrder(t *testing.T) {
	// 96 small entries and four large ones: all four clear the
	// threshold, but only the first three in input order are returned.
	var amounts []float64
	for i := 0; i < 48; i++ {
		amounts = append(amounts, 10)
	}
	amounts = append(amounts, 1000, 1000)
	for i := 0; i < 48; i++ {
		amounts = append(amounts, 10)
	}
	amounts = append(amounts, 1000, 1000)

	flags := DetectAnomalies(expensesWithAmounts(amounts...))

	require.Len(t, flags, 3)
	assert.Contains(t, flags[0], "expense 48")
	assert.Contains(t, flags[1], "expense 49")
	assert.Contains(t, flags[2], "expense 98")
}
