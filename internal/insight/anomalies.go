package insight

import (
	"fmt"
	"math"

	"github.com/pennywise-app/pennywise/internal/model"
)

// minAnomalySample is the smallest expense count worth analyzing;
// below it the mean and deviation are too noisy to flag anything.
const minAnomalySample = 5

// maxAnomalies caps the number of flags returned per run.
const maxAnomalies = 3

// DetectAnomalies flags expenses whose amount is strictly greater than
// the mean plus two population standard deviations of the full set.
// At most three flags are returned, taken in input order rather than
// by magnitude; see DESIGN.md for why that tie-break is kept.
func DetectAnomalies(expenses []model.Expense) []string {
	if len(expenses) < minAnomalySample {
		return nil
	}

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	mean := total / float64(len(expenses))

	var sumSquares float64
	for _, e := range expenses {
		d := e.Amount - mean
		sumSquares += d * d
	}
	// Population, not sample, deviation: reproducible for a fixed set.
	stddev := math.Sqrt(sumSquares / float64(len(expenses)))

	threshold := mean + 2*stddev

	var flags []string
	for _, e := range expenses {
		if e.Amount > threshold {
			flags = append(flags, fmt.Sprintf("%q is unusually large at %.2f (typical expense is around %.2f)",
				e.Description, e.Amount, mean))
			if len(flags) == maxAnomalies {
				break
			}
		}
	}
	return flags
}
