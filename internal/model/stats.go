package model

// MonthlyStats holds the derived aggregates for one calendar month.
// Never persisted; recomputed from the record set on every mutation
// that touches the active month.
type MonthlyStats struct {
	ByCategory    map[Category]float64
	Month         Month
	TotalIncome   float64
	TotalExpenses float64
	Savings       float64
}

// HealthStatus is the four-tier label derived from the health score.
type HealthStatus string

// Health status tiers.
const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthFair      HealthStatus = "fair"
	HealthPoor      HealthStatus = "poor"
)

// FinancialHealth is a weighted 0-100 composite of savings rate, budget
// adherence, and goal progress.
type FinancialHealth struct {
	Status HealthStatus
	Score  float64
}
