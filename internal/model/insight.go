package model

import "time"

// InsightType classifies a generated insight.
type InsightType string

// Insight type constants.
const (
	InsightTip         InsightType = "tip"
	InsightWarning     InsightType = "warning"
	InsightAchievement InsightType = "achievement"
	InsightPattern     InsightType = "pattern"
)

// InsightPriority orders insights for display.
type InsightPriority string

// Insight priority constants.
const (
	PriorityLow    InsightPriority = "low"
	PriorityMedium InsightPriority = "medium"
	PriorityHigh   InsightPriority = "high"
)

// Insight is a short natural-language statement produced by rule-based
// analysis of the current month. Insights are regenerated wholesale on
// every recalculation; dismissal marks them read rather than deleting.
type Insight struct {
	CreatedAt   time.Time       `json:"createdAt"`
	ID          string          `json:"id"`
	Type        InsightType     `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    Category        `json:"category,omitempty"`
	Priority    InsightPriority `json:"priority"`
	IsRead      bool            `json:"isRead"`
}
