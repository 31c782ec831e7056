package schema

import "time"

// TypeStats aggregates execution outcomes for one action type.
type TypeStats struct {
	Attempted   int     `json:"attempted"`
	Completed   int     `json:"completed"`
	Failed      int     `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// Report is the executive summary built from an execution summary.
type Report struct {
	Organization       string                   `json:"organization"`
	GeneratedAt        time.Time                `json:"generated_at"`
	HealthScore        float64                  `json:"health_score"`
	Status             HealthStatus             `json:"status"`
	DocumentationScore float64                  `json:"documentation_score"`
	ActivityScore      float64                  `json:"activity_score"`
	EfficiencyScore    float64                  `json:"efficiency_score"`
	ReliabilityScore   float64                  `json:"reliability_score"`
	TypeStats          map[ActionType]TypeStats `json:"action_performance"`
	Insights           []string                 `json:"insights"`
	Recommendations    []string                 `json:"recommendations"`
}

// CategoryResult is one scored category evaluated against the threshold table.
type CategoryResult struct {
	Name  string         `json:"name"`
	Score float64        `json:"score"`
	Level ThresholdLevel `json:"level"`
}

// CheckResult is the outcome of the threshold gate. Overall is the worst
// level across all categories.
type CheckResult struct {
	Categories []CategoryResult `json:"categories"`
	Overall    ThresholdLevel   `json:"overall"`
}

// Badge is the shields.io endpoint schema for the health badge.
type Badge struct {
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
	CacheSeconds  int    `json:"cacheSeconds"`
}

// DashboardSummary is the machine-readable companion to the HTML dashboard.
type DashboardSummary struct {
	HealthScore        float64      `json:"health_score"`
	Status             HealthStatus `json:"status"`
	DocumentationScore float64      `json:"documentation_score"`
	ActivityScore      float64      `json:"activity_score"`
	EfficiencyScore    float64      `json:"efficiency_score"`
	ReliabilityScore   float64      `json:"reliability_score"`
	GeneratedAt        time.Time    `json:"generated_at"`
}
