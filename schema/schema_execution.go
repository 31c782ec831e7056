package schema

import "time"

// ActionResult captures the outcome of one executed action.
// Details holds the per-type output payload; its keys vary by action type
// the same way the raw API responses do, so it stays a loose map.
type ActionResult struct {
	Type       ActionType     `json:"type"`
	Scope      string         `json:"scope"`
	Status     ActionStatus   `json:"status"`
	DurationMs int64          `json:"duration_ms"`
	Error      string         `json:"error,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// ExecutionSummary is the output of the execution stage: every action
// result plus aggregate counts and wall-clock duration.
type ExecutionSummary struct {
	Organization string         `json:"organization"`
	Category     ActionCategory `json:"category"`
	StartedAt    time.Time      `json:"started_at"`
	DurationMs   int64          `json:"duration_ms"`
	Total        int            `json:"total"`
	Completed    int            `json:"completed"`
	Failed       int            `json:"failed"`
	Skipped      int            `json:"skipped"`
	Results      []ActionResult `json:"results"`
}

// RepoHighlight is a compact repository entry used in analysis outputs,
// e.g. the top repositories by stars.
type RepoHighlight struct {
	Name       string `json:"name"`
	Stars      int    `json:"stars"`
	Language   string `json:"language,omitempty"`
	OpenIssues int    `json:"open_issues,omitempty"`
}
