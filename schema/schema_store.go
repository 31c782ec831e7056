package schema

import "time"

// RunRecord represents a row in the orchestration runs table.
// Pointer fields are nullable columns; a run that is still in progress has
// no end time, duration or score yet.
type RunRecord struct {
	RunID        int64
	Organization string
	Category     string
	StartTime    time.Time
	EndTime      *time.Time
	DurationMs   *int32
	TotalActions int32
	Completed    int32
	Failed       int32
	HealthScore  *float64
	ConfigParams *string
}

// ActionRecord represents a row in the run actions table.
type ActionRecord struct {
	RunID      int64
	ActionType string
	Scope      string
	Status     string
	DurationMs int64
	Detail     *string
}

// StoreStatus reports connection and volume information for the run store.
type StoreStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TableSizes    map[string]int64
}
