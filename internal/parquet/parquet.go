// Package parquet provides data structures and functions for exporting
// orgpulse run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/paystackoss/orgpulse/schema"
)

// Run represents a single orchestration run with metadata.
// This struct maps to the orgpulse_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Organization is the GitHub organization the run targeted
	Organization string `parquet:"organization,snappy"`

	// Category is the action category the run was selected for
	Category string `parquet:"category,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the duration of the run in milliseconds (nullable)
	DurationMs *int32 `parquet:"duration_ms,optional,snappy"`

	// TotalActions is the number of actions executed in this run
	TotalActions int32 `parquet:"total_actions,snappy"`

	// Completed is the number of actions that completed successfully
	Completed int32 `parquet:"completed,snappy"`

	// Failed is the number of actions that failed
	Failed int32 `parquet:"failed,snappy"`

	// HealthScore is the health score computed at the end of the run (nullable)
	HealthScore *float64 `parquet:"health_score,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunAction represents the outcome of a single action within a run.
// This struct maps to the orgpulse_run_actions database table.
type RunAction struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// ActionType identifies the executed action
	ActionType string `parquet:"action_type,snappy"`

	// Scope is "all" or the repository the action targeted
	Scope string `parquet:"scope,snappy"`

	// Status is the terminal state of the action
	Status string `parquet:"status,snappy"`

	// DurationMs is how long the action took in milliseconds
	DurationMs int64 `parquet:"duration_ms,snappy"`

	// Detail contains the JSON-encoded action output (nullable)
	Detail *string `parquet:"detail,optional,snappy"`
}

// ConvertRunRecords maps store run rows to their Parquet representation.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	runs := make([]Run, 0, len(records))
	for _, record := range records {
		runs = append(runs, Run{
			RunID:        record.RunID,
			Organization: record.Organization,
			Category:     record.Category,
			StartTime:    record.StartTime,
			EndTime:      record.EndTime,
			DurationMs:   record.DurationMs,
			TotalActions: record.TotalActions,
			Completed:    record.Completed,
			Failed:       record.Failed,
			HealthScore:  record.HealthScore,
			ConfigParams: record.ConfigParams,
		})
	}
	return runs
}

// ConvertActionRecords maps store action rows to their Parquet representation.
func ConvertActionRecords(records []schema.ActionRecord) []RunAction {
	actions := make([]RunAction, 0, len(records))
	for _, record := range records {
		actions = append(actions, RunAction{
			RunID:      record.RunID,
			ActionType: record.ActionType,
			Scope:      record.Scope,
			Status:     record.Status,
			DurationMs: record.DurationMs,
			Detail:     record.Detail,
		})
	}
	return actions
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunActionsParquet writes a slice of RunAction structs to a Parquet file.
func WriteRunActionsParquet(data []RunAction, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RunAction struct tags
	writer := parquet.NewGenericWriter[RunAction](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
