// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/paystackoss/orgpulse/schema"
)

// GitHubClient defines the remote operations the pipeline needs.
// This allows the core orchestration logic to be tested without network access.
type GitHubClient interface {
	// GetOrganization fetches the organization profile.
	GetOrganization(ctx context.Context, org string) (schema.Organization, error)

	// ListRepositories fetches the organization's repositories.
	ListRepositories(ctx context.Context, org string) ([]schema.Repository, error)

	// GetRepository fetches details for a single repository.
	GetRepository(ctx context.Context, org, name string) (schema.Repository, error)

	// CountOpenIssues returns the number of open issues for a repository.
	CountOpenIssues(ctx context.Context, org, name string) (int, error)
}

// RunStore defines the interface for tracking orchestration runs.
type RunStore interface {
	// BeginRun creates a new run row and returns its unique ID
	BeginRun(org string, category schema.ActionCategory, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, summary *schema.ExecutionSummary, healthScore float64) error

	// RecordAction stores the outcome of a single executed action
	RecordAction(runID int64, result schema.ActionResult) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.StoreStatus, error)

	// GetAllRuns retrieves every run row, oldest first
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllActions retrieves every action row, oldest first
	GetAllActions() ([]schema.ActionRecord, error)

	// Close closes the underlying connection
	Close() error
}

// StoreManager defines the interface for accessing the run store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}
