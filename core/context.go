// Package core implements the organization health orchestration pipeline:
// context gathering, action selection, execution, reporting and the
// downstream artifacts (threshold gate, badge, dashboard, profile).
package core

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/schema"
)

// GatherContext fetches the organization profile and repositories and
// derives health metrics. now is injected so tests can pin the clock.
func GatherContext(ctx context.Context, cfg *contract.Config, client contract.GitHubClient, now time.Time) (*schema.ContextSnapshot, error) {
	org, err := client.GetOrganization(ctx, cfg.Organization)
	if err != nil {
		return nil, err
	}

	repos, err := client.ListRepositories(ctx, cfg.Organization)
	if err != nil {
		return nil, err
	}

	metrics, err := ComputeHealthMetrics(repos, cfg.Tuning, now)
	if err != nil {
		return nil, err
	}

	return &schema.ContextSnapshot{
		Organization: org,
		Repositories: repos,
		Metrics:      metrics,
		Timestamp:    now,
	}, nil
}

// parseUpdatedAt parses a repository's update timestamp. A malformed or
// missing value is a precondition violation and is reported with the
// repository name attached; it is never silently defaulted.
func parseUpdatedAt(repo schema.Repository) (time.Time, error) {
	if repo.UpdatedAt == "" {
		return time.Time{}, fmt.Errorf("repository %q has no updated_at timestamp", repo.Name)
	}
	t, err := time.Parse(time.RFC3339, repo.UpdatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("repository %q has malformed updated_at %q: %w", repo.Name, repo.UpdatedAt, err)
	}
	return t, nil
}

// stalenessDays returns full days since the repository was last updated.
func stalenessDays(repo schema.Repository, now time.Time) (int, error) {
	updated, err := parseUpdatedAt(repo)
	if err != nil {
		return 0, err
	}
	return int(now.Sub(updated).Hours() / 24), nil
}

// ComputeHealthMetrics derives activity and documentation metrics from the
// repository listing. An empty listing yields all-zero metrics.
//
// Repositories idle between the active and outdated windows count toward
// neither bucket, so ActiveRepos+OutdatedRepos never exceeds TotalRepos.
func ComputeHealthMetrics(repos []schema.Repository, tuning schema.Tuning, now time.Time) (schema.HealthMetrics, error) {
	metrics := schema.HealthMetrics{
		TotalRepos: len(repos),
		Languages:  make(map[string]int),
	}

	for _, repo := range repos {
		days, err := stalenessDays(repo, now)
		if err != nil {
			return schema.HealthMetrics{}, err
		}

		if days <= tuning.ActiveWindowDays {
			metrics.ActiveRepos++
		} else if days > tuning.OutdatedWindowDays {
			metrics.OutdatedRepos++
		}

		// Thresholds are in characters, not bytes
		if utf8.RuneCountInString(repo.Description) <= tuning.DocGapLength {
			metrics.DocumentationGaps++
		}

		if repo.Language != "" {
			metrics.Languages[repo.Language]++
		}
	}

	return metrics, nil
}
