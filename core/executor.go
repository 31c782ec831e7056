package core

import (
	"context"
	"fmt"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/schema"
)

// topRepoLimit is how many repositories the organization analysis surfaces.
const topRepoLimit = 10

// ExecutePlan runs every action in the plan against the snapshot and API,
// recording each outcome in the run store when one is configured. A nil
// store disables tracking. Individual action failures do not abort the
// run; they are counted and carried in the summary.
func ExecutePlan(ctx context.Context, cfg *contract.Config, client contract.GitHubClient, snap *schema.ContextSnapshot, plan *schema.ActionPlan, store contract.RunStore) (*schema.ExecutionSummary, error) {
	started := time.Now()

	var runID int64
	if store != nil {
		var err error
		runID, err = store.BeginRun(plan.Organization, plan.Category, started, map[string]any{
			"target":  plan.Target,
			"actions": len(plan.Actions),
		})
		if err != nil {
			contract.LogWarn("run tracking disabled", err)
			store = nil
		}
	}

	summary := &schema.ExecutionSummary{
		Organization: plan.Organization,
		Category:     plan.Category,
		StartedAt:    started,
		Total:        len(plan.Actions),
		Results:      make([]schema.ActionResult, 0, len(plan.Actions)),
	}

	for _, action := range plan.Actions {
		result := executeAction(ctx, cfg, client, snap, action)

		switch result.Status {
		case schema.StatusCompleted:
			summary.Completed++
		case schema.StatusFailed:
			summary.Failed++
		default:
			summary.Skipped++
		}

		if store != nil {
			if err := store.RecordAction(runID, result); err != nil {
				contract.LogWarn("failed to record action", err)
			}
		}
		summary.Results = append(summary.Results, result)
	}

	summary.DurationMs = time.Since(started).Milliseconds()

	if store != nil {
		score, _, _ := healthScores(summary)
		if err := store.EndRun(runID, time.Now(), summary, score); err != nil {
			contract.LogWarn("failed to finalize run", err)
		}
	}

	return summary, nil
}

// executeAction dispatches one action to its executor based on the typed
// params payload. Payloads with no executor are skipped, not failed.
func executeAction(ctx context.Context, cfg *contract.Config, client contract.GitHubClient, snap *schema.ContextSnapshot, action schema.Action) schema.ActionResult {
	started := time.Now()

	var details map[string]any
	var err error

	switch params := action.Params.(type) {
	case schema.AnalyzeOrganizationParams:
		details = analyzeOrganization(snap, params)
	case schema.AnalyzeRepositoryParams:
		details, err = analyzeRepository(ctx, client, cfg.Organization, params)
	case schema.SyncProfileParams:
		details = syncOrganizationProfile(snap)
	case schema.DocumentationHealthParams:
		details = checkDocumentationHealth(snap, cfg.Tuning)
	case schema.ActivityHealthParams:
		details, err = checkActivityHealth(snap, cfg.Tuning)
	case schema.SecurityScanParams:
		details = securityScanOrganization(snap)
	default:
		return schema.ActionResult{
			Type:       action.Type,
			Scope:      action.Scope,
			Status:     schema.StatusSkipped,
			DurationMs: time.Since(started).Milliseconds(),
		}
	}

	result := schema.ActionResult{
		Type:       action.Type,
		Scope:      action.Scope,
		Status:     schema.StatusCompleted,
		DurationMs: time.Since(started).Milliseconds(),
		Details:    details,
	}
	if err != nil {
		result.Status = schema.StatusFailed
		result.Error = err.Error()
		result.Details = nil
	}
	return result
}

// analyzeOrganization summarizes the organization and its most starred
// repositories.
func analyzeOrganization(snap *schema.ContextSnapshot, params schema.AnalyzeOrganizationParams) map[string]any {
	return map[string]any{
		"analysis_depth":   params.Depth,
		"total_repos":      len(snap.Repositories),
		"followers":        snap.Organization.Followers,
		"top_repositories": topRepositoriesByStars(snap.Repositories, topRepoLimit),
	}
}

// topRepositoriesByStars returns the limit most starred repositories.
// The stable sort keeps listing order for equal star counts.
func topRepositoriesByStars(repos []schema.Repository, limit int) []schema.RepoHighlight {
	sorted := make([]schema.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StargazersCount > sorted[j].StargazersCount
	})

	n := min(len(sorted), limit)
	highlights := make([]schema.RepoHighlight, 0, n)
	for _, repo := range sorted[:n] {
		highlights = append(highlights, schema.RepoHighlight{
			Name:     repo.Name,
			Stars:    repo.StargazersCount,
			Language: repo.Language,
		})
	}
	return highlights
}

// analyzeRepository fetches fresh details and the open issue count for a
// single repository.
func analyzeRepository(ctx context.Context, client contract.GitHubClient, org string, params schema.AnalyzeRepositoryParams) (map[string]any, error) {
	repo, err := client.GetRepository(ctx, org, params.Repository)
	if err != nil {
		return nil, err
	}

	issues, err := client.CountOpenIssues(ctx, org, params.Repository)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"repository":     repo.Name,
		"staleness_days": params.StalenessDays,
		"stars":          repo.StargazersCount,
		"forks":          repo.ForksCount,
		"language":       repo.Language,
		"open_issues":    issues,
		"archived":       repo.Archived,
	}, nil
}

// syncOrganizationProfile reports what a profile sync would propagate:
// the repository inventory and how complete the org profile is.
func syncOrganizationProfile(snap *schema.ContextSnapshot) map[string]any {
	fields := 0
	for _, value := range []string{
		snap.Organization.Name,
		snap.Organization.Description,
		snap.Organization.Blog,
		snap.Organization.Location,
		snap.Organization.Email,
	} {
		if value != "" {
			fields++
		}
	}

	return map[string]any{
		"scope":                  schema.ScopeAll,
		"repositories_synced":    len(snap.Repositories),
		"profile_fields_present": fields,
	}
}

// checkDocumentationHealth scores repository descriptions against the
// quality bar, which is stricter than the gap threshold used for metrics.
func checkDocumentationHealth(snap *schema.ContextSnapshot, tuning schema.Tuning) map[string]any {
	well := 0
	for _, repo := range snap.Repositories {
		if utf8.RuneCountInString(repo.Description) > tuning.DocQualityLength {
			well++
		}
	}

	score := 0.0
	if total := len(snap.Repositories); total > 0 {
		score = float64(well) / float64(total) * 100
	}

	return map[string]any{
		"well_documented":     well,
		"total_repos":         len(snap.Repositories),
		"documentation_score": score,
	}
}

// checkActivityHealth classifies repositories as archived, active or stale
// and scores activity across the non-archived set.
func checkActivityHealth(snap *schema.ContextSnapshot, tuning schema.Tuning) (map[string]any, error) {
	archived, active, stale := 0, 0, 0
	for _, repo := range snap.Repositories {
		if repo.Archived {
			archived++
			continue
		}
		days, err := stalenessDays(repo, snap.Timestamp)
		if err != nil {
			return nil, err
		}
		if days <= tuning.ActiveWindowDays {
			active++
		} else {
			stale++
		}
	}

	score := 0.0
	if denom := len(snap.Repositories) - archived; denom > 0 {
		score = float64(active) / float64(denom) * 100
	}

	return map[string]any{
		"archived":       archived,
		"active":         active,
		"stale":          stale,
		"activity_score": score,
	}, nil
}

// securityScanOrganization surveys repository visibility and emits
// baseline recommendations.
func securityScanOrganization(snap *schema.ContextSnapshot) map[string]any {
	private, public, archived := 0, 0, 0
	for _, repo := range snap.Repositories {
		if repo.Private {
			private++
		} else {
			public++
		}
		if repo.Archived {
			archived++
		}
	}

	recommendations := []string{
		"Enable Dependabot alerts on all active repositories",
		"Enable secret scanning for public repositories",
	}
	if archived > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Review %d archived repositories for stale credentials", archived))
	}

	return map[string]any{
		"private_repos":   private,
		"public_repos":    public,
		"archived_repos":  archived,
		"recommendations": recommendations,
	}
}
