package core

import (
	"github.com/paystackoss/orgpulse/schema"
)

// GenerateActions produces the candidate actions for a category from the
// context snapshot. Any unrecognized category yields the comprehensive
// bundle: analyze, sync and health check actions in that order. Security
// scans are only reachable through their explicit category.
func GenerateActions(snap *schema.ContextSnapshot, category schema.ActionCategory, tuning schema.Tuning) ([]schema.Action, error) {
	switch category {
	case schema.CategoryAnalyze:
		return analyzeActions(snap, tuning)
	case schema.CategorySync:
		return syncActions(tuning), nil
	case schema.CategoryHealthCheck:
		return healthCheckActions(snap, tuning), nil
	case schema.CategorySecurityScan:
		return securityScanActions(tuning), nil
	default:
		analyze, err := analyzeActions(snap, tuning)
		if err != nil {
			return nil, err
		}
		actions := analyze
		actions = append(actions, syncActions(tuning)...)
		actions = append(actions, healthCheckActions(snap, tuning)...)
		return actions, nil
	}
}

// analyzeActions emits one organization-wide analysis plus a repository
// analysis for every repository idle beyond the active window.
func analyzeActions(snap *schema.ContextSnapshot, tuning schema.Tuning) ([]schema.Action, error) {
	actions := []schema.Action{
		{
			Type:     schema.ActionAnalyzeOrganization,
			Priority: tuning.BasePriorities[schema.ActionAnalyzeOrganization],
			Goal:     schema.GoalUnderstanding,
			Scope:    schema.ScopeAll,
			Params:   schema.AnalyzeOrganizationParams{Depth: "comprehensive"},
		},
	}

	for _, repo := range snap.Repositories {
		days, err := stalenessDays(repo, snap.Timestamp)
		if err != nil {
			return nil, err
		}
		if days > tuning.ActiveWindowDays {
			actions = append(actions, schema.Action{
				Type:     schema.ActionAnalyzeRepository,
				Priority: tuning.BasePriorities[schema.ActionAnalyzeRepository],
				Goal:     schema.GoalMaintenance,
				Scope:    repo.Name,
				Params:   schema.AnalyzeRepositoryParams{Repository: repo.Name, StalenessDays: days},
			})
		}
	}

	return actions, nil
}

// syncActions emits the single organization profile sync.
func syncActions(tuning schema.Tuning) []schema.Action {
	return []schema.Action{
		{
			Type:     schema.ActionSyncProfile,
			Priority: tuning.BasePriorities[schema.ActionSyncProfile],
			Goal:     schema.GoalConsistency,
			Scope:    schema.ScopeAll,
			Params:   schema.SyncProfileParams{Scope: schema.ScopeAll},
		},
	}
}

// healthCheckActions emits documentation and activity checks, each only
// when the corresponding metric shows a problem. The result may be empty.
func healthCheckActions(snap *schema.ContextSnapshot, tuning schema.Tuning) []schema.Action {
	var actions []schema.Action

	if snap.Metrics.DocumentationGaps > 0 {
		actions = append(actions, schema.Action{
			Type:     schema.ActionCheckDocumentation,
			Priority: tuning.BasePriorities[schema.ActionCheckDocumentation],
			Goal:     schema.GoalQuality,
			Scope:    schema.ScopeAll,
			Params:   schema.DocumentationHealthParams{GapCount: snap.Metrics.DocumentationGaps},
		})
	}

	if snap.Metrics.OutdatedRepos > 0 {
		actions = append(actions, schema.Action{
			Type:     schema.ActionCheckActivity,
			Priority: tuning.BasePriorities[schema.ActionCheckActivity],
			Goal:     schema.GoalMaintenance,
			Scope:    schema.ScopeAll,
			Params:   schema.ActivityHealthParams{OutdatedCount: snap.Metrics.OutdatedRepos},
		})
	}

	return actions
}

// securityScanActions emits the single organization security scan.
func securityScanActions(tuning schema.Tuning) []schema.Action {
	return []schema.Action{
		{
			Type:     schema.ActionSecurityScan,
			Priority: tuning.BasePriorities[schema.ActionSecurityScan],
			Goal:     schema.GoalSecurity,
			Scope:    schema.ScopeAll,
			Params:   schema.SecurityScanParams{Scope: schema.ScopeAll},
		},
	}
}
