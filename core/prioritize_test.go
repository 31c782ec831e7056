package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystackoss/orgpulse/schema"
)

func TestPrioritizeBoostsAndOrder(t *testing.T) {
	tuning := schema.DefaultTuning()
	metrics := schema.HealthMetrics{OutdatedRepos: 5}

	actions := []schema.Action{
		{Type: schema.ActionCheckActivity, Priority: 0.7, Goal: schema.GoalMaintenance},
		{Type: schema.ActionAnalyzeOrganization, Priority: 1.0, Goal: schema.GoalUnderstanding},
	}

	ranked := Prioritize(actions, metrics, tuning)
	require.Len(t, ranked, 2)

	assert.Equal(t, schema.ActionAnalyzeOrganization, ranked[0].Type)
	assert.InDelta(t, 1.1, ranked[0].Utility, 1e-9)
	assert.Equal(t, schema.ActionCheckActivity, ranked[1].Type)
	assert.InDelta(t, 0.84, ranked[1].Utility, 1e-9)
}

func TestPrioritizeSecurityBoost(t *testing.T) {
	actions := []schema.Action{
		{Type: schema.ActionSecurityScan, Priority: 1.0, Goal: schema.GoalSecurity},
	}

	ranked := Prioritize(actions, schema.HealthMetrics{}, schema.DefaultTuning())
	assert.InDelta(t, 1.3, ranked[0].Utility, 1e-9)
}

func TestPrioritizeMaintenanceThreshold(t *testing.T) {
	tuning := schema.DefaultTuning()
	action := schema.Action{Type: schema.ActionAnalyzeRepository, Priority: 0.8, Goal: schema.GoalMaintenance}

	tests := []struct {
		name     string
		outdated int
		utility  float64
	}{
		{name: "at threshold no boost", outdated: 3, utility: 0.8},
		{name: "above threshold boosted", outdated: 4, utility: 0.96},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ranked := Prioritize([]schema.Action{action}, schema.HealthMetrics{OutdatedRepos: tc.outdated}, tuning)
			assert.InDelta(t, tc.utility, ranked[0].Utility, 1e-9)
		})
	}
}

func TestPrioritizeStableForTies(t *testing.T) {
	actions := []schema.Action{
		{Type: schema.ActionSyncProfile, Priority: 0.9, Goal: schema.GoalConsistency, Scope: "first"},
		{Type: schema.ActionCheckDocumentation, Priority: 0.9, Goal: schema.GoalQuality, Scope: "second"},
	}

	ranked := Prioritize(actions, schema.HealthMetrics{}, schema.DefaultTuning())
	assert.Equal(t, "first", ranked[0].Scope)
	assert.Equal(t, "second", ranked[1].Scope)
}

func TestPrioritizeIdempotent(t *testing.T) {
	metrics := schema.HealthMetrics{OutdatedRepos: 5}
	tuning := schema.DefaultTuning()

	actions := []schema.Action{
		{Type: schema.ActionCheckActivity, Priority: 0.7, Goal: schema.GoalMaintenance},
		{Type: schema.ActionAnalyzeOrganization, Priority: 1.0, Goal: schema.GoalUnderstanding},
		{Type: schema.ActionSyncProfile, Priority: 1.0, Goal: schema.GoalConsistency},
	}

	once := Prioritize(actions, metrics, tuning)
	twice := Prioritize(once, metrics, tuning)
	assert.Equal(t, once, twice)
}

func TestPrioritizeDoesNotMutateInput(t *testing.T) {
	actions := []schema.Action{
		{Type: schema.ActionSecurityScan, Priority: 1.0, Goal: schema.GoalSecurity},
	}

	_ = Prioritize(actions, schema.HealthMetrics{}, schema.DefaultTuning())
	assert.Zero(t, actions[0].Utility)
}

func TestPrioritizeUtilityCanExceedOne(t *testing.T) {
	actions := []schema.Action{
		{Type: schema.ActionAnalyzeOrganization, Priority: 1.0, Goal: schema.GoalUnderstanding},
	}

	ranked := Prioritize(actions, schema.HealthMetrics{}, schema.DefaultTuning())
	assert.Greater(t, ranked[0].Utility, 1.0)
}
