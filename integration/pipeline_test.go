//go:build integration

// Package integration contains integration tests for orgpulse.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrgpulsePipelineStages runs select, execute, report and the render
// commands stage by stage and verifies the artifacts they hand off.
func TestOrgpulsePipelineStages(t *testing.T) {
	api := newFakeGitHubAPI(t)
	workDir := t.TempDir()

	env := []string{
		"ORGPULSE_ORG=acme",
		"ORGPULSE_API_URL=" + api.URL,
		"ORGPULSE_HISTORY_BACKEND=none",
	}

	// Stage 1: select writes the action plan
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "select"))

	planRaw, err := os.ReadFile(filepath.Join(workDir, "orgpulse_actions.json"))
	require.NoError(t, err)

	var plan struct {
		Organization string           `json:"organization"`
		Actions      []map[string]any `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(planRaw, &plan))
	assert.Equal(t, "acme", plan.Organization)
	assert.NotEmpty(t, plan.Actions)

	// Stage 2: execute writes the results
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "execute"))

	resultsRaw, err := os.ReadFile(filepath.Join(workDir, "orgpulse_results.json"))
	require.NoError(t, err)

	var summary struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Failed    int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(resultsRaw, &summary))
	assert.Equal(t, len(plan.Actions), summary.Total)
	assert.Zero(t, summary.Failed)

	// Stage 3: report writes the health report
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "report"))

	reportRaw, err := os.ReadFile(filepath.Join(workDir, "orgpulse_report.json"))
	require.NoError(t, err)

	var report struct {
		HealthScore float64 `json:"health_score"`
		Status      string  `json:"status"`
	}
	require.NoError(t, json.Unmarshal(reportRaw, &report))
	assert.Greater(t, report.HealthScore, 0.0)
	assert.NotEmpty(t, report.Status)

	// Render stages: badge, dashboard, profile
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "badge"))
	badgeRaw, err := os.ReadFile(filepath.Join(workDir, "badge.json"))
	require.NoError(t, err)
	assert.Contains(t, string(badgeRaw), "schemaVersion")

	require.NoError(t, runOrgpulseCommand(t, workDir, env, "dashboard"))
	assert.FileExists(t, filepath.Join(workDir, "dashboard", "index.html"))
	assert.FileExists(t, filepath.Join(workDir, "dashboard", "summary.json"))

	require.NoError(t, runOrgpulseCommand(t, workDir, env,
		"profile", "--profile-file", filepath.Join(workDir, "README.md")))
	readme, err := os.ReadFile(filepath.Join(workDir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "Organization Metrics")
}
