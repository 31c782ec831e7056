package contract

import (
	"testing"

	"github.com/paystackoss/orgpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseInput returns a raw input that passes validation.
func baseInput() *ConfigRawInput {
	return &ConfigRawInput{
		Org:            "paystackoss",
		ActionType:     "comprehensive",
		TargetRepos:    "all",
		Output:         "text",
		HistoryBackend: "none",
		Emoji:          "yes",
		Color:          "yes",
	}
}

// TestProcessAndValidateDefaults verifies that defaults are filled in.
func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := baseInput()
	input.ActionType = ""
	input.TargetRepos = ""

	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "paystackoss", cfg.Organization)
	assert.Equal(t, schema.CategoryComprehensive, cfg.Category)
	assert.Equal(t, schema.ScopeAll, cfg.Target)
	assert.Equal(t, DefaultPlanFile, cfg.PlanFile)
	assert.Equal(t, DefaultResultsFile, cfg.ResultsFile)
	assert.Equal(t, DefaultReportFile, cfg.ReportFile)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, schema.DefaultTuning(), cfg.Tuning)
}

// TestProcessAndValidateErrors covers the main rejection paths.
func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ConfigRawInput)
		errPart string
	}{
		{
			name:    "missing org",
			mutate:  func(in *ConfigRawInput) { in.Org = " " },
			errPart: "org is required",
		},
		{
			name:    "bad output mode",
			mutate:  func(in *ConfigRawInput) { in.Output = "yaml" },
			errPart: "invalid output format",
		},
		{
			name:    "bad emoji flag",
			mutate:  func(in *ConfigRawInput) { in.Emoji = "maybe" },
			errPart: "invalid --emoji",
		},
		{
			name:    "bad backend",
			mutate:  func(in *ConfigRawInput) { in.HistoryBackend = "redis" },
			errPart: "invalid history backend",
		},
		{
			name:    "mysql without connection string",
			mutate:  func(in *ConfigRawInput) { in.HistoryBackend = "mysql" },
			errPart: "history-db-connect is required",
		},
		{
			name:    "bad thresholds override",
			mutate:  func(in *ConfigRawInput) { in.ThresholdsStr = "excellent=95" },
			errPart: "invalid --thresholds-override",
		},
		{
			name:    "threshold ordering",
			mutate:  func(in *ConfigRawInput) { in.ThresholdsStr = "good:99" },
			errPart: "excellent >= good >= warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := baseInput()
			tt.mutate(input)
			err := ProcessAndValidate(&Config{}, input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

// TestCategoryPassesThroughUnknownValues verifies unknown categories are kept
// so the selector can fall back to a comprehensive run.
func TestCategoryPassesThroughUnknownValues(t *testing.T) {
	cfg := &Config{}
	input := baseInput()
	input.ActionType = "Everything-Please"

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.ActionCategory("everything-please"), cfg.Category)
}

// TestTuningOverrides verifies config file tuning overrides land in cfg.
func TestTuningOverrides(t *testing.T) {
	days := 14
	boost := 1.5
	cfg := &Config{}
	input := baseInput()
	input.Tuning.ActiveWindowDays = &days
	input.Tuning.SecurityBoost = &boost

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 14, cfg.Tuning.ActiveWindowDays)
	assert.Equal(t, 1.5, cfg.Tuning.SecurityBoost)
	// Untouched values keep their defaults.
	assert.Equal(t, schema.DefaultTuning().MaintenanceBoost, cfg.Tuning.MaintenanceBoost)
}

// TestTuningWindowOrdering verifies the outdated window must exceed the active window.
func TestTuningWindowOrdering(t *testing.T) {
	days := 120
	cfg := &Config{}
	input := baseInput()
	input.Tuning.ActiveWindowDays = &days

	err := ProcessAndValidate(cfg, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outdated_window_days")
}

// TestThresholdsOverrideFlag verifies the flag wins over config file values.
func TestThresholdsOverrideFlag(t *testing.T) {
	fileGood := 85.0
	cfg := &Config{}
	input := baseInput()
	input.Thresholds.Good = &fileGood
	input.ThresholdsStr = "good:75,warning:50"

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 75.0, cfg.Tuning.CheckGood)
	assert.Equal(t, 50.0, cfg.Tuning.CheckWarning)
}

// TestClone verifies the deep copy is independent of the original.
func TestClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, baseInput()))

	clone := cfg.Clone()
	clone.Tuning.BasePriorities[schema.ActionSecurityScan] = 0.1

	assert.Equal(t, 1.0, cfg.Tuning.BasePriorities[schema.ActionSecurityScan])
}
