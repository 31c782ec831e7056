package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/paystackoss/orgpulse/schema"
)

// ErrCriticalHealth marks a threshold evaluation whose overall level is
// critical. Callers map it to a dedicated exit code for CI gates.
var ErrCriticalHealth = errors.New("health check failed with critical status")

// EvaluateThresholds grades the report's scores against the configured
// cutoffs. The overall level is the worst category level, so one critical
// category fails the whole check.
func EvaluateThresholds(report *schema.Report, tuning schema.Tuning) schema.CheckResult {
	categories := []schema.CategoryResult{
		{Name: "health", Score: report.HealthScore},
		{Name: "documentation", Score: report.DocumentationScore},
		{Name: "activity", Score: report.ActivityScore},
		{Name: "reliability", Score: report.ReliabilityScore},
	}

	overall := schema.LevelExcellent
	for i := range categories {
		categories[i].Level = schema.ThresholdLevelFor(categories[i].Score, tuning)
		overall = schema.WorstLevel(overall, categories[i].Level)
	}

	return schema.CheckResult{Categories: categories, Overall: overall}
}

// WriteGitHubOutputs appends the check outcome as key=value lines to the
// GitHub Actions output file so downstream workflow steps can branch on it.
func WriteGitHubOutputs(result schema.CheckResult, report *schema.Report, path string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open github output file: %w", err)
	}
	defer file.Close()

	lines := fmt.Sprintf("overall_status=%s\nhealth_score=%.1f\n", result.Overall, report.HealthScore)
	for _, category := range result.Categories {
		lines += fmt.Sprintf("%s_level=%s\n", category.Name, category.Level)
	}

	if _, err := file.WriteString(lines); err != nil {
		return fmt.Errorf("cannot write github outputs: %w", err)
	}
	return nil
}
