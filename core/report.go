package core

import (
	"fmt"
	"math"
	"time"

	"github.com/paystackoss/orgpulse/schema"
)

// detailFloat reads a numeric detail value. Details that traveled through
// JSON come back as float64, while in-process results may carry ints.
func detailFloat(details map[string]any, key string) (float64, bool) {
	value, ok := details[key]
	if !ok {
		return 0, false
	}
	switch n := value.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// componentScores extracts the documentation and activity scores from the
// completed health check results, when those actions ran.
func componentScores(summary *schema.ExecutionSummary) (doc, act float64, docOK, actOK bool) {
	for _, result := range summary.Results {
		if result.Status != schema.StatusCompleted {
			continue
		}
		switch result.Type {
		case schema.ActionCheckDocumentation:
			if score, ok := detailFloat(result.Details, "documentation_score"); ok {
				doc, docOK = score, true
			}
		case schema.ActionCheckActivity:
			if score, ok := detailFloat(result.Details, "activity_score"); ok {
				act, actOK = score, true
			}
		}
	}
	return doc, act, docOK, actOK
}

// healthScores computes the overall health score as the mean of whichever
// component scores are present. With neither present the score is zero.
func healthScores(summary *schema.ExecutionSummary) (health float64, docOK, actOK bool) {
	doc, act, docOK, actOK := componentScores(summary)

	sum, n := 0.0, 0
	if docOK {
		sum += doc
		n++
	}
	if actOK {
		sum += act
		n++
	}
	if n > 0 {
		health = sum / float64(n)
	}
	return health, docOK, actOK
}

// BuildReport distills an execution summary into the health report:
// scores, per-type performance, insights and recommendations.
func BuildReport(summary *schema.ExecutionSummary, tuning schema.Tuning, now time.Time) *schema.Report {
	doc, act, docOK, actOK := componentScores(summary)
	health, _, _ := healthScores(summary)

	report := &schema.Report{
		Organization:       summary.Organization,
		GeneratedAt:        now,
		HealthScore:        health,
		Status:             schema.HealthStatusFor(health, tuning),
		DocumentationScore: doc,
		ActivityScore:      act,
		EfficiencyScore:    efficiencyScore(summary, tuning),
		ReliabilityScore:   reliabilityScore(summary),
		TypeStats:          typeStats(summary),
		Insights:           insights(doc, act, docOK, actOK),
		Recommendations:    recommendations(summary, doc, act, docOK, actOK),
	}
	return report
}

// typeStats aggregates per-action-type attempt and success counts.
func typeStats(summary *schema.ExecutionSummary) map[schema.ActionType]schema.TypeStats {
	stats := make(map[schema.ActionType]schema.TypeStats)
	for _, result := range summary.Results {
		entry := stats[result.Type]
		entry.Attempted++
		switch result.Status {
		case schema.StatusCompleted:
			entry.Completed++
		case schema.StatusFailed:
			entry.Failed++
		}
		stats[result.Type] = entry
	}
	for actionType, entry := range stats {
		if entry.Attempted > 0 {
			entry.SuccessRate = float64(entry.Completed) / float64(entry.Attempted) * 100
		}
		stats[actionType] = entry
	}
	return stats
}

// efficiencyScore compares actual run duration against an ideal pace per
// action. Running faster than the ideal caps at 100.
func efficiencyScore(summary *schema.ExecutionSummary, tuning schema.Tuning) float64 {
	if summary.Total == 0 {
		return 100
	}
	actual := float64(summary.DurationMs) / 1000.0
	if actual <= 0 {
		return 100
	}
	ideal := tuning.IdealActionSeconds * float64(summary.Total)
	return math.Min(100, ideal/actual*100)
}

// reliabilityScore is the completed share of all attempted actions.
func reliabilityScore(summary *schema.ExecutionSummary) float64 {
	if summary.Total == 0 {
		return 0
	}
	return float64(summary.Completed) / float64(summary.Total) * 100
}

func insights(doc, act float64, docOK, actOK bool) []string {
	var out []string
	if actOK {
		switch {
		case act < 50:
			out = append(out, fmt.Sprintf("Repository activity is stagnating: only %.0f%% of non-archived repositories saw recent updates", act))
		case act > 80:
			out = append(out, fmt.Sprintf("Healthy update cadence: %.0f%% of non-archived repositories are active", act))
		}
	}
	if docOK && doc < 60 {
		out = append(out, fmt.Sprintf("Documentation coverage is lagging at %.0f%%", doc))
	}
	return out
}

func recommendations(summary *schema.ExecutionSummary, doc, act float64, docOK, actOK bool) []string {
	var out []string
	if summary.Failed > 0 {
		out = append(out, fmt.Sprintf("Investigate %d failed action(s) before the next run", summary.Failed))
	}
	if docOK && doc < 60 {
		out = append(out, "Add or expand repository descriptions to close documentation gaps")
	}
	if actOK && act < 50 {
		out = append(out, "Archive dormant repositories or schedule maintenance for the ones worth keeping")
	}
	if len(out) == 0 {
		out = append(out, "No immediate action required")
	}
	return out
}
