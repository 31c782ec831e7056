package outwriter

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/paystackoss/orgpulse/schema"
)

// dashboardTemplate is the static HTML page rendered for the organization.
var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Report.Organization}} health dashboard</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 720px; color: #24292f; }
  h1 { font-size: 1.5rem; }
  .score { font-size: 3rem; font-weight: 700; }
  .status { text-transform: uppercase; letter-spacing: 0.05em; font-weight: 600; }
  .status.EXCELLENT { color: #1a7f37; }
  .status.GOOD { color: #0969da; }
  .status.FAIR { color: #9a6700; }
  .status.NEEDS_ATTENTION { color: #cf222e; }
  table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
  th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #d0d7de; }
  td.num { text-align: right; font-variant-numeric: tabular-nums; }
  ul { line-height: 1.6; }
  footer { margin-top: 2rem; color: #57606a; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>{{.Report.Organization}} organization health</h1>
<p><span class="score">{{printf "%.0f" .Report.HealthScore}}</span> / 100
<span class="status {{.Report.Status}}">{{.Report.Status}}</span></p>
<table>
  <tr><th>Metric</th><th>Score</th></tr>
  <tr><td>Documentation</td><td class="num">{{printf "%.1f" .Report.DocumentationScore}}</td></tr>
  <tr><td>Activity</td><td class="num">{{printf "%.1f" .Report.ActivityScore}}</td></tr>
  <tr><td>Efficiency</td><td class="num">{{printf "%.1f" .Report.EfficiencyScore}}</td></tr>
  <tr><td>Reliability</td><td class="num">{{printf "%.1f" .Report.ReliabilityScore}}</td></tr>
</table>
{{if .Report.Insights}}
<h2>Insights</h2>
<ul>{{range .Report.Insights}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if .Report.Recommendations}}
<h2>Recommendations</h2>
<ul>{{range .Report.Recommendations}}<li>{{.}}</li>{{end}}</ul>
{{end}}
<footer>
{{.Summary.Completed}}/{{.Summary.Total}} actions completed in {{.Summary.DurationMs}}ms.
Generated {{.Report.GeneratedAt.UTC.Format "2006-01-02 15:04 UTC"}}.
</footer>
</body>
</html>
`))

// dashboardData is the template context for the dashboard page.
type dashboardData struct {
	Report  *schema.Report
	Summary *schema.ExecutionSummary
}

// WriteDashboard renders the static HTML dashboard plus a machine-readable
// summary.json into the output directory.
func WriteDashboard(report *schema.Report, summary *schema.ExecutionSummary, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dashboard directory: %w", err)
	}

	indexPath := filepath.Join(dir, "index.html")
	file, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create dashboard page: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := dashboardTemplate.Execute(file, dashboardData{Report: report, Summary: summary}); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}

	payload := schema.DashboardSummary{
		HealthScore:        report.HealthScore,
		Status:             report.Status,
		DocumentationScore: report.DocumentationScore,
		ActivityScore:      report.ActivityScore,
		EfficiencyScore:    report.EfficiencyScore,
		ReliabilityScore:   report.ReliabilityScore,
		GeneratedAt:        report.GeneratedAt,
	}
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode dashboard summary: %w", err)
	}

	summaryPath := filepath.Join(dir, "summary.json")
	if err := os.WriteFile(summaryPath, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write dashboard summary: %w", err)
	}

	fmt.Printf("Dashboard written to %s\n", indexPath)
	return nil
}
