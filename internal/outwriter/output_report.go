package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/schema"
)

// PrintReport outputs the health report, dispatching based on the output
// format configured.
func PrintReport(report *schema.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(w, report, cfg)
		}, "Wrote report")
	}
}

// writeReportCSV writes the report scores in CSV format, one row per metric.
func writeReportCSV(w io.Writer, report *schema.Report) error {
	header := []string{"metric", "value"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		rows := [][]string{
			{"health_score", fmt.Sprintf("%.1f", report.HealthScore)},
			{"status", string(report.Status)},
			{"documentation_score", fmt.Sprintf("%.1f", report.DocumentationScore)},
			{"activity_score", fmt.Sprintf("%.1f", report.ActivityScore)},
			{"efficiency_score", fmt.Sprintf("%.1f", report.EfficiencyScore)},
			{"reliability_score", fmt.Sprintf("%.1f", report.ReliabilityScore)},
		}
		for _, row := range rows {
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeReportText generates the human-readable report view.
func writeReportText(w io.Writer, report *schema.Report, cfg *contract.Config) error {
	statusLabel := contract.GetPlainStatusLabel(report.Status)
	if cfg.UseColors {
		statusLabel = contract.GetColorStatusLabel(report.Status)
	}

	fmt.Fprintf(w, "%s\n", header(cfg, "📋", fmt.Sprintf("Health report for %s", report.Organization)))
	fmt.Fprintf(w, "Overall: %.1f (%s)\n\n", report.HealthScore, statusLabel)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Score"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Documentation", fmt.Sprintf("%.1f", report.DocumentationScore)},
		{"Activity", fmt.Sprintf("%.1f", report.ActivityScore)},
		{"Efficiency", fmt.Sprintf("%.1f", report.EfficiencyScore)},
		{"Reliability", fmt.Sprintf("%.1f", report.ReliabilityScore)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(report.TypeStats) > 0 {
		fmt.Fprintf(w, "\n%s\n", header(cfg, "📈", "Action performance"))
		for _, actionType := range sortedTypes(report.TypeStats) {
			stats := report.TypeStats[actionType]
			fmt.Fprintf(w, "  %s: %d/%d completed (%.0f%%)\n",
				actionType, stats.Completed, stats.Attempted, stats.SuccessRate)
		}
	}

	if len(report.Insights) > 0 {
		fmt.Fprintf(w, "\n%s\n", header(cfg, "💡", "Insights"))
		for _, insight := range report.Insights {
			fmt.Fprintf(w, "  - %s\n", insight)
		}
	}

	if len(report.Recommendations) > 0 {
		fmt.Fprintf(w, "\n%s\n", header(cfg, "🛠️", "Recommendations"))
		for _, rec := range report.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}

	return nil
}

// sortedTypes returns the action types of the stats map in stable order.
func sortedTypes(stats map[schema.ActionType]schema.TypeStats) []schema.ActionType {
	types := make([]schema.ActionType, 0, len(stats))
	for actionType := range stats {
		types = append(types, actionType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// PrintCheckResult outputs the threshold gate outcome.
func PrintCheckResult(result schema.CheckResult, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmt.Fprintf(w, "%s\n", header(cfg, "🚦", "Threshold check"))
		for _, category := range result.Categories {
			label := string(category.Level)
			if cfg.UseColors {
				label = contract.GetColorLevelLabel(category.Level)
			}
			fmt.Fprintf(w, "  %-14s %6.1f  %s\n", category.Name, category.Score, label)
		}

		overall := string(result.Overall)
		if cfg.UseColors {
			overall = contract.GetColorLevelLabel(result.Overall)
		}
		_, err := fmt.Fprintf(w, "Overall: %s\n", overall)
		return err
	}, "Wrote check result")
}

// PrintStoreStatus outputs run store status information.
func PrintStoreStatus(status schema.StoreStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		fmt.Fprintf(w, "%s\n", header(cfg, "🗄️", "Run history status"))
		fmt.Fprintf(w, "Backend: %s\n", status.Backend)
		fmt.Fprintf(w, "Connected: %t\n", status.Connected)
		fmt.Fprintf(w, "Total runs: %d\n", status.TotalRuns)
		if status.TotalRuns > 0 {
			fmt.Fprintf(w, "Last run: #%d at %s\n", status.LastRunID, status.LastRunTime.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "Oldest run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		}
		for _, table := range sortedTableNames(status.TableSizes) {
			fmt.Fprintf(w, "Table %s: %d rows\n", table, status.TableSizes[table])
		}
		return nil
	}, "Wrote status")
}

// sortedTableNames returns table names in stable order.
func sortedTableNames(sizes map[string]int64) []string {
	names := make([]string, 0, len(sizes))
	for name := range sizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
