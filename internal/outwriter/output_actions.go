package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/schema"
)

// PrintActionPlan outputs the ranked action plan, dispatching based on the
// output format configured.
func PrintActionPlan(plan *schema.ActionPlan, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, plan)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePlanCSV(w, plan)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePlanTable(w, plan, cfg)
		}, "Wrote table")
	}
}

// writePlanCSV writes the action plan in CSV format.
func writePlanCSV(w io.Writer, plan *schema.ActionPlan) error {
	header := []string{"rank", "type", "scope", "goal", "priority", "utility"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, action := range plan.Actions {
			row := []string{
				strconv.Itoa(i + 1),
				string(action.Type),
				action.Scope,
				string(action.Goal),
				fmt.Sprintf("%.2f", action.Priority),
				fmt.Sprintf("%.2f", action.Utility),
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writePlanTable generates and writes the human-readable plan table.
func writePlanTable(w io.Writer, plan *schema.ActionPlan, cfg *contract.Config) error {
	fmt.Fprintf(w, "%s\n", header(cfg, "🎯", fmt.Sprintf("Action plan for %s (%s)", plan.Organization, plan.Category)))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Type", "Scope", "Goal", "Utility"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	maxScope := getMaxTableScopeWidth(cfg)
	var data [][]string
	for i, action := range plan.Actions {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			string(action.Type),
			contract.TruncateName(action.Scope, maxScope),
			string(action.Goal),
			fmt.Sprintf("%.2f", action.Utility),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	metrics := plan.Metrics
	_, err := fmt.Fprintf(w, "%d actions across %d repositories (%d active, %d outdated, %d doc gaps)\n",
		len(plan.Actions), metrics.TotalRepos, metrics.ActiveRepos, metrics.OutdatedRepos, metrics.DocumentationGaps)
	return err
}

// PrintSummary outputs the execution summary, dispatching based on the
// output format configured.
func PrintSummary(summary *schema.ExecutionSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summary)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summary, cfg)
		}, "Wrote table")
	}
}

// writeSummaryCSV writes the execution results in CSV format.
func writeSummaryCSV(w io.Writer, summary *schema.ExecutionSummary) error {
	header := []string{"type", "scope", "status", "duration_ms", "error"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, result := range summary.Results {
			row := []string{
				string(result.Type),
				result.Scope,
				string(result.Status),
				strconv.FormatInt(result.DurationMs, 10),
				result.Error,
			}
			if err := csvWriter.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}

// writeSummaryTable generates and writes the human-readable results table.
func writeSummaryTable(w io.Writer, summary *schema.ExecutionSummary, cfg *contract.Config) error {
	fmt.Fprintf(w, "%s\n", header(cfg, "⚙️", fmt.Sprintf("Execution results for %s", summary.Organization)))

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Type", "Scope", "Status", "Duration"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	maxScope := getMaxTableScopeWidth(cfg)
	var data [][]string
	for _, result := range summary.Results {
		data = append(data, []string{
			string(result.Type),
			contract.TruncateName(result.Scope, maxScope),
			string(result.Status),
			fmt.Sprintf("%dms", result.DurationMs),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "%d/%d completed, %d failed, %d skipped in %dms\n",
		summary.Completed, summary.Total, summary.Failed, summary.Skipped, summary.DurationMs)
	return err
}
