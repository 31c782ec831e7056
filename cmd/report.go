package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
)

// reportCmd distills execution results into a health report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the organization health report from execution results",
	Long: `Aggregate the persisted execution results into a single health report:
overall score, documentation and activity components, efficiency,
reliability, per-action-type success rates, insights and recommendations.

The report is written to the report file (default: orgpulse_report.json).

Examples:
  # Human-readable report
  orgpulse report --org paystackoss

  # Machine-readable report for tooling
  orgpulse report --org paystackoss --output json --output-file report.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(cfg); err != nil {
			contract.LogFatal("Report generation failed", err)
		}
	},
}
