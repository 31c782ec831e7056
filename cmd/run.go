package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/internal/runstore"
)

// runCmd chains select, execute and report in one invocation.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: select, execute and report",
	Long: `Run the whole pipeline in one go. The plan, results and report artifacts
are still written at each stage, so downstream commands like 'check',
'badge' and 'dashboard' keep working afterwards.

Examples:
  # Nightly health sweep
  orgpulse run --org paystackoss

  # Security-focused run with JSON output
  orgpulse run --org paystackoss --action-type security_scan --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePipeline(rootCtx, cfg, runstore.Manager.GetRunStore()); err != nil {
			contract.LogFatal("Pipeline run failed", err)
		}
	},
}
