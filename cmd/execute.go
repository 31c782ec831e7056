package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/internal/runstore"
)

// executeCmd runs a previously selected action plan.
var executeCmd = &cobra.Command{
	Use:   "execute",
	Short: "Run the persisted action plan against the GitHub API",
	Long: `Load the action plan produced by 'orgpulse select' and execute every
action in priority order.

Each action's outcome (completed, failed or skipped) is captured in the
results file (default: orgpulse_results.json), and the run is recorded in
the history backend unless tracking is disabled.

Examples:
  # Execute the default plan file
  orgpulse execute --org paystackoss

  # Execute a plan stored elsewhere, without run history
  orgpulse execute --org paystackoss --plan-file plans/weekly.json --history-backend none`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActions(rootCtx, cfg, runstore.Manager.GetRunStore()); err != nil {
			contract.LogFatal("Action execution failed", err)
		}
	},
}
