package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
)

// selectCmd builds the ranked action plan.
var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Gather organization context and rank maintenance actions",
	Long: `Fetch the organization's repositories, compute health metrics and produce
a prioritized action plan without executing anything.

The plan is written to the plan file (default: orgpulse_actions.json) so that
'orgpulse execute' can run it later, in CI or by hand.

Examples:
  # Rank every applicable action for an organization
  orgpulse select --org paystackoss

  # Only consider documentation and activity checks
  orgpulse select --org paystackoss --action-type health_check

  # Narrow the plan to two repositories
  orgpulse select --org paystackoss --target-repos api-gateway,billing`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSelect(rootCtx, cfg); err != nil {
			contract.LogFatal("Action selection failed", err)
		}
	},
}
