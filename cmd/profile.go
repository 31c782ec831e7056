package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
)

// profileCmd refreshes the organization profile README metrics section.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Refresh the metrics section of the organization profile README",
	Long: `Update the managed "Organization Metrics" section of the organization's
profile README with current repository counts, activity and top languages.

Only the managed section is rewritten; the rest of the README is preserved.
A missing README is created from scratch.

Examples:
  # Update the checked-out .github profile repository
  orgpulse profile --org paystackoss --profile-file .github/profile/README.md`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProfile(rootCtx, cfg); err != nil {
			contract.LogFatal("Profile update failed", err)
		}
	},
}
