package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
)

// badgeCmd writes the shields.io endpoint payload.
var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Write a shields.io badge payload for the latest health report",
	Long: `Generate a shields.io endpoint JSON payload from the persisted health
report. When no report exists yet, an "unknown" badge is written instead so
the badge endpoint never breaks.

Serve the file from GitHub Pages or any static host and reference it with:
  https://img.shields.io/endpoint?url=<raw-url-of-badge.json>

Examples:
  # Default badge.json in the working directory
  orgpulse badge --org paystackoss

  # Place it next to the published dashboard
  orgpulse badge --org paystackoss --badge-file dashboard/badge.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBadge(cfg); err != nil {
			contract.LogFatal("Badge generation failed", err)
		}
	},
}
