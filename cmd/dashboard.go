package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
)

// dashboardCmd renders the static HTML dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render a static HTML dashboard from the latest report",
	Long: `Render the persisted health report and execution results into a static
dashboard directory containing index.html and summary.json.

The output is self-contained and can be published with GitHub Pages or any
static file host.

Examples:
  # Render into ./dashboard
  orgpulse dashboard --org paystackoss

  # Render into the Pages publish directory
  orgpulse dashboard --org paystackoss --dashboard-dir public`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDashboard(cfg); err != nil {
			contract.LogFatal("Dashboard generation failed", err)
		}
	},
}
