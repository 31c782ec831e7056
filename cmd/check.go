package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Enforce health thresholds for CI/CD pipelines (fails build on critical status)",
	Long: `Grade the persisted health report against configurable thresholds and exit
non-zero when the organization's health is critical.

Default thresholds: excellent >= 95, good >= 80, warning >= 60. Anything
below warning is critical. The overall level is the worst level across the
health, documentation, activity and reliability categories.

Exit codes: 0 on pass, 2 on critical health, 1 on operational errors.

Examples:
  # Gate a scheduled workflow on organization health
  orgpulse check --org paystackoss

  # Stricter gate with custom cutoffs
  orgpulse check --org paystackoss --thresholds-override "excellent:97,good:90,warning:75"

  # Publish results as GitHub Actions outputs
  orgpulse check --org paystackoss --github-output "$GITHUB_OUTPUT"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		err := core.ExecuteCheck(cfg)
		if errors.Is(err, core.ErrCriticalHealth) {
			// Dedicated exit code so CI can tell policy failures from crashes.
			_, _ = fmt.Fprintf(os.Stderr, "Check failed: %v\n", err)
			os.Exit(2)
		}
		if err != nil {
			contract.LogFatal("Health check failed", err)
		}
	},
}
