// Package cmd defines the command-line interface for orgpulse.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("org", "o", "", "GitHub organization login to operate on")
	rootCmd.PersistentFlags().String("token", "", "GitHub API token (prefer ORGPULSE_TOKEN env var)")
	rootCmd.PersistentFlags().StringP("action-type", "a", string(schema.CategoryComprehensive), "Action category: analyze or sync or health_check or security_scan or comprehensive")
	rootCmd.PersistentFlags().StringP("target-repos", "t", contract.DefaultTarget, "Comma-separated repository names to target, or 'all'")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("plan-file", contract.DefaultPlanFile, "Path of the action plan artifact")
	rootCmd.PersistentFlags().String("results-file", contract.DefaultResultsFile, "Path of the execution results artifact")
	rootCmd.PersistentFlags().String("report-file", contract.DefaultReportFile, "Path of the health report artifact")
	rootCmd.PersistentFlags().String("api-url", contract.DefaultAPIBaseURL, "GitHub API base URL (override for GitHub Enterprise)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().String("thresholds-override", "", "Check thresholds for CI/CD gating (format: 'excellent:95,good:80,warning:60')")
	checkCmd.Flags().String("github-output", "", "Path of the GitHub Actions output file (usually $GITHUB_OUTPUT)")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of badgeCmd to Viper
	badgeCmd.Flags().String("badge-file", "badge.json", "Path of the shields.io badge payload")
	if err := viper.BindPFlags(badgeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding badge flags", err)
	}

	// Bind all flags of dashboardCmd to Viper
	dashboardCmd.Flags().String("dashboard-dir", "dashboard", "Directory to render the static dashboard into")
	if err := viper.BindPFlags(dashboardCmd.Flags()); err != nil {
		contract.LogFatal("Error binding dashboard flags", err)
	}

	// Bind all flags of profileCmd to Viper
	profileCmd.Flags().String("profile-file", "profile/README.md", "Path of the organization profile README")
	if err := viper.BindPFlags(profileCmd.Flags()); err != nil {
		contract.LogFatal("Error binding profile flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
