package cmd

import (
	"github.com/spf13/cobra"

	"github.com/paystackoss/orgpulse/internal/mcpserver"
)

// mcpCmd starts the Model Context Protocol server over stdio.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI assistant integration",
	Long: `Start a Model Context Protocol server that exposes orgpulse capabilities
to AI assistants over stdio.

Available tools:
  get_health_metrics - Compute organization health metrics
  select_actions     - Generate and rank orchestration actions
  run_health_report  - Run the full pipeline and return the report

The server communicates over stdio, so no flags beyond the shared
configuration are needed. All diagnostics go to stderr to keep the
protocol stream clean.

Examples:
  # Start the server (typically launched by an MCP client)
  ORGPULSE_ORG=paystackoss ORGPULSE_TOKEN=... orgpulse mcp`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Run shared setup directly so errors surface before stdio is claimed.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcpserver.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
