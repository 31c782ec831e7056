// Package mcpserver provides the Model Context Protocol (MCP) server implementation.
package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/paystackoss/orgpulse/internal/contract"
)

// NewMCPServer initializes and configures the orgpulse MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Orgpulse Health Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_health_metrics ---
	s.AddTool(mcp.NewTool("get_health_metrics",
		mcp.WithDescription("Fetch a GitHub organization's repositories and compute health metrics (activity, documentation gaps, language mix)."),
		mcp.WithString("org", mcp.Description("GitHub organization login (defaults to the configured organization).")),
	), h.handleGetHealthMetrics)

	// --- 2. Tool: select_actions ---
	s.AddTool(mcp.NewTool("select_actions",
		mcp.WithDescription("Generate and rank orchestration actions for an organization based on its current health."),
		mcp.WithString("org", mcp.Description("GitHub organization login.")),
		mcp.WithString("category", mcp.Description("Action category (analyze, sync, health_check, security_scan, comprehensive). Defaults to 'comprehensive'."), mcp.Enum("analyze", "sync", "health_check", "security_scan", "comprehensive")),
		mcp.WithString("target", mcp.Description("Comma-separated repository names to target, or 'all'.")),
	), h.handleSelectActions)

	// --- 3. Tool: run_health_report ---
	s.AddTool(mcp.NewTool("run_health_report",
		mcp.WithDescription("Run the full pipeline (select, execute, report) and return the health report."),
		mcp.WithString("org", mcp.Description("GitHub organization login.")),
		mcp.WithString("category", mcp.Description("Action category to run. Defaults to 'comprehensive'."), mcp.Enum("analyze", "sync", "health_check", "security_scan", "comprehensive")),
	), h.handleRunHealthReport)

	return s
}

// StartMCPServer starts the orgpulse MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
