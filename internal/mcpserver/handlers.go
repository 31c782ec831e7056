package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/paystackoss/orgpulse/core"
	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/internal/githubapi"
	"github.com/paystackoss/orgpulse/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// configFor clones the base config and applies per-request overrides.
func (h *toolHandler) configFor(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if org := request.GetString("org", ""); org != "" {
		cfg.Organization = org
	}
	if category := request.GetString("category", ""); category != "" {
		cfg.Category = schema.ActionCategory(category)
	}
	if target := request.GetString("target", ""); target != "" {
		cfg.Target = target
	}
	return cfg
}

func (h *toolHandler) handleGetHealthMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.configFor(request)

	client := githubapi.NewClient(cfg.APIBaseURL, cfg.Token)
	snap, err := core.GatherContext(ctx, cfg, client, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("context gathering failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(snap.Metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleSelectActions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.configFor(request)

	client := githubapi.NewClient(cfg.APIBaseURL, cfg.Token)
	snap, err := core.GatherContext(ctx, cfg, client, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("context gathering failed: %v", err)), nil
	}

	plan, err := core.SelectActions(snap, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("action selection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(plan, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRunHealthReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.configFor(request)

	client := githubapi.NewClient(cfg.APIBaseURL, cfg.Token)
	snap, err := core.GatherContext(ctx, cfg, client, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("context gathering failed: %v", err)), nil
	}

	plan, err := core.SelectActions(snap, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("action selection failed: %v", err)), nil
	}

	// MCP runs are ephemeral, so skip run history tracking.
	summary, err := core.ExecutePlan(ctx, cfg, client, snap, plan, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("execution failed: %v", err)), nil
	}

	report := core.BuildReport(summary, cfg.Tuning, time.Now())
	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
