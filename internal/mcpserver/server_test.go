package mcpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/internal/mcpserver"
	"github.com/paystackoss/orgpulse/schema"
)

// newAPIServer serves a minimal GitHub API for one organization.
func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	recent := time.Now().AddDate(0, 0, -5).Format(time.RFC3339)
	stale := time.Now().AddDate(0, 0, -120).Format(time.RFC3339)

	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/paystackoss", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"login": "paystackoss",
			"name":  "Paystack OSS",
		})
	})
	mux.HandleFunc("/orgs/paystackoss/repos", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"name": "api-gateway", "description": "a payments gateway service", "language": "Go", "updated_at": recent},
			{"name": "dormant", "description": "a prototype from last year", "language": "Go", "updated_at": stale},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func baseConfig(apiURL string) *contract.Config {
	return &contract.Config{
		Organization: "paystackoss",
		Category:     schema.CategoryComprehensive,
		Target:       "all",
		APIBaseURL:   apiURL,
		Tuning:       schema.DefaultTuning(),
	}
}

func TestMCPServerSelectActions(t *testing.T) {
	api := newAPIServer(t)
	s := mcpserver.NewMCPServer(baseConfig(api.URL))

	tool := s.GetTool("select_actions")
	require.NotNil(t, tool, "Tool select_actions should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "select_actions",
			Arguments: map[string]any{
				"category": "analyze",
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var plan schema.ActionPlan
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &plan))
	assert.Equal(t, "paystackoss", plan.Organization)
	require.Len(t, plan.Actions, 2)
	assert.Equal(t, schema.ActionAnalyzeOrganization, plan.Actions[0].Type)
	assert.Equal(t, schema.ActionAnalyzeRepository, plan.Actions[1].Type)
}

func TestMCPServerGetHealthMetrics(t *testing.T) {
	api := newAPIServer(t)
	s := mcpserver.NewMCPServer(baseConfig(api.URL))

	tool := s.GetTool("get_health_metrics")
	require.NotNil(t, tool, "Tool get_health_metrics should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "get_health_metrics"},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var metrics schema.HealthMetrics
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &metrics))
	assert.Equal(t, 2, metrics.TotalRepos)
	assert.Equal(t, 1, metrics.ActiveRepos)
	assert.Equal(t, 1, metrics.OutdatedRepos)
}

func TestMCPServerUnreachableAPI(t *testing.T) {
	cfg := baseConfig("http://127.0.0.1:1")
	s := mcpserver.NewMCPServer(cfg)

	tool := s.GetTool("get_health_metrics")
	require.NotNil(t, tool)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "get_health_metrics"},
	})
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	assert.True(t, res.IsError, "The response should indicate an error state")
}
