package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paystackoss/orgpulse/schema"
)

func TestFilterByTarget(t *testing.T) {
	actions := []schema.Action{
		{Type: schema.ActionAnalyzeOrganization, Scope: schema.ScopeAll},
		{Type: schema.ActionAnalyzeRepository, Scope: "api-gateway"},
		{Type: schema.ActionAnalyzeRepository, Scope: "deploy-tool"},
		{Type: schema.ActionAnalyzeRepository, Scope: "docs-site"},
	}

	tests := []struct {
		name   string
		target string
		scopes []string
	}{
		{
			name:   "all keeps everything",
			target: "all",
			scopes: []string{"all", "api-gateway", "deploy-tool", "docs-site"},
		},
		{
			name:   "list keeps named repos and org actions",
			target: "api-gateway,docs-site",
			scopes: []string{"all", "api-gateway", "docs-site"},
		},
		{
			name:   "whitespace around names is tolerated",
			target: " deploy-tool , docs-site ",
			scopes: []string{"all", "deploy-tool", "docs-site"},
		},
		{
			name:   "unknown repos keep only org actions",
			target: "nonexistent",
			scopes: []string{"all"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filtered := FilterByTarget(actions, tc.target)
			var scopes []string
			for _, action := range filtered {
				scopes = append(scopes, action.Scope)
			}
			assert.Equal(t, tc.scopes, scopes)
		})
	}
}

func TestFilterByTargetAllBypassesSplitting(t *testing.T) {
	// A repo literally named "all" in a list target is a repo name, but the
	// bare target "all" is the wildcard and is never split.
	actions := []schema.Action{
		{Type: schema.ActionAnalyzeRepository, Scope: "api-gateway"},
	}

	filtered := FilterByTarget(actions, "all")
	assert.Equal(t, actions, filtered)
}
