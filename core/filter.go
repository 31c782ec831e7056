package core

import (
	"strings"

	"github.com/paystackoss/orgpulse/schema"
)

// FilterByTarget narrows actions to the requested repositories. The target
// "all" is checked before any splitting and keeps everything. Otherwise
// the target is a comma-separated repository list; organization-level
// actions (scope "all") always survive. Order is never changed.
func FilterByTarget(actions []schema.Action, target string) []schema.Action {
	if target == schema.ScopeAll {
		return actions
	}

	wanted := make(map[string]struct{})
	for part := range strings.SplitSeq(target, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			wanted[trimmed] = struct{}{}
		}
	}

	filtered := make([]schema.Action, 0, len(actions))
	for _, action := range actions {
		if action.Scope == schema.ScopeAll {
			filtered = append(filtered, action)
			continue
		}
		if _, ok := wanted[action.Scope]; ok {
			filtered = append(filtered, action)
		}
	}
	return filtered
}
