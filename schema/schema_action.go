package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

// ActionParams is the closed set of per-action parameter payloads.
// Each action type carries exactly one payload shape, so executors can
// type-switch instead of digging through untyped maps.
type ActionParams interface {
	actionParams()
}

// AnalyzeOrganizationParams configures a whole-organization analysis.
type AnalyzeOrganizationParams struct {
	Depth string `json:"depth"`
}

// AnalyzeRepositoryParams configures a single-repository analysis.
type AnalyzeRepositoryParams struct {
	Repository    string `json:"repository"`
	StalenessDays int    `json:"staleness_days"`
}

// SyncProfileParams configures an organization profile sync.
type SyncProfileParams struct {
	Scope string `json:"scope"`
}

// DocumentationHealthParams configures a documentation health check.
type DocumentationHealthParams struct {
	GapCount int `json:"gap_count"`
}

// ActivityHealthParams configures an activity health check.
type ActivityHealthParams struct {
	OutdatedCount int `json:"outdated_count"`
}

// SecurityScanParams configures an organization security scan.
type SecurityScanParams struct {
	Scope string `json:"scope"`
}

func (AnalyzeOrganizationParams) actionParams() {}
func (AnalyzeRepositoryParams) actionParams()   {}
func (SyncProfileParams) actionParams()         {}
func (DocumentationHealthParams) actionParams() {}
func (ActivityHealthParams) actionParams()      {}
func (SecurityScanParams) actionParams()        {}

// Action is a single prioritized step in an orchestration plan.
// Scope is either ScopeAll for organization-level actions or the name of
// the repository the action targets.
type Action struct {
	Type     ActionType   `json:"type"`
	Priority float64      `json:"priority"`
	Goal     Goal         `json:"goal"`
	Scope    string       `json:"scope"`
	Utility  float64      `json:"utility"`
	Params   ActionParams `json:"params"`
}

// actionEnvelope mirrors Action with raw params for (un)marshalling.
type actionEnvelope struct {
	Type     ActionType      `json:"type"`
	Priority float64         `json:"priority"`
	Goal     Goal            `json:"goal"`
	Scope    string          `json:"scope"`
	Utility  float64         `json:"utility"`
	Params   json.RawMessage `json:"params,omitempty"`
}

// MarshalJSON encodes the action with its typed params inline.
func (a Action) MarshalJSON() ([]byte, error) {
	env := actionEnvelope{
		Type:     a.Type,
		Priority: a.Priority,
		Goal:     a.Goal,
		Scope:    a.Scope,
		Utility:  a.Utility,
	}
	if a.Params != nil {
		raw, err := json.Marshal(a.Params)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal params for %s: %w", a.Type, err)
		}
		env.Params = raw
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes the action, selecting the params payload by type.
func (a *Action) UnmarshalJSON(data []byte) error {
	var env actionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	a.Type = env.Type
	a.Priority = env.Priority
	a.Goal = env.Goal
	a.Scope = env.Scope
	a.Utility = env.Utility
	a.Params = nil

	if len(env.Params) == 0 {
		return nil
	}

	params, err := newParamsFor(env.Type)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(env.Params, params); err != nil {
		return fmt.Errorf("failed to unmarshal params for %s: %w", env.Type, err)
	}

	switch p := params.(type) {
	case *AnalyzeOrganizationParams:
		a.Params = *p
	case *AnalyzeRepositoryParams:
		a.Params = *p
	case *SyncProfileParams:
		a.Params = *p
	case *DocumentationHealthParams:
		a.Params = *p
	case *ActivityHealthParams:
		a.Params = *p
	case *SecurityScanParams:
		a.Params = *p
	}
	return nil
}

// newParamsFor returns a pointer to the empty payload for an action type.
func newParamsFor(t ActionType) (any, error) {
	switch t {
	case ActionAnalyzeOrganization:
		return &AnalyzeOrganizationParams{}, nil
	case ActionAnalyzeRepository:
		return &AnalyzeRepositoryParams{}, nil
	case ActionSyncProfile:
		return &SyncProfileParams{}, nil
	case ActionCheckDocumentation:
		return &DocumentationHealthParams{}, nil
	case ActionCheckActivity:
		return &ActivityHealthParams{}, nil
	case ActionSecurityScan:
		return &SecurityScanParams{}, nil
	default:
		return nil, fmt.Errorf("unknown action type: %s", t)
	}
}

// ActionPlan is the ranked output of the selection stage, handed to the
// executor as a JSON file.
type ActionPlan struct {
	Organization string         `json:"organization"`
	Category     ActionCategory `json:"category"`
	Target       string         `json:"target"`
	GeneratedAt  time.Time      `json:"generated_at"`
	Metrics      HealthMetrics  `json:"health_metrics"`
	Actions      []Action       `json:"actions"`
}
