package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestActionParamsRoundTrip ensures the typed payload survives the trip
// through the plan file that connects the select and execute stages.
func TestActionParamsRoundTrip(t *testing.T) {
	action := Action{
		Type:     ActionAnalyzeRepository,
		Priority: 0.8,
		Goal:     GoalMaintenance,
		Scope:    "payment-gateway",
		Utility:  0.96,
		Params:   AnalyzeRepositoryParams{Repository: "payment-gateway", StalenessDays: 45},
	}

	data, err := json.Marshal(action)
	require.NoError(t, err)

	var decoded Action
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, action.Type, decoded.Type)
	assert.Equal(t, action.Utility, decoded.Utility)

	params, ok := decoded.Params.(AnalyzeRepositoryParams)
	require.True(t, ok, "params should decode to the repository payload")
	assert.Equal(t, "payment-gateway", params.Repository)
	assert.Equal(t, 45, params.StalenessDays)
}

// TestActionUnmarshalUnknownType verifies unknown action types are rejected
// rather than silently carrying raw params.
func TestActionUnmarshalUnknownType(t *testing.T) {
	raw := `{"type":"defragment_universe","priority":1.0,"goal":"quality","scope":"all","utility":1.0,"params":{"x":1}}`

	var decoded Action
	err := json.Unmarshal([]byte(raw), &decoded)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action type")
}

// TestActionUnmarshalNoParams verifies actions without params decode cleanly.
func TestActionUnmarshalNoParams(t *testing.T) {
	raw := `{"type":"security_scan_organization","priority":1.0,"goal":"security","scope":"all","utility":1.3}`

	var decoded Action
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, ActionSecurityScan, decoded.Type)
	assert.Nil(t, decoded.Params)
}
