package runstore

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystackoss/orgpulse/schema"
)

func newSQLiteStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "orgpulse_test.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

func TestRunStoreLifecycle(t *testing.T) {
	store := newSQLiteStore(t)
	startTime := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	runID, err := store.BeginRun("paystackoss", schema.CategoryComprehensive, startTime, map[string]any{"target": "all"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), runID)

	require.NoError(t, store.RecordAction(runID, schema.ActionResult{
		Type:       schema.ActionAnalyzeOrganization,
		Scope:      schema.ScopeAll,
		Status:     schema.StatusCompleted,
		DurationMs: 120,
		Details:    map[string]any{"total_repos": 12},
	}))
	require.NoError(t, store.RecordAction(runID, schema.ActionResult{
		Type:       schema.ActionAnalyzeRepository,
		Scope:      "api-gateway",
		Status:     schema.StatusFailed,
		DurationMs: 80,
		Error:      "boom",
	}))

	summary := &schema.ExecutionSummary{Total: 2, Completed: 1, Failed: 1}
	require.NoError(t, store.EndRun(runID, startTime.Add(3*time.Second), summary, 72.5))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, int64(1), run.RunID)
	assert.Equal(t, "paystackoss", run.Organization)
	assert.Equal(t, string(schema.CategoryComprehensive), run.Category)
	assert.True(t, run.StartTime.Equal(startTime))
	require.NotNil(t, run.EndTime)
	require.NotNil(t, run.DurationMs)
	assert.Equal(t, int32(3000), *run.DurationMs)
	assert.Equal(t, int32(2), run.TotalActions)
	assert.Equal(t, int32(1), run.Completed)
	assert.Equal(t, int32(1), run.Failed)
	require.NotNil(t, run.HealthScore)
	assert.InDelta(t, 72.5, *run.HealthScore, 1e-9)

	actions, err := store.GetAllActions()
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, string(schema.ActionAnalyzeOrganization), actions[0].ActionType)

	require.NotNil(t, actions[1].Detail)
	var detail map[string]any
	require.NoError(t, json.Unmarshal([]byte(*actions[1].Detail), &detail))
	assert.Equal(t, "boom", detail["error"])
}

func TestRunStoreSequentialIDs(t *testing.T) {
	store := newSQLiteStore(t)
	now := time.Now()

	first, err := store.BeginRun("paystackoss", schema.CategoryAnalyze, now, nil)
	require.NoError(t, err)
	second, err := store.BeginRun("paystackoss", schema.CategorySync, now, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
}

func TestRunStoreStatus(t *testing.T) {
	store := newSQLiteStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalRuns)

	startTime := time.Now().UTC().Truncate(time.Millisecond)
	runID, err := store.BeginRun("paystackoss", schema.CategoryHealthCheck, startTime, nil)
	require.NoError(t, err)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.True(t, status.LastRunTime.Equal(startTime))
	assert.Equal(t, int64(1), status.TableSizes[runsTable])
	assert.Equal(t, int64(0), status.TableSizes[runActionsTable])
}

func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	runID, err := store.BeginRun("paystackoss", schema.CategoryAnalyze, time.Now(), nil)
	require.NoError(t, err)
	assert.Zero(t, runID)

	require.NoError(t, store.RecordAction(0, schema.ActionResult{}))
	require.NoError(t, store.EndRun(0, time.Now(), &schema.ExecutionSummary{}, 0))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	assert.Nil(t, runs)
}

func TestRunStoreUnsupportedBackend(t *testing.T) {
	_, err := NewRunStore("oracle", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}
