//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestOrgpulseWithMySQL tests the orgpulse CLI with a MySQL history backend.
func TestOrgpulseWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "orgpulse",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/orgpulse?parseTime=true", host, port.Port())
	runPipelineAgainstBackend(t, "mysql", connStr)
}

// TestOrgpulseWithPostgres tests the orgpulse CLI with a PostgreSQL history backend.
func TestOrgpulseWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	runPipelineAgainstBackend(t, "postgresql", connStr)
}

// runPipelineAgainstBackend exercises the full pipeline plus history
// subcommands against a live SQL backend.
func runPipelineAgainstBackend(t *testing.T, backend, connStr string) {
	t.Helper()
	api := newFakeGitHubAPI(t)
	workDir := t.TempDir()

	env := []string{
		"ORGPULSE_ORG=acme",
		"ORGPULSE_API_URL=" + api.URL,
		"ORGPULSE_HISTORY_BACKEND=" + backend,
		"ORGPULSE_HISTORY_DB_CONNECT=" + connStr,
	}

	// Migrations must apply on a fresh database and survive a down/up cycle
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "history", "migrate"))
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "history", "migrate", "--target-version", "0"))
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "history", "migrate"))

	// Start from a clean slate
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "history", "clear"))

	// Run the full pipeline twice so run IDs advance
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "run"))
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "run"))

	// History store should report both runs
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "history", "status"))

	// Export should produce Parquet artifacts
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "history", "export", "--output-file", "export"))

	// Staged commands should keep working off the persisted artifacts
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "check"))
	require.NoError(t, runOrgpulseCommand(t, workDir, env, "badge"))
}
