//go:build integration || database

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

var (
	// sharedBinaryPath holds the path to a shared orgpulse binary built once for all tests.
	sharedBinaryPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getOrgpulseBinary returns the path to the orgpulse binary, building it once if needed.
func getOrgpulseBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "orgpulse-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		binaryPath := filepath.Join(tempDir, "orgpulse")
		buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/orgpulse")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build orgpulse: %v", err))
		}

		sharedBinaryPath = binaryPath
	})

	return sharedBinaryPath
}

// runOrgpulseCommand runs the orgpulse binary in dir with the given args and env.
func runOrgpulseCommand(t *testing.T, dir string, env []string, args ...string) error {
	t.Helper()
	binaryPath := getOrgpulseBinary()
	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}

// newFakeGitHubAPI serves a small fixed organization so pipeline commands can
// run end to end without GitHub credentials.
func newFakeGitHubAPI(t *testing.T) *httptest.Server {
	t.Helper()
	recent := time.Now().AddDate(0, 0, -3).Format(time.RFC3339)
	stale := time.Now().AddDate(0, 0, -200).Format(time.RFC3339)

	mux := http.NewServeMux()
	mux.HandleFunc("/orgs/acme", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"login":        "acme",
			"name":         "Acme Corp",
			"description":  "an example organization",
			"public_repos": 3,
			"followers":    12,
		})
	})
	mux.HandleFunc("/orgs/acme/repos", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"name": "api", "description": "the public API service layer", "language": "Go", "stargazers_count": 40, "updated_at": recent},
			{"name": "web", "description": "frontend", "language": "TypeScript", "stargazers_count": 12, "updated_at": recent},
			{"name": "legacy", "description": "", "language": "Ruby", "stargazers_count": 2, "updated_at": stale, "archived": true},
		})
	})
	mux.HandleFunc("/repos/acme/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/issues") {
			_ = json.NewEncoder(w).Encode([]map[string]any{
				{"number": 1},
				{"number": 2, "pull_request": map[string]any{}},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "api", "description": "the public API service layer",
			"language": "Go", "stargazers_count": 40, "updated_at": recent,
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
