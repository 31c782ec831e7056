package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paystackoss/orgpulse/schema"
)

func profileSnapshot(t *testing.T) *schema.ContextSnapshot {
	t.Helper()
	return snapshotFor(t, []schema.Repository{
		repoIdleFor("api-gateway", "a payments gateway service", "Go", 5),
		repoIdleFor("deploy-tool", "an internal deploy helper", "Python", 10),
		repoIdleFor("dormant", "a prototype from last year", "Go", 120),
	})
}

func TestRenderProfileSection(t *testing.T) {
	section := RenderProfileSection(profileSnapshot(t))

	assert.True(t, strings.HasPrefix(section, "## 📊 Organization Metrics"))
	assert.Contains(t, section, "| Public repositories | 3 |")
	assert.Contains(t, section, "| Active (30d) | 2 |")
	assert.Contains(t, section, "| Health score | 67% |")
	assert.Contains(t, section, "**Top languages:** Go (2), Python (1)")
	assert.Contains(t, section, "<!-- orgpulse: updated 2026-03-15T12:00:00Z -->")
}

func TestUpdateProfileReadmeReplacesSection(t *testing.T) {
	existing := "# Paystack OSS\n\nWelcome.\n\n" +
		"## 📊 Organization Metrics\n\nstale table\n\n" +
		"## Contributing\n\nSee CONTRIBUTING.md\n"

	updated := UpdateProfileReadme(existing, profileSnapshot(t))

	assert.Contains(t, updated, "# Paystack OSS")
	assert.Contains(t, updated, "## Contributing")
	assert.Contains(t, updated, "| Public repositories | 3 |")
	assert.NotContains(t, updated, "stale table")
	// Only one managed section survives the rewrite.
	assert.Equal(t, 1, strings.Count(updated, "## 📊 Organization Metrics"))
}

func TestUpdateProfileReadmeAppendsWhenMissing(t *testing.T) {
	existing := "# Paystack OSS\n\nWelcome.\n"

	updated := UpdateProfileReadme(existing, profileSnapshot(t))

	require.True(t, strings.HasPrefix(updated, "# Paystack OSS"))
	assert.Contains(t, updated, "## 📊 Organization Metrics")
}

func TestUpdateProfileReadmeEmptyContent(t *testing.T) {
	updated := UpdateProfileReadme("", profileSnapshot(t))
	assert.True(t, strings.HasPrefix(updated, "## 📊 Organization Metrics"))
}

func TestUpdateProfileReadmeSectionAtEOF(t *testing.T) {
	existing := "# Paystack OSS\n\n## 📊 Organization Metrics\n\nold content\n"

	updated := UpdateProfileReadme(existing, profileSnapshot(t))
	assert.NotContains(t, updated, "old content")
	assert.Contains(t, updated, "| Public repositories | 3 |")
}

func TestTopLanguagesOrdering(t *testing.T) {
	languages := map[string]int{
		"Go":         3,
		"Python":     3,
		"TypeScript": 5,
		"Ruby":       1,
		"Rust":       1,
		"Elixir":     1,
	}

	top := topLanguages(languages, 5)
	assert.Equal(t, []string{"TypeScript (5)", "Go (3)", "Python (3)", "Elixir (1)", "Ruby (1)"}, top)
}
