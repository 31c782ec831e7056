package core

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/paystackoss/orgpulse/schema"
)

const metricsHeading = "## 📊 Organization Metrics"

// metricsSection matches the managed README section from its heading up to
// the next heading or end of file.
var metricsSection = regexp.MustCompile(`(?s)## 📊 Organization Metrics.*?(\n## |\z)`)

// RenderProfileSection builds the managed metrics section for the
// organization profile README.
func RenderProfileSection(snap *schema.ContextSnapshot) string {
	metrics := snap.Metrics

	health := 0.0
	if metrics.TotalRepos > 0 {
		health = float64(metrics.ActiveRepos) / float64(metrics.TotalRepos) * 100
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", metricsHeading)
	fmt.Fprintf(&b, "| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(&b, "| Public repositories | %d |\n", metrics.TotalRepos)
	fmt.Fprintf(&b, "| Active (30d) | %d |\n", metrics.ActiveRepos)
	fmt.Fprintf(&b, "| Health score | %.0f%% |\n", health)

	if langs := topLanguages(metrics.Languages, 5); len(langs) > 0 {
		fmt.Fprintf(&b, "\n**Top languages:** %s\n", strings.Join(langs, ", "))
	}

	fmt.Fprintf(&b, "\n<!-- orgpulse: updated %s -->\n", snap.Timestamp.UTC().Format(time.RFC3339))
	return b.String()
}

// UpdateProfileReadme replaces the managed metrics section in the README
// content, or appends it when the section does not exist yet.
func UpdateProfileReadme(content string, snap *schema.ContextSnapshot) string {
	section := RenderProfileSection(snap)

	if loc := metricsSection.FindStringSubmatchIndex(content); loc != nil {
		// Keep the boundary that stopped the match (the next heading).
		boundary := content[loc[2]:loc[3]]
		return content[:loc[0]] + section + boundary + content[loc[1]:]
	}

	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return section
	}
	return trimmed + "\n\n" + section
}

// topLanguages returns up to limit languages ordered by repository count,
// ties broken alphabetically.
func topLanguages(languages map[string]int, limit int) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})

	n := min(len(names), limit)
	out := make([]string, 0, n)
	for _, name := range names[:n] {
		out = append(out, fmt.Sprintf("%s (%d)", name, languages[name]))
	}
	return out
}
