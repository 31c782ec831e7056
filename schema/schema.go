// Package schema has configs, models and shared constants for all parts of orgpulse.
package schema

import "time"

// Organization represents the GitHub organization profile under analysis.
type Organization struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Blog        string `json:"blog"`
	Location    string `json:"location"`
	Email       string `json:"email"`
	HTMLURL     string `json:"html_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
}

// Repository represents a single repository from the organization listing.
// UpdatedAt is kept as the raw API timestamp string; it is parsed during
// health metric computation so a malformed value can be reported with the
// repository name attached instead of failing deep inside JSON decoding.
type Repository struct {
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	OpenIssuesCount int    `json:"open_issues_count"`
	Archived        bool   `json:"archived"`
	Private         bool   `json:"private"`
	HTMLURL         string `json:"html_url"`
	UpdatedAt       string `json:"updated_at"`
}

// HealthMetrics summarizes the activity and documentation posture of an
// organization's repositories at a point in time.
type HealthMetrics struct {
	TotalRepos        int            `json:"total_repos"`
	ActiveRepos       int            `json:"active_repos"`
	OutdatedRepos     int            `json:"outdated_repos"`
	DocumentationGaps int            `json:"documentation_gaps"`
	Languages         map[string]int `json:"languages"`
}

// ContextSnapshot bundles everything the action selector needs: the org
// profile, its repositories and the derived health metrics.
type ContextSnapshot struct {
	Organization Organization  `json:"organization"`
	Repositories []Repository  `json:"repositories"`
	Metrics      HealthMetrics `json:"health_metrics"`
	Timestamp    time.Time     `json:"timestamp"`
}
