// Package githubapi implements the GitHub REST collaborator for orgpulse.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/paystackoss/orgpulse/internal/contract"
	"github.com/paystackoss/orgpulse/schema"
)

// defaultTimeout bounds a single API call.
const defaultTimeout = 30 * time.Second

// repoPageSize is the page size used for repository and issue listings.
// Pagination beyond the first page is out of scope for the pipeline.
const repoPageSize = 100

// Client talks to the GitHub REST API. A zero token is allowed; public
// organizations work unauthenticated at lower rate limits.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ contract.GitHubClient = (*Client)(nil) // Compile-time check

// NewClient creates a GitHub API client for the given base URL and token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// get performs a GET request against the API and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// GetOrganization fetches the organization profile.
func (c *Client) GetOrganization(ctx context.Context, org string) (schema.Organization, error) {
	var result schema.Organization
	if err := c.get(ctx, "/orgs/"+org, nil, &result); err != nil {
		return schema.Organization{}, fmt.Errorf("failed to fetch organization %s: %w", org, err)
	}
	return result, nil
}

// ListRepositories fetches the organization's repositories, most recently
// updated first.
func (c *Client) ListRepositories(ctx context.Context, org string) ([]schema.Repository, error) {
	query := url.Values{}
	query.Set("per_page", fmt.Sprintf("%d", repoPageSize))
	query.Set("sort", "updated")

	var result []schema.Repository
	if err := c.get(ctx, "/orgs/"+org+"/repos", query, &result); err != nil {
		return nil, fmt.Errorf("failed to list repositories for %s: %w", org, err)
	}
	return result, nil
}

// GetRepository fetches details for a single repository.
func (c *Client) GetRepository(ctx context.Context, org, name string) (schema.Repository, error) {
	var result schema.Repository
	if err := c.get(ctx, "/repos/"+org+"/"+name, nil, &result); err != nil {
		return schema.Repository{}, fmt.Errorf("failed to fetch repository %s/%s: %w", org, name, err)
	}
	return result, nil
}

// issueEntry is the slice of the issue payload needed to separate real
// issues from pull requests, which the issues endpoint also returns.
type issueEntry struct {
	Number      int  `json:"number"`
	PullRequest *any `json:"pull_request,omitempty"`
}

// CountOpenIssues returns the number of open issues for a repository,
// excluding pull requests.
func (c *Client) CountOpenIssues(ctx context.Context, org, name string) (int, error) {
	query := url.Values{}
	query.Set("state", "open")
	query.Set("per_page", fmt.Sprintf("%d", repoPageSize))

	var issues []issueEntry
	if err := c.get(ctx, "/repos/"+org+"/"+name+"/issues", query, &issues); err != nil {
		return 0, fmt.Errorf("failed to list issues for %s/%s: %w", org, name, err)
	}

	count := 0
	for _, issue := range issues {
		if issue.PullRequest == nil {
			count++
		}
	}
	return count, nil
}
