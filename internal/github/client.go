// Package github fetches public repository listings for profile pages.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrUserNotFound is returned when the username has no GitHub account.
var ErrUserNotFound = errors.New("github user not found")

// Repository is the summary of one public repository.
type Repository struct {
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// Client looks up repositories through the GitHub REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client against the given API base URL. Every request is
// bounded by the timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// RecentRepositories returns up to 5 of the user's most recently created
// public repositories.
func (c *Client) RecentRepositories(ctx context.Context, username string) ([]Repository, error) {
	endpoint := fmt.Sprintf(
		"%s/users/%s/repos?per_page=5&sort=created&direction=desc",
		c.baseURL,
		url.PathEscape(username),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("github: unexpected status %d", resp.StatusCode)
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, err
	}

	return repos, nil
}
