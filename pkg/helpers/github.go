package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrGithubUserNotFound is returned when GitHub reports no such user.
var ErrGithubUserNotFound = errors.New("github user not found")

// GithubRepo is the subset of the GitHub repository listing the API exposes.
type GithubRepo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

// GithubClient fetches a user's public repositories.
type GithubClient struct {
	HTTP  *http.Client
	Token string // optional, raises the rate limit
}

func NewGithubClient(token string) *GithubClient {
	return &GithubClient{
		HTTP:  &http.Client{Timeout: 10 * time.Second},
		Token: token,
	}
}

// Repos returns the five most recently created public repositories.
func (g *GithubClient) Repos(ctx context.Context, username string) ([]GithubRepo, error) {
	u := fmt.Sprintf("https://api.github.com/users/%s/repos?per_page=5&sort=created:asc", url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "devconnector-api")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	res, err := g.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, ErrGithubUserNotFound
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("github responded with %s", res.Status)
	}

	var repos []GithubRepo
	if err := json.NewDecoder(res.Body).Decode(&repos); err != nil {
		return nil, err
	}
	return repos, nil
}
