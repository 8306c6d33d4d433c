// Package github provides GitHub access for the agent: issue reads go
// through the GraphQL API, writes go through the typed REST client.
package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"github.com/google/go-github/v41/github"
	"golang.org/x/oauth2"
)

const defaultRequestTimeout = 30 * time.Second

// Client wraps GitHub API operations.
type Client struct {
	exec *Executor
	rest *github.Client
}

// NewClient creates a new GitHub client authenticated with the given token.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("github token is required")
	}

	gql, err := api.NewGraphQLClient(api.ClientOptions{
		AuthToken: token,
		Timeout:   defaultRequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GraphQL client: %w", err)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	rest := github.NewClient(oauth2.NewClient(context.Background(), ts))

	return &Client{
		exec: NewExecutor(gql),
		rest: rest,
	}, nil
}

// Close releases resources.
func (c *Client) Close() error {
	return nil
}

// ParseRepo splits "owner/repo" into owner and repo.
func ParseRepo(fullRepo string) (string, string, error) {
	parts := strings.Split(fullRepo, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repo format: %s (expected owner/repo)", fullRepo)
	}
	return parts[0], parts[1], nil
}
