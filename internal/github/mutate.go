package github

import (
	"context"
	"fmt"

	"github.com/google/go-github/v41/github"
	"github.com/repoagent/repoagent/internal/logging"
	"github.com/repoagent/repoagent/pkg/models"
)

// CreateComment posts a comment on an issue.
func (c *Client) CreateComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: github.String(body)}
	if _, _, err := c.rest.Issues.CreateComment(ctx, owner, repo, number, comment); err != nil {
		return fmt.Errorf("failed to create comment on %s/%s#%d: %w", owner, repo, number, err)
	}
	return nil
}

// UpdateIssue edits an issue's title, body, and labels. Empty fields are
// left untouched so a partial refactored story never blanks existing content.
func (c *Client) UpdateIssue(ctx context.Context, owner, repo string, number int, title, body string, labels []string) error {
	req := &github.IssueRequest{}
	changed := false

	if title != "" {
		req.Title = github.String(title)
		changed = true
	}
	if body != "" {
		req.Body = github.String(body)
		changed = true
	}
	if len(labels) > 0 {
		req.Labels = &labels
		changed = true
	}
	if !changed {
		logging.Debug("nothing to update", "issue", number)
		return nil
	}

	if _, _, err := c.rest.Issues.Edit(ctx, owner, repo, number, req); err != nil {
		return fmt.Errorf("failed to update issue %s/%s#%d: %w", owner, repo, number, err)
	}

	logging.Info("issue updated", "issue", number, "title_changed", title != "", "body_changed", body != "", "labels", len(labels))
	return nil
}

// GetComment fetches a single comment by its numeric ID.
func (c *Client) GetComment(ctx context.Context, owner, repo string, commentID int64) (models.CommentNode, error) {
	comment, _, err := c.rest.Issues.GetComment(ctx, owner, repo, commentID)
	if err != nil {
		return models.CommentNode{}, fmt.Errorf("failed to get comment %d: %w", commentID, err)
	}

	node := models.CommentNode{
		ID:         comment.GetNodeID(),
		DatabaseID: comment.GetID(),
		Body:       comment.GetBody(),
		Author:     comment.GetUser().GetLogin(),
		CreatedAt:  comment.GetCreatedAt(),
		UpdatedAt:  comment.GetUpdatedAt(),
	}
	return node, nil
}

// ListRepoLabels returns the names of all labels defined in the repository.
func (c *Client) ListRepoLabels(ctx context.Context, owner, repo string) ([]string, error) {
	var names []string
	opts := &github.ListOptions{PerPage: 100}

	for {
		labels, resp, err := c.rest.Issues.ListLabels(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list labels for %s/%s: %w", owner, repo, err)
		}
		for _, l := range labels {
			names = append(names, l.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return names, nil
}
