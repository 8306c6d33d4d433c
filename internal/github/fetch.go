package github

import (
	"context"
	"time"

	"github.com/repoagent/repoagent/pkg/models"
)

// DefaultPageSize is the comment page size requested per GraphQL call.
const DefaultPageSize = 100

// PageInfo is the GraphQL pagination cursor for a comments connection.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

const issueWithCommentsQuery = `
query IssueWithComments($owner: String!, $name: String!, $number: Int!, $pageSize: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    issue(number: $number) {
      id
      number
      title
      body
      state
      url
      createdAt
      updatedAt
      author { login }
      labels(first: 50) { nodes { name color } }
      comments(first: $pageSize, after: $after) {
        totalCount
        pageInfo { hasNextPage endCursor }
        nodes {
          id
          databaseId
          body
          createdAt
          updatedAt
          author { login }
        }
      }
    }
  }
}
`

type actorNode struct {
	Login string `json:"login"`
}

type commentWire struct {
	ID         string     `json:"id"`
	DatabaseID int64      `json:"databaseId"`
	Body       string     `json:"body"`
	CreatedAt  string     `json:"createdAt"`
	UpdatedAt  string     `json:"updatedAt"`
	Author     *actorNode `json:"author"`
}

type issueWire struct {
	Number int        `json:"number"`
	Title  string     `json:"title"`
	Body   string     `json:"body"`
	State  string     `json:"state"`
	URL    string     `json:"url"`
	Author *actorNode `json:"author"`
	Labels struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
	} `json:"labels"`
	Comments struct {
		TotalCount int           `json:"totalCount"`
		PageInfo   PageInfo      `json:"pageInfo"`
		Nodes      []commentWire `json:"nodes"`
	} `json:"comments"`
}

type issueQueryResponse struct {
	Repository *struct {
		Issue *issueWire `json:"issue"`
	} `json:"repository"`
}

// FetchIssue fetches one issue with a single comments page via GraphQL.
// An empty after cursor requests the first page. A missing repository or
// issue is fatal. FetchedPages is 1 for the first page and 0 otherwise;
// the caller accumulates the true page count across calls.
func (c *Client) FetchIssue(ctx context.Context, owner, repo string, number, pageSize int, after string) (*models.IssueSnapshot, PageInfo) {
	if pageSize <= 0 || pageSize > DefaultPageSize {
		pageSize = DefaultPageSize
	}

	variables := map[string]interface{}{
		"owner":    owner,
		"name":     repo,
		"number":   number,
		"pageSize": pageSize,
	}
	if after != "" {
		variables["after"] = after
	} else {
		variables["after"] = nil
	}

	var resp issueQueryResponse
	c.exec.Execute(ctx, issueWithCommentsQuery, variables, &resp)

	if resp.Repository == nil {
		c.exec.Fatal("repository not found", "owner", owner, "repo", repo)
	}
	if resp.Repository.Issue == nil {
		c.exec.Fatal("issue not found", "owner", owner, "repo", repo, "number", number)
	}

	snap := snapshotFromWire(resp.Repository.Issue, after == "")
	return snap, resp.Repository.Issue.Comments.PageInfo
}

func snapshotFromWire(issue *issueWire, firstPage bool) *models.IssueSnapshot {
	labels := make([]string, 0, len(issue.Labels.Nodes))
	for _, l := range issue.Labels.Nodes {
		if l.Name != "" {
			labels = append(labels, l.Name)
		}
	}

	comments := make([]models.CommentNode, 0, len(issue.Comments.Nodes))
	for _, node := range issue.Comments.Nodes {
		author := ""
		if node.Author != nil {
			author = node.Author.Login
		}
		comments = append(comments, models.CommentNode{
			ID:         node.ID,
			DatabaseID: node.DatabaseID,
			Body:       node.Body,
			Author:     author,
			CreatedAt:  parseTimestamp(node.CreatedAt),
			UpdatedAt:  parseTimestamp(node.UpdatedAt),
		})
	}

	author := ""
	if issue.Author != nil {
		author = issue.Author.Login
	}

	fetchedPages := 0
	if firstPage {
		fetchedPages = 1
	}

	return &models.IssueSnapshot{
		Number:       issue.Number,
		Title:        issue.Title,
		Body:         issue.Body,
		State:        issue.State,
		Author:       author,
		URL:          issue.URL,
		Labels:       labels,
		Comments:     comments,
		FetchedPages: fetchedPages,
		HadTruncated: issue.Comments.PageInfo.HasNextPage,
	}
}

// parseTimestamp is best-effort: a snapshot with an approximate timestamp
// beats no snapshot at all.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Now()
	}
	return t
}
