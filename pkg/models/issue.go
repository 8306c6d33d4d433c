package models

import (
	"fmt"
	"time"
)

// Issue states as reported by the GitHub GraphQL API.
const (
	StateOpen   = "OPEN"
	StateClosed = "CLOSED"
)

// IssueSnapshot is an immutable, point-in-time view of a GitHub issue and its
// comments, assembled from one or more GraphQL comment pages.
type IssueSnapshot struct {
	Number       int           `json:"number"`
	Title        string        `json:"title"`
	Body         string        `json:"body"`
	State        string        `json:"state"` // "OPEN" or "CLOSED"
	Author       string        `json:"author"`
	URL          string        `json:"url"`
	Labels       []string      `json:"labels"`
	Comments     []CommentNode `json:"comments"`
	FetchedPages int           `json:"fetched_pages"`
	HadTruncated bool          `json:"had_truncated"` // true if more comment pages exist beyond what was fetched
}

// CommentNode is a single comment on an issue.
type CommentNode struct {
	ID         string    `json:"id"`          // GraphQL node ID
	DatabaseID int64     `json:"database_id"` // REST-side numeric ID, 0 when absent
	Body       string    `json:"body"`
	Author     string    `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Ref returns the issue reference in owner/repo#number form.
func (s *IssueSnapshot) Ref(owner, repo string) string {
	return fmt.Sprintf("%s/%s#%d", owner, repo, s.Number)
}

// CommentByDatabaseID returns the comment with the given numeric ID, if it is
// present in the snapshot. A zero ID never matches; it marks a comment whose
// numeric ID was absent.
func (s *IssueSnapshot) CommentByDatabaseID(id int64) (CommentNode, bool) {
	if id == 0 {
		return CommentNode{}, false
	}
	for _, c := range s.Comments {
		if c.DatabaseID == id {
			return c, true
		}
	}
	return CommentNode{}, false
}
