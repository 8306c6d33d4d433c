package github

import (
	"context"
	"strings"

	"github.com/repoagent/repoagent/internal/logging"
	"github.com/repoagent/repoagent/pkg/models"
)

type fetchFunc func(ctx context.Context, after string) (*models.IssueSnapshot, PageInfo)

// PaginateComments fetches additional comment pages until both the disabled
// marker and the AI evaluation marker have been found, or no pages remain.
// The caller's PageInfo from the initial fetch is the cursor source, so the
// first page is never requested twice.
func (c *Client) PaginateComments(ctx context.Context, owner, repo string, number int, snap *models.IssueSnapshot, page PageInfo, disabledMarker string) *models.IssueSnapshot {
	fetch := func(ctx context.Context, after string) (*models.IssueSnapshot, PageInfo) {
		return c.FetchIssue(ctx, owner, repo, number, DefaultPageSize, after)
	}
	return paginateComments(ctx, snap, page, disabledMarker, EvaluationMarker, fetch)
}

func paginateComments(ctx context.Context, snap *models.IssueSnapshot, page PageInfo, disabledMarker, evalMarker string, fetch fetchFunc) *models.IssueSnapshot {
	if !snap.HadTruncated {
		logging.Debug("all comments fetched in initial page", "issue", snap.Number)
		return snap
	}

	foundDisabled := containsMarker(snap.Comments, disabledMarker, false)
	foundEval := containsMarker(snap.Comments, evalMarker, true)
	if foundDisabled && foundEval {
		logging.Debug("both markers found in initial page", "issue", snap.Number)
		return snap
	}

	after := page.EndCursor
	for pageNum := 2; after != ""; pageNum++ {
		logging.Debug("fetching comment page", "issue", snap.Number, "page", pageNum)

		next, info := fetch(ctx, after)

		snap.Comments = append(snap.Comments, next.Comments...)
		snap.FetchedPages = pageNum
		snap.HadTruncated = info.HasNextPage

		// Only the newly fetched comments need scanning.
		if !foundDisabled {
			foundDisabled = containsMarker(next.Comments, disabledMarker, false)
		}
		if !foundEval {
			foundEval = containsMarker(next.Comments, evalMarker, true)
		}

		if foundDisabled && foundEval {
			logging.Debug("both markers found", "issue", snap.Number, "pages", pageNum)
			break
		}
		if !info.HasNextPage {
			break
		}
		after = info.EndCursor
	}

	logging.Info("comment pagination complete", "issue", snap.Number, "pages", snap.FetchedPages, "comments", len(snap.Comments))
	return snap
}

// containsMarker reports whether any comment body contains the marker.
// The disabled marker is matched case-sensitively, the evaluation marker
// case-insensitively.
func containsMarker(comments []models.CommentNode, marker string, foldCase bool) bool {
	needle := marker
	if foldCase {
		needle = strings.ToLower(marker)
	}
	for _, c := range comments {
		body := c.Body
		if foldCase {
			body = strings.ToLower(body)
		}
		if strings.Contains(body, needle) {
			return true
		}
	}
	return false
}
