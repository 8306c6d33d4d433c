package github

import (
	"context"
	"fmt"
	"testing"

	"github.com/repoagent/repoagent/pkg/models"
)

func comment(id, body string) models.CommentNode {
	return models.CommentNode{ID: id, Body: body}
}

// pageFixtures builds a fetch func serving pages 2..n keyed by cursor
// "cursor-<page-1>", and counts calls.
func pageFixtures(pages map[string][]models.CommentNode, lastCursor string) (fetchFunc, *int) {
	calls := 0
	fetch := func(ctx context.Context, after string) (*models.IssueSnapshot, PageInfo) {
		calls++
		comments, ok := pages[after]
		if !ok {
			panic(fmt.Sprintf("unexpected cursor %q", after))
		}
		next := nextCursor(after)
		info := PageInfo{HasNextPage: after != lastCursor, EndCursor: next}
		return &models.IssueSnapshot{Comments: comments}, info
	}
	return fetch, &calls
}

func nextCursor(cursor string) string {
	var n int
	fmt.Sscanf(cursor, "cursor-%d", &n)
	return fmt.Sprintf("cursor-%d", n+1)
}

func TestPaginateNotTruncatedMakesNoCalls(t *testing.T) {
	snap := &models.IssueSnapshot{
		Number:       1,
		Comments:     []models.CommentNode{comment("a", "hello")},
		FetchedPages: 1,
		HadTruncated: false,
	}
	fetch, calls := pageFixtures(nil, "")

	got := paginateComments(context.Background(), snap, PageInfo{}, DisabledMarker, EvaluationMarker, fetch)

	if *calls != 0 {
		t.Errorf("fetch calls = %d, want 0", *calls)
	}
	if got.FetchedPages != 1 {
		t.Errorf("FetchedPages = %d, want 1", got.FetchedPages)
	}
}

func TestPaginateBothMarkersOnFirstPage(t *testing.T) {
	snap := &models.IssueSnapshot{
		Number: 1,
		Comments: []models.CommentNode{
			comment("a", "review done\n"+DisabledMarker),
			comment("b", "### 🤖 **AI-enhanced Evaluation**\n..."),
		},
		FetchedPages: 1,
		HadTruncated: true,
	}
	fetch, calls := pageFixtures(nil, "")

	paginateComments(context.Background(), snap, PageInfo{HasNextPage: true, EndCursor: "cursor-1"}, DisabledMarker, EvaluationMarker, fetch)

	if *calls != 0 {
		t.Errorf("fetch calls = %d, want 0", *calls)
	}
}

func TestPaginateStopsAtPageWithSecondMarker(t *testing.T) {
	// Five pages total. Evaluation marker on page 1, disabled marker on
	// page 3: pagination must stop after page 3, never touching 4 or 5.
	snap := &models.IssueSnapshot{
		Number:       7,
		Comments:     []models.CommentNode{comment("a", "ai-enhanced evaluation present")},
		FetchedPages: 1,
		HadTruncated: true,
	}
	pages := map[string][]models.CommentNode{
		"cursor-1": {comment("b", "just chatter")},
		"cursor-2": {comment("c", "shutting this off "+DisabledMarker)},
		"cursor-3": {comment("d", "never fetched")},
		"cursor-4": {comment("e", "never fetched")},
	}
	fetch, calls := pageFixtures(pages, "cursor-4")

	got := paginateComments(context.Background(), snap, PageInfo{HasNextPage: true, EndCursor: "cursor-1"}, DisabledMarker, EvaluationMarker, fetch)

	if *calls != 2 {
		t.Errorf("fetch calls = %d, want 2 (pages 2 and 3)", *calls)
	}
	if got.FetchedPages != 3 {
		t.Errorf("FetchedPages = %d, want 3", got.FetchedPages)
	}
	if len(got.Comments) != 3 {
		t.Errorf("len(Comments) = %d, want 3", len(got.Comments))
	}
	if !got.HadTruncated {
		t.Error("HadTruncated = false, want true (pages remained)")
	}
}

func TestPaginateExhaustsPagesWhenMarkersAbsent(t *testing.T) {
	snap := &models.IssueSnapshot{
		Number:       9,
		Comments:     []models.CommentNode{comment("a", "nothing here")},
		FetchedPages: 1,
		HadTruncated: true,
	}
	pages := map[string][]models.CommentNode{
		"cursor-1": {comment("b", "more chatter")},
		"cursor-2": {comment("c", "still nothing")},
	}
	fetch, calls := pageFixtures(pages, "cursor-2")

	got := paginateComments(context.Background(), snap, PageInfo{HasNextPage: true, EndCursor: "cursor-1"}, DisabledMarker, EvaluationMarker, fetch)

	if *calls != 2 {
		t.Errorf("fetch calls = %d, want 2", *calls)
	}
	if got.HadTruncated {
		t.Error("HadTruncated = true, want false after exhausting pages")
	}
	if got.FetchedPages != 3 {
		t.Errorf("FetchedPages = %d, want 3", got.FetchedPages)
	}
}

func TestPaginateDisabledMarkerIsCaseSensitive(t *testing.T) {
	// A wrong-case disabled marker must not count; the matching evaluation
	// marker is case-insensitive, so pagination continues for the disabled
	// marker only.
	snap := &models.IssueSnapshot{
		Number: 3,
		Comments: []models.CommentNode{
			comment("a", "<!-- AGENT:DISABLED -->"),
			comment("b", "AI-ENHANCED EVALUATION"),
		},
		FetchedPages: 1,
		HadTruncated: true,
	}
	pages := map[string][]models.CommentNode{
		"cursor-1": {comment("c", DisabledMarker)},
	}
	fetch, calls := pageFixtures(pages, "cursor-1")

	paginateComments(context.Background(), snap, PageInfo{HasNextPage: true, EndCursor: "cursor-1"}, DisabledMarker, EvaluationMarker, fetch)

	if *calls != 1 {
		t.Errorf("fetch calls = %d, want 1 (exact-case marker on page 2)", *calls)
	}
}
