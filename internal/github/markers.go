package github

import (
	"strings"

	"github.com/repoagent/repoagent/pkg/models"
)

// DisabledMarker is embedded in the comment posted by the /disable command.
// Its presence anywhere in the thread switches off automatic reviews.
const DisabledMarker = "<!-- agent:disabled -->"

// EvaluationMarker identifies the agent's evaluation comment for later
// re-discovery by the /apply command.
const EvaluationMarker = "AI-enhanced Evaluation"

// IsAgentDisabled reports whether any comment carries the disabled marker.
// The match is an exact, case-sensitive substring search.
func IsAgentDisabled(snap *models.IssueSnapshot, marker string) bool {
	return containsMarker(snap.Comments, marker, false)
}

// FindEvaluationComment returns the most recent comment carrying the
// evaluation marker, scanning newest-first with a case-insensitive match.
func FindEvaluationComment(snap *models.IssueSnapshot) (models.CommentNode, bool) {
	needle := strings.ToLower(EvaluationMarker)
	for i := len(snap.Comments) - 1; i >= 0; i-- {
		if strings.Contains(strings.ToLower(snap.Comments[i].Body), needle) {
			return snap.Comments[i], true
		}
	}
	return models.CommentNode{}, false
}
