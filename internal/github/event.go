package github

import "fmt"

// EventType is the closed set of GitHub Actions events the agent handles.
type EventType string

const (
	// EventIssues fires when an issue is opened or edited.
	EventIssues EventType = "issues"
	// EventIssueComment fires when a comment is added to an issue.
	EventIssueComment EventType = "issue_comment"
)

// ParseEventType validates an event name from the workflow environment.
func ParseEventType(name string) (EventType, error) {
	switch EventType(name) {
	case EventIssues:
		return EventIssues, nil
	case EventIssueComment:
		return EventIssueComment, nil
	default:
		return "", fmt.Errorf("unsupported event name: %q (expected %q or %q)", name, EventIssues, EventIssueComment)
	}
}
