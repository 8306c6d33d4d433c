// Package evaluation holds the user-story evaluation record and the codecs
// that move it between the model's JSON output and the canonical markdown
// comment. The posted comment is the only durable state the agent has: it is
// re-parsed on follow-up commands, so encode and decode must stay in sync.
package evaluation

import (
	"fmt"
	"strings"
)

// Record is a structured evaluation of an issue as an engineering user story.
type Record struct {
	Summary                      string
	TitleComplete                bool
	DescriptionComplete          bool
	AcceptanceCriteriaComplete   bool
	Importance                   string
	AcceptanceCriteriaEvaluation string
	Labels                       []string
	ReadyToWork                  bool
	BaseStoryNotClear            bool

	// Refactored is never nil-like: an empty story stands in when no
	// refactor applies, which keeps downstream formatting unconditional.
	Refactored RefactoredStory
}

// RefactoredStory is the model's rewritten version of an incomplete story.
type RefactoredStory struct {
	Title              string
	Description        string
	AcceptanceCriteria []string
}

// IsEmpty reports whether the story carries no content.
func (s RefactoredStory) IsEmpty() bool {
	return s.Title == "" && s.Description == "" && len(s.AcceptanceCriteria) == 0
}

// Markdown renders the full story fragment.
func (s RefactoredStory) Markdown() string {
	var lines []string
	if s.Title != "" {
		lines = append(lines, fmt.Sprintf("**Title**: %s\n", s.Title))
	}
	if body := s.BodyMarkdown(); body != "" {
		lines = append(lines, body)
	}
	return strings.Join(lines, "\n")
}

// BodyMarkdown renders the description and acceptance criteria without the
// title, in the shape used as an issue body by the apply command.
func (s RefactoredStory) BodyMarkdown() string {
	var lines []string
	if s.Description != "" {
		lines = append(lines, fmt.Sprintf("**Description**: %s\n", s.Description))
	}
	if len(s.AcceptanceCriteria) > 0 {
		lines = append(lines, "**Acceptance Criteria**:")
		for _, criterion := range s.AcceptanceCriteria {
			lines = append(lines, "- "+criterion)
		}
	}
	return strings.Join(lines, "\n")
}
