package evaluation

import (
	"fmt"
	"strings"
)

// heading contains the literal marker substring used to rediscover the
// evaluation comment in the thread later.
const heading = "### 🤖 **AI-enhanced Evaluation**"

const unclearNote = "**❌ Refactored Story could not be provided because the original story is unclear " +
	"or lacks meaningful value. Please rewrite the title and description to clearly explain " +
	"the story's purpose and value.**"

const (
	glyphDone    = "✅"
	glyphNotDone = "❌"
)

func glyph(v bool) string {
	if v {
		return glyphDone
	}
	return glyphNotDone
}

// Markdown renders the record as the canonical evaluation comment. The
// template is deterministic: the comment is re-parsed by RecordFromMarkdown
// when a follow-up command arrives, so section order and labels are fixed.
func (r *Record) Markdown() string {
	lines := []string{
		heading,
		fmt.Sprintf("**Summary**: %s", r.Summary),
		"**Completeness**:",
		fmt.Sprintf(" - Title: %s\n", glyph(r.TitleComplete)),
		fmt.Sprintf(" - Description: %s\n", glyph(r.DescriptionComplete)),
		fmt.Sprintf(" - Acceptance Criteria: %s\n\n", glyph(r.AcceptanceCriteriaComplete)),
		fmt.Sprintf("**Importance**: %s\n\n", r.Importance),
		fmt.Sprintf("**Acceptance Criteria Evaluation**: %s\n\n", r.AcceptanceCriteriaEvaluation),
		fmt.Sprintf("**Suggested Labels**: %s\n\n", strings.Join(r.Labels, ", ")),
		fmt.Sprintf("**Ready to Work**: %s\n", glyph(r.ReadyToWork)),
	}

	if !r.ReadyToWork && r.BaseStoryNotClear {
		lines = append(lines, "\n"+unclearNote)
	}
	if !r.Refactored.IsEmpty() && !r.ReadyToWork && !r.BaseStoryNotClear {
		lines = append(lines,
			"\n### Refactored Story",
			r.Refactored.Markdown(),
			"\n Reply `/apply` to apply these changes.\n",
		)
	}

	lines = append(lines,
		"\n Reply `/review` to run another evaluation.\n",
		"\n Reply `/usage` to see available commands.\n",
	)

	return strings.Join(lines, "\n")
}

// RecordFromMarkdown reconstructs a Record from a previously posted
// evaluation comment. It scans line by line for the bolded labels used by
// Markdown, turning glyphs back into booleans.
func RecordFromMarkdown(md string) *Record {
	rec := &Record{}
	var refactoredLines []string
	inRefactored := false

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "**Summary**:"):
			rec.Summary = valueAfter(line)
		case strings.HasPrefix(trimmed, "- Title:"):
			rec.TitleComplete = glyphToBool(valueAfter(line))
		case strings.HasPrefix(trimmed, "- Description:"):
			rec.DescriptionComplete = glyphToBool(valueAfter(line))
		case strings.HasPrefix(trimmed, "- Acceptance Criteria:"):
			rec.AcceptanceCriteriaComplete = glyphToBool(valueAfter(line))
		case strings.HasPrefix(line, "**Importance**:"):
			rec.Importance = valueAfter(line)
		case strings.HasPrefix(line, "**Acceptance Criteria Evaluation**:"):
			rec.AcceptanceCriteriaEvaluation = valueAfter(line)
		case strings.HasPrefix(line, "**Suggested Labels**:"):
			rec.Labels = splitLabels(valueAfter(line))
		case strings.HasPrefix(line, "**Ready to Work**:"):
			rec.ReadyToWork = glyphToBool(valueAfter(line))
		case strings.Contains(line, "Base Story Not Clear:"):
			rec.BaseStoryNotClear = glyphToBool(valueAfter(line))
		case strings.Contains(line, "could not be provided because the original story is unclear"):
			rec.BaseStoryNotClear = true
		case strings.HasPrefix(trimmed, "### Refactored Story"):
			inRefactored = true
		case inRefactored:
			refactoredLines = append(refactoredLines, line)
		}
	}

	if len(refactoredLines) > 0 {
		rec.Refactored = StoryFromMarkdown(strings.Join(refactoredLines, "\n"))
	}
	return rec
}

// StoryFromMarkdown parses a refactored story fragment. Section headers are
// matched case-insensitively; acceptance criteria collect `-` bullet lines
// until the first non-bullet line.
func StoryFromMarkdown(md string) RefactoredStory {
	var story RefactoredStory
	inCriteria := false

	for _, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		switch {
		case strings.HasPrefix(lower, "**title**:"):
			story.Title = strings.TrimSpace(trimmed[len("**title**:"):])
			inCriteria = false
		case strings.HasPrefix(lower, "**description**:"):
			story.Description = strings.TrimSpace(trimmed[len("**description**:"):])
			inCriteria = false
		case strings.HasPrefix(lower, "**acceptance criteria**:"):
			inCriteria = true
		case inCriteria && strings.HasPrefix(trimmed, "-"):
			story.AcceptanceCriteria = append(story.AcceptanceCriteria, strings.TrimSpace(strings.TrimLeft(trimmed, "- ")))
		case inCriteria:
			inCriteria = false
		}
	}
	return story
}

func valueAfter(line string) string {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func glyphToBool(s string) bool {
	return strings.TrimSpace(s) == glyphDone
}

func splitLabels(s string) []string {
	var labels []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}
