// Package prompt builds the chat messages sent to the model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/repoagent/repoagent/internal/llm"
)

const systemPrompt = "You are a helpful assistant that analyzes and improves GitHub issues using natural language. " +
	"All responses must be valid JSON."

// EvaluationMessages builds the user-story evaluation prompt. The response
// format it demands is exactly what evaluation.DecodeResponse parses.
// Existing repository labels are included so suggestions reuse them instead
// of inventing new ones.
func EvaluationMessages(issueTitle, issueBody string, existingLabels []string) []llm.Message {
	var sb strings.Builder

	sb.WriteString("## GitHub Issue Context\n")
	fmt.Fprintf(&sb, "Title: %s\n", issueTitle)
	fmt.Fprintf(&sb, "Body: %s\n\n", issueBody)

	if len(existingLabels) > 0 {
		fmt.Fprintf(&sb, "Existing repository labels: %s\n\n", strings.Join(existingLabels, ", "))
	}

	sb.WriteString("## Evaluation Instructions\n")
	sb.WriteString("You must return your response as a single valid JSON object. Do not include any markdown, code blocks, or extra commentary.\n\n")
	sb.WriteString("Assess the issue as a candidate user story for engineering work. Your response must include the following fields:\n")
	sb.WriteString("- summary: A concise, AI-enhanced summary or insight about the story.\n")
	sb.WriteString("- completeness: An object with keys 'title', 'description', and 'acceptance_criteria', each with values 'Yes' or 'No'.\n")
	sb.WriteString("- importance: Why the story matters (business value, user need, technical dependency).\n")
	sb.WriteString("- acceptance_criteria_evaluation: Analysis of the acceptance criteria for clarity, specificity, and testability via automation. If not automatable, include a warning and suggest improvements.\n")
	sb.WriteString("- labels: An array of up to 3 relevant GitHub labels. Prefer the existing repository labels listed above.\n")
	sb.WriteString("- ready_to_work: Boolean. True if all elements are present, clear purpose, and testable acceptance criteria.\n")
	sb.WriteString("- base_story_not_clear: Boolean. True if the title or description is vague, placeholder-like, or lacks meaningful value (e.g. 'Test', 'TBD', 'No update provided').\n")
	sb.WriteString("- refactored_story: An object with keys 'title', 'description', and 'acceptance_criteria' (an array of strings). Only include this if ready_to_work is False AND base_story_not_clear is False. If any field is unchanged, copy it verbatim from the original.\n\n")
	sb.WriteString("If base_story_not_clear is True or ready_to_work is True, omit the 'refactored_story' field entirely.\n\n")
	sb.WriteString("Example JSON response:\n")
	sb.WriteString(`{
  "summary": "<your insight>",
  "completeness": {
    "title": "Yes",
    "description": "Yes",
    "acceptance_criteria": "No"
  },
  "importance": "<why it matters>",
  "acceptance_criteria_evaluation": "<analysis + any testability warning>",
  "labels": ["bug", "enhancement"],
  "ready_to_work": false,
  "base_story_not_clear": false,
  "refactored_story": {
    "title": "Refined or original title",
    "description": "Expanded or original explanation with business value or user need",
    "acceptance_criteria": [
      "criterion one",
      "criterion two"
    ]
  }
}
`)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: sb.String()},
	}
}
