package prompt

import (
	"strings"
	"testing"

	"github.com/repoagent/repoagent/internal/llm"
)

func TestEvaluationMessagesStructure(t *testing.T) {
	messages := EvaluationMessages("Fix login", "Users cannot log in.", nil)

	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %q, want %q", messages[0].Role, llm.RoleSystem)
	}
	if !strings.Contains(messages[0].Content, "valid JSON") {
		t.Error("system prompt must demand JSON responses")
	}
	if messages[1].Role != llm.RoleUser {
		t.Errorf("second message role = %q, want %q", messages[1].Role, llm.RoleUser)
	}
}

func TestEvaluationMessagesIncludesIssue(t *testing.T) {
	messages := EvaluationMessages("Fix login", "Users cannot log in.", nil)
	user := messages[1].Content

	if !strings.Contains(user, "Title: Fix login") {
		t.Error("user prompt missing issue title")
	}
	if !strings.Contains(user, "Body: Users cannot log in.") {
		t.Error("user prompt missing issue body")
	}

	// Every field the decoder understands must be demanded by the prompt.
	for _, field := range []string{
		"summary", "completeness", "importance",
		"acceptance_criteria_evaluation", "labels",
		"ready_to_work", "base_story_not_clear", "refactored_story",
	} {
		if !strings.Contains(user, field) {
			t.Errorf("user prompt missing field %q", field)
		}
	}
}

func TestEvaluationMessagesExistingLabels(t *testing.T) {
	messages := EvaluationMessages("Fix login", "Body.", []string{"bug", "auth", "p1"})
	user := messages[1].Content

	if !strings.Contains(user, "Existing repository labels: bug, auth, p1") {
		t.Error("user prompt must list existing repository labels")
	}
}

func TestEvaluationMessagesNoLabels(t *testing.T) {
	messages := EvaluationMessages("Fix login", "Body.", nil)

	if strings.Contains(messages[1].Content, "Existing repository labels") {
		t.Error("labels line must be omitted when the repository has none")
	}
}
