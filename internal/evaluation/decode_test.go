package evaluation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullResponse = `{
  "summary": "x",
  "completeness": {"title": "Yes", "description": "No", "acceptance_criteria": "No"},
  "importance": "i",
  "acceptance_criteria_evaluation": "e",
  "labels": ["bug"],
  "ready_to_work": false,
  "base_story_not_clear": false,
  "refactored_story": {"title": "T", "description": "D", "acceptance_criteria": ["A", "B"]}
}`

func TestDecodeResponse(t *testing.T) {
	rec, err := DecodeResponse(fullResponse)
	require.NoError(t, err)

	assert.Equal(t, "x", rec.Summary)
	assert.True(t, rec.TitleComplete)
	assert.False(t, rec.DescriptionComplete)
	assert.False(t, rec.AcceptanceCriteriaComplete)
	assert.Equal(t, "i", rec.Importance)
	assert.Equal(t, "e", rec.AcceptanceCriteriaEvaluation)
	assert.Equal(t, []string{"bug"}, rec.Labels)
	assert.False(t, rec.ReadyToWork)
	assert.False(t, rec.BaseStoryNotClear)
	assert.Equal(t, "T", rec.Refactored.Title)
	assert.Equal(t, "D", rec.Refactored.Description)
	assert.Equal(t, []string{"A", "B"}, rec.Refactored.AcceptanceCriteria)
}

func TestDecodeResponseRefactoredGatedByBooleans(t *testing.T) {
	tests := []struct {
		name     string
		readyTo  string
		notClear string
	}{
		{"ready to work", "true", "false"},
		{"base story not clear", "false", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := `{
  "summary": "x",
  "completeness": {"title": "Yes", "description": "No", "acceptance_criteria": "No"},
  "importance": "i",
  "acceptance_criteria_evaluation": "e",
  "labels": ["bug"],
  "ready_to_work": ` + tt.readyTo + `,
  "base_story_not_clear": ` + tt.notClear + `,
  "refactored_story": {"title": "T", "description": "D", "acceptance_criteria": ["A", "B"]}
}`
			rec, err := DecodeResponse(text)
			require.NoError(t, err)

			// The key is present but must be ignored: the gate is the
			// two booleans, not key existence.
			assert.True(t, rec.Refactored.IsEmpty())
		})
	}
}

func TestDecodeResponseCompletenessCaseInsensitive(t *testing.T) {
	text := `{
  "summary": "s",
  "completeness": {"title": "YES", "description": "yes", "acceptance_criteria": "nO"},
  "importance": "",
  "acceptance_criteria_evaluation": "",
  "labels": [],
  "ready_to_work": true,
  "base_story_not_clear": false
}`
	rec, err := DecodeResponse(text)
	require.NoError(t, err)

	assert.True(t, rec.TitleComplete)
	assert.True(t, rec.DescriptionComplete)
	assert.False(t, rec.AcceptanceCriteriaComplete)
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, err := DecodeResponse("not json")
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "not json", parseErr.Raw)
	assert.Contains(t, err.Error(), "not json")
}

func TestDecodeResponseStripsCodeFence(t *testing.T) {
	rec, err := DecodeResponse("```json\n" + fullResponse + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "x", rec.Summary)
}
