package evaluation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseError is returned when model output cannot be parsed into a Record.
// It carries the raw text for diagnosis.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse model response: %v: %s", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type storyPayload struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
}

type responsePayload struct {
	Summary      string `json:"summary"`
	Completeness struct {
		Title              string `json:"title"`
		Description        string `json:"description"`
		AcceptanceCriteria string `json:"acceptance_criteria"`
	} `json:"completeness"`
	Importance                   string        `json:"importance"`
	AcceptanceCriteriaEvaluation string        `json:"acceptance_criteria_evaluation"`
	Labels                       []string      `json:"labels"`
	ReadyToWork                  bool          `json:"ready_to_work"`
	BaseStoryNotClear            bool          `json:"base_story_not_clear"`
	RefactoredStory              *storyPayload `json:"refactored_story"`
}

// DecodeResponse parses raw model output into a Record. The output must be a
// single JSON object; a leading/trailing code fence is tolerated since models
// add them despite instructions. The refactored story is only taken when the
// record is neither ready to work nor unclear — presence of the key alone
// does not count.
func DecodeResponse(text string) (*Record, error) {
	var payload responsePayload
	if err := json.Unmarshal([]byte(stripFences(text)), &payload); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}

	rec := &Record{
		Summary:                      payload.Summary,
		TitleComplete:                isYes(payload.Completeness.Title),
		DescriptionComplete:          isYes(payload.Completeness.Description),
		AcceptanceCriteriaComplete:   isYes(payload.Completeness.AcceptanceCriteria),
		Importance:                   payload.Importance,
		AcceptanceCriteriaEvaluation: payload.AcceptanceCriteriaEvaluation,
		Labels:                       payload.Labels,
		ReadyToWork:                  payload.ReadyToWork,
		BaseStoryNotClear:            payload.BaseStoryNotClear,
	}

	if !payload.ReadyToWork && !payload.BaseStoryNotClear && payload.RefactoredStory != nil {
		rec.Refactored = RefactoredStory{
			Title:              payload.RefactoredStory.Title,
			Description:        payload.RefactoredStory.Description,
			AcceptanceCriteria: payload.RefactoredStory.AcceptanceCriteria,
		}
	}

	return rec, nil
}

func isYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
