package config

import (
	"fmt"

	"github.com/repoagent/repoagent/internal/github"
	"github.com/repoagent/repoagent/internal/llm"
)

// ValidationError reports a single invalid or missing configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validate(cfg *Config) error {
	var missing []string

	if cfg.GitHub.Token == "" {
		missing = append(missing, "INPUT_GITHUB_TOKEN")
	}
	if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		missing = append(missing, "GITHUB_REPOSITORY")
	}
	if cfg.GitHub.EventName == "" {
		missing = append(missing, "INPUT_GITHUB_EVENT_NAME")
	}
	if cfg.GitHub.IssueNumber <= 0 {
		missing = append(missing, "INPUT_GITHUB_ISSUE_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}

	if _, err := github.ParseEventType(string(cfg.GitHub.EventName)); err != nil {
		return ValidationError{"INPUT_GITHUB_EVENT_NAME", err.Error()}
	}
	if cfg.GitHub.EventName == github.EventIssueComment && cfg.GitHub.CommentID == 0 {
		return ValidationError{"INPUT_GITHUB_ISSUE_COMMENT_ID", "required for issue_comment events"}
	}

	switch cfg.Model.Provider {
	case ProviderAzure:
		if cfg.Model.AzureTargetURI == "" {
			return ValidationError{"INPUT_AZURE_OPENAI_TARGET_URI", "required for the azure provider"}
		}
		if _, _, _, err := llm.ParseAzureTargetURI(cfg.Model.AzureTargetURI); err != nil {
			return ValidationError{"INPUT_AZURE_OPENAI_TARGET_URI", err.Error()}
		}
		if cfg.Model.APIKey == "" {
			return ValidationError{"INPUT_AZURE_OPENAI_API_KEY", "required for the azure provider"}
		}
	case ProviderOpenAI, ProviderGemini:
		if cfg.Model.APIKey == "" {
			return ValidationError{"INPUT_AZURE_OPENAI_API_KEY", "api key required for the " + cfg.Model.Provider + " provider"}
		}
	default:
		return ValidationError{"INPUT_MODEL_PROVIDER", fmt.Sprintf("must be %q, %q, or %q", ProviderAzure, ProviderOpenAI, ProviderGemini)}
	}

	if cfg.Options.PageSize < 1 || cfg.Options.PageSize > github.DefaultPageSize {
		return ValidationError{"page_size", fmt.Sprintf("must be between 1 and %d", github.DefaultPageSize)}
	}

	return nil
}
