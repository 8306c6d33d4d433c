// Package config provides centralized configuration management for the
// application. The Config is built once at startup and passed down; nothing
// below the entry point reads the environment.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/repoagent/repoagent/internal/github"
)

// Model provider names.
const (
	ProviderAzure  = "azure"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all configuration parameters for a single run.
type Config struct {
	CheckAll bool
	GitHub   GitHubConfig
	Model    ModelConfig
	Options  Options
}

// GitHubConfig holds GitHub event and authentication parameters.
type GitHubConfig struct {
	EventName   github.EventType
	Token       string
	Owner       string
	Repo        string
	IssueNumber int
	CommentID   int64
}

// ModelConfig holds model-provider parameters.
type ModelConfig struct {
	Provider       string
	AzureTargetURI string
	APIKey         string
	Model          string
}

// Options holds non-secret behavior knobs, overridable from the yaml
// options file.
type Options struct {
	DisabledMarker string `yaml:"disabled_marker"`
	PageSize       int    `yaml:"page_size"`
	MaxLabels      int    `yaml:"max_labels"`
}

// Load builds the configuration from workflow environment variables plus an
// optional yaml options file, then validates it.
func Load(optionsPath string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("github.event_name", "INPUT_GITHUB_EVENT_NAME")
	v.BindEnv("github.issue_id", "INPUT_GITHUB_ISSUE_ID")
	v.BindEnv("github.token", "INPUT_GITHUB_TOKEN")
	v.BindEnv("github.repository", "GITHUB_REPOSITORY")
	v.BindEnv("github.comment_id", "INPUT_GITHUB_ISSUE_COMMENT_ID")
	v.BindEnv("model.provider", "INPUT_MODEL_PROVIDER")
	v.BindEnv("model.name", "INPUT_MODEL_NAME")
	v.BindEnv("model.azure_target_uri", "INPUT_AZURE_OPENAI_TARGET_URI")
	v.BindEnv("model.api_key", "INPUT_AZURE_OPENAI_API_KEY")
	v.BindEnv("check_all", "INPUT_CHECK_ALL")

	cfg := &Config{
		CheckAll: v.GetBool("check_all"),
		GitHub: GitHubConfig{
			EventName:   github.EventType(v.GetString("github.event_name")),
			Token:       v.GetString("github.token"),
			IssueNumber: v.GetInt("github.issue_id"),
			CommentID:   v.GetInt64("github.comment_id"),
		},
		Model: ModelConfig{
			Provider:       v.GetString("model.provider"),
			Model:          v.GetString("model.name"),
			AzureTargetURI: v.GetString("model.azure_target_uri"),
			APIKey:         v.GetString("model.api_key"),
		},
	}

	if repository := v.GetString("github.repository"); repository != "" {
		owner, repo, err := github.ParseRepo(repository)
		if err != nil {
			return nil, err
		}
		cfg.GitHub.Owner = owner
		cfg.GitHub.Repo = repo
	}

	opts, err := loadOptions(FindOptionsPath(optionsPath))
	if err != nil {
		return nil, err
	}
	cfg.Options = opts
	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Model.Provider == "" {
		cfg.Model.Provider = ProviderAzure
	}
	if cfg.Options.DisabledMarker == "" {
		cfg.Options.DisabledMarker = github.DisabledMarker
	}
	if cfg.Options.PageSize == 0 {
		cfg.Options.PageSize = github.DefaultPageSize
	}
	if cfg.Options.MaxLabels == 0 {
		cfg.Options.MaxLabels = 3
	}
}
