package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repoagent/repoagent/internal/github"
)

const validTargetURI = "https://myres.openai.azure.com/openai/deployments/gpt-4o/chat/completions?api-version=2024-02-01"

func setIssueEventEnv(t *testing.T) {
	t.Setenv("INPUT_GITHUB_EVENT_NAME", "issues")
	t.Setenv("INPUT_GITHUB_ISSUE_ID", "42")
	t.Setenv("INPUT_GITHUB_TOKEN", "ghp_testtoken")
	t.Setenv("GITHUB_REPOSITORY", "acme/widgets")
	t.Setenv("INPUT_AZURE_OPENAI_TARGET_URI", validTargetURI)
	t.Setenv("INPUT_AZURE_OPENAI_API_KEY", "azure-key")
}

func TestLoadIssueEvent(t *testing.T) {
	setIssueEventEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, github.EventIssues, cfg.GitHub.EventName)
	assert.Equal(t, 42, cfg.GitHub.IssueNumber)
	assert.Equal(t, "acme", cfg.GitHub.Owner)
	assert.Equal(t, "widgets", cfg.GitHub.Repo)
	assert.Equal(t, ProviderAzure, cfg.Model.Provider, "azure is the default provider")
	assert.Equal(t, github.DisabledMarker, cfg.Options.DisabledMarker)
	assert.Equal(t, github.DefaultPageSize, cfg.Options.PageSize)
	assert.Equal(t, 3, cfg.Options.MaxLabels)
}

func TestLoadMissingVariables(t *testing.T) {
	t.Setenv("INPUT_GITHUB_EVENT_NAME", "issues")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_GITHUB_TOKEN")
	assert.Contains(t, err.Error(), "GITHUB_REPOSITORY")
	assert.Contains(t, err.Error(), "INPUT_GITHUB_ISSUE_ID")
}

func TestLoadInvalidEventName(t *testing.T) {
	setIssueEventEnv(t)
	t.Setenv("INPUT_GITHUB_EVENT_NAME", "pull_request")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported event name")
}

func TestLoadCommentEventRequiresCommentID(t *testing.T) {
	setIssueEventEnv(t)
	t.Setenv("INPUT_GITHUB_EVENT_NAME", "issue_comment")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_GITHUB_ISSUE_COMMENT_ID")

	t.Setenv("INPUT_GITHUB_ISSUE_COMMENT_ID", "9001")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(9001), cfg.GitHub.CommentID)
}

func TestLoadMalformedAzureURI(t *testing.T) {
	setIssueEventEnv(t)
	t.Setenv("INPUT_AZURE_OPENAI_TARGET_URI", "https://myres.openai.azure.com/nothing-useful")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INPUT_AZURE_OPENAI_TARGET_URI")
}

func TestLoadOtherProviders(t *testing.T) {
	setIssueEventEnv(t)
	t.Setenv("INPUT_MODEL_PROVIDER", "gemini")
	t.Setenv("INPUT_MODEL_NAME", "gemini-1.5-flash")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.Model.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.Model.Model)
}

func TestLoadOptionsFile(t *testing.T) {
	setIssueEventEnv(t)

	tmpDir := t.TempDir()
	optsPath := filepath.Join(tmpDir, "repoagent.yaml")
	content := `
disabled_marker: "<!-- bot:off -->"
page_size: 50
max_labels: 5
`
	require.NoError(t, os.WriteFile(optsPath, []byte(content), 0o644))

	cfg, err := Load(optsPath)
	require.NoError(t, err)

	assert.Equal(t, "<!-- bot:off -->", cfg.Options.DisabledMarker)
	assert.Equal(t, 50, cfg.Options.PageSize)
	assert.Equal(t, 5, cfg.Options.MaxLabels)
}

func TestLoadRejectsOversizedPageSize(t *testing.T) {
	setIssueEventEnv(t)

	tmpDir := t.TempDir()
	optsPath := filepath.Join(tmpDir, "repoagent.yaml")
	require.NoError(t, os.WriteFile(optsPath, []byte("page_size: 500\n"), 0o644))

	_, err := Load(optsPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page_size")
}

func TestFindOptionsPathPrefersExplicit(t *testing.T) {
	if got := FindOptionsPath("custom.yaml"); got != "custom.yaml" {
		t.Errorf("FindOptionsPath() = %q, want custom.yaml", got)
	}
}
