package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/repoagent/repoagent/internal/agent"
	"github.com/repoagent/repoagent/internal/config"
	"github.com/repoagent/repoagent/internal/github"
	"github.com/repoagent/repoagent/internal/llm"
	"github.com/repoagent/repoagent/internal/logging"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process a GitHub issue event",
		Long: `Read the event from the workflow environment, fetch the issue with its
comments, and either post an AI evaluation (issues event) or act on a
comment command (issue_comment event).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			runID := uuid.NewString()

			cfg, err := config.Load(optionsFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			logging.Info("starting run",
				"run_id", runID,
				"event", cfg.GitHub.EventName,
				"repo", cfg.GitHub.Owner+"/"+cfg.GitHub.Repo,
				"issue", cfg.GitHub.IssueNumber,
				"token", logging.MaskSensitive(cfg.GitHub.Token))

			ghClient, err := github.NewClient(cfg.GitHub.Token)
			if err != nil {
				return fmt.Errorf("failed to create GitHub client: %w", err)
			}
			defer ghClient.Close()

			snap, page := ghClient.FetchIssue(ctx, cfg.GitHub.Owner, cfg.GitHub.Repo, cfg.GitHub.IssueNumber, cfg.Options.PageSize, "")
			snap = ghClient.PaginateComments(ctx, cfg.GitHub.Owner, cfg.GitHub.Repo, cfg.GitHub.IssueNumber, snap, page, cfg.Options.DisabledMarker)

			logging.Info("issue fetched", "issue", snap.Number, "title", snap.Title, "state", snap.State, "comments", len(snap.Comments))

			existingLabels, err := ghClient.ListRepoLabels(ctx, cfg.GitHub.Owner, cfg.GitHub.Repo)
			if err != nil {
				return err
			}

			provider, err := newModelProvider(&cfg.Model)
			if err != nil {
				return fmt.Errorf("failed to create model provider: %w", err)
			}
			defer provider.Close()

			a := agent.New(cfg, ghClient, provider, dryRun)

			switch cfg.GitHub.EventName {
			case github.EventIssues:
				return a.HandleIssueEvent(ctx, snap, existingLabels, false)
			case github.EventIssueComment:
				return a.HandleCommentEvent(ctx, snap, cfg.GitHub.CommentID, existingLabels)
			default:
				return fmt.Errorf("no handler for event: %s", cfg.GitHub.EventName)
			}
		},
	}
}

func newModelProvider(cfg *config.ModelConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case config.ProviderAzure:
		return llm.NewAzureProvider(cfg.AzureTargetURI, cfg.APIKey)
	case config.ProviderOpenAI:
		return llm.NewOpenAIProvider(cfg.APIKey, cfg.Model)
	case config.ProviderGemini:
		return llm.NewGeminiProvider(cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
}
