// Package agent implements the event pipeline: evaluate an issue on issue
// events, and act on comment commands on comment events.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/repoagent/repoagent/internal/command"
	"github.com/repoagent/repoagent/internal/config"
	"github.com/repoagent/repoagent/internal/evaluation"
	"github.com/repoagent/repoagent/internal/github"
	"github.com/repoagent/repoagent/internal/llm"
	"github.com/repoagent/repoagent/internal/logging"
	"github.com/repoagent/repoagent/internal/prompt"
	"github.com/repoagent/repoagent/pkg/models"
)

// IssueWriter is the mutation capability the agent needs. The snapshot stays
// read-only; all writes go through this interface.
type IssueWriter interface {
	CreateComment(ctx context.Context, owner, repo string, number int, body string) error
	UpdateIssue(ctx context.Context, owner, repo string, number int, title, body string, labels []string) error
	GetComment(ctx context.Context, owner, repo string, commentID int64) (models.CommentNode, error)
}

// Agent processes one issue event per run.
type Agent struct {
	cfg    *config.Config
	gh     IssueWriter
	llm    llm.Provider
	dryRun bool
}

// New creates an agent.
func New(cfg *config.Config, gh IssueWriter, provider llm.Provider, dryRun bool) *Agent {
	return &Agent{
		cfg:    cfg,
		gh:     gh,
		llm:    provider,
		dryRun: dryRun,
	}
}

// HandleIssueEvent evaluates the issue and posts the result as a comment.
// Automatic runs are skipped when the thread carries the disabled marker;
// manual runs (triggered by /review) ignore it.
func (a *Agent) HandleIssueEvent(ctx context.Context, snap *models.IssueSnapshot, existingLabels []string, manual bool) error {
	if !manual && github.IsAgentDisabled(snap, a.cfg.Options.DisabledMarker) {
		logging.Info("skipping automatic review, agent disabled", "issue", snap.Number)
		return nil
	}

	messages := prompt.EvaluationMessages(snap.Title, snap.Body, existingLabels)
	text, err := a.llm.Chat(ctx, messages)
	if err != nil {
		return fmt.Errorf("model completion failed: %w", err)
	}

	rec, err := evaluation.DecodeResponse(text)
	if err != nil {
		return err
	}

	body := rec.Markdown()
	if a.dryRun {
		logging.Info("dry run, not posting evaluation", "issue", snap.Number)
		fmt.Println(body)
		return nil
	}

	if err := a.gh.CreateComment(ctx, a.cfg.GitHub.Owner, a.cfg.GitHub.Repo, snap.Number, body); err != nil {
		return err
	}
	logging.Info("evaluation posted", "issue", snap.Number, "ready_to_work", rec.ReadyToWork)
	return nil
}

// HandleCommentEvent dispatches on the command in the triggering comment.
func (a *Agent) HandleCommentEvent(ctx context.Context, snap *models.IssueSnapshot, commentID int64, existingLabels []string) error {
	comment, ok := snap.CommentByDatabaseID(commentID)
	if !ok {
		// Not in the fetched pages; fall back to a direct lookup.
		var err error
		comment, err = a.gh.GetComment(ctx, a.cfg.GitHub.Owner, a.cfg.GitHub.Repo, commentID)
		if err != nil {
			return err
		}
	}

	switch cmd := command.Parse(comment.Body); cmd {
	case command.Apply:
		return a.applyEvaluation(ctx, snap)
	case command.Review:
		logging.Info("manual review requested", "issue", snap.Number)
		return a.HandleIssueEvent(ctx, snap, existingLabels, true)
	case command.Usage:
		return a.postComment(ctx, snap.Number, "### 🤖 Available Commands\n\n"+command.UsageMarkdown())
	case command.Disable:
		notice := fmt.Sprintf(
			"🛑 Automatic reviews have been disabled for this issue. Comment `%s` to manually trigger future evaluations.%s",
			command.Review.Token(), a.cfg.Options.DisabledMarker,
		)
		return a.postComment(ctx, snap.Number, notice)
	case command.None:
		logging.Info("comment does not require processing", "issue", snap.Number, "comment_id", commentID)
		return nil
	default:
		return fmt.Errorf("unhandled command: %v", cmd)
	}
}

// applyEvaluation recovers the last posted evaluation from the thread and
// applies its refactored story and labels to the issue.
func (a *Agent) applyEvaluation(ctx context.Context, snap *models.IssueSnapshot) error {
	evalComment, found := github.FindEvaluationComment(snap)
	if !found {
		logging.Info("no evaluation comment found, nothing to apply", "issue", snap.Number)
		return nil
	}

	rec := evaluation.RecordFromMarkdown(evalComment.Body)

	if err := a.updateIssue(ctx, snap.Number, rec); err != nil {
		return err
	}

	quoted := quote(strings.TrimSpace(rec.Markdown()))
	confirmation := "✅ Applied enhancements based on the following comment:\n\n" + quoted
	return a.postComment(ctx, snap.Number, confirmation)
}

func (a *Agent) updateIssue(ctx context.Context, number int, rec *evaluation.Record) error {
	if a.dryRun {
		logging.Info("dry run, not updating issue", "issue", number)
		return nil
	}
	return a.gh.UpdateIssue(ctx, a.cfg.GitHub.Owner, a.cfg.GitHub.Repo, number,
		rec.Refactored.Title, rec.Refactored.BodyMarkdown(), rec.Labels)
}

func (a *Agent) postComment(ctx context.Context, number int, body string) error {
	if a.dryRun {
		logging.Info("dry run, not posting comment", "issue", number)
		fmt.Println(body)
		return nil
	}
	return a.gh.CreateComment(ctx, a.cfg.GitHub.Owner, a.cfg.GitHub.Repo, number, body)
}

func quote(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
