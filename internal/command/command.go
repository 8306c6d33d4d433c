// Package command defines the closed set of comment commands the agent
// responds to.
package command

import "strings"

// Command is a comment command recognized in an issue thread.
type Command int

const (
	// None means the comment carries no recognized command.
	None Command = iota
	// Apply applies the AI-enhanced title, body, and labels to the issue.
	Apply
	// Review re-runs the AI review and posts a fresh evaluation.
	Review
	// Usage posts the list of available commands.
	Usage
	// Disable switches off automatic reviews for the issue.
	Disable
)

var tokens = map[Command]string{
	Apply:   "/apply",
	Review:  "/review",
	Usage:   "/usage",
	Disable: "/disable",
}

var descriptions = map[Command]string{
	Apply:   "Applies the AI-enhanced title, body, and labels to the issue.",
	Review:  "Re-runs the AI review and posts a fresh evaluation as a comment.",
	Usage:   "Displays this list of available commands.",
	Disable: "Disables automatic reviews for this issue.",
}

// ordered fixes iteration order for usage output.
var ordered = []Command{Apply, Review, Usage, Disable}

// Token returns the comment token for the command, or "" for None.
func (c Command) Token() string {
	return tokens[c]
}

// Parse extracts the first recognized command from a comment body. Matching
// is a case-insensitive substring search, so commands work anywhere in the
// comment text.
func Parse(body string) Command {
	lowered := strings.ToLower(strings.TrimSpace(body))
	for _, c := range ordered {
		if strings.Contains(lowered, tokens[c]) {
			return c
		}
	}
	return None
}

// UsageMarkdown renders the command reference table posted by /usage.
func UsageMarkdown() string {
	lines := []string{
		"| Command | Description |",
		"|---------|-------------|",
	}
	for _, c := range ordered {
		lines = append(lines, "| `"+tokens[c]+"` | "+descriptions[c]+" |")
	}
	return strings.Join(lines, "\n")
}
