// Package llm abstracts the chat-completion backends the agent can use.
package llm

import "context"

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string
	Content string
}

// Provider defines the interface for LLM chat completion.
type Provider interface {
	// Chat sends the ordered message list and returns a single text completion.
	Chat(ctx context.Context, messages []Message) (string, error)
	Close() error
}
