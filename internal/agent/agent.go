// Package agent defines the sales agent collaborator that turns user
// chat messages into streams of response events.
package agent

import (
	"context"
	"iter"

	"github.com/shopfloor/chatgate/internal/domain"
)

// Event is one element of an agent response stream: zero or more
// thinking/tool_call events followed by exactly one terminal
// assistant event. A stream is finite and not restartable mid-flight.
type Event struct {
	Role    domain.MessageRole
	Content string
	Tool    string
}

// Request carries one user message plus session context to the agent.
type Request struct {
	Message   string
	SessionID string
	UserID    string
	Username  string

	// History is the session's persisted conversation, oldest first.
	History []*domain.Message
}

// Agent produces response events for a user message. Implementations
// must honor ctx cancellation so a disconnected client does not keep
// an invocation running.
type Agent interface {
	// Invoke returns a lazy event sequence for one user message.
	// Iteration stops early when the consumer abandons the stream or
	// ctx is cancelled.
	Invoke(ctx context.Context, req Request) iter.Seq2[*Event, error]

	// Close releases resources.
	Close()
}
