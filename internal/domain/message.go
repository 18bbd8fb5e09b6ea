// Package domain contains core domain types for the chat gateway.
package domain

import (
	"time"
)

// MessageRole categorizes chat messages.
type MessageRole string

const (
	// RoleUser is an inbound message from the connected client.
	RoleUser MessageRole = "user"
	// RoleAssistant is the terminal response of an agent invocation.
	RoleAssistant MessageRole = "assistant"
	// RoleThinking is an intermediate reasoning event from the agent.
	RoleThinking MessageRole = "thinking"
	// RoleToolCall is an intermediate tool invocation event from the agent.
	RoleToolCall MessageRole = "tool_call"
	// RoleSystem is a server-generated message (connect banner, history).
	RoleSystem MessageRole = "system"
	// RoleError is an error surfaced to the client.
	RoleError MessageRole = "error"
)

// Valid reports whether the role is one of the known message roles.
func (r MessageRole) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleThinking, RoleToolCall, RoleSystem, RoleError:
		return true
	}
	return false
}

// Message is a single entry in a session's conversation history.
// Messages are immutable once appended; append order defines
// conversation order.
type Message struct {
	ID        string      `json:"id,omitempty"`
	SessionID string      `json:"-"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Tool      string      `json:"tool,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
