package domain

import (
	"time"
)

// Session is the durable record of a chat conversation, keyed by an
// opaque identifier and owned by a user. A session may have at most
// one live connection at a time; reconnecting replaces the previous
// connection but keeps the same history.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IdleFor returns how long the session has been without activity.
func (s *Session) IdleFor(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}
