// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/shopfloor/chatgate/internal/domain"
)

// Repository defines the interface for persisting chat sessions and
// their message history.
type Repository interface {
	// GetSession retrieves a session by its identifier. Returns nil
	// (no error) when the session does not exist.
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// EnsureSession creates the session record on first connect, or
	// refreshes updated_at and ownership on reconnect.
	EnsureSession(ctx context.Context, sessionID, userID string) (*domain.Session, error)

	// AppendMessage appends one message to the session history and
	// bumps the session's updated_at. Messages are immutable; history
	// order is append order.
	AppendMessage(ctx context.Context, msg *domain.Message) error

	// GetMessages returns the session's full history in append order.
	GetMessages(ctx context.Context, sessionID string) ([]*domain.Message, error)

	// TouchSession updates the session's updated_at timestamp.
	TouchSession(ctx context.Context, sessionID string, at time.Time) error

	// DeleteIdleSessions removes sessions (and their messages) that
	// have seen no activity within the retention window.
	DeleteIdleSessions(ctx context.Context, retention time.Duration) (int64, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
