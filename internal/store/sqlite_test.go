package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopfloor/chatgate/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteStore_GetSessionMissing(t *testing.T) {
	repo := newTestStore(t)

	session, err := repo.GetSession(context.Background(), "no-such-session")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if session != nil {
		t.Errorf("Expected nil for missing session, got %+v", session)
	}
}

func TestSQLiteStore_EnsureSession(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	session, err := repo.EnsureSession(ctx, "sess-1", "user-1")
	if err != nil {
		t.Fatalf("Failed to ensure session: %v", err)
	}
	if session.SessionID != "sess-1" || session.UserID != "user-1" {
		t.Errorf("Unexpected session: %+v", session)
	}
	if !session.Active {
		t.Error("Expected new session to be active")
	}

	// Ensuring again is an upsert, not a duplicate.
	again, err := repo.EnsureSession(ctx, "sess-1", "user-1")
	if err != nil {
		t.Fatalf("Failed to re-ensure session: %v", err)
	}
	if !again.CreatedAt.Equal(session.CreatedAt) {
		t.Errorf("Expected created_at preserved, got %v then %v",
			session.CreatedAt, again.CreatedAt)
	}
}

func TestSQLiteStore_AppendAndGetMessages(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	if _, err := repo.EnsureSession(ctx, "sess-1", "user-1"); err != nil {
		t.Fatalf("Failed to ensure session: %v", err)
	}

	base := time.Now()
	inputs := []*domain.Message{
		{SessionID: "sess-1", Role: domain.RoleUser, Content: "hello", Timestamp: base},
		{SessionID: "sess-1", Role: domain.RoleAssistant, Content: "hi there", Timestamp: base.Add(time.Millisecond)},
		{SessionID: "sess-1", Role: domain.RoleUser, Content: "show me shoes", Timestamp: base.Add(2 * time.Millisecond)},
	}
	for _, msg := range inputs {
		if err := repo.AppendMessage(ctx, msg); err != nil {
			t.Fatalf("Failed to append message: %v", err)
		}
		if msg.ID == "" {
			t.Error("Expected append to assign a message ID")
		}
	}

	messages, err := repo.GetMessages(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Failed to get messages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	for i, msg := range messages {
		if msg.Content != inputs[i].Content {
			t.Errorf("Message %d: expected %q, got %q", i, inputs[i].Content, msg.Content)
		}
		if msg.Role != inputs[i].Role {
			t.Errorf("Message %d: expected role %s, got %s", i, inputs[i].Role, msg.Role)
		}
	}
}

func TestSQLiteStore_AppendRejectsUnknownRole(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	if _, err := repo.EnsureSession(ctx, "sess-1", "user-1"); err != nil {
		t.Fatalf("Failed to ensure session: %v", err)
	}

	err := repo.AppendMessage(ctx, &domain.Message{
		SessionID: "sess-1",
		Role:      "moderator",
		Content:   "nope",
	})
	if err == nil {
		t.Error("Expected error for unknown role")
	}
}

func TestSQLiteStore_AppendBumpsSession(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	session, err := repo.EnsureSession(ctx, "sess-1", "user-1")
	if err != nil {
		t.Fatalf("Failed to ensure session: %v", err)
	}

	later := session.UpdatedAt.Add(time.Minute)
	err = repo.AppendMessage(ctx, &domain.Message{
		SessionID: "sess-1",
		Role:      domain.RoleUser,
		Content:   "hello",
		Timestamp: later,
	})
	if err != nil {
		t.Fatalf("Failed to append message: %v", err)
	}

	bumped, err := repo.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if !bumped.UpdatedAt.After(session.UpdatedAt) {
		t.Errorf("Expected updated_at to advance, got %v then %v",
			session.UpdatedAt, bumped.UpdatedAt)
	}
}

func TestSQLiteStore_TouchSession(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	session, err := repo.EnsureSession(ctx, "sess-1", "user-1")
	if err != nil {
		t.Fatalf("Failed to ensure session: %v", err)
	}

	at := session.UpdatedAt.Add(time.Hour)
	if err := repo.TouchSession(ctx, "sess-1", at); err != nil {
		t.Fatalf("Failed to touch session: %v", err)
	}

	touched, err := repo.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if touched.UpdatedAt.UnixMilli() != at.UnixMilli() {
		t.Errorf("Expected updated_at %v, got %v", at, touched.UpdatedAt)
	}
}

func TestSQLiteStore_DeleteIdleSessions(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	if _, err := repo.EnsureSession(ctx, "sess-old", "user-1"); err != nil {
		t.Fatalf("Failed to ensure session: %v", err)
	}
	if _, err := repo.EnsureSession(ctx, "sess-fresh", "user-2"); err != nil {
		t.Fatalf("Failed to ensure session: %v", err)
	}

	if err := repo.TouchSession(ctx, "sess-old", time.Now().Add(-48*time.Hour)); err != nil {
		t.Fatalf("Failed to backdate session: %v", err)
	}

	deleted, err := repo.DeleteIdleSessions(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Failed to delete idle sessions: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted session, got %d", deleted)
	}

	old, err := repo.GetSession(ctx, "sess-old")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if old != nil {
		t.Error("Expected backdated session to be deleted")
	}

	fresh, err := repo.GetSession(ctx, "sess-fresh")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fresh == nil {
		t.Error("Expected fresh session to survive")
	}
}
