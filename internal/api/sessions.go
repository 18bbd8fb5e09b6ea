package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shopfloor/chatgate/internal/auth"
	"github.com/shopfloor/chatgate/internal/domain"
	"github.com/shopfloor/chatgate/internal/store"
)

// SessionHandler serves session history over plain HTTP, for clients
// that want the transcript without opening a WebSocket.
type SessionHandler struct {
	repo store.Repository
}

// NewSessionHandler creates a new session history handler.
func NewSessionHandler(repo store.Repository) *SessionHandler {
	return &SessionHandler{repo: repo}
}

// RegisterRoutes registers the session routes behind token auth.
func (h *SessionHandler) RegisterRoutes(r chi.Router, verifier auth.TokenVerifier) {
	r.Route("/api/sessions", func(r chi.Router) {
		r.Use(auth.Middleware(verifier))
		r.Get("/{sessionID}/messages", h.Messages)
	})
}

// Messages returns the message history for a session owned by the
// authenticated user.
func (h *SessionHandler) Messages(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		Error(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.repo.GetSession(r.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to load session", "error", err, "session_id", sessionID)
		Error(w, http.StatusInternalServerError, "failed to load session")
		return
	}
	if session == nil || session.UserID != identity.UserID {
		// Not-found and not-yours are indistinguishable on purpose.
		Error(w, http.StatusNotFound, "session not found")
		return
	}

	messages, err := h.repo.GetMessages(r.Context(), sessionID)
	if err != nil {
		slog.Error("Failed to load messages", "error", err, "session_id", sessionID)
		Error(w, http.StatusInternalServerError, "failed to load messages")
		return
	}
	if messages == nil {
		messages = []*domain.Message{}
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"messages":   messages,
	})
}
