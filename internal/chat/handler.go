package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"

	"github.com/shopfloor/chatgate/internal/agent"
	"github.com/shopfloor/chatgate/internal/auth"
	"github.com/shopfloor/chatgate/internal/domain"
	"github.com/shopfloor/chatgate/internal/store"
)

var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// Handler upgrades chat WebSocket connections and runs the
// per-connection protocol loop: authenticate, register, replay
// history, then relay user messages to the agent and stream its
// events back, persisting before sending.
type Handler struct {
	repo          store.Repository
	hub           *Hub
	agent         agent.Agent
	verifier      auth.TokenVerifier
	agentTimeout  time.Duration
	allowedOrigin string
	isDev         bool
}

// NewHandler creates a new chat WebSocket handler.
func NewHandler(repo store.Repository, hub *Hub, ag agent.Agent, verifier auth.TokenVerifier, agentTimeout time.Duration, allowedOrigin string, isDev bool) *Handler {
	return &Handler{
		repo:          repo,
		hub:           hub,
		agent:         ag,
		verifier:      verifier,
		agentTimeout:  agentTimeout,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// RegisterRoutes mounts the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/chat/{sessionID}", h.ServeHTTP)
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if !sessionIDPattern.MatchString(sessionID) {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "session_id", sessionID)
		return
	}

	// Authenticate before any frame goes out. A bad token closes the
	// connection with a policy-violation code.
	identity, err := h.verifier.Verify(auth.TokenFromRequest(r))
	if err != nil {
		slog.Warn("WebSocket authentication failed", "session_id", sessionID, "error", err)
		_ = ws.Close(websocket.StatusPolicyViolation, "authentication failed")
		return
	}

	slog.Info("Chat connection accepted",
		"session_id", sessionID, "user_id", identity.UserID, "ip", r.RemoteAddr)

	defer func() {
		if closeErr := ws.Close(websocket.StatusNormalClosure, "session ended"); closeErr != nil {
			slog.Debug("Failed to close websocket", "error", closeErr, "session_id", sessionID)
		}
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if _, err := h.repo.EnsureSession(ctx, sessionID, identity.UserID); err != nil {
		slog.Error("Failed to ensure session", "error", err, "session_id", sessionID)
		_ = ws.Close(websocket.StatusInternalError, "session unavailable")
		return
	}

	history, err := h.repo.GetMessages(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to load session history", "error", err, "session_id", sessionID)
		_ = ws.Close(websocket.StatusInternalError, "session unavailable")
		return
	}

	transport := NewWebSocketTransport(ws)
	h.hub.Register(sessionID, identity.UserID, transport)
	defer h.hub.Unregister(sessionID, transport)

	if err := h.send(ctx, transport, newSystemFrame(sessionID, history)); err != nil {
		slog.Warn("Failed to send system frame", "error", err, "session_id", sessionID)
		return
	}

	h.receiveLoop(ctx, ws, transport, sessionID, identity)

	// Retention is measured from last activity, so stamp the session on
	// the way out. The request context is already cancelled here.
	touchCtx, touchCancel := context.WithTimeout(context.Background(), sendTimeout)
	defer touchCancel()
	if err := h.repo.TouchSession(touchCtx, sessionID, time.Now()); err != nil {
		slog.Warn("Failed to record session activity", "error", err, "session_id", sessionID)
	}

	slog.Info("Chat connection closed", "session_id", sessionID, "user_id", identity.UserID)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigin == "*" {
		return true
	}
	if origin == h.allowedOrigin {
		return true
	}
	slog.Warn("WebSocket origin rejected", "origin", origin, "allowed", h.allowedOrigin)
	return false
}

func (h *Handler) receiveLoop(ctx context.Context, ws *websocket.Conn, transport Transport, sessionID string, identity *auth.Identity) {
	for {
		_, data, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				slog.Debug("WebSocket closed by client", "session_id", sessionID)
			} else {
				slog.Warn("WebSocket read error", "error", err, "session_id", sessionID)
			}
			return
		}

		h.hub.Touch(sessionID, time.Now())

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if err := h.send(ctx, transport, newErrorFrame("Invalid message format")); err != nil {
				return
			}
			continue
		}

		switch msg.Type {
		case "ping":
			if err := h.send(ctx, transport, newHeartbeatFrame("pong")); err != nil {
				return
			}
			continue
		case "pong":
			continue
		}

		text := strings.TrimSpace(msg.Message)
		if text == "" {
			if err := h.send(ctx, transport, newErrorFrame("Invalid message format")); err != nil {
				return
			}
			continue
		}

		if err := h.handleUserMessage(ctx, transport, sessionID, identity, text); err != nil {
			slog.Warn("Transport failure mid-exchange", "error", err, "session_id", sessionID)
			return
		}
	}
}

// handleUserMessage persists one inbound message and streams the agent
// response. Only transport-level failures return an error; everything
// else is surfaced to the client as an error frame and leaves the
// connection open.
func (h *Handler) handleUserMessage(ctx context.Context, transport Transport, sessionID string, identity *auth.Identity, text string) error {
	userMsg := &domain.Message{
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: time.Now(),
	}
	if err := h.repo.AppendMessage(ctx, userMsg); err != nil {
		slog.Error("Failed to persist user message", "error", err, "session_id", sessionID)
		return h.send(ctx, transport, newErrorFrame("Message could not be saved"))
	}

	// Echo for client confirmation. Persisted first, never the reverse.
	if err := h.send(ctx, transport, newMessageFrame(domain.RoleUser, text, "")); err != nil {
		return err
	}

	history, err := h.repo.GetMessages(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to load history for agent", "error", err, "session_id", sessionID)
		return h.send(ctx, transport, newErrorFrame("Error processing message"))
	}

	// One in-flight invocation per connection; bounded so a hung agent
	// cannot pin the receive loop forever.
	invokeCtx, cancel := context.WithTimeout(ctx, h.agentTimeout)
	defer cancel()

	req := agent.Request{
		Message:   text,
		SessionID: sessionID,
		UserID:    identity.UserID,
		Username:  identity.Username,
		History:   history,
	}

	sawAssistant := false
	for ev, invokeErr := range h.agent.Invoke(invokeCtx, req) {
		if invokeErr != nil {
			slog.Error("Agent invocation failed", "error", invokeErr, "session_id", sessionID)
			return h.send(ctx, transport, newErrorFrame("Error processing message"))
		}

		if ev.Role == domain.RoleAssistant {
			assistantMsg := &domain.Message{
				SessionID: sessionID,
				Role:      domain.RoleAssistant,
				Content:   ev.Content,
				Tool:      ev.Tool,
				Timestamp: time.Now(),
			}
			if err := h.repo.AppendMessage(ctx, assistantMsg); err != nil {
				slog.Error("Failed to persist assistant message", "error", err, "session_id", sessionID)
				return h.send(ctx, transport, newErrorFrame("Error processing message"))
			}
			if err := h.send(ctx, transport, newMessageFrame(ev.Role, ev.Content, ev.Tool)); err != nil {
				return err
			}
			sawAssistant = true
			break
		}

		if err := h.send(ctx, transport, newMessageFrame(ev.Role, ev.Content, ev.Tool)); err != nil {
			return err
		}
	}

	// A stream that ends without a terminal assistant event is an
	// agent failure; partial output is never treated as final.
	if !sawAssistant {
		slog.Error("Agent stream ended without assistant event", "session_id", sessionID)
		return h.send(ctx, transport, newErrorFrame("Error processing message"))
	}

	return nil
}

func (h *Handler) send(ctx context.Context, t Transport, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return t.Send(sendCtx, data)
}
