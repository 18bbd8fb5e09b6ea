package chat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// sendTimeout bounds each per-connection write so one stalled socket
// cannot wedge a broadcast or ping sweep.
const sendTimeout = 5 * time.Second

// connection is a live registry entry. A session has at most one.
type connection struct {
	sessionID    string
	userID       string
	transport    Transport
	lastActivity time.Time
}

// Hub tracks live chat connections keyed by session identifier. All
// mutations and sends go through a single exclusive lock, so
// registrations, broadcasts, and sweeps never interleave partially.
type Hub struct {
	mu    sync.Mutex
	conns map[string]*connection
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[string]*connection)}
}

// Register adds a connection for a session, replacing and closing any
// existing connection for the same session.
func (h *Hub) Register(sessionID, userID string, t Transport) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.conns[sessionID]; ok && existing.transport != t {
		_ = existing.transport.Close(websocket.StatusNormalClosure, "session replaced")
	}

	h.conns[sessionID] = &connection{
		sessionID:    sessionID,
		userID:       userID,
		transport:    t,
		lastActivity: time.Now(),
	}
	slog.Info("Chat connection registered", "session_id", sessionID, "user_id", userID)
}

// Unregister removes the connection for a session if it is still the
// given transport. A stale unregister (after a reconnect replaced the
// entry) is a no-op.
func (h *Hub) Unregister(sessionID string, t Transport) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.conns[sessionID]; ok && current.transport == t {
		delete(h.conns, sessionID)
		slog.Info("Chat connection unregistered", "session_id", sessionID, "user_id", current.userID)
	}
}

// Get returns the transport registered for a session, if any.
func (h *Hub) Get(sessionID string) (Transport, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.conns[sessionID]; ok {
		return conn.transport, true
	}
	return nil, false
}

// Touch refreshes the session's last-activity timestamp.
func (h *Hub) Touch(sessionID string, at time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conn, ok := h.conns[sessionID]; ok {
		conn.lastActivity = at
	}
}

// Count returns the number of live connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// BroadcastAll sends data to every registered connection, best effort.
// Connections whose transport fails are closed and removed.
func (h *Hub) BroadcastAll(ctx context.Context, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sendAllLocked(ctx, data)
}

// PingAll sends data (a ping frame) to every registered connection,
// removing those whose transport fails.
func (h *Hub) PingAll(ctx context.Context, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sendAllLocked(ctx, data)
}

func (h *Hub) sendAllLocked(ctx context.Context, data []byte) {
	for sessionID, conn := range h.conns {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err := conn.transport.Send(sendCtx, data)
		cancel()
		if err != nil {
			slog.Warn("Dropping connection after send failure",
				"session_id", sessionID, "user_id", conn.userID, "error", err)
			_ = conn.transport.Close(websocket.StatusGoingAway, "send failed")
			delete(h.conns, sessionID)
		}
	}
}

// CloseIdle closes and removes connections whose last activity is
// older than the threshold. Returns the closed session identifiers.
func (h *Hub) CloseIdle(threshold time.Duration, now time.Time) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var closed []string
	for sessionID, conn := range h.conns {
		if now.Sub(conn.lastActivity) > threshold {
			_ = conn.transport.Close(websocket.StatusGoingAway, "idle timeout")
			delete(h.conns, sessionID)
			closed = append(closed, sessionID)
		}
	}
	return closed
}

// Shutdown closes all connections and empties the registry.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sessionID, conn := range h.conns {
		_ = conn.transport.Close(websocket.StatusGoingAway, "server shutting down")
		delete(h.conns, sessionID)
	}
	slog.Info("Chat hub shut down")
}
