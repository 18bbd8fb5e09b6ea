package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopfloor/chatgate/internal/store"
)

// reapInterval is how often idle sessions are purged from the store,
// independent of the much tighter connection sweep cadence.
const reapInterval = 1 * time.Hour

// HeartbeatConfig controls the liveness worker.
type HeartbeatConfig struct {
	// Interval between sweeps; also the server ping cadence.
	Interval time.Duration
	// IdleTimeout is how long a connection may stay silent before it
	// is closed and unregistered.
	IdleTimeout time.Duration
	// SessionRetention is how long an inactive session survives in
	// the store before the reaper deletes it.
	SessionRetention time.Duration
}

// StartHeartbeat runs a background goroutine that periodically pings
// all live connections, reaps those idle past the threshold, and
// deletes long-inactive sessions from the store. It never blocks the
// message or broadcast path; it shares only the hub's lock.
func StartHeartbeat(ctx context.Context, hub *Hub, repo store.Repository, cfg HeartbeatConfig) {
	ticker := time.NewTicker(cfg.Interval)
	go func() {
		defer ticker.Stop()
		slog.Info("Heartbeat worker started",
			"interval", cfg.Interval, "idle_timeout", cfg.IdleTimeout)

		lastReap := time.Now()
		for {
			select {
			case <-ticker.C:
				sweep(ctx, hub, cfg.IdleTimeout)
				if time.Since(lastReap) >= reapInterval {
					reapSessions(ctx, repo, cfg.SessionRetention)
					lastReap = time.Now()
				}
			case <-ctx.Done():
				slog.Info("Heartbeat worker shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

func sweep(ctx context.Context, hub *Hub, idleTimeout time.Duration) {
	ping, err := json.Marshal(newHeartbeatFrame("ping"))
	if err != nil {
		slog.Error("Heartbeat failed to marshal ping frame", "error", err)
		return
	}
	hub.PingAll(ctx, ping)

	if closed := hub.CloseIdle(idleTimeout, time.Now()); len(closed) > 0 {
		slog.Info("Heartbeat closed idle connections",
			"count", len(closed), "session_ids", closed)
	}
}

func reapSessions(ctx context.Context, repo store.Repository, retention time.Duration) {
	deleted, err := repo.DeleteIdleSessions(ctx, retention)
	if err != nil {
		slog.Error("Session reaper failed", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Session reaper removed inactive sessions", "count", deleted)
	}
}
