package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/shopfloor/chatgate/internal/chat"
	"github.com/shopfloor/chatgate/internal/store"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler reports service health: database reachability, the
// inventory feed connection, and the live connection count.
type HealthHandler struct {
	repo  store.Repository
	hub   *chat.Hub
	redis *redis.Client
}

// NewHealthHandler creates a new health handler. redisClient may be
// nil when the inventory feed is disabled.
func NewHealthHandler(repo store.Repository, hub *chat.Hub, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{repo: repo, hub: hub, redis: redisClient}
}

// Health returns the health status of the gateway and its dependencies.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := map[string]string{"api": "ok"}
	status := map[string]interface{}{
		"status":             "healthy",
		"checks":             checks,
		"active_connections": h.hub.Count(),
	}
	statusCode := http.StatusOK

	if err := h.repo.Ping(ctx); err != nil {
		slog.Error("Health check failed", "check", "database", "error", err)
		status["status"] = "degraded"
		checks["database"] = "unreachable"
		statusCode = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			slog.Error("Health check failed", "check", "inventory_feed", "error", err)
			// The broadcaster retries on its own; a dropped feed
			// degrades realtime updates but not chat itself.
			checks["inventory_feed"] = "unreachable"
		} else {
			checks["inventory_feed"] = "ok"
		}
	}

	JSON(w, statusCode, status)
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/health", h.Health)
}
