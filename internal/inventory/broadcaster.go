package inventory

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shopfloor/chatgate/internal/chat"
	"github.com/shopfloor/chatgate/internal/domain"
)

// DefaultRetryDelay is the pause between resubscription attempts when
// the feed drops.
const DefaultRetryDelay = 5 * time.Second

// Broadcaster consumes the inventory feed and pushes each stock
// change to every registered chat connection, regardless of session.
// Feed failures are retried forever; they never reach clients and
// never take the process down.
type Broadcaster struct {
	source     Source
	hub        *chat.Hub
	retryDelay time.Duration
}

// NewBroadcaster creates a broadcaster. A non-positive retryDelay
// falls back to DefaultRetryDelay.
func NewBroadcaster(source Source, hub *chat.Hub, retryDelay time.Duration) *Broadcaster {
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	return &Broadcaster{source: source, hub: hub, retryDelay: retryDelay}
}

// Run blocks, forwarding feed events to the hub until ctx is
// cancelled. Subscriptions that fail or end are re-established after
// the retry delay.
func (b *Broadcaster) Run(ctx context.Context) {
	slog.Info("Inventory broadcaster started")
	for {
		if ctx.Err() != nil {
			slog.Info("Inventory broadcaster shutting down", "reason", ctx.Err())
			return
		}

		events, err := b.source.Subscribe(ctx)
		if err != nil {
			slog.Error("Inventory feed subscription failed, retrying",
				"error", err, "retry_delay", b.retryDelay)
			if !sleep(ctx, b.retryDelay) {
				return
			}
			continue
		}

		b.forward(ctx, events)

		if ctx.Err() == nil {
			slog.Warn("Inventory feed subscription ended, resubscribing",
				"retry_delay", b.retryDelay)
			if !sleep(ctx, b.retryDelay) {
				return
			}
		}
	}
}

// forward drains one subscription, returning when it closes.
func (b *Broadcaster) forward(ctx context.Context, events <-chan domain.InventoryEvent) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(chat.NewInventoryFrame(ev))
			if err != nil {
				slog.Error("Failed to marshal inventory frame",
					"product_id", ev.ProductID, "error", err)
				continue
			}
			b.hub.BroadcastAll(ctx, data)
			slog.Info("Broadcast inventory update",
				"product_id", ev.ProductID, "new_quantity", ev.NewQuantity)
		case <-ctx.Done():
			return
		}
	}
}

// sleep waits for d, returning false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
