// Package inventory subscribes to the external stock-change feed and
// fans events out to every live chat connection.
package inventory

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopfloor/chatgate/internal/domain"
)

// Source is one subscription to the inventory change feed. The
// returned channel closes when the subscription drops; callers
// resubscribe to continue.
type Source interface {
	Subscribe(ctx context.Context) (<-chan domain.InventoryEvent, error)
}

// RedisSource reads stock-change events from a Redis pub/sub channel.
// The inventory system publishes one JSON document per change.
type RedisSource struct {
	client  *redis.Client
	channel string
}

// NewRedisSource creates a feed source over an existing Redis client.
func NewRedisSource(client *redis.Client, channel string) *RedisSource {
	return &RedisSource{client: client, channel: channel}
}

// Subscribe opens the pub/sub subscription and returns a channel of
// decoded events. Undecodable payloads are logged and skipped.
func (s *RedisSource) Subscribe(ctx context.Context) (<-chan domain.InventoryEvent, error) {
	sub := s.client.Subscribe(ctx, s.channel)

	// Confirm the subscription before handing out the channel so a
	// dead Redis surfaces here, not as a silently empty feed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	msgs := sub.Channel()
	out := make(chan domain.InventoryEvent)

	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev domain.InventoryEvent
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					slog.Warn("Skipping malformed inventory payload",
						"channel", s.channel, "error", err)
					continue
				}
				if ev.Timestamp.IsZero() {
					ev.Timestamp = time.Now()
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}
