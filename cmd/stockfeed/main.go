// stockfeed publishes simulated inventory updates to the Redis channel
// the gateway subscribes to. Intended for local development.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopfloor/chatgate/internal/domain"
)

var products = []string{
	"SKU-1001", "SKU-1002", "SKU-1003", "SKU-2001", "SKU-2002",
	"SKU-3001", "SKU-3002", "SKU-4001",
}

var locations = []string{"warehouse-east", "warehouse-west", "storefront"}

func main() {
	addr := flag.String("addr", "localhost:6379", "Redis address")
	channel := flag.String("channel", "inventory:updates", "Redis pub/sub channel")
	interval := flag.Duration("interval", 2*time.Second, "delay between updates")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	client := redis.NewClient(&redis.Options{Addr: *addr})
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "addr", *addr, "error", err)
		os.Exit(1)
	}

	slog.Info("Publishing inventory updates", "channel", *channel, "interval", *interval)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping")
			return
		case <-ticker.C:
			ev := domain.InventoryEvent{
				ProductID:   products[rand.IntN(len(products))],
				NewQuantity: rand.IntN(500),
				Location:    locations[rand.IntN(len(locations))],
				Timestamp:   time.Now().UTC(),
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				slog.Error("Failed to marshal event", "error", err)
				continue
			}
			if err := client.Publish(ctx, *channel, payload).Err(); err != nil {
				slog.Error("Failed to publish", "error", err)
				continue
			}
			slog.Info("Published", "product_id", ev.ProductID, "quantity", ev.NewQuantity)
		}
	}
}
