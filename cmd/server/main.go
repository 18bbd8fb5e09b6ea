// chatgate - storefront chat gateway server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/shopfloor/chatgate/internal/agent"
	"github.com/shopfloor/chatgate/internal/api"
	"github.com/shopfloor/chatgate/internal/auth"
	"github.com/shopfloor/chatgate/internal/chat"
	"github.com/shopfloor/chatgate/internal/config"
	"github.com/shopfloor/chatgate/internal/inventory"
	"github.com/shopfloor/chatgate/internal/middleware"
	"github.com/shopfloor/chatgate/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting chat gateway", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	verifier := auth.NewJWTVerifier([]byte(cfg.JWTSecret))

	// Sales agent: remote gRPC service when configured, otherwise the
	// built-in scripted agent.
	var salesAgent agent.Agent
	if cfg.AgentAddr != "" {
		grpcAgent, err := agent.NewGrpcClient(cfg.AgentAddr, logger)
		if err != nil {
			slog.Error("Failed to connect to sales agent service", "error", err)
			os.Exit(1)
		}
		salesAgent = grpcAgent
	} else {
		slog.Info("AGENT_ADDR not set, using scripted sales agent")
		salesAgent = agent.NewScriptedAgent()
	}
	defer salesAgent.Close()

	hub := chat.NewHub()
	defer hub.Shutdown()

	wsHandler := chat.NewHandler(repo, hub, salesAgent, verifier,
		cfg.AgentTimeout, cfg.FrontendURL, cfg.IsDevelopment())

	// Inventory feed (optional).
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				slog.Error("Failed to close Redis client", "error", closeErr)
			}
		}()
	} else {
		slog.Info("REDIS_ADDR not set, inventory broadcasts disabled")
	}

	healthHandler := api.NewHealthHandler(repo, hub, redisClient)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	corsOrigins := []string{"*"}
	if !cfg.IsDevelopment() {
		corsOrigins = []string{cfg.FrontendURL}
	}
	r.Use(middleware.CORS(corsOrigins))

	// Public routes.
	healthHandler.RegisterHealth(r)

	// Authenticated REST routes.
	sessionHandler := api.NewSessionHandler(repo)
	sessionHandler.RegisterRoutes(r, verifier)

	// WebSocket endpoint authenticates inside the upgrade handshake.
	wsHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 30 * time.Second,
		// WebSocket connections are long-lived; no write timeout.
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Background workers.
	chat.StartHeartbeat(ctx, hub, repo, chat.HeartbeatConfig{
		Interval:         cfg.HeartbeatInterval,
		IdleTimeout:      cfg.IdleTimeout,
		SessionRetention: cfg.SessionRetention,
	})

	if redisClient != nil {
		source := inventory.NewRedisSource(redisClient, cfg.InventoryChannel)
		broadcaster := inventory.NewBroadcaster(source, hub, inventory.DefaultRetryDelay)
		go broadcaster.Run(ctx)
	}

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
