package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/shopfloor/chatgate/internal/domain"
	pb "github.com/shopfloor/chatgate/internal/proto/salesagent"
)

var (
	errConnectionShutdown       = errors.New("connection shutdown")
	errConnectionStateUnchanged = errors.New("connection state did not change")
	// ErrAgentFailure marks a failure reported by the remote agent.
	ErrAgentFailure = errors.New("agent failure")
)

// GrpcClient provides a gRPC client to the remote sales agent service.
type GrpcClient struct {
	conn   *grpc.ClientConn
	client pb.SalesAgentClient
	addr   string
	logger *slog.Logger
}

// GrpcClientConfig holds configuration for the gRPC client.
type GrpcClientConfig struct {
	Address          string
	ConnectTimeout   time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
}

// DefaultGrpcClientConfig returns default configuration.
func DefaultGrpcClientConfig() GrpcClientConfig {
	return GrpcClientConfig{
		Address:          "localhost:50051",
		ConnectTimeout:   5 * time.Second,
		KeepaliveTime:    2 * time.Minute,
		KeepaliveTimeout: 10 * time.Second,
	}
}

// NewGrpcClient creates a new gRPC client to the sales agent service.
func NewGrpcClient(addr string, logger *slog.Logger) (*GrpcClient, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := DefaultGrpcClientConfig()
	if addr != "" {
		cfg.Address = addr
	}

	kacp := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: false,
	}

	// Build client connection (no network I/O yet).
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sales agent at %s: %w", cfg.Address, err)
	}

	// Force a connection attempt during startup so we fail fast on bad
	// agent endpoints.
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := waitForReady(connectCtx, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("failed to close gRPC connection after readiness failure", "error", closeErr)
		}
		return nil, fmt.Errorf("sales agent at %s not ready: %w", cfg.Address, err)
	}

	logger.Info("Connected to sales agent service", "address", cfg.Address)

	return &GrpcClient{
		conn:   conn,
		client: pb.NewSalesAgentClient(conn),
		addr:   cfg.Address,
		logger: logger,
	}, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Idle:
			conn.Connect()
		case connectivity.Shutdown:
			return errConnectionShutdown
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w from %s", errConnectionStateUnchanged, state)
		}
	}
}

// Invoke streams agent events for one user message.
func (c *GrpcClient) Invoke(ctx context.Context, req Request) iter.Seq2[*Event, error] {
	return func(yield func(*Event, error) bool) {
		stream, err := c.client.Invoke(ctx, &pb.InvokeRequest{
			Message:   req.Message,
			SessionId: req.SessionID,
			UserId:    req.UserID,
			Username:  req.Username,
		})
		if err != nil {
			yield(nil, fmt.Errorf("invoke request failed: %w", err))
			return
		}

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, fmt.Errorf("invoke stream error: %w", err))
				return
			}

			if resp.GetType() == "error" {
				errMsg := resp.GetErrorMessage()
				if errMsg == "" {
					yield(nil, ErrAgentFailure)
					return
				}
				yield(nil, fmt.Errorf("%w: %s", ErrAgentFailure, errMsg))
				return
			}

			role := domain.MessageRole(resp.GetType())
			if !role.Valid() {
				c.logger.Warn("dropping agent event with unknown type", "type", resp.GetType())
				continue
			}

			ev := &Event{
				Role:    role,
				Content: resp.GetContent(),
				Tool:    resp.GetTool(),
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// Close closes the gRPC connection.
func (c *GrpcClient) Close() {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("failed to close gRPC connection", "error", err)
		}
	}
}

var _ Agent = (*GrpcClient)(nil)
