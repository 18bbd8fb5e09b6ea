// Package chat provides the WebSocket chat session subsystem: the
// connection registry, heartbeat sweeping, and the per-connection
// protocol handler.
package chat

import (
	"context"

	"github.com/coder/websocket"
)

// Transport is the send side of one live client connection. The hub
// owns a Transport for the lifetime of its registration; a send
// failure marks the connection dead.
type Transport interface {
	Send(ctx context.Context, data []byte) error
	Close(code websocket.StatusCode, reason string) error
}

// wsTransport adapts websocket.Conn to Transport.
type wsTransport struct {
	conn *websocket.Conn
}

// NewWebSocketTransport wraps a websocket connection as a Transport.
func NewWebSocketTransport(conn *websocket.Conn) Transport {
	return &wsTransport{conn: conn}
}

func (t *wsTransport) Send(ctx context.Context, data []byte) error {
	return t.conn.Write(ctx, websocket.MessageText, data)
}

func (t *wsTransport) Close(code websocket.StatusCode, reason string) error {
	return t.conn.Close(code, reason)
}
