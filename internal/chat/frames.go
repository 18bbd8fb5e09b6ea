package chat

import (
	"time"

	"github.com/shopfloor/chatgate/internal/domain"
)

// inboundMessage is the only inbound frame shape accepted while a
// connection is active, plus the heartbeat control frames.
type inboundMessage struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message,omitempty"`
}

// systemFrame is sent once after authentication, carrying the full
// session history.
type systemFrame struct {
	Type      string            `json:"type"`
	Content   string            `json:"content"`
	SessionID string            `json:"session_id"`
	History   []*domain.Message `json:"history"`
	Timestamp time.Time         `json:"timestamp"`
}

func newSystemFrame(sessionID string, history []*domain.Message) systemFrame {
	if history == nil {
		history = []*domain.Message{}
	}
	return systemFrame{
		Type:      string(domain.RoleSystem),
		Content:   "Connected to chat",
		SessionID: sessionID,
		History:   history,
		Timestamp: time.Now(),
	}
}

// messageFrame carries user echoes, agent events, and errors.
type messageFrame struct {
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Tool      string    `json:"tool,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func newMessageFrame(role domain.MessageRole, content, tool string) messageFrame {
	return messageFrame{
		Type:      string(role),
		Content:   content,
		Tool:      tool,
		Timestamp: time.Now(),
	}
}

func newErrorFrame(content string) messageFrame {
	return newMessageFrame(domain.RoleError, content, "")
}

// heartbeatFrame is a ping or pong control frame.
type heartbeatFrame struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

func newHeartbeatFrame(kind string) heartbeatFrame {
	return heartbeatFrame{Type: kind, Timestamp: time.Now()}
}

// InventoryFrame is pushed to every connection when the inventory feed
// reports a stock change. Exported for the inventory broadcaster.
type InventoryFrame struct {
	Type        string    `json:"type"`
	ProductID   string    `json:"product_id"`
	NewQuantity int       `json:"new_quantity"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewInventoryFrame formats a stock-change event for the wire.
func NewInventoryFrame(ev domain.InventoryEvent) InventoryFrame {
	return InventoryFrame{
		Type:        "inventory_update",
		ProductID:   ev.ProductID,
		NewQuantity: ev.NewQuantity,
		Location:    ev.Location,
		Timestamp:   ev.Timestamp,
	}
}
