package domain

import (
	"time"
)

// InventoryEvent is a transient stock-change notification from the
// external inventory feed. It is never persisted by this service; the
// product record remains the source of truth.
type InventoryEvent struct {
	ProductID   string    `json:"product_id"`
	NewQuantity int       `json:"new_quantity"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
}
