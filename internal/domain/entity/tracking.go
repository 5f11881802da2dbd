package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEventOrderPlaced is the status of the initial tracking event
// appended when an order is created. Subsequent events carry the order's
// fulfillment status.
const TrackingEventOrderPlaced = "order_placed"

// TrackingEvent is one entry of an order's append-only fulfillment log.
// Events are never updated or deleted and are displayed ordered by
// CreatedAt ascending.
type TrackingEvent struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"` // Back-reference, many events per order.
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderWithTracking bundles an order with its tracking history for display.
type OrderWithTracking struct {
	Order
	TrackingEvents []TrackingEvent `json:"tracking_events"`
}
