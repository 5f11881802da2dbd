package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusInTransit  OrderStatus = "in_transit"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus is the payment state reported by the payment processor.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order is created once from a priced cart and thereafter only status-mutated.
// The monetary snapshot and the line items are frozen at creation time;
// corrections are issued as new adjustment records, never by editing totals
// in place.
type Order struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"order_number"` // Human-readable, unique.
	CustomerID  uuid.UUID `json:"customer_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`

	// Frozen copy of the cart line items, not a live reference.
	Items []LineItem `json:"items"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency"`

	Status          OrderStatus   `json:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentIntentID string        `json:"payment_intent_id,omitempty"` // Opaque processor token.

	ShippingAddress Address `json:"shipping_address"`

	TrackingNumber  string     `json:"tracking_number,omitempty"`
	TrackingCarrier string     `json:"tracking_carrier,omitempty"`
	ShippedAt       *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// nextStatuses encodes the fulfillment state machine:
// pending -> processing -> shipped -> in_transit -> delivered, with
// cancellation reachable from pending or processing only. Cancelling a
// shipped order requires a separate return flow and is not a transition
// this engine performs.
var nextStatuses = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusInTransit},
	OrderStatusInTransit:  {OrderStatusDelivered},
}

// CanTransitionTo reports whether the order may move to the given status.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range nextStatuses[o.Status] {
		if allowed == next {
			return true
		}
	}

	return false
}

// CanBeCancelled reports whether the order is still cancellable.
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// IsTerminal reports whether the order has reached a terminal state.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}

// ValidOrderStatus reports whether s names a known fulfillment state.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusInTransit, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}
