package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput carries everything the assembler needs to turn a priced
// cart into an order. Client-supplied totals are deliberately absent: the
// breakdown is always recomputed server-side from the line items.
type CreateOrderInput struct {
	Items           []entity.LineItem `json:"items"`
	Contact         entity.Contact    `json:"contact"`
	ShippingAddress entity.Address    `json:"shipping_address"`
	// PaymentIntentID is the opaque processor token supplied once the
	// payment sheet confirmed payment; empty means payment is still pending.
	PaymentIntentID string `json:"payment_intent_id,omitempty"`
}

// StatusUpdateResult reports the outcome of a status transition. The status
// update and the tracking-event append are two independent writes; the
// second is best-effort, so a result may carry a successfully transitioned
// order with TrackingRecorded false.
type StatusUpdateResult struct {
	Order            *entity.Order `json:"order"`
	TrackingRecorded bool          `json:"tracking_recorded"`
}

// PaymentPreparation is the server-priced amount handed to the payment
// sheet together with the processor client secret.
type PaymentPreparation struct {
	ClientSecret string                  `json:"client_secret"`
	Pricing      entity.PricingBreakdown `json:"pricing"`
}

// OrderUsecase converts priced carts into immutable orders and manages the
// fulfillment state machine thereafter.
type OrderUsecase interface {
	// CreateOrder validates, prices and persists a new order, appending the
	// initial order_placed tracking event best-effort.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error)

	// PreparePayment prices the cart server-side and creates a payment
	// intent for the resulting total.
	PreparePayment(ctx context.Context, items []entity.LineItem) (*PaymentPreparation, error)

	// GetOrder retrieves one order owned by the current identity.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// GetMyOrders retrieves the current identity's orders, newest first.
	GetMyOrders(ctx context.Context) ([]*entity.Order, error)

	// GetOrderWithTracking retrieves an order together with its tracking
	// log, ordered by creation time ascending.
	GetOrderWithTracking(ctx context.Context, orderID uuid.UUID) (*entity.OrderWithTracking, error)

	// UpdateStatus transitions an order to the given fulfillment status and
	// appends a tracking event best-effort.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, description string) (*StatusUpdateResult, error)

	// CancelOrder cancels a pending or processing order.
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*StatusUpdateResult, error)
}
