// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"boutique/internal/domain/entity"
	"boutique/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderNumber is returned when an order number collides with an existing one.
	ErrDuplicateOrderNumber = errors.New("order number already exists")
)

// StatusTimestamps carries the optional fulfillment timestamps recorded
// alongside a status update.
type StatusTimestamps struct {
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

// OrderRepository defines the interface for order-related database operations.
// The monetary snapshot of an order is written once at creation and never
// updated afterwards; only status, payment and tracking fields may change.
type OrderRepository interface {
	// CreateOrder persists a new order snapshot.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer retrieves all orders for a customer, newest first.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus updates the fulfillment status and any associated timestamps.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, ts StatusTimestamps) error

	// UpdatePaymentStatus updates the payment status reported by the processor.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// AppendTrackingEvent appends one event to the order's tracking log.
	AppendTrackingEvent(ctx context.Context, event *entity.TrackingEvent) error

	// FindTrackingEvents retrieves the tracking log ordered by created_at ascending.
	FindTrackingEvents(ctx context.Context, orderID uuid.UUID) ([]entity.TrackingEvent, error)
}
