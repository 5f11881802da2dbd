package repository

import (
	"context"

	"boutique/internal/domain/entity"
	"boutique/internal/errors"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when no cart has been persisted for a customer.
var ErrCartNotFound = errors.New("cart not found")

// CartStorage is the key-value persistence for the session cart. Only line
// items are stored; derived totals are always recomputed from them on read,
// as a defense against stored-data drift. One customer owns exactly one
// persisted cart, and all writes go through the cart use case.
type CartStorage interface {
	// FindCart returns the persisted line items for a customer.
	FindCart(ctx context.Context, customerID uuid.UUID) ([]entity.LineItem, error)

	// SaveCart replaces the persisted line items for a customer.
	SaveCart(ctx context.Context, customerID uuid.UUID, items []entity.LineItem) error

	// DeleteCart erases the persisted cart for a customer.
	DeleteCart(ctx context.Context, customerID uuid.UUID) error
}
