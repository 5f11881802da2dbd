// Package usecase defines the application-facing interfaces of the engine.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase maintains the authoritative set of line items for one
// customer's shopping session and keeps derived totals consistent after
// every mutation. Mutations are applied in invocation order within a
// session; there is no cross-device synchronization contract (last write
// wins).
type CartUsecase interface {
	// AddItem inserts a line item, or increments quantity when the variant
	// is already present. The first-add unit price and metadata are
	// retained on merge.
	AddItem(ctx context.Context, customerID uuid.UUID, item entity.LineItem) (*entity.CartSummary, error)

	// RemoveItem deletes the line item for a variant; absent variants are a no-op.
	RemoveItem(ctx context.Context, customerID uuid.UUID, variantID string) (*entity.CartSummary, error)

	// UpdateQuantity overwrites the quantity for a variant. A quantity of
	// zero or below removes the line item entirely.
	UpdateQuantity(ctx context.Context, customerID uuid.UUID, variantID string, quantity int) (*entity.CartSummary, error)

	// Clear empties the cart and erases its persisted state.
	Clear(ctx context.Context, customerID uuid.UUID) error

	// GetCart restores the cart from persistence and rederives all totals.
	GetCart(ctx context.Context, customerID uuid.UUID) (*entity.CartSummary, error)

	// GetQuantity returns the current quantity for a variant, 0 when absent.
	GetQuantity(ctx context.Context, customerID uuid.UUID, variantID string) (int, error)
}
