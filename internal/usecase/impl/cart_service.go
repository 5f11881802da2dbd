// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/pricing"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	storage repository.CartStorage
	policy  pricing.Policy
	logger  *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	storage repository.CartStorage,
	policy pricing.Policy,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		storage: storage,
		policy:  policy,
		logger:  logger,
	}
}

// AddItem inserts a line item, or merges it into an existing line for the
// same variant. Merging increments quantity only; the unit price and
// metadata captured on first add are retained.
func (srv *cartService) AddItem(ctx context.Context, customerID uuid.UUID, item entity.LineItem) (*entity.CartSummary, error) {
	if item.VariantID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("variant id is required")
	}
	if item.Quantity < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must be at least 1")
	}
	if item.UnitPrice.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unit price must not be negative")
	}

	items, err := srv.loadItems(ctx, customerID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].VariantID == item.VariantID {
			items[i].Quantity += item.Quantity
			merged = true

			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := srv.saveItems(ctx, customerID, items); err != nil {
		return nil, err
	}

	srv.logger.Debug("Item added to cart",
		"customerID", customerID,
		"variantID", item.VariantID,
		"merged", merged,
	)

	return srv.summarize(items), nil
}

// RemoveItem deletes the line item for a variant. Removing an absent
// variant is a no-op that still returns the current summary.
func (srv *cartService) RemoveItem(ctx context.Context, customerID uuid.UUID, variantID string) (*entity.CartSummary, error) {
	items, err := srv.loadItems(ctx, customerID)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.VariantID != variantID {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(items) {
		return srv.summarize(items), nil
	}

	if err := srv.saveItems(ctx, customerID, kept); err != nil {
		return nil, err
	}

	srv.logger.Debug("Item removed from cart", "customerID", customerID, "variantID", variantID)

	return srv.summarize(kept), nil
}

// UpdateQuantity overwrites the quantity for a variant. A quantity of zero
// or below removes the line item entirely instead of storing a dead line.
func (srv *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, variantID string, quantity int) (*entity.CartSummary, error) {
	if quantity <= 0 {
		return srv.RemoveItem(ctx, customerID, variantID)
	}

	items, err := srv.loadItems(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updated := false
	for i := range items {
		if items[i].VariantID == variantID {
			items[i].Quantity = quantity
			updated = true

			break
		}
	}

	if !updated {
		return srv.summarize(items), nil
	}

	if err := srv.saveItems(ctx, customerID, items); err != nil {
		return nil, err
	}

	return srv.summarize(items), nil
}

// Clear empties the cart and erases its persisted state.
func (srv *cartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	if err := srv.storage.DeleteCart(ctx, customerID); err != nil {
		srv.logger.Error("Failed to delete cart", "customerID", customerID, "error", err)

		return domainerrors.ErrCartStorageFailed.WrapMessage("delete cart")
	}

	return nil
}

// GetCart restores the cart from persistence and rederives all totals.
func (srv *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*entity.CartSummary, error) {
	items, err := srv.loadItems(ctx, customerID)
	if err != nil {
		return nil, err
	}

	return srv.summarize(items), nil
}

// GetQuantity returns the current quantity for a variant, 0 when absent.
func (srv *cartService) GetQuantity(ctx context.Context, customerID uuid.UUID, variantID string) (int, error) {
	items, err := srv.loadItems(ctx, customerID)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		if item.VariantID == variantID {
			return item.Quantity, nil
		}
	}

	return 0, nil
}

// loadItems restores the persisted line items, treating a missing cart as
// an empty one.
func (srv *cartService) loadItems(ctx context.Context, customerID uuid.UUID) ([]entity.LineItem, error) {
	items, err := srv.storage.FindCart(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil
		}

		srv.logger.Error("Failed to load cart", "customerID", customerID, "error", err)

		return nil, domainerrors.ErrCartStorageFailed.WrapMessage("load cart")
	}

	return items, nil
}

// saveItems replaces the persisted cart. The storage is authoritative for
// the session, so a failed save fails the whole mutation.
func (srv *cartService) saveItems(ctx context.Context, customerID uuid.UUID, items []entity.LineItem) error {
	if err := srv.storage.SaveCart(ctx, customerID, items); err != nil {
		srv.logger.Error("Failed to save cart", "customerID", customerID, "error", err)

		return domainerrors.ErrCartStorageFailed.WrapMessage("save cart")
	}

	return nil
}

// summarize rederives the item count and pricing breakdown from the items.
func (srv *cartService) summarize(items []entity.LineItem) *entity.CartSummary {
	if items == nil {
		items = []entity.LineItem{}
	}

	return &entity.CartSummary{
		Items:     items,
		ItemCount: entity.CountItems(items),
		Pricing:   srv.policy.Price(items),
	}
}
