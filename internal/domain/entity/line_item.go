// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// LineItem represents one product-variant-and-quantity entry in a cart or order.
// The variant (a specific size/color/SKU combination) is the unit of pricing
// granularity, not the parent product.
type LineItem struct {
	VariantID string `json:"variant_id"` // Unique merge key within one cart.
	ProductID string `json:"product_id"` // Parent product reference, informational only.
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	SKU       string `json:"sku,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	// UnitPrice is a snapshot of the variant's price at the time it was added.
	// It is never recomputed from the catalog afterwards, so cart totals stay
	// stable even when catalog prices change mid-session.
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"` // Always >= 1 for a present line item.
}

// LineTotal returns unit price times quantity, rounded to 2 decimal places.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2)
}
