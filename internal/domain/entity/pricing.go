package entity

import (
	"github.com/shopspring/decimal"
)

// PricingBreakdown is the tax- and shipping-inclusive total derived from a
// set of line items under one jurisdiction policy. It is a value type:
// immutable once computed, with no hidden state.
type PricingBreakdown struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	VATRate        decimal.Decimal `json:"vat_rate"`
	VATAmount      decimal.Decimal `json:"vat_amount"`
	ShippingAmount decimal.Decimal `json:"shipping_amount"`
	Total          decimal.Decimal `json:"total"`
	Currency       string          `json:"currency"`
}
