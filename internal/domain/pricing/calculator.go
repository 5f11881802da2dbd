// Package pricing turns a set of line items into a tax- and
// shipping-inclusive breakdown under a fixed jurisdiction policy.
package pricing

import (
	"boutique/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Policy is the jurisdiction pricing policy: a flat VAT rate applied to the
// subtotal and a flat shipping fee waived above a free-shipping threshold.
type Policy struct {
	VATRate               decimal.Decimal // e.g. 0.20 for 20% VAT.
	ShippingFlatRate      decimal.Decimal
	FreeShippingThreshold decimal.Decimal // Shipping is free when subtotal >= threshold.
	Currency              string
}

// DefaultPolicy is the French policy the shop operates under: 20% VAT,
// flat €10 shipping, free shipping from €100.
func DefaultPolicy() Policy {
	return Policy{
		VATRate:               decimal.NewFromFloat(0.20),
		ShippingFlatRate:      decimal.NewFromInt(10),
		FreeShippingThreshold: decimal.NewFromInt(100),
		Currency:              "EUR",
	}
}

// Price computes the breakdown for the given line items. It is pure and
// deterministic, and the item order never affects the result. Validation of
// quantities and prices is the caller's concern; Price never rejects input.
// Every monetary field is rounded to 2 decimal places after each step.
func (p Policy) Price(items []entity.LineItem) entity.PricingBreakdown {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	subtotal = subtotal.Round(2)

	vatAmount := subtotal.Mul(p.VATRate).Round(2)
	shippingAmount := p.shippingFor(subtotal)
	total := subtotal.Add(vatAmount).Add(shippingAmount).Round(2)

	return entity.PricingBreakdown{
		Subtotal:       subtotal,
		VATRate:        p.VATRate,
		VATAmount:      vatAmount,
		ShippingAmount: shippingAmount,
		Total:          total,
		Currency:       p.Currency,
	}
}

// shippingFor returns the flat fee, or zero once the subtotal reaches the
// free-shipping threshold. A threshold of zero or below makes shipping
// always free.
func (p Policy) shippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		return decimal.Zero.Round(2)
	}

	return p.ShippingFlatRate.Round(2)
}
