package pricing

import (
	"testing"

	"boutique/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(variantID string, price string, qty int) entity.LineItem {
	return entity.LineItem{
		VariantID: variantID,
		ProductID: "p-" + variantID,
		Name:      "Item " + variantID,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestPolicy_Price(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()

	tests := []struct {
		name         string
		items        []entity.LineItem
		wantSubtotal string
		wantVAT      string
		wantShipping string
		wantTotal    string
	}{
		{
			name:         "basic cart above free shipping threshold",
			items:        []entity.LineItem{item("V1", "50.00", 2), item("V2", "30.00", 1)},
			wantSubtotal: "130.00",
			wantVAT:      "26.00",
			wantShipping: "0.00",
			wantTotal:    "156.00",
		},
		{
			name:         "cart below threshold pays flat shipping",
			items:        []entity.LineItem{item("V1", "50.00", 1)},
			wantSubtotal: "50.00",
			wantVAT:      "10.00",
			wantShipping: "10.00",
			wantTotal:    "70.00",
		},
		{
			name:         "subtotal exactly at threshold ships free",
			items:        []entity.LineItem{item("V1", "100.00", 1)},
			wantSubtotal: "100.00",
			wantVAT:      "20.00",
			wantShipping: "0.00",
			wantTotal:    "120.00",
		},
		{
			name:         "empty cart yields shipping-only total",
			items:        nil,
			wantSubtotal: "0.00",
			wantVAT:      "0.00",
			wantShipping: "10.00",
			wantTotal:    "10.00",
		},
		{
			name:         "vat rounded to cents after multiply",
			items:        []entity.LineItem{item("V1", "19.99", 3)},
			wantSubtotal: "59.97",
			wantVAT:      "11.99",
			wantShipping: "10.00",
			wantTotal:    "81.96",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := policy.Price(tt.items)
			assert.Equal(t, tt.wantSubtotal, got.Subtotal.StringFixed(2))
			assert.Equal(t, tt.wantVAT, got.VATAmount.StringFixed(2))
			assert.Equal(t, tt.wantShipping, got.ShippingAmount.StringFixed(2))
			assert.Equal(t, tt.wantTotal, got.Total.StringFixed(2))
			assert.Equal(t, "EUR", got.Currency)
		})
	}
}

func TestPolicy_Price_Commutative(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	items := []entity.LineItem{
		item("V1", "12.34", 2),
		item("V2", "0.99", 7),
		item("V3", "45.00", 1),
		item("V4", "3.50", 4),
	}

	baseline := policy.Price(items)

	// Every rotation of the slice must price identically.
	for shift := 1; shift < len(items); shift++ {
		permuted := append(append([]entity.LineItem{}, items[shift:]...), items[:shift]...)
		got := policy.Price(permuted)

		assert.True(t, baseline.Subtotal.Equal(got.Subtotal), "subtotal differs at shift %d", shift)
		assert.True(t, baseline.VATAmount.Equal(got.VATAmount), "vat differs at shift %d", shift)
		assert.True(t, baseline.ShippingAmount.Equal(got.ShippingAmount), "shipping differs at shift %d", shift)
		assert.True(t, baseline.Total.Equal(got.Total), "total differs at shift %d", shift)
	}
}

func TestPolicy_Price_TotalReconciliation(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	carts := [][]entity.LineItem{
		nil,
		{item("V1", "50.00", 2), item("V2", "30.00", 1)},
		{item("V1", "19.99", 3)},
		{item("V1", "0.01", 1)},
		{item("V1", "99.99", 1)},
		{item("V1", "33.33", 3), item("V2", "66.67", 2)},
	}

	for _, items := range carts {
		got := policy.Price(items)
		want := got.Subtotal.Add(got.VATAmount).Add(got.ShippingAmount).Round(2)
		require.True(t, got.Total.Equal(want),
			"total %s does not reconcile with %s", got.Total, want)
	}
}

func TestPolicy_Price_NonPositiveThresholdAlwaysShipsFree(t *testing.T) {
	t.Parallel()

	policy := DefaultPolicy()
	policy.FreeShippingThreshold = decimal.Zero

	got := policy.Price(nil)
	assert.Equal(t, "0.00", got.ShippingAmount.StringFixed(2))
	assert.Equal(t, "0.00", got.Total.StringFixed(2))
}
