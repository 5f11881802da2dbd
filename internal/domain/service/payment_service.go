package service

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentService is the narrow surface of the hosted payment processor the
// engine needs: creating a payment intent for a server-computed amount.
// Payment confirmation happens out-of-band between the client and the
// processor; the engine only records the resulting intent id as an opaque
// token.
type PaymentService interface {
	// CreatePaymentIntent registers the amount with the processor and
	// returns the client secret used to present the payment sheet.
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (string, error)
}
