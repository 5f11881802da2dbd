// Package stripe provides the Stripe-backed implementation of the payment
// processor service.
package stripe

import (
	"context"
	"strings"

	"boutique/config"
	"boutique/internal/domain/service"
	"boutique/internal/errors"

	"github.com/shopspring/decimal"
	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// paymentService implements the service.PaymentService interface.
type paymentService struct {
	api *client.API
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(cfg *config.Config) (service.PaymentService, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &paymentService{api: api}, nil
}

// CreatePaymentIntent registers the amount with the processor and returns
// the client secret used to present the payment sheet.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string, metadata map[string]string) (string, error) {
	params := &stripego.PaymentIntentParams{
		// Stripe expects the amount in minor units.
		Amount:   stripego.Int64(amount.Mul(decimal.NewFromInt(100)).IntPart()),
		Currency: stripego.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.Context = ctx
	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", errors.Wrap(err, "create payment intent")
	}

	return intent.ClientSecret, nil
}
