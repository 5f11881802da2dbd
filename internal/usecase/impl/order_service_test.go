package impl

import (
	"context"
	"testing"
	"time"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/pricing"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	srv      *orderService
	orders   *mockOrderRepository
	identity *mockIdentityService
	payments *mockPaymentService
}

func newOrderServiceFixture() *orderServiceFixture {
	orders := newMockOrderRepository()
	identity := &mockIdentityService{
		Identity: &entity.Identity{ID: uuid.New(), Email: "claire@example.fr"},
	}
	payments := &mockPaymentService{ClientSecret: "pi_secret_123"}

	srv := NewOrderService(
		orders,
		identity,
		payments,
		pricing.DefaultPolicy(),
		TrackingLocation("Paris, France"),
		testLogger(),
	).(*orderService)
	srv.now = func() time.Time {
		return time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)
	}

	return &orderServiceFixture{srv: srv, orders: orders, identity: identity, payments: payments}
}

func validInput() usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Items: []entity.LineItem{
			testItem("v1", "45.00", 2),
			testItem("v2", "19.99", 1),
		},
		Contact: entity.Contact{Email: "claire@example.fr", Phone: "+33612345678"},
		ShippingAddress: entity.Address{
			Name:       "Claire Martin",
			Line1:      "12 rue de Rivoli",
			City:       "Paris",
			PostalCode: "75001",
			Country:    "FR",
		},
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending order with recomputed totals", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
		assert.Equal(t, f.identity.Identity.ID, order.CustomerID)
		// 45*2 + 19.99 = 109.99, VAT 22.00, free shipping above 100.
		assert.Equal(t, "109.99", order.Subtotal.StringFixed(2))
		assert.Equal(t, "22.00", order.VATAmount.StringFixed(2))
		assert.Equal(t, "0.00", order.ShippingAmount.StringFixed(2))
		assert.Equal(t, "131.99", order.Total.StringFixed(2))
		assert.Equal(t, "EUR", order.Currency)
		assert.Regexp(t, `^CMD-20260314-[0-9A-F]{8}$`, order.OrderNumber)
	})

	t.Run("appends order placed tracking event", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		events := f.orders.events[order.ID]
		require.Len(t, events, 1)
		assert.Equal(t, entity.TrackingEventOrderPlaced, events[0].Status)
		assert.Equal(t, "Commande reçue", events[0].Description)
		assert.Equal(t, "Paris, France", events[0].Location)
	})

	t.Run("payment intent marks order paid", func(t *testing.T) {
		f := newOrderServiceFixture()

		input := validInput()
		input.PaymentIntentID = "pi_123"

		order, err := f.srv.CreateOrder(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, entity.PaymentStatusPaid, order.PaymentStatus)
		assert.Equal(t, "pi_123", order.PaymentIntentID)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		f := newOrderServiceFixture()

		input := validInput()
		input.Items = nil

		_, err := f.srv.CreateOrder(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("rejects unauthenticated caller", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.identity.Identity = nil

		_, err := f.srv.CreateOrder(ctx, validInput())
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("persistence failure surfaces and skips tracking", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orders.CreateErr = errors.New("connection reset")

		_, err := f.srv.CreateOrder(ctx, validInput())
		require.Error(t, err)
		assert.Empty(t, f.orders.events)
	})

	t.Run("tracking append failure does not fail creation", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.orders.AppendEventErr = errors.New("insert failed")

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)
		assert.NotNil(t, order)
	})
}

func TestOrderService_PreparePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("prices server side and returns client secret", func(t *testing.T) {
		f := newOrderServiceFixture()

		prep, err := f.srv.PreparePayment(ctx, []entity.LineItem{testItem("v1", "25.00", 2)})
		require.NoError(t, err)

		assert.Equal(t, "pi_secret_123", prep.ClientSecret)
		// 50 + 10 VAT + 10 shipping.
		assert.Equal(t, "70.00", prep.Pricing.Total.StringFixed(2))
		assert.True(t, f.payments.Amount.Equal(decimal.RequireFromString("70.00")))
		assert.Equal(t, "EUR", f.payments.Currency)
		assert.Equal(t, f.identity.Identity.ID.String(), f.payments.Metadata["customer_id"])
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.srv.PreparePayment(ctx, nil)
		assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	})

	t.Run("processor failure maps to payment error", func(t *testing.T) {
		f := newOrderServiceFixture()
		f.payments.Err = errors.New("stripe unavailable")

		_, err := f.srv.PreparePayment(ctx, []entity.LineItem{testItem("v1", "25.00", 1)})
		require.Error(t, err)
		assert.ErrorContains(t, err, domainerrors.ErrPaymentIntentFailed.Message())
	})
}

func TestOrderService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("get order enforces ownership", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		found, err := f.srv.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, found.ID)

		// Same order requested by another signed-in customer.
		f.identity.Identity = &entity.Identity{ID: uuid.New(), Email: "autre@example.fr"}
		_, err = f.srv.GetOrder(ctx, order.ID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderOwnershipViolation)
	})

	t.Run("get order not found", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.srv.GetOrder(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("get my orders returns only own orders", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		other := &entity.Order{ID: uuid.New(), CustomerID: uuid.New()}
		f.orders.orders[other.ID] = other

		orders, err := f.srv.GetMyOrders(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, f.identity.Identity.ID, orders[0].CustomerID)
	})

	t.Run("get order with tracking returns the event log", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		result, err := f.srv.GetOrderWithTracking(ctx, order.ID)
		require.NoError(t, err)

		assert.Equal(t, order.ID, result.Order.ID)
		require.Len(t, result.TrackingEvents, 1)
		assert.Equal(t, entity.TrackingEventOrderPlaced, result.TrackingEvents[0].Status)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("valid transition records timestamps and event", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		result, err := f.srv.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing, "En préparation")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusProcessing, result.Order.Status)
		assert.True(t, result.TrackingRecorded)

		result, err = f.srv.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped, "Expédiée")
		require.NoError(t, err)
		require.NotNil(t, result.Order.ShippedAt)
		assert.Nil(t, result.Order.DeliveredAt)
	})

	t.Run("skipping states is rejected", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		_, err = f.srv.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered, "")
		require.Error(t, err)
		assert.ErrorContains(t, err, domainerrors.ErrInvalidStatusTransition.Message())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		f := newOrderServiceFixture()

		_, err := f.srv.UpdateStatus(ctx, uuid.New(), entity.OrderStatus("lost"), "")
		require.Error(t, err)
		assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Message())
	})

	t.Run("tracking failure reports partial success", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		f.orders.AppendEventErr = errors.New("insert failed")

		result, err := f.srv.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing, "En préparation")
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusProcessing, result.Order.Status)
		assert.False(t, result.TrackingRecorded)
	})
}

func TestOrderService_CancelOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels pending order", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		result, err := f.srv.CancelOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusCancelled, result.Order.Status)
		assert.True(t, result.TrackingRecorded)

		events := f.orders.events[order.ID]
		require.Len(t, events, 2)
		assert.Equal(t, "Commande annulée", events[1].Description)
	})

	t.Run("shipped order cannot be cancelled", func(t *testing.T) {
		f := newOrderServiceFixture()

		order, err := f.srv.CreateOrder(ctx, validInput())
		require.NoError(t, err)

		_, err = f.srv.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing, "")
		require.NoError(t, err)
		_, err = f.srv.UpdateStatus(ctx, order.ID, entity.OrderStatusShipped, "")
		require.NoError(t, err)

		_, err = f.srv.CancelOrder(ctx, order.ID)
		require.Error(t, err)
		assert.ErrorContains(t, err, domainerrors.ErrInvalidStatusTransition.Message())
	})
}
