package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/pricing"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tracking event descriptions shown to customers.
const (
	descriptionOrderPlaced    = "Commande reçue"
	descriptionOrderCancelled = "Commande annulée"
)

// TrackingLocation is the location stamped on generated tracking events.
type TrackingLocation string

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders          repository.OrderRepository
	identity        service.IdentityService
	payments        service.PaymentService
	policy          pricing.Policy
	defaultLocation TrackingLocation
	logger          *slog.Logger

	now func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	orders repository.OrderRepository,
	identity service.IdentityService,
	payments service.PaymentService,
	policy pricing.Policy,
	defaultLocation TrackingLocation,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:          orders,
		identity:        identity,
		payments:        payments,
		policy:          policy,
		defaultLocation: defaultLocation,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateOrder validates, prices and persists a new order. The pricing
// breakdown is always recomputed server-side from the line items; totals
// supplied by the client are never trusted.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	identity, err := srv.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("invalid quantity for variant %s", item.VariantID))
		}
	}

	breakdown := srv.policy.Price(input.Items)
	now := srv.now()

	paymentStatus := entity.PaymentStatusPending
	if input.PaymentIntentID != "" {
		paymentStatus = entity.PaymentStatusPaid
	}

	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: srv.newOrderNumber(now),
		CustomerID:  identity.ID,
		Email:       input.Contact.Email,
		Phone:       input.Contact.Phone,

		// Frozen copy, the cart stays untouched until the caller clears it.
		Items: append([]entity.LineItem(nil), input.Items...),

		Subtotal:       breakdown.Subtotal,
		VATRate:        breakdown.VATRate,
		VATAmount:      breakdown.VATAmount,
		ShippingAmount: breakdown.ShippingAmount,
		Total:          breakdown.Total,
		Currency:       breakdown.Currency,

		Status:          entity.OrderStatusPending,
		PaymentStatus:   paymentStatus,
		PaymentIntentID: input.PaymentIntentID,

		ShippingAddress: input.ShippingAddress,

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.orders.CreateOrder(ctx, order); err != nil {
		srv.logger.Error("Failed to create order", "customerID", identity.ID, "error", err)

		return nil, domainerrors.NewDatabaseExecuteError(err, "create order")
	}

	srv.appendEvent(ctx, order.ID, entity.TrackingEventOrderPlaced, descriptionOrderPlaced)

	srv.logger.Info("Order created",
		"orderID", order.ID,
		"orderNumber", order.OrderNumber,
		"customerID", identity.ID,
		"total", order.Total,
	)

	return order, nil
}

// PreparePayment prices the cart server-side and registers the resulting
// total with the payment processor.
func (srv *orderService) PreparePayment(ctx context.Context, items []entity.LineItem) (*usecase.PaymentPreparation, error) {
	identity, err := srv.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	breakdown := srv.policy.Price(items)

	clientSecret, err := srv.payments.CreatePaymentIntent(ctx, breakdown.Total, breakdown.Currency, map[string]string{
		"customer_id": identity.ID.String(),
	})
	if err != nil {
		srv.logger.Error("Failed to create payment intent", "customerID", identity.ID, "error", err)

		return nil, domainerrors.ErrPaymentIntentFailed.WrapMessage("create payment intent")
	}

	return &usecase.PaymentPreparation{
		ClientSecret: clientSecret,
		Pricing:      breakdown,
	}, nil
}

// GetOrder retrieves one order owned by the current identity.
func (srv *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	identity, err := srv.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	return srv.findOwnedOrder(ctx, orderID, identity)
}

// GetMyOrders retrieves the current identity's orders, newest first.
func (srv *orderService) GetMyOrders(ctx context.Context) ([]*entity.Order, error) {
	identity, err := srv.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orders.FindOrdersByCustomer(ctx, identity.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find orders by customer")
	}

	return orders, nil
}

// GetOrderWithTracking retrieves an order together with its tracking log.
func (srv *orderService) GetOrderWithTracking(ctx context.Context, orderID uuid.UUID) (*entity.OrderWithTracking, error) {
	identity, err := srv.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	order, err := srv.findOwnedOrder(ctx, orderID, identity)
	if err != nil {
		return nil, err
	}

	events, err := srv.orders.FindTrackingEvents(ctx, orderID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find tracking events")
	}

	return &entity.OrderWithTracking{
		Order:          *order,
		TrackingEvents: events,
	}, nil
}

// UpdateStatus transitions an order to the given fulfillment status. The
// transition and the tracking-event append are two independent writes; a
// failed append never rolls back a committed transition, the result only
// reports it.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus, description string) (*usecase.StatusUpdateResult, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown order status %q", status))
	}

	identity, err := srv.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	order, err := srv.findOwnedOrder(ctx, orderID, identity)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("%s -> %s", order.Status, status))
	}

	now := srv.now()
	ts := repository.StatusTimestamps{}
	switch status {
	case entity.OrderStatusShipped:
		ts.ShippedAt = &now
	case entity.OrderStatusDelivered:
		ts.DeliveredAt = &now
	}

	if err := srv.orders.UpdateStatus(ctx, orderID, status, ts); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "update order status")
	}

	order.Status = status
	order.ShippedAt = coalesceTime(order.ShippedAt, ts.ShippedAt)
	order.DeliveredAt = coalesceTime(order.DeliveredAt, ts.DeliveredAt)
	order.UpdatedAt = now

	recorded := srv.appendEvent(ctx, orderID, string(status), description)

	return &usecase.StatusUpdateResult{
		Order:            order,
		TrackingRecorded: recorded,
	}, nil
}

// CancelOrder cancels a pending or processing order.
func (srv *orderService) CancelOrder(ctx context.Context, orderID uuid.UUID) (*usecase.StatusUpdateResult, error) {
	identity, err := srv.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	order, err := srv.findOwnedOrder(ctx, orderID, identity)
	if err != nil {
		return nil, err
	}

	if !order.CanBeCancelled() {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("%s -> %s", order.Status, entity.OrderStatusCancelled))
	}

	if err := srv.orders.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled, repository.StatusTimestamps{}); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "cancel order")
	}

	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = srv.now()

	recorded := srv.appendEvent(ctx, orderID, string(entity.OrderStatusCancelled), descriptionOrderCancelled)

	srv.logger.Info("Order cancelled", "orderID", orderID, "customerID", identity.ID)

	return &usecase.StatusUpdateResult{
		Order:            order,
		TrackingRecorded: recorded,
	}, nil
}

// requireIdentity resolves the authenticated customer or fails with an
// unauthenticated error.
func (srv *orderService) requireIdentity(ctx context.Context) (*entity.Identity, error) {
	identity, err := srv.identity.CurrentIdentity(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "resolve identity")
	}
	if identity == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return identity, nil
}

// findOwnedOrder loads an order and enforces that it belongs to the caller.
func (srv *orderService) findOwnedOrder(ctx context.Context, orderID uuid.UUID, identity *entity.Identity) (*entity.Order, error) {
	order, err := srv.orders.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find order")
	}

	if order.CustomerID != identity.ID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return order, nil
}

// appendEvent appends a tracking event best-effort. Failures are logged and
// reported through the return value, never escalated.
func (srv *orderService) appendEvent(ctx context.Context, orderID uuid.UUID, status, description string) bool {
	event := &entity.TrackingEvent{
		ID:          uuid.New(),
		OrderID:     orderID,
		Status:      status,
		Description: description,
		Location:    string(srv.defaultLocation),
		CreatedAt:   srv.now(),
	}

	if err := srv.orders.AppendTrackingEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to append tracking event",
			"orderID", orderID,
			"status", status,
			"error", err,
		)

		return false
	}

	return true
}

// newOrderNumber builds a human-readable order number, date plus a short
// random suffix. Uniqueness is enforced by the database constraint.
func (srv *orderService) newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return fmt.Sprintf("CMD-%s-%s", now.Format("20060102"), suffix)
}

func coalesceTime(current, next *time.Time) *time.Time {
	if next != nil {
		return next
	}

	return current
}
