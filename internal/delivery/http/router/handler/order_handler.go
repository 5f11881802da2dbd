package handler

import (
	"log/slog"
	"net/http"

	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/entity"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	cartUC  usecase.CartUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(orderUC usecase.OrderUsecase, cartUC usecase.CartUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		cartUC:  cartUC,
		logger:  logger,
	}
}

// UpdateStatusRequest is the payload for a fulfillment status transition.
type UpdateStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Description string `json:"description"`
}

// CreateOrder turns the submitted cart into an order. The customer's stored
// cart is cleared only after the order is confirmed persisted.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var input usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order input")
	}

	ctx := c.Request().Context()

	order, err := h.orderUC.CreateOrder(ctx, input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Best-effort, the order already exists; an orphaned cart only means
	// the customer sees stale items until the next mutation.
	if err := h.cartUC.Clear(ctx, order.CustomerID); err != nil {
		h.logger.Warn("Failed to clear cart after order creation",
			"orderID", order.ID,
			"customerID", order.CustomerID,
			"error", err,
		)
	}

	return response.Success(c, http.StatusCreated, order, "Commande créée")
}

// PreparePayment prices the stored cart and creates a payment intent for it.
func (h *OrderHandler) PreparePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var input struct {
		Items []entity.LineItem `json:"items"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid payment input")
	}

	preparation, err := h.orderUC.PreparePayment(ctx, input.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, preparation, "")
}

// GetMyOrders lists the customer's orders, newest first.
func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	orders, err := h.orderUC.GetMyOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// GetOrder returns one order owned by the customer.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// GetOrderWithTracking returns an order together with its tracking log.
func (h *OrderHandler) GetOrderWithTracking(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	order, err := h.orderUC.GetOrderWithTracking(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// UpdateStatus transitions an order's fulfillment status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	var input UpdateStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}

	result, err := h.orderUC.UpdateStatus(c.Request().Context(), orderID, entity.OrderStatus(input.Status), input.Description)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// CancelOrder cancels a pending or processing order.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order id")
	}

	result, err := h.orderUC.CancelOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Commande annulée")
}
