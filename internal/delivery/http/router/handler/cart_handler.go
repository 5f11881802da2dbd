package handler

import (
	"log/slog"
	"net/http"

	"boutique/internal/delivery/http/response"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc       usecase.CartUsecase
	identity service.IdentityService
	logger   *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, identity service.IdentityService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:       uc,
		identity: identity,
		logger:   logger,
	}
}

// AddItemRequest is the payload for adding a line item to the cart.
type AddItemRequest struct {
	VariantID string `json:"variant_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	SKU       string `json:"sku"`
	ImageURL  string `json:"image_url"`
	UnitPrice string `json:"unit_price" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateQuantityRequest is the payload for overwriting a line item quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the cart with freshly derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	customerID, err := h.currentCustomer(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.GetCart(c.Request().Context(), customerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// AddItem adds a line item to the cart, merging by variant.
func (h *CartHandler) AddItem(c echo.Context) error {
	customerID, err := h.currentCustomer(c)
	if err != nil {
		return err
	}

	var input AddItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cart item input")
	}

	unitPrice, err := decimal.NewFromString(input.UnitPrice)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid unit price")
	}

	summary, err := h.uc.AddItem(c.Request().Context(), customerID, entity.LineItem{
		VariantID: input.VariantID,
		ProductID: input.ProductID,
		Name:      input.Name,
		Size:      input.Size,
		Color:     input.Color,
		SKU:       input.SKU,
		ImageURL:  input.ImageURL,
		UnitPrice: unitPrice,
		Quantity:  input.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Article ajouté au panier")
}

// UpdateQuantity overwrites the quantity of a line item. Zero or below
// removes the line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	customerID, err := h.currentCustomer(c)
	if err != nil {
		return err
	}

	var input UpdateQuantityRequest
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid quantity input")
	}

	summary, err := h.uc.UpdateQuantity(c.Request().Context(), customerID, c.Param("variantID"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}

// RemoveItem removes a line item from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	customerID, err := h.currentCustomer(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.RemoveItem(c.Request().Context(), customerID, c.Param("variantID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Article retiré du panier")
}

// GetQuantity returns the current quantity for a variant.
func (h *CartHandler) GetQuantity(c echo.Context) error {
	customerID, err := h.currentCustomer(c)
	if err != nil {
		return err
	}

	quantity, err := h.uc.GetQuantity(c.Request().Context(), customerID, c.Param("variantID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"quantity": quantity}, "")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	customerID, err := h.currentCustomer(c)
	if err != nil {
		return err
	}

	if err := h.uc.Clear(c.Request().Context(), customerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Panier vidé")
}

// currentCustomer resolves the authenticated customer id from the request
// context.
func (h *CartHandler) currentCustomer(c echo.Context) (uuid.UUID, error) {
	id, err := h.identity.CurrentIdentity(c.Request().Context())
	if err != nil {
		return uuid.Nil, errors.WithStack(err)
	}
	if id == nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return id.ID, nil
}
