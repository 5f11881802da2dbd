// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cart routes, all scoped to the authenticated customer
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.GET("/items/:variantID", r.cartHandler.GetQuantity)
		cartGroup.PUT("/items/:variantID", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:variantID", r.cartHandler.RemoveItem)
	}

	// Checkout and order routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.GetMyOrders)
		orderGroup.POST("/payment-intent", r.orderHandler.PreparePayment)
		orderGroup.GET("/:orderID", r.orderHandler.GetOrder)
		orderGroup.GET("/:orderID/tracking", r.orderHandler.GetOrderWithTracking)
		orderGroup.PATCH("/:orderID/status", r.orderHandler.UpdateStatus)
		orderGroup.POST("/:orderID/cancel", r.orderHandler.CancelOrder)
	}
}
