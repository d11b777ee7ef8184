package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gwanzi/dog-marketplace/internal/delivery/http/middleware"
	"github.com/gwanzi/dog-marketplace/internal/delivery/http/response"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// placeOrderRequest is the payload for a new order. Shipping stays an opaque
// JSON value; the service stores it without interpreting it.
type placeOrderRequest struct {
	Items    []entity.LineItem `json:"items"`
	Shipping json.RawMessage   `json:"shipping"`
}

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Place handles a buyer submitting an order.
func (h *OrderHandler) Place(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.uc.Place(c.Request().Context(), &usecase.PlaceOrderInput{
		UserID:   userID,
		Items:    req.Items,
		Shipping: req.Shipping,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListMine returns the authenticated user's orders.
func (h *OrderHandler) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// Get returns one of the authenticated user's orders by id.
func (h *OrderHandler) Get(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	order, err := h.uc.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}
