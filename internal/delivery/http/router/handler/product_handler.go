package handler

import (
	"log/slog"
	"net/http"

	"github.com/gwanzi/dog-marketplace/internal/delivery/http/middleware"
	"github.com/gwanzi/dog-marketplace/internal/delivery/http/response"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createProductRequest is the payload for a new listing. Prices are minor
// currency units, so they bind as integers.
type createProductRequest struct {
	Title    string `json:"title" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Category string `json:"category"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles a vendor posting a new product listing.
func (h *ProductHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.Create(c.Request().Context(), &usecase.CreateProductInput{
		VendorID: userID,
		Title:    req.Title,
		Price:    req.Price,
		Category: req.Category,
		Image:    req.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// List returns listings, optionally filtered by ?category=.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// Get returns a single listing by id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}
