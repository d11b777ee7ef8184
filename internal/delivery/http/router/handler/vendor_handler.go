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

type createVendorRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// VendorHandler holds dependencies for vendor profile handlers.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles a vendor setting up their storefront profile. Posting again
// returns the existing profile unchanged.
func (h *VendorHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createVendorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vendor profile input")
	}

	vendor, err := h.uc.CreateProfile(c.Request().Context(), &usecase.CreateVendorInput{
		UserID:   userID,
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vendor, "Vendor profile created successfully")
}

// List returns all vendor profiles.
func (h *VendorHandler) List(c echo.Context) error {
	vendors, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendors, "Vendors retrieved successfully")
}

// Get returns a single vendor profile by id.
func (h *VendorHandler) Get(c echo.Context) error {
	vendor, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor retrieved successfully")
}
