package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gwanzi/dog-marketplace/internal/delivery/http/middleware"
	"github.com/gwanzi/dog-marketplace/internal/delivery/http/response"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type upsertVetRequest struct {
	Name      string   `json:"name"`
	Clinic    string   `json:"clinic" validate:"required"`
	License   string   `json:"license"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Specialty string   `json:"specialty"`
}

// VetHandler holds dependencies for vet discovery handlers.
type VetHandler struct {
	uc     usecase.VetUsecase
	logger *slog.Logger
}

// NewVetHandler is the constructor for VetHandler, injected by Fx.
func NewVetHandler(uc usecase.VetUsecase, logger *slog.Logger) *VetHandler {
	return &VetHandler{
		uc:     uc,
		logger: logger,
	}
}

// Upsert handles a vet posting their clinic profile. The new payload fully
// replaces any previous one.
func (h *VetHandler) Upsert(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req upsertVetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vet profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	vet, err := h.uc.UpsertProfile(c.Request().Context(), &usecase.UpsertVetInput{
		UserID:    userID,
		Name:      req.Name,
		Clinic:    req.Clinic,
		License:   req.License,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Specialty: req.Specialty,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, vet, "Vet profile saved successfully")
}

// Search returns vets ranked by distance from the optional ?lat&lng query
// point, limited by the optional ?radiusKm.
func (h *VetHandler) Search(c echo.Context) error {
	input := &usecase.SearchVetsInput{}

	var err error
	if input.Latitude, err = queryFloat(c, "lat"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat must be a number")
	}
	if input.Longitude, err = queryFloat(c, "lng"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lng must be a number")
	}
	if input.RadiusKm, err = queryFloat(c, "radiusKm"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "radiusKm must be a number")
	}

	ranked, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranked, "Vets retrieved successfully")
}

// Get returns a single vet profile by id.
func (h *VetHandler) Get(c echo.Context) error {
	vet, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vet, "Vet retrieved successfully")
}

// queryFloat parses an optional float query parameter, nil when absent.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
