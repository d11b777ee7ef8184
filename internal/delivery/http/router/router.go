// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/gwanzi/dog-marketplace/internal/delivery/http/middleware"
	"github.com/gwanzi/dog-marketplace/internal/delivery/http/router/handler"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	VendorHandler  *handler.VendorHandler
	VetHandler     *handler.VetHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
		authGroup.POST("/refresh", r.params.UserHandler.Refresh)
	}

	// Current account
	e.GET("/me", r.params.UserHandler.GetProfile, auth.Authenticate)

	// Product catalog: browsing is public, listing creation is vendor-only.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.POST("", r.params.ProductHandler.Create,
			auth.Authenticate, auth.RequireRole(entity.RoleVendor))
	}

	// Vendor storefront profiles.
	vendorGroup := e.Group("/vendors")
	{
		vendorGroup.GET("", r.params.VendorHandler.List)
		vendorGroup.GET("/:id", r.params.VendorHandler.Get)
		vendorGroup.POST("", r.params.VendorHandler.Create,
			auth.Authenticate, auth.RequireRole(entity.RoleVendor))
	}

	// Vet clinic profiles and proximity discovery.
	vetGroup := e.Group("/vets")
	{
		vetGroup.GET("", r.params.VetHandler.Search)
		vetGroup.GET("/:id", r.params.VetHandler.Get)
		vetGroup.POST("", r.params.VetHandler.Upsert,
			auth.Authenticate, auth.RequireRole(entity.RoleVet))
	}

	// Orders are private to the authenticated user.
	orderGroup := e.Group("/orders")
	orderGroup.Use(auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Place)
		orderGroup.GET("", r.params.OrderHandler.ListMine)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
	}
}
