package usecase

import (
	"context"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// CreateProductInput defines the data required to create a product listing.
// VendorID comes from the authenticated session, never the request body.
type CreateProductInput struct {
	VendorID string
	Title    string
	Price    int64
	Category string
	Image    string
}

// ProductUsecase defines the interface for product catalog operations.
type ProductUsecase interface {
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// List returns listings, optionally filtered by category (empty = all).
	List(ctx context.Context, category string) ([]*entity.Product, error)

	Get(ctx context.Context, id string) (*entity.Product, error)
}
