// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product listing persistence.
// Listings are immutable once created; there is no update or delete.
type ProductRepository interface {
	// Create persists a new product listing.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List retrieves products, optionally filtered by category.
	// An empty category returns the whole collection.
	List(ctx context.Context, category string) ([]*entity.Product, error)

	// FindByIDs retrieves the products for the given ids as a catalog map.
	// Unknown ids are simply absent from the result; no error is raised.
	FindByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
}
