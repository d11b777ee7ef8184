// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// ErrVendorNotFound is returned when a vendor profile is not found.
var ErrVendorNotFound = errors.New("vendor profile not found")

// VendorRepository defines the operations for vendor profile persistence.
// A vendor profile is keyed 1:1 with a vendor-role user.
type VendorRepository interface {
	// Create persists a new vendor profile.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// FindByID retrieves a vendor profile by its owning user's ID.
	FindByID(ctx context.Context, id string) (*entity.Vendor, error)

	// List retrieves all vendor profiles.
	List(ctx context.Context) ([]*entity.Vendor, error)
}
