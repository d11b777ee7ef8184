package usecase

import (
	"context"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// CreateVendorInput defines the data for a vendor storefront profile.
// UserID comes from the authenticated session.
type CreateVendorInput struct {
	UserID   string
	Name     string
	Location string
}

// VendorUsecase defines the interface for vendor profile operations.
type VendorUsecase interface {
	// CreateProfile creates the profile for a vendor-role user. The call is
	// idempotent: if the profile already exists it is returned unchanged.
	CreateProfile(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error)

	List(ctx context.Context) ([]*entity.Vendor, error)

	Get(ctx context.Context, id string) (*entity.Vendor, error)
}
