package jsonstore

import (
	"context"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
)

// vendorRepository implements repository.VendorRepository on the JSON document.
type vendorRepository struct {
	store *Store
}

// NewVendorRepository creates a vendor repository backed by the shared store.
func NewVendorRepository(store *Store) repository.VendorRepository {
	return &vendorRepository{store: store}
}

// Create persists a new vendor profile.
func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	return r.store.update(func(doc *document) error {
		doc.Vendors = append(doc.Vendors, cloneVendor(vendor))

		return nil
	})
}

// FindByID retrieves a vendor profile by its owning user's ID.
func (r *vendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	var found *entity.Vendor

	err := r.store.view(func(doc *document) error {
		for _, vendor := range doc.Vendors {
			if vendor.ID == id {
				found = cloneVendor(vendor)

				return nil
			}
		}

		return repository.ErrVendorNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// List retrieves all vendor profiles.
func (r *vendorRepository) List(ctx context.Context) ([]*entity.Vendor, error) {
	vendors := make([]*entity.Vendor, 0)

	err := r.store.view(func(doc *document) error {
		for _, vendor := range doc.Vendors {
			vendors = append(vendors, cloneVendor(vendor))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return vendors, nil
}

func cloneVendor(vendor *entity.Vendor) *entity.Vendor {
	clone := *vendor

	return &clone
}
