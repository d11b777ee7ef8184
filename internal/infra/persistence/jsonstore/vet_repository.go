package jsonstore

import (
	"context"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
)

// vetRepository implements repository.VetRepository on the JSON document.
type vetRepository struct {
	store *Store
}

// NewVetRepository creates a vet repository backed by the shared store.
func NewVetRepository(store *Store) repository.VetRepository {
	return &vetRepository{store: store}
}

// Upsert stores the vet profile, fully replacing any prior record for the
// same ID while keeping its position in the collection.
func (r *vetRepository) Upsert(ctx context.Context, vet *entity.Vet) error {
	return r.store.update(func(doc *document) error {
		for i, existing := range doc.Vets {
			if existing.ID == vet.ID {
				doc.Vets[i] = cloneVet(vet)

				return nil
			}
		}

		doc.Vets = append(doc.Vets, cloneVet(vet))

		return nil
	})
}

// FindByID retrieves a vet profile by its owning user's ID.
func (r *vetRepository) FindByID(ctx context.Context, id string) (*entity.Vet, error) {
	var found *entity.Vet

	err := r.store.view(func(doc *document) error {
		for _, vet := range doc.Vets {
			if vet.ID == id {
				found = cloneVet(vet)

				return nil
			}
		}

		return repository.ErrVetNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// List retrieves all vet profiles in insertion order.
func (r *vetRepository) List(ctx context.Context) ([]*entity.Vet, error) {
	vets := make([]*entity.Vet, 0)

	err := r.store.view(func(doc *document) error {
		for _, vet := range doc.Vets {
			vets = append(vets, cloneVet(vet))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return vets, nil
}

// cloneVet deep-copies the coordinate pointers so callers can never reach
// back into the document.
func cloneVet(vet *entity.Vet) *entity.Vet {
	clone := *vet
	if vet.Latitude != nil {
		lat := *vet.Latitude
		clone.Latitude = &lat
	}
	if vet.Longitude != nil {
		lng := *vet.Longitude
		clone.Longitude = &lng
	}

	return &clone
}
