// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// ErrVetNotFound is returned when a vet profile is not found.
var ErrVetNotFound = errors.New("vet profile not found")

// VetRepository defines the operations for vet profile persistence.
// A vet profile is keyed 1:1 with a vet-role user.
type VetRepository interface {
	// Upsert stores the vet profile, fully replacing any prior record for
	// the same ID.
	Upsert(ctx context.Context, vet *entity.Vet) error

	// FindByID retrieves a vet profile by its owning user's ID.
	FindByID(ctx context.Context, id string) (*entity.Vet, error)

	// List retrieves all vet profiles in insertion order.
	List(ctx context.Context) ([]*entity.Vet, error)
}
