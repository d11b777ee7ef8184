package usecase

import (
	"context"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/geo"
)

// UpsertVetInput defines the data for a vet clinic profile. UserID comes
// from the authenticated session. Coordinates are optional; a profile
// without them is excluded from proximity queries.
type UpsertVetInput struct {
	UserID    string
	Name      string
	Clinic    string
	License   string
	Latitude  *float64
	Longitude *float64
	Specialty string
}

// SearchVetsInput defines an optional proximity query. Latitude and
// Longitude must be given together; RadiusKm requires a query point.
type SearchVetsInput struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  *float64
}

// VetUsecase defines the interface for vet discovery operations.
type VetUsecase interface {
	// UpsertProfile stores the profile for a vet-role user, fully replacing
	// any previous record.
	UpsertProfile(ctx context.Context, input *UpsertVetInput) (*entity.Vet, error)

	// Search returns vets ranked by distance from the query point, or the
	// whole collection when no point is given.
	Search(ctx context.Context, input *SearchVetsInput) ([]geo.RankedVet, error)

	Get(ctx context.Context, id string) (*entity.Vet, error)
}
