package impl

import (
	"context"
	"log/slog"

	"github.com/gwanzi/dog-marketplace/config"
	deliverycontext "github.com/gwanzi/dog-marketplace/internal/delivery/context"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	domainerrors "github.com/gwanzi/dog-marketplace/internal/domain/errors"
	"github.com/gwanzi/dog-marketplace/internal/domain/geo"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// vetService implements the VetUsecase interface.
type vetService struct {
	vetRepo  repository.VetRepository
	userRepo repository.UserRepository
	config   *config.Config
	logger   *slog.Logger
}

// NewVetService is the constructor for vetService.
func NewVetService(vetRepo repository.VetRepository, userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) usecase.VetUsecase {
	return &vetService{
		vetRepo:  vetRepo,
		userRepo: userRepo,
		config:   cfg,
		logger:   logger,
	}
}

func (srv *vetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertProfile stores the clinic profile for a vet-role user, fully
// replacing any previous record for the same account.
func (srv *vetService) UpsertProfile(ctx context.Context, input *usecase.UpsertVetInput) (*entity.Vet, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return nil, errors.Wrap(err, "failed to load user for vet profile")
	}
	if user.Role != entity.RoleVet {
		return nil, domainerrors.ErrForbidden.WrapMessage("only vet accounts can hold a vet profile")
	}

	// A point needs both halves; half a coordinate pair is a client bug.
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("latitude and longitude must be given together")
	}

	name := input.Name
	if name == "" {
		name = user.Name
	}

	specialty := input.Specialty
	if specialty == "" {
		specialty = entity.DefaultSpecialty
	}

	vet := &entity.Vet{
		ID:        input.UserID, // Profile is keyed 1:1 with the owning user.
		Name:      name,
		Clinic:    input.Clinic,
		License:   input.License,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Specialty: specialty,
	}

	if err := srv.vetRepo.Upsert(ctx, vet); err != nil {
		return nil, errors.Wrap(err, "failed to upsert vet profile")
	}

	srv.log(ctx).Info("Vet profile stored", slog.String("vetID", vet.ID), slog.Bool("hasCoordinates", vet.HasCoordinates()))

	return vet, nil
}

// Search returns vets ranked by distance from the optional query point.
// Without a point the whole collection comes back in stored order.
func (srv *vetService) Search(ctx context.Context, input *usecase.SearchVetsInput) ([]geo.RankedVet, error) {
	query, radius, err := srv.resolveQuery(input)
	if err != nil {
		return nil, err
	}

	vets, err := srv.vetRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vets for search")
	}

	return geo.RankVets(vets, query, radius), nil
}

// resolveQuery validates the proximity parameters and applies the configured
// radius cap.
func (srv *vetService) resolveQuery(input *usecase.SearchVetsInput) (*orb.Point, *float64, error) {
	if input == nil {
		return nil, nil, nil
	}

	if (input.Latitude == nil) != (input.Longitude == nil) {
		return nil, nil, domainerrors.ErrInvalidInput.WrapMessage("latitude and longitude must be given together")
	}

	if input.Latitude == nil {
		if input.RadiusKm != nil {
			return nil, nil, domainerrors.ErrInvalidInput.WrapMessage("a radius requires a query point")
		}

		return nil, nil, nil
	}

	query := &orb.Point{*input.Longitude, *input.Latitude}

	radius := input.RadiusKm
	if radius != nil {
		if *radius < 0 {
			return nil, nil, domainerrors.ErrInvalidInput.WrapMessage("radius must be non-negative")
		}
		if srv.config != nil && srv.config.Proximity != nil && srv.config.Proximity.MaxRadiusKm > 0 && *radius > srv.config.Proximity.MaxRadiusKm {
			capped := srv.config.Proximity.MaxRadiusKm
			radius = &capped
		}
	}

	return query, radius, nil
}

// Get returns a single vet profile.
func (srv *vetService) Get(ctx context.Context, id string) (*entity.Vet, error) {
	vet, err := srv.vetRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVetNotFound) {
			return nil, domainerrors.ErrVetNotFound.WrapMessage("vet lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load vet")
	}

	return vet, nil
}
