package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/gwanzi/dog-marketplace/internal/delivery/context"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	domainerrors "github.com/gwanzi/dog-marketplace/internal/domain/errors"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/pkg/errors"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	vendorRepo repository.VendorRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(vendorRepo repository.VendorRepository, userRepo repository.UserRepository, logger *slog.Logger) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: vendorRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile creates the storefront profile for a vendor-role user.
// Re-posting is idempotent: the existing profile is returned unchanged,
// unlike the vet profile's full-replace upsert.
func (srv *vendorService) CreateProfile(ctx context.Context, input *usecase.CreateVendorInput) (*entity.Vendor, error) {
	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return nil, errors.Wrap(err, "failed to load user for vendor profile")
	}
	if user.Role != entity.RoleVendor {
		return nil, domainerrors.ErrForbidden.WrapMessage("only vendor accounts can hold a vendor profile")
	}

	existing, err := srv.vendorRepo.FindByID(ctx, input.UserID)
	if err == nil {
		srv.log(ctx).Debug("Vendor profile already exists", slog.String("vendorID", existing.ID))

		return existing, nil
	}
	if !errors.Is(err, repository.ErrVendorNotFound) {
		return nil, errors.Wrap(err, "failed to check for existing vendor profile")
	}

	name := input.Name
	if name == "" {
		name = user.Name
	}

	vendor := &entity.Vendor{
		ID:       input.UserID, // Profile is keyed 1:1 with the owning user.
		Name:     name,
		Location: input.Location,
		Rating:   0,
	}

	if err := srv.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to create vendor profile")
	}

	srv.log(ctx).Info("Vendor profile created", slog.String("vendorID", vendor.ID))

	return vendor, nil
}

// List returns all vendor profiles.
func (srv *vendorService) List(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// Get returns a single vendor profile.
func (srv *vendorService) Get(ctx context.Context, id string) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrVendorNotFound.WrapMessage("vendor lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load vendor")
	}

	return vendor, nil
}
