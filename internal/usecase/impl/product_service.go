package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/gwanzi/dog-marketplace/internal/delivery/context"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	domainerrors "github.com/gwanzi/dog-marketplace/internal/domain/errors"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new listing for a vendor-role user.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("price must be non-negative")
	}

	// The route middleware already requires the vendor role; the lookup here
	// pins the listing to an account that actually exists.
	vendor, err := srv.userRepo.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("listing owner does not exist")
		}

		return nil, errors.Wrap(err, "failed to load vendor for listing")
	}
	if vendor.Role != entity.RoleVendor {
		return nil, domainerrors.ErrForbidden.WrapMessage("only vendors can create listings")
	}

	product := &entity.Product{
		ID:        entity.NewID(entity.PrefixProduct),
		Title:     input.Title,
		Price:     input.Price,
		Category:  input.Category,
		Image:     input.Image,
		VendorID:  input.VendorID,
		CreatedAt: time.Now(),
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product listing")
	}

	srv.log(ctx).Info("Listing created", slog.String("productID", product.ID), slog.String("vendorID", product.VendorID))

	return product, nil
}

// List returns listings, optionally filtered by category.
func (srv *productService) List(ctx context.Context, category string) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Get returns a single listing.
func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}
