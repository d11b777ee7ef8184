package impl

import (
	"context"
	"log/slog"

	"github.com/gwanzi/dog-marketplace/internal/domain/checkout"
	deliverycontext "github.com/gwanzi/dog-marketplace/internal/delivery/context"
	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	domainerrors "github.com/gwanzi/dog-marketplace/internal/domain/errors"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
	"github.com/gwanzi/dog-marketplace/internal/usecase"

	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, logger *slog.Logger) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Place builds an order from the catalog snapshot and persists it. The total
// computation itself is pure; this method only adds the snapshot read and
// the store write around it.
func (srv *orderService) Place(ctx context.Context, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	ids := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}

	catalog, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog snapshot for order")
	}

	order, err := checkout.BuildOrder(input.UserID, input.Items, input.Shipping, catalog)
	if err != nil {
		return nil, err
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to persist order")
	}

	srv.log(ctx).Info("Order placed",
		slog.String("orderID", order.ID),
		slog.String("userID", order.UserID),
		slog.Int64("total", order.Total),
	)

	return order, nil
}

// ListMine returns the orders placed by the given user.
func (srv *orderService) ListMine(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns a single order, restricted to its owner. Requests for someone
// else's order report not-found rather than confirming the id exists.
func (srv *orderService) Get(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load order")
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order belongs to another user")
	}

	return order, nil
}
