package usecase

import (
	"context"
	"encoding/json"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// PlaceOrderInput defines the data for a new order. UserID comes from the
// authenticated session; Shipping is an opaque payload passed through to the
// stored order. A nil Items slice is rejected as invalid input.
type PlaceOrderInput struct {
	UserID   string
	Items    []entity.LineItem
	Shipping json.RawMessage
}

// OrderUsecase defines the interface for order operations.
type OrderUsecase interface {
	Place(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// ListMine returns the orders placed by the given user.
	ListMine(ctx context.Context, userID string) ([]*entity.Order, error)

	// Get returns a single order, restricted to its owner.
	Get(ctx context.Context, userID, orderID string) (*entity.Order, error)
}
