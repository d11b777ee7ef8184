// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence. Orders are
// created once at submission; status transitions are a future concern.
type OrderRepository interface {
	// Create persists a newly built order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Order, error)

	// ListByUser retrieves all orders placed by the given user.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
}
