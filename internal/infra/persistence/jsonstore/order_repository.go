package jsonstore

import (
	"context"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	"github.com/gwanzi/dog-marketplace/internal/domain/repository"
)

// orderRepository implements repository.OrderRepository on the JSON document.
type orderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository backed by the shared store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

// Create persists a newly built order.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.store.update(func(doc *document) error {
		doc.Orders = append(doc.Orders, cloneOrder(order))

		return nil
	})
}

// FindByID retrieves an order by its unique ID.
func (r *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var found *entity.Order

	err := r.store.view(func(doc *document) error {
		for _, order := range doc.Orders {
			if order.ID == id {
				found = cloneOrder(order)

				return nil
			}
		}

		return repository.ErrOrderNotFound
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

// ListByUser retrieves all orders placed by the given user.
func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)

	err := r.store.view(func(doc *document) error {
		for _, order := range doc.Orders {
			if order.UserID == userID {
				orders = append(orders, cloneOrder(order))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// cloneOrder copies the line item slice and the opaque shipping payload so
// callers can never reach back into the document.
func cloneOrder(order *entity.Order) *entity.Order {
	clone := *order

	if order.Items != nil {
		clone.Items = make([]entity.LineItem, len(order.Items))
		copy(clone.Items, order.Items)
	}

	if order.Shipping != nil {
		clone.Shipping = make([]byte, len(order.Shipping))
		copy(clone.Shipping, order.Shipping)
	}

	return &clone
}
