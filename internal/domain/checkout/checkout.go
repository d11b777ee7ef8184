// Package checkout implements the pure order aggregation logic. It resolves
// line items against a product catalog snapshot and computes the order total
// without touching persistence; writing the resulting order is the caller's
// responsibility.
package checkout

import (
	"encoding/json"
	"time"

	"github.com/gwanzi/dog-marketplace/internal/domain/entity"
	domainerrors "github.com/gwanzi/dog-marketplace/internal/domain/errors"
)

// BuildOrder computes a new pending order for userID from the given line
// items and catalog snapshot.
//
// A quantity that is absent or non-positive counts as 1. A line item whose
// product id is not in the catalog contributes 0 to the total and raises no
// error; this leniency is deliberate policy, not an oversight, and is pinned
// by tests. A nil items slice fails with ErrInvalidInput.
//
// Identifier and timestamp generation are the only non-deterministic parts;
// two calls with identical inputs produce equal totals under distinct ids.
func BuildOrder(userID string, items []entity.LineItem, shipping json.RawMessage, catalog map[string]*entity.Product) (*entity.Order, error) {
	if items == nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("order items are required")
	}

	normalized := make([]entity.LineItem, 0, len(items))

	var total int64
	for _, item := range items {
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}

		if product, ok := catalog[item.ProductID]; ok {
			total += product.Price * int64(qty)
		}

		normalized = append(normalized, entity.LineItem{
			ProductID: item.ProductID,
			Quantity:  qty,
		})
	}

	return &entity.Order{
		ID:        entity.NewID(entity.PrefixOrder),
		UserID:    userID,
		Items:     normalized,
		Shipping:  shipping,
		Total:     total,
		Status:    entity.OrderStatusPending,
		CreatedAt: time.Now(),
	}, nil
}
