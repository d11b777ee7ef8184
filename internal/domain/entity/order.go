// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"time"
)

// OrderStatus enumerates the lifecycle states of an order. Only "pending" is
// produced today; the remaining states are reserved for status transitions.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every submitted order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusShipped marks an order handed to a carrier.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered marks an order received by the buyer.
	OrderStatusDelivered OrderStatus = "delivered"
)

// LineItem is a (product, quantity) pair within an order.
type LineItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"` // Treated as 1 when absent or non-positive.
}

// Order is a buyer's submitted purchase. Shipping is an opaque payload passed
// through from the request; the system never interprets it.
type Order struct {
	ID        string          `json:"id"`     // Opaque prefixed identifier (ord_...).
	UserID    string          `json:"userId"` // Identifier of the ordering user.
	Items     []LineItem      `json:"items"`
	Shipping  json.RawMessage `json:"shipping,omitempty"`
	Total     int64           `json:"total"` // Sum of line-item subtotals in minor currency units.
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
