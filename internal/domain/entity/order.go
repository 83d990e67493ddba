package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusUnpaid     OrderStatus = "UNPAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipping   OrderStatus = "SHIPPING"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

// ValidOrderStatus reports whether s is a known lifecycle state.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusUnpaid, OrderStatusProcessing, OrderStatusShipping,
		OrderStatusCompleted, OrderStatusCanceled:
		return true
	}

	return false
}

// OrderItem is a line item with the price captured at checkout time, after
// any promo-code multiplier was applied.
type OrderItem struct {
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	CapturedPrice float64   `json:"captured_price"`
}

// Order is an immutable record produced from a cart at checkout. Stock and
// order counters are adjusted by the stock reactor when the order is
// registered and restored when it is canceled.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	OwnerID         uuid.UUID   `json:"owner_id"`
	Items           []OrderItem `json:"items"`
	Status          OrderStatus `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
}
