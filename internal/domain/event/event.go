// Package event defines the domain events raised by write operations and the
// synchronous in-process bus that dispatches them.
package event

import (
	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// Event names, used as dispatch keys on the bus.
const (
	NameCategoryRegistered = "category.registered"
	NameProductRegistered  = "product.registered"
	NameProductDeleted     = "product.deleted"
	NameCommentRegistered  = "comment.registered"
	NameCommentDeleted     = "comment.deleted"
	NameOrderRegistered    = "order.registered"
	NameOrderCanceled      = "order.canceled"
	NameDiscountRegistered = "discount.registered"
	NameDiscountDeleted    = "discount.deleted"
)

// Event is implemented by every domain event.
type Event interface {
	Name() string
}

// CategoryRegistered is raised after a category row is persisted.
type CategoryRegistered struct {
	Category *entity.Category
}

func (CategoryRegistered) Name() string { return NameCategoryRegistered }

// ProductRegistered is raised after a product row is persisted.
type ProductRegistered struct {
	Product *entity.Product
}

func (ProductRegistered) Name() string { return NameProductRegistered }

// ProductDeleted is raised after a product row is removed. It carries the
// deleted entity so reactors can still see its id and references.
type ProductDeleted struct {
	Product *entity.Product
}

func (ProductDeleted) Name() string { return NameProductDeleted }

// CommentRegistered is raised after a comment is persisted.
type CommentRegistered struct {
	Comment *entity.Comment
}

func (CommentRegistered) Name() string { return NameCommentRegistered }

// CommentDeleted is raised after a comment is removed.
type CommentDeleted struct {
	Comment *entity.Comment
}

func (CommentDeleted) Name() string { return NameCommentDeleted }

// OrderRegistered is raised after an order is persisted, before stock has
// been adjusted.
type OrderRegistered struct {
	Order *entity.Order
}

func (OrderRegistered) Name() string { return NameOrderRegistered }

// OrderCanceled is raised after an order's status changes to canceled.
type OrderCanceled struct {
	Order *entity.Order
}

func (OrderCanceled) Name() string { return NameOrderCanceled }

// DiscountRegistered is raised after a discount is persisted.
type DiscountRegistered struct {
	Discount entity.Discount
}

func (DiscountRegistered) Name() string { return NameDiscountRegistered }

// DiscountDeleted is raised after a discount is removed. The event carries
// the full record so reversal uses the multiplier captured at registration.
type DiscountDeleted struct {
	Discount entity.Discount
}

func (DiscountDeleted) Name() string { return NameDiscountDeleted }

// ProductIDs extracts the product ids referenced by an order's line items.
func ProductIDs(order *entity.Order) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}
