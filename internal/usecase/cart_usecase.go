package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart and checkout operations.
type CartUsecase interface {
	// AddItem puts quantity units of a product into the owner's cart,
	// creating the cart on first use.
	AddItem(ctx context.Context, ownerID uuid.UUID, input *AddItemInput) (*entity.Cart, error)

	// RemoveItem drops a product from the owner's cart.
	RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) (*entity.Cart, error)

	GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// Checkout converts the cart into an immutable order, capturing current
	// prices (optionally reduced by a promo code), decrements stock, and
	// deletes the cart. Insufficient stock aborts the whole checkout.
	Checkout(ctx context.Context, ownerID uuid.UUID, input *CheckoutInput) (*entity.Order, error)
}

// --- Input DTOs ---

// AddItemInput defines the data required to add a cart item.
type AddItemInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,gte=1"`
}

// CheckoutInput defines the data required to convert a cart into an order.
type CheckoutInput struct {
	ShippingAddress string `json:"shipping_address" validate:"required"`
	PromoCode       string `json:"promo_code,omitempty"`
}
