package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// DiscountUsecase defines the interface for discount-related business operations.
type DiscountUsecase interface {
	// RegisterProductDiscount creates a discount targeting an explicit
	// product list and applies its multiplier to those products.
	RegisterProductDiscount(ctx context.Context, input *RegisterProductDiscountInput) (*entity.ProductDiscount, error)

	// RegisterCategoryDiscount creates a discount targeting the subtree
	// closure of the named categories and applies its multiplier to every
	// product whose related categories intersect that closure.
	RegisterCategoryDiscount(ctx context.Context, input *RegisterCategoryDiscountInput) (*entity.CategoryDiscount, error)

	// RegisterPromoCode creates a code discount. It touches no product
	// prices; the code's multiplier applies at checkout.
	RegisterPromoCode(ctx context.Context, input *RegisterPromoCodeInput) (*entity.PromoCode, error)

	GetDiscount(ctx context.Context, id uuid.UUID) (entity.Discount, error)
	ListDiscounts(ctx context.Context, page, pageSize int) (*pagination.Page[entity.Discount], error)
	SearchDiscounts(ctx context.Context, query string, page, pageSize int) (*pagination.Page[entity.Discount], error)

	// FindPromoCode resolves a code discount by its code.
	FindPromoCode(ctx context.Context, code string) (*entity.PromoCode, error)

	// DeleteDiscount reverses the discount's price effect using the
	// multiplier captured at registration, then removes the record.
	DeleteDiscount(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// RegisterProductDiscountInput defines the data for a product-targeted discount.
type RegisterProductDiscountInput struct {
	Description string      `json:"description" validate:"required"`
	PercentOff  float64     `json:"percent_off" validate:"required"`
	ProductIDs  []uuid.UUID `json:"product_ids" validate:"required,min=1"`
}

// RegisterCategoryDiscountInput defines the data for a category-targeted discount.
type RegisterCategoryDiscountInput struct {
	Description string      `json:"description" validate:"required"`
	PercentOff  float64     `json:"percent_off" validate:"required"`
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"required,min=1"`
}

// RegisterPromoCodeInput defines the data for a code-targeted discount.
type RegisterPromoCodeInput struct {
	Description string  `json:"description" validate:"required"`
	PercentOff  float64 `json:"percent_off" validate:"required"`
	Code        string  `json:"code" validate:"required"`
}
