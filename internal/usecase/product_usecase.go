package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// RegisterProduct creates a product, computes its related-category
	// closure, and notifies the indexer.
	RegisterProduct(ctx context.Context, input *RegisterProductInput) (*entity.Product, error)

	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context, page, pageSize int) (*pagination.Page[entity.Product], error)
	SearchProducts(ctx context.Context, query string, page, pageSize int) (*pagination.Page[entity.Product], error)

	// UpdateProduct modifies the caption fields, categories, or
	// characteristics. Changing categories recomputes the closure.
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes the product and cascades cleanup of comments,
	// discount targets, and carts.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// SetQuantity overwrites the available stock.
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int64) error

	// AddImage attaches an image reference.
	AddImage(ctx context.Context, id uuid.UUID, image string) error

	// RemoveImage detaches an image reference.
	RemoveImage(ctx context.Context, id uuid.UUID, image string) error
}

// --- Input DTOs ---

// RegisterProductInput defines the data required to register a product.
type RegisterProductInput struct {
	Name            string            `json:"name" validate:"required"`
	Description     string            `json:"description"`
	CategoryIDs     []uuid.UUID       `json:"category_ids" validate:"required,min=1"`
	Characteristics map[string]string `json:"characteristics"`
	Price           float64           `json:"price" validate:"required,gt=0"`
	Quantity        int64             `json:"quantity" validate:"gte=0"`
	Images          []string          `json:"images"`
}

// UpdateProductInput defines the mutable product fields. Nil fields are left
// unchanged.
type UpdateProductInput struct {
	Name            *string           `json:"name,omitempty"`
	Description     *string           `json:"description,omitempty"`
	CategoryIDs     []uuid.UUID       `json:"category_ids,omitempty"`
	Characteristics map[string]string `json:"characteristics,omitempty"`
	Price           *float64          `json:"price,omitempty"`
}
