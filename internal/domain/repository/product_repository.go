package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a conditional stock decrement would
// drive the available quantity below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductRepository defines the standard operations for product persistence.
//
// The denormalized fields (rating, actual price, order count, available
// quantity) are mutated only through the atomic field-level operations below,
// never by read-modify-write of the whole row. Concurrent writers touching
// the same product are serialized at the database.
type ProductRepository interface {
	// Create persists a new product entity to the storage.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves all products whose id appears in ids.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)

	// Update modifies an existing product entity in the storage. Price
	// fields are excluded; they change only through RescalePrice and
	// MultiplyActualPrice.
	Update(ctx context.Context, product *entity.Product) error

	// RescalePrice atomically overwrites the base price and rescales the
	// actual price by the same ratio, so applied discount multipliers
	// survive the change.
	RescalePrice(ctx context.Context, id uuid.UUID, price float64) error

	// Delete removes the product row.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves one page of products ordered by creation time.
	List(ctx context.Context, req pagination.Request) ([]entity.Product, int64, error)

	// Search retrieves one page of products whose name matches the query.
	Search(ctx context.Context, query string, req pagination.Request) ([]entity.Product, int64, error)

	// FindIDsByRelatedCategories returns the ids of every product whose
	// related-category closure intersects the given category set.
	FindIDsByRelatedCategories(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error)

	// DecrementStock atomically subtracts quantity from available stock and
	// adds one to the order count, guarded so stock never goes negative.
	// Returns ErrInsufficientStock when the guard fails.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int64) error

	// RestoreStock atomically adds quantity back to available stock and
	// subtracts one from the order count. The exact inverse of DecrementStock.
	RestoreStock(ctx context.Context, id uuid.UUID, quantity int64) error

	// SetQuantity overwrites the available quantity.
	SetQuantity(ctx context.Context, id uuid.UUID, quantity int64) error

	// MultiplyActualPrice atomically multiplies actual_price by factor for
	// every product in ids.
	MultiplyActualPrice(ctx context.Context, ids []uuid.UUID, factor float64) error

	// UpdateRating overwrites the denormalized rating.
	UpdateRating(ctx context.Context, id uuid.UUID, rating float64) error

	// AddImage appends an image reference to the product.
	AddImage(ctx context.Context, id uuid.UUID, image string) error

	// RemoveImage drops an image reference from the product.
	RemoveImage(ctx context.Context, id uuid.UUID, image string) error
}
