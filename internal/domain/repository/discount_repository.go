package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// ErrDiscountNotFound is a domain-specific error returned when a discount is not found.
var ErrDiscountNotFound = errors.New("discount not found")

// DiscountRepository defines the standard operations for discount persistence.
// A discount's multiplier is immutable after creation; deletion reads the
// stored record so reversal always uses the multiplier captured at
// registration time.
type DiscountRepository interface {
	// Create persists a new discount of any kind.
	Create(ctx context.Context, discount entity.Discount) error

	// FindByID retrieves a single discount by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (entity.Discount, error)

	// FindPromoCode retrieves a code-targeted discount by its code.
	FindPromoCode(ctx context.Context, code string) (*entity.PromoCode, error)

	// Delete removes the discount row.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves one page of discounts ordered by creation time.
	List(ctx context.Context, req pagination.Request) ([]entity.Discount, int64, error)

	// Search retrieves one page of discounts whose description matches the query.
	Search(ctx context.Context, query string, req pagination.Request) ([]entity.Discount, int64, error)

	// PullProductFromTargets removes productID from the target list of every
	// product-targeted discount that references it.
	PullProductFromTargets(ctx context.Context, productID uuid.UUID) error
}
