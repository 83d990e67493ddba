package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
// Orders are immutable apart from their status.
type OrderRepository interface {
	// Create persists a new order entity to the storage.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByOwner retrieves one page of the owner's orders ordered by
	// creation time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, req pagination.Request) ([]entity.Order, int64, error)

	// UpdateStatus overwrites the order status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
