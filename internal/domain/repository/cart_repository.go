package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is a domain-specific error returned when an owner has no cart.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the standard operations for cart persistence.
// Each owner has at most one cart; checkout deletes it.
type CartRepository interface {
	// Save creates or replaces the owner's cart.
	Save(ctx context.Context, cart *entity.Cart) error

	// FindByOwner retrieves the owner's cart.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error)

	// DeleteByOwner removes the owner's cart.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error

	// RemoveProductFromAll drops productID from the item map of every cart
	// that references it.
	RemoveProductFromAll(ctx context.Context, productID uuid.UUID) error
}
