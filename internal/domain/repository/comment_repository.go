package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// ErrCommentNotFound is a domain-specific error returned when a comment is not found.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a single comment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)

	// Delete removes the comment row.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByProduct removes every comment referencing the product.
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error

	// ListByProduct retrieves one page of a product's comments ordered by
	// creation time.
	ListByProduct(ctx context.Context, productID uuid.UUID, req pagination.Request) ([]entity.Comment, int64, error)

	// ListByOwner retrieves one page of the owner's comments ordered by
	// creation time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, req pagination.Request) ([]entity.Comment, int64, error)

	// AverageRating aggregates the mean rating over every comment on the
	// product. Returns zero when the product has no comments.
	AverageRating(ctx context.Context, productID uuid.UUID) (float64, error)
}
