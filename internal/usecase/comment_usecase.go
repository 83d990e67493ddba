package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// CommentUsecase defines the interface for comment-related business operations.
type CommentUsecase interface {
	// RegisterComment creates a comment and recomputes the product's rating.
	RegisterComment(ctx context.Context, ownerID uuid.UUID, input *RegisterCommentInput) (*entity.Comment, error)

	// DeleteComment removes the owner's comment and recomputes the rating.
	DeleteComment(ctx context.Context, ownerID, commentID uuid.UUID) error

	ListComments(ctx context.Context, productID uuid.UUID, page, pageSize int) (*pagination.Page[entity.Comment], error)
	ListMyComments(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*pagination.Page[entity.Comment], error)
}

// --- Input DTOs ---

// RegisterCommentInput defines the data required to register a comment.
type RegisterCommentInput struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Content   string    `json:"content"`
	Rating    float64   `json:"rating" validate:"gte=0,lte=5"`
}
