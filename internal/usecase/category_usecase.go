// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// CategoryUsecase defines the interface for category-related business operations.
type CategoryUsecase interface {
	// RegisterCategory creates a category, unioning the parent's required
	// properties into the child's, and notifies the indexer.
	RegisterCategory(ctx context.Context, input *RegisterCategoryInput) (*entity.Category, error)

	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListCategories(ctx context.Context, page, pageSize int) (*pagination.Page[entity.Category], error)
	SearchCategories(ctx context.Context, query string, page, pageSize int) (*pagination.Page[entity.Category], error)

	// ClosureFor returns the given categories unioned with all their
	// transitive ancestors.
	ClosureFor(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error)

	// SubtreeClosureFor returns the given categories unioned with all their
	// transitive descendants.
	SubtreeClosureFor(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error)
}

// --- Input DTOs ---

// RegisterCategoryInput defines the data required to register a category.
type RegisterCategoryInput struct {
	Name          string     `json:"name" validate:"required"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	RequiredProps []string   `json:"required_props"`
}
