// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
// The application layer will depend on this interface, not the concrete implementation.
type CategoryRepository interface {
	// Create persists a new category entity to the storage.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByIDs retrieves all categories whose id appears in ids. Missing
	// ids are skipped, not reported.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Category, error)

	// AppendSubcategory records childID in the parent's subcategory list.
	AppendSubcategory(ctx context.Context, parentID, childID uuid.UUID) error

	// FindChildren retrieves the direct children of the given category.
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]entity.Category, error)

	// List retrieves one page of categories ordered by creation time.
	List(ctx context.Context, req pagination.Request) ([]entity.Category, int64, error)

	// Search retrieves one page of categories whose name matches the query.
	Search(ctx context.Context, query string, req pagination.Request) ([]entity.Category, int64, error)
}
