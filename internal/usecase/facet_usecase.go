package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// FacetUsecase defines the read path over the indexer's facet counters.
type FacetUsecase interface {
	// FindValues returns the observed values of one property within the
	// cluster containing categoryID. An unknown category or property yields
	// an empty slice, not an error.
	FindValues(ctx context.Context, categoryID uuid.UUID, property string) ([]string, error)

	// ListFacets returns one page of the cluster's counters in insertion
	// order.
	ListFacets(ctx context.Context, categoryID uuid.UUID, page, pageSize int) (*pagination.Page[entity.PropertyCounter], error)
}
