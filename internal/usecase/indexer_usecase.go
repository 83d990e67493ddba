package usecase

import (
	"context"

	"market/internal/domain/service"
)

// IndexerUsecase applies incoming integration messages to the cluster store.
// Both operations are idempotent per message id, so at-least-once redelivery
// is safe.
type IndexerUsecase interface {
	// ApplyCategoryCreated creates a cluster for a root category or extends
	// the parent's cluster for a child. A child whose parent is not yet
	// clustered is dropped and counted, not retried.
	ApplyCategoryCreated(ctx context.Context, messageID string, msg service.CategoryCreatedMessage) error

	// ApplyProductCreated increments the facet counters of the cluster
	// containing any of the product's related categories.
	ApplyProductCreated(ctx context.Context, messageID string, msg service.ProductCreatedMessage) error
}
