package service

import (
	"context"

	"github.com/google/uuid"
)

// CategoryCreatedMessage is the projection of a category registration placed
// on the category queue for the indexer.
type CategoryCreatedMessage struct {
	ID            uuid.UUID  `json:"id"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	RequiredProps []string   `json:"required_props"`
}

// ProductCreatedMessage is the projection of a product registration placed on
// the product queue for the indexer.
type ProductCreatedMessage struct {
	ID                 uuid.UUID         `json:"id"`
	Characteristics    map[string]string `json:"characteristics"`
	RelatedCategoryIDs []uuid.UUID       `json:"related_category_ids"`
}

// IntegrationPublisher enqueues integration messages on the two durable
// queues feeding the indexer. Publish failures surface to the caller so the
// triggering write fails and can be retried; a successful enqueue says
// nothing about when the indexer processes the message.
type IntegrationPublisher interface {
	// PublishCategoryCreated enqueues a category projection on the category queue.
	PublishCategoryCreated(ctx context.Context, msg CategoryCreatedMessage) error

	// PublishProductCreated enqueues a product projection on the product queue.
	PublishProductCreated(ctx context.Context, msg ProductCreatedMessage) error

	// Close releases transport resources.
	Close() error
}
