package impl

import (
	"context"
	"log/slog"

	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/repository"
	"market/internal/domain/service"
)

// integrationReactor forwards category and product registrations to the
// durable queues feeding the indexer. It runs last in the dispatch chain; a
// publish failure fails the triggering write, forcing the caller to retry,
// so the indexer never silently misses a registration.
type integrationReactor struct {
	publisher service.IntegrationPublisher
	logger    *slog.Logger
}

func newIntegrationReactor(publisher service.IntegrationPublisher, logger *slog.Logger) *integrationReactor {
	return &integrationReactor{publisher: publisher, logger: logger}
}

// OnCategoryRegistered enqueues the category projection.
func (r *integrationReactor) OnCategoryRegistered(ctx context.Context, _ repository.RepositoryFactory, evt event.Event) error {
	e, ok := evt.(event.CategoryRegistered)
	if !ok {
		return nil
	}

	msg := service.CategoryCreatedMessage{
		ID:            e.Category.ID,
		ParentID:      e.Category.ParentID,
		RequiredProps: e.Category.RequiredProps,
	}
	if err := r.publisher.PublishCategoryCreated(ctx, msg); err != nil {
		r.logger.Error("Category publish failed", "categoryID", e.Category.ID, "error", err)

		return domainerrors.ErrPublishFailed.WithDetails(err.Error())
	}

	return nil
}

// OnProductRegistered enqueues the product projection.
func (r *integrationReactor) OnProductRegistered(ctx context.Context, _ repository.RepositoryFactory, evt event.Event) error {
	e, ok := evt.(event.ProductRegistered)
	if !ok {
		return nil
	}

	msg := service.ProductCreatedMessage{
		ID:                 e.Product.ID,
		Characteristics:    e.Product.Characteristics,
		RelatedCategoryIDs: e.Product.RelatedCategoryIDs,
	}
	if err := r.publisher.PublishProductCreated(ctx, msg); err != nil {
		r.logger.Error("Product publish failed", "productID", e.Product.ID, "error", err)

		return domainerrors.ErrPublishFailed.WithDetails(err.Error())
	}

	return nil
}
