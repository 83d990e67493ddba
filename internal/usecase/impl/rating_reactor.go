package impl

import (
	"context"
	"log/slog"

	"market/internal/domain/event"
	"market/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ratingReactor recomputes a product's denormalized rating whenever a
// comment is added or removed. The recompute is a full aggregate over the
// product's comments rather than an incremental running average, so it is
// idempotent and self-correcting.
type ratingReactor struct {
	logger *slog.Logger
}

func newRatingReactor(logger *slog.Logger) *ratingReactor {
	return &ratingReactor{logger: logger}
}

// OnCommentChanged handles both comment registration and deletion.
func (r *ratingReactor) OnCommentChanged(ctx context.Context, repos repository.RepositoryFactory, evt event.Event) error {
	var productID uuid.UUID
	switch e := evt.(type) {
	case event.CommentRegistered:
		productID = e.Comment.ProductID
	case event.CommentDeleted:
		productID = e.Comment.ProductID
	default:
		return nil
	}

	return r.recompute(ctx, repos, productID)
}

func (r *ratingReactor) recompute(ctx context.Context, repos repository.RepositoryFactory, productID uuid.UUID) error {
	rating, err := repos.NewCommentRepository().AverageRating(ctx, productID)
	if err != nil {
		return errors.Wrap(err, "failed to aggregate comment ratings")
	}

	if err := repos.NewProductRepository().UpdateRating(ctx, productID, rating); err != nil {
		return errors.Wrap(err, "failed to update product rating")
	}

	r.logger.Debug("Recomputed product rating", "productID", productID, "rating", rating)

	return nil
}
