package impl

import (
	"context"
	"log/slog"

	"market/internal/domain/event"
	"market/internal/domain/repository"

	"github.com/pkg/errors"
)

// cascadeReactor cleans up everything that references a deleted product:
// its comments, its entries in product-discount target lists, and its
// entries in open carts.
type cascadeReactor struct {
	logger *slog.Logger
}

func newCascadeReactor(logger *slog.Logger) *cascadeReactor {
	return &cascadeReactor{logger: logger}
}

// OnProductDeleted removes the dangling references.
func (r *cascadeReactor) OnProductDeleted(ctx context.Context, repos repository.RepositoryFactory, evt event.Event) error {
	e, ok := evt.(event.ProductDeleted)
	if !ok {
		return nil
	}
	productID := e.Product.ID

	if err := repos.NewCommentRepository().DeleteByProduct(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product comments")
	}

	if err := repos.NewDiscountRepository().PullProductFromTargets(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to pull product from discounts")
	}

	if err := repos.NewCartRepository().RemoveProductFromAll(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to remove product from carts")
	}

	r.logger.Debug("Cascaded product deletion", "productID", productID)

	return nil
}
