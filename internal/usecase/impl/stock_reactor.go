package impl

import (
	"context"
	"log/slog"

	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/repository"

	"github.com/pkg/errors"
)

// stockReactor keeps available quantity and order count in step with order
// registration and cancellation. Both directions go through the
// repository's atomic guarded updates, never read-modify-write, so
// concurrent orders on the same product cannot lose updates.
type stockReactor struct {
	logger *slog.Logger
}

func newStockReactor(logger *slog.Logger) *stockReactor {
	return &stockReactor{logger: logger}
}

// OnOrderRegistered decrements stock for every line item. A failed guard on
// any item surfaces as insufficient stock and rolls the whole order back.
func (r *stockReactor) OnOrderRegistered(ctx context.Context, repos repository.RepositoryFactory, evt event.Event) error {
	e, ok := evt.(event.OrderRegistered)
	if !ok {
		return nil
	}

	productRepo := repos.NewProductRepository()
	for _, item := range e.Order.Items {
		if err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return domainerrors.ErrInsufficientStock.WithDetails("product " + item.ProductID.String())
			}

			return errors.Wrap(err, "failed to decrement stock")
		}
	}

	r.logger.Debug("Decremented stock for order", "orderID", e.Order.ID, "items", len(e.Order.Items))

	return nil
}

// OnOrderCanceled applies the exact inverse of registration.
func (r *stockReactor) OnOrderCanceled(ctx context.Context, repos repository.RepositoryFactory, evt event.Event) error {
	e, ok := evt.(event.OrderCanceled)
	if !ok {
		return nil
	}

	productRepo := repos.NewProductRepository()
	for _, item := range e.Order.Items {
		if err := productRepo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			// A line item whose product was deleted after the order has
			// nothing to restore; the cancellation still goes through.
			if errors.Is(err, repository.ErrProductNotFound) {
				r.logger.Warn("Skipping stock restore for missing product",
					"orderID", e.Order.ID, "productID", item.ProductID)

				continue
			}

			return errors.Wrap(err, "failed to restore stock")
		}
	}

	r.logger.Debug("Restored stock for canceled order", "orderID", e.Order.ID, "items", len(e.Order.Items))

	return nil
}
