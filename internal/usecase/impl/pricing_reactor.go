package impl

import (
	"context"
	"log/slog"

	"market/internal/domain/entity"
	"market/internal/domain/event"
	"market/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pricingReactor applies and reverses discount multipliers on product
// actual prices. Reversal always divides by the multiplier stored in the
// deleted record, never a recomputed one, so register-then-delete is a
// round trip.
type pricingReactor struct {
	logger *slog.Logger
}

func newPricingReactor(logger *slog.Logger) *pricingReactor {
	return &pricingReactor{logger: logger}
}

// OnDiscountRegistered multiplies the targets' actual prices.
func (r *pricingReactor) OnDiscountRegistered(ctx context.Context, repos repository.RepositoryFactory, evt event.Event) error {
	e, ok := evt.(event.DiscountRegistered)
	if !ok {
		return nil
	}

	return r.apply(ctx, repos, e.Discount, e.Discount.Base().Multiplier)
}

// OnDiscountDeleted divides the targets' actual prices by the registered
// multiplier.
func (r *pricingReactor) OnDiscountDeleted(ctx context.Context, repos repository.RepositoryFactory, evt event.Event) error {
	e, ok := evt.(event.DiscountDeleted)
	if !ok {
		return nil
	}

	multiplier := e.Discount.Base().Multiplier
	if multiplier == 0 {
		return errors.New("discount multiplier is zero")
	}

	return r.apply(ctx, repos, e.Discount, 1/multiplier)
}

// apply resolves the discount's target products per variant and rescales
// their actual prices by factor.
func (r *pricingReactor) apply(ctx context.Context, repos repository.RepositoryFactory, discount entity.Discount, factor float64) error {
	productRepo := repos.NewProductRepository()

	var targets []uuid.UUID
	switch d := discount.(type) {
	case *entity.ProductDiscount:
		targets = d.TargetProductIDs
	case *entity.CategoryDiscount:
		ids, err := productRepo.FindIDsByRelatedCategories(ctx, d.CategoryClosureIDs)
		if err != nil {
			return errors.Wrap(err, "failed to resolve discounted products")
		}
		targets = ids
	case *entity.PromoCode:
		// Promo codes price per order at checkout; stored prices stay put.
		return nil
	default:
		return errors.Errorf("unknown discount kind %q", discount.Kind())
	}

	if len(targets) == 0 {
		return nil
	}

	if err := productRepo.MultiplyActualPrice(ctx, targets, factor); err != nil {
		return errors.Wrap(err, "failed to rescale actual prices")
	}

	r.logger.Debug("Rescaled product prices", "discountID", discount.Base().ID, "factor", factor, "targets", len(targets))

	return nil
}
