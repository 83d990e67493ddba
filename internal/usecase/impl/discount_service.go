package impl

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// discountService implements the DiscountUsecase interface.
type discountService struct {
	txManager   repository.TransactionManager
	bus         *event.Bus
	maxPageSize int
	logger      *slog.Logger
}

// NewDiscountService is the constructor for discountService.
func NewDiscountService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	bus *event.Bus,
	logger *slog.Logger,
) usecase.DiscountUsecase {
	return &discountService{
		txManager:   txManager,
		bus:         bus,
		maxPageSize: cfg.Pagination.MaxPageSize,
		logger:      logger,
	}
}

// RegisterProductDiscount creates a discount over an explicit product list.
// The pricing reactor applies the multiplier inside the same transaction.
func (srv *discountService) RegisterProductDiscount(ctx context.Context, input *usecase.RegisterProductDiscountInput) (*entity.ProductDiscount, error) {
	if err := validatePercentOff(input.PercentOff); err != nil {
		return nil, err
	}

	srv.logger.Info("Registering product discount", "percentOff", input.PercentOff, "targets", len(input.ProductIDs))

	discount := &entity.ProductDiscount{
		DiscountBase:     entity.NewDiscountBase(input.Description, input.PercentOff),
		TargetProductIDs: input.ProductIDs,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products, err := repoFactory.NewProductRepository().FindByIDs(ctx, input.ProductIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load target products")
		}
		if len(products) < len(input.ProductIDs) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "discount references unknown product")
		}

		if err := repoFactory.NewDiscountRepository().Create(ctx, discount); err != nil {
			return errors.Wrap(err, "failed to create discount")
		}

		return srv.bus.Publish(ctx, repoFactory, event.DiscountRegistered{Discount: discount})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register product discount")
	}

	return discount, nil
}

// RegisterCategoryDiscount creates a discount whose effective target is the
// downward closure of the named categories, resolved once here. Products
// registered into the subtree later are not retroactively discounted.
func (srv *discountService) RegisterCategoryDiscount(ctx context.Context, input *usecase.RegisterCategoryDiscountInput) (*entity.CategoryDiscount, error) {
	if err := validatePercentOff(input.PercentOff); err != nil {
		return nil, err
	}

	srv.logger.Info("Registering category discount", "percentOff", input.PercentOff, "categories", len(input.CategoryIDs))

	discount := &entity.CategoryDiscount{
		DiscountBase: entity.NewDiscountBase(input.Description, input.PercentOff),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		closure, err := descendantClosure(ctx, repoFactory.NewCategoryRepository(), input.CategoryIDs)
		if err != nil {
			return mapCategoryErr(err)
		}
		discount.CategoryClosureIDs = closure

		if err := repoFactory.NewDiscountRepository().Create(ctx, discount); err != nil {
			return errors.Wrap(err, "failed to create discount")
		}

		return srv.bus.Publish(ctx, repoFactory, event.DiscountRegistered{Discount: discount})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register category discount")
	}

	return discount, nil
}

// RegisterPromoCode creates a code discount. Stored prices are untouched;
// checkout applies the multiplier to captured prices.
func (srv *discountService) RegisterPromoCode(ctx context.Context, input *usecase.RegisterPromoCodeInput) (*entity.PromoCode, error) {
	if err := validatePercentOff(input.PercentOff); err != nil {
		return nil, err
	}

	srv.logger.Info("Registering promo code", "percentOff", input.PercentOff)

	discount := &entity.PromoCode{
		DiscountBase: entity.NewDiscountBase(input.Description, input.PercentOff),
		Code:         input.Code,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewDiscountRepository().Create(ctx, discount); err != nil {
			return errors.Wrap(err, "failed to create promo code")
		}

		return srv.bus.Publish(ctx, repoFactory, event.DiscountRegistered{Discount: discount})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register promo code")
	}

	return discount, nil
}

// GetDiscount retrieves a single discount of any kind.
func (srv *discountService) GetDiscount(ctx context.Context, id uuid.UUID) (entity.Discount, error) {
	var discount entity.Discount

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findDiscount(ctx, repoFactory.NewDiscountRepository(), id)
		if err != nil {
			return err
		}
		discount = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return discount, nil
}

// ListDiscounts retrieves one page of discounts.
func (srv *discountService) ListDiscounts(ctx context.Context, page, pageSize int) (*pagination.Page[entity.Discount], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Discount]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewDiscountRepository().List(ctx, req)
		if err != nil {
			return errors.Wrap(err, "failed to list discounts")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SearchDiscounts retrieves one page of discounts matching the query.
func (srv *discountService) SearchDiscounts(ctx context.Context, query string, page, pageSize int) (*pagination.Page[entity.Discount], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Discount]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewDiscountRepository().Search(ctx, query, req)
		if err != nil {
			return errors.Wrap(err, "failed to search discounts")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// FindPromoCode resolves a code discount by its code.
func (srv *discountService) FindPromoCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	var promo *entity.PromoCode

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewDiscountRepository().FindPromoCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrDiscountNotFound) {
				return domainerrors.ErrDiscountNotFound
			}

			return errors.Wrap(err, "failed to find promo code")
		}
		promo = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return promo, nil
}

// DeleteDiscount removes a discount. The deletion event carries the stored
// record, so the pricing reactor reverses prices with the multiplier
// captured at registration time.
func (srv *discountService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting discount", "discountID", id)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		discountRepo := repoFactory.NewDiscountRepository()

		discount, err := findDiscount(ctx, discountRepo, id)
		if err != nil {
			return err
		}

		if err := discountRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete discount")
		}

		return srv.bus.Publish(ctx, repoFactory, event.DiscountDeleted{Discount: discount})
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete discount")
	}

	return nil
}

// validatePercentOff bounds the percentage to the open interval (0, 100).
func validatePercentOff(percentOff float64) error {
	if percentOff <= 0 || percentOff >= 100 {
		return domainerrors.ErrInvalidPercentOff
	}

	return nil
}

// findDiscount loads a discount, surfacing not-found as the application error.
func findDiscount(ctx context.Context, repo repository.DiscountRepository, id uuid.UUID) (entity.Discount, error) {
	discount, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountNotFound) {
			return nil, domainerrors.ErrDiscountNotFound
		}

		return nil, errors.Wrap(err, "failed to find discount")
	}

	return discount, nil
}
