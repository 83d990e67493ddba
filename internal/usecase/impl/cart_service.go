package impl

import (
	"context"
	"log/slog"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	bus       *event.Bus
	logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	txManager repository.TransactionManager,
	bus *event.Bus,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		txManager: txManager,
		bus:       bus,
		logger:    logger,
	}
}

// AddItem puts quantity units of a product into the owner's cart, creating
// the cart on first use. Adding an already present product overwrites its
// quantity.
func (srv *cartService) AddItem(ctx context.Context, ownerID uuid.UUID, input *usecase.AddItemInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findProduct(ctx, repoFactory.NewProductRepository(), input.ProductID); err != nil {
			return err
		}

		cartRepo := repoFactory.NewCartRepository()

		found, err := cartRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			if !errors.Is(err, repository.ErrCartNotFound) {
				return errors.Wrap(err, "failed to find cart")
			}
			found = &entity.Cart{
				ID:        uuid.New(),
				OwnerID:   ownerID,
				Items:     make(map[string]int64),
				CreatedAt: time.Now(),
			}
		}

		found.Items[input.ProductID.String()] = input.Quantity
		found.UpdatedAt = time.Now()

		if err := cartRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		cart = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return cart, nil
}

// RemoveItem drops a product from the owner's cart.
func (srv *cartService) RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		found, err := findCart(ctx, cartRepo, ownerID)
		if err != nil {
			return err
		}

		delete(found.Items, productID.String())
		found.UpdatedAt = time.Now()

		if err := cartRepo.Save(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		cart = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return cart, nil
}

// GetCart retrieves the owner's cart.
func (srv *cartService) GetCart(ctx context.Context, ownerID uuid.UUID) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findCart(ctx, repoFactory.NewCartRepository(), ownerID)
		if err != nil {
			return err
		}
		cart = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

// Checkout converts the owner's cart into an immutable order. Prices are
// captured from the products' current actual prices, reduced by an optional
// promo code. The order event runs the stock reactor inside the same
// transaction, so insufficient stock aborts the checkout with no partial
// state.
func (srv *cartService) Checkout(ctx context.Context, ownerID uuid.UUID, input *usecase.CheckoutInput) (*entity.Order, error) {
	srv.logger.Info("Checking out cart", "ownerID", ownerID)

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()
		productRepo := repoFactory.NewProductRepository()

		cart, err := findCart(ctx, cartRepo, ownerID)
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return domainerrors.ErrCartNotFound
		}

		promoMultiplier := 1.0
		if input.PromoCode != "" {
			promo, err := repoFactory.NewDiscountRepository().FindPromoCode(ctx, input.PromoCode)
			if err != nil {
				if errors.Is(err, repository.ErrDiscountNotFound) {
					return errors.Wrap(domainerrors.ErrDiscountNotFound, "unknown promo code")
				}

				return errors.Wrap(err, "failed to find promo code")
			}
			promoMultiplier = promo.Multiplier
		}

		items := make([]entity.OrderItem, 0, len(cart.Items))
		for rawID, quantity := range cart.Items {
			productID, err := uuid.Parse(rawID)
			if err != nil {
				return errors.Wrap(err, "malformed product id in cart")
			}

			product, err := findProduct(ctx, productRepo, productID)
			if err != nil {
				return err
			}

			items = append(items, entity.OrderItem{
				ProductID:     productID,
				Quantity:      quantity,
				CapturedPrice: product.ActualPrice * promoMultiplier,
			})
		}

		order = &entity.Order{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			Items:           items,
			Status:          entity.OrderStatusUnpaid,
			ShippingAddress: input.ShippingAddress,
			CreatedAt:       time.Now(),
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := cartRepo.DeleteByOwner(ctx, ownerID); err != nil {
			return errors.Wrap(err, "failed to delete cart")
		}

		return srv.bus.Publish(ctx, repoFactory, event.OrderRegistered{Order: order})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to check out cart")
	}

	return order, nil
}

// findCart loads the owner's cart, surfacing not-found as the application error.
func findCart(ctx context.Context, repo repository.CartRepository, ownerID uuid.UUID) (*entity.Cart, error) {
	cart, err := repo.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}
