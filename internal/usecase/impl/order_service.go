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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	bus         *event.Bus
	maxPageSize int
	logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	cfg *config.Config,
	txManager repository.TransactionManager,
	bus *event.Bus,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager:   txManager,
		bus:         bus,
		maxPageSize: cfg.Pagination.MaxPageSize,
		logger:      logger,
	}
}

// GetOrder retrieves the owner's order.
func (srv *orderService) GetOrder(ctx context.Context, ownerID, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOrder(ctx, repoFactory.NewOrderRepository(), orderID)
		if err != nil {
			return err
		}
		if found.OwnerID != ownerID {
			return domainerrors.ErrNotOwner
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves one page of the owner's orders.
func (srv *orderService) ListOrders(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*pagination.Page[entity.Order], error) {
	req, err := pagination.NewRequest(page, pageSize, srv.maxPageSize)
	if err != nil {
		return nil, err
	}

	var result *pagination.Page[entity.Order]

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		items, total, err := repoFactory.NewOrderRepository().ListByOwner(ctx, ownerID, req)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		result = pagination.NewPage(items, req, total)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ChangeStatus moves an order to a new lifecycle state. Cancellation goes
// through CancelOrder so the stock restoration always runs.
func (srv *orderService) ChangeStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	if !entity.ValidOrderStatus(status) || status == entity.OrderStatusCanceled {
		return domainerrors.ErrValidationFailed.WithDetails("unsupported status transition")
	}

	srv.logger.Info("Changing order status", "orderID", orderID, "status", status)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := findOrder(ctx, orderRepo, orderID)
		if err != nil {
			return err
		}
		if order.Status == entity.OrderStatusCanceled {
			return errors.Wrap(domainerrors.ErrConflict, "order is canceled")
		}

		return errors.Wrap(orderRepo.UpdateStatus(ctx, orderID, status), "failed to update order status")
	})
	if err != nil {
		return errors.Wrap(err, "failed to change order status")
	}

	return nil
}

// CancelOrder cancels the owner's order. The cancellation event makes the
// stock reactor restore the exact quantities the order had consumed, in the
// same transaction as the status change.
func (srv *orderService) CancelOrder(ctx context.Context, ownerID, orderID uuid.UUID) error {
	srv.logger.Info("Canceling order", "orderID", orderID, "ownerID", ownerID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		order, err := findOrder(ctx, orderRepo, orderID)
		if err != nil {
			return err
		}
		if order.OwnerID != ownerID {
			return domainerrors.ErrNotOwner
		}
		if order.Status == entity.OrderStatusCanceled {
			return errors.Wrap(domainerrors.ErrConflict, "order is already canceled")
		}

		if err := orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusCanceled); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		order.Status = entity.OrderStatusCanceled

		return srv.bus.Publish(ctx, repoFactory, event.OrderCanceled{Order: order})
	})
	if err != nil {
		return errors.Wrap(err, "failed to cancel order")
	}

	return nil
}

// findOrder loads an order, surfacing not-found as the application error.
func findOrder(ctx context.Context, repo repository.OrderRepository, id uuid.UUID) (*entity.Order, error) {
	order, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}
