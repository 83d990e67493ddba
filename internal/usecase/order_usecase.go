package usecase

import (
	"context"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	GetOrder(ctx context.Context, ownerID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, ownerID uuid.UUID, page, pageSize int) (*pagination.Page[entity.Order], error)

	// ChangeStatus moves the order to a new status. Administrative operation.
	ChangeStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error

	// CancelOrder cancels the owner's order and restores the stock its line
	// items had consumed.
	CancelOrder(ctx context.Context, ownerID, orderID uuid.UUID) error
}
