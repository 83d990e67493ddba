package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrder_NotOwner(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OwnerID: uuid.New()}, nil)

	_, err := service.GetOrder(ctx, uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOrderService_ChangeStatus(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusUnpaid}, nil)
	orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusProcessing).
		Return(nil)

	err := service.ChangeStatus(ctx, orderID, entity.OrderStatusProcessing)
	require.NoError(t, err)
}

func TestOrderService_ChangeStatus_RejectsCancellation(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	err := service.ChangeStatus(context.Background(), uuid.New(), entity.OrderStatusCanceled)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_ChangeStatus_RejectsUnknownStatus(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	err := service.ChangeStatus(context.Background(), uuid.New(), entity.OrderStatus("TELEPORTED"))
	require.Error(t, err)
}

func TestOrderService_ChangeStatus_CanceledOrderIsFinal(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusCanceled}, nil)

	err := service.ChangeStatus(ctx, orderID, entity.OrderStatusProcessing)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestOrderService_CancelOrder_RestoresStock(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	bus := event.NewBus()
	stock := newStockReactor(newDiscardLogger())
	bus.Subscribe(event.NameOrderCanceled, stock.OnOrderCanceled)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	firstProductID := uuid.New()
	secondProductID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:      orderID,
			OwnerID: ownerID,
			Status:  entity.OrderStatusUnpaid,
			Items: []entity.OrderItem{
				{ProductID: firstProductID, Quantity: 2},
				{ProductID: secondProductID, Quantity: 1},
			},
		}, nil)
	orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCanceled).
		Return(nil)
	productRepo.EXPECT().RestoreStock(ctx, firstProductID, int64(2)).Return(nil)
	productRepo.EXPECT().RestoreStock(ctx, secondProductID, int64(1)).Return(nil)

	err := service.CancelOrder(ctx, ownerID, orderID)
	require.NoError(t, err)
}

func TestOrderService_CancelOrder_SkipsDeletedProduct(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	bus := event.NewBus()
	stock := newStockReactor(newDiscardLogger())
	bus.Subscribe(event.NameOrderCanceled, stock.OnOrderCanceled)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()
	deletedProductID := uuid.New()
	liveProductID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{
			ID:      orderID,
			OwnerID: ownerID,
			Status:  entity.OrderStatusUnpaid,
			Items: []entity.OrderItem{
				{ProductID: deletedProductID, Quantity: 2},
				{ProductID: liveProductID, Quantity: 1},
			},
		}, nil)
	orderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCanceled).
		Return(nil)

	// The first line item's product is gone; the cancellation still goes
	// through and the remaining stock is restored.
	productRepo.EXPECT().
		RestoreStock(ctx, deletedProductID, int64(2)).
		Return(repository.ErrProductNotFound)
	productRepo.EXPECT().RestoreStock(ctx, liveProductID, int64(1)).Return(nil)

	err := service.CancelOrder(ctx, ownerID, orderID)
	require.NoError(t, err)
}

func TestOrderService_CancelOrder_NotOwner(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OwnerID: uuid.New(), Status: entity.OrderStatusUnpaid}, nil)

	err := service.CancelOrder(ctx, uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOrderService_CancelOrder_AlreadyCanceled(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, OwnerID: ownerID, Status: entity.OrderStatusCanceled}, nil)

	err := service.CancelOrder(ctx, ownerID, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	service := NewOrderService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := service.GetOrder(ctx, uuid.New(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
