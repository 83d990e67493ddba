package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCartService(stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	_, err := service.AddItem(context.Background(), uuid.New(), &usecase.AddItemInput{
		ProductID: uuid.New(),
		Quantity:  0,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestCartService_AddItem_CreatesCartOnFirstUse(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)

	service := NewCartService(stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	cartRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(nil, repository.ErrCartNotFound)
	cartRepo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	cart, err := service.AddItem(ctx, ownerID, &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, cart.OwnerID)
	assert.Equal(t, int64(3), cart.Items[productID.String()])
}

func TestCartService_AddItem_OverwritesQuantity(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)

	service := NewCartService(stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	existing := &entity.Cart{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Items:   map[string]int64{productID.String(): 1},
	}

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	cartRepo.EXPECT().FindByOwner(ctx, ownerID).Return(existing, nil)
	cartRepo.EXPECT().Save(ctx, existing).Return(nil)

	cart, err := service.AddItem(ctx, ownerID, &usecase.AddItemInput{
		ProductID: productID,
		Quantity:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), cart.Items[productID.String()])
}

func TestCartService_Checkout_CapturesPricesAndDecrementsStock(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	bus := event.NewBus()
	stock := newStockReactor(newDiscardLogger())
	bus.Subscribe(event.NameOrderRegistered, stock.OnOrderRegistered)

	service := NewCartService(stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	cartRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(&entity.Cart{
			OwnerID: ownerID,
			Items:   map[string]int64{productID.String(): 2},
		}, nil)
	discountRepo.EXPECT().
		FindPromoCode(ctx, "WELCOME10").
		Return(&entity.PromoCode{
			DiscountBase: entity.DiscountBase{Multiplier: 0.9},
			Code:         "WELCOME10",
		}, nil)
	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: 50, ActualPrice: 50}, nil)
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	cartRepo.EXPECT().DeleteByOwner(ctx, ownerID).Return(nil)
	productRepo.EXPECT().DecrementStock(ctx, productID, int64(2)).Return(nil)

	order, err := service.Checkout(ctx, ownerID, &usecase.CheckoutInput{
		ShippingAddress: "1 Main St",
		PromoCode:       "WELCOME10",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusUnpaid, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(2), order.Items[0].Quantity)
	assert.InDelta(t, 45, order.Items[0].CapturedPrice, 1e-9)
}

func TestCartService_Checkout_InsufficientStockAborts(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	bus := event.NewBus()
	stock := newStockReactor(newDiscardLogger())
	bus.Subscribe(event.NameOrderRegistered, stock.OnOrderRegistered)

	service := NewCartService(stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	cartRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(&entity.Cart{
			OwnerID: ownerID,
			Items:   map[string]int64{productID.String(): 99},
		}, nil)
	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, ActualPrice: 50}, nil)
	orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)
	cartRepo.EXPECT().DeleteByOwner(ctx, ownerID).Return(nil)
	productRepo.EXPECT().
		DecrementStock(ctx, productID, int64(99)).
		Return(repository.ErrInsufficientStock)

	_, err := service.Checkout(ctx, ownerID, &usecase.CheckoutInput{ShippingAddress: "1 Main St"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INSUFFICIENT_STOCK", appErr.ErrorCode())
}

func TestCartService_Checkout_EmptyCart(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)

	service := NewCartService(stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()

	cartRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(&entity.Cart{OwnerID: ownerID, Items: map[string]int64{}}, nil)

	_, err := service.Checkout(ctx, ownerID, &usecase.CheckoutInput{ShippingAddress: "1 Main St"})
	assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
}

func TestCartService_Checkout_UnknownPromoCode(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)

	service := NewCartService(stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	cartRepo.EXPECT().
		FindByOwner(ctx, ownerID).
		Return(&entity.Cart{
			OwnerID: ownerID,
			Items:   map[string]int64{productID.String(): 1},
		}, nil)
	discountRepo.EXPECT().
		FindPromoCode(ctx, "NOPE").
		Return(nil, repository.ErrDiscountNotFound)

	_, err := service.Checkout(ctx, ownerID, &usecase.CheckoutInput{
		ShippingAddress: "1 Main St",
		PromoCode:       "NOPE",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDiscountNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(cartRepo)

	service := NewCartService(stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	existing := &entity.Cart{
		OwnerID: ownerID,
		Items:   map[string]int64{productID.String(): 2},
	}

	cartRepo.EXPECT().FindByOwner(ctx, ownerID).Return(existing, nil)
	cartRepo.EXPECT().Save(ctx, existing).Return(nil)

	cart, err := service.RemoveItem(ctx, ownerID, productID)
	require.NoError(t, err)
	assert.NotContains(t, cart.Items, productID.String())
}
