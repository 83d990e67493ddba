package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiscountService_RegisterProductDiscount_PercentOffBounds(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	input := &usecase.RegisterProductDiscountInput{
		Description: "bad",
		ProductIDs:  []uuid.UUID{uuid.New()},
	}

	for _, percentOff := range []float64{0, 100, -5, 150} {
		input.PercentOff = percentOff
		_, err := service.RegisterProductDiscount(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPercentOff)
	}
}

func TestDiscountService_RegisterProductDiscount_AppliesMultiplier(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)

	bus := event.NewBus()
	pricing := newPricingReactor(newDiscardLogger())
	bus.Subscribe(event.NameDiscountRegistered, pricing.OnDiscountRegistered)

	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	targetID := uuid.New()

	productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{targetID}).
		Return([]entity.Product{{ID: targetID}}, nil)
	discountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ProductDiscount")).
		Return(nil)
	productRepo.EXPECT().
		MultiplyActualPrice(ctx, []uuid.UUID{targetID}, 0.75).
		Return(nil)

	discount, err := service.RegisterProductDiscount(ctx, &usecase.RegisterProductDiscountInput{
		Description: "spring sale",
		PercentOff:  25,
		ProductIDs:  []uuid.UUID{targetID},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.75, discount.Multiplier)
	assert.Equal(t, entity.DiscountKindProduct, discount.Kind())
}

func TestDiscountService_RegisterProductDiscount_UnknownProduct(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	targetID := uuid.New()

	productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{targetID}).
		Return([]entity.Product{}, nil)

	_, err := service.RegisterProductDiscount(ctx, &usecase.RegisterProductDiscountInput{
		Description: "spring sale",
		PercentOff:  25,
		ProductIDs:  []uuid.UUID{targetID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestDiscountService_RegisterCategoryDiscount_ResolvesSubtreeClosure(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)

	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	rootID := uuid.New()
	childID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{rootID}).
		Return([]entity.Category{{ID: rootID, SubcategoryIDs: []uuid.UUID{childID}}}, nil)
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{childID}).
		Return([]entity.Category{{ID: childID}}, nil)
	discountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CategoryDiscount")).
		Return(nil)

	discount, err := service.RegisterCategoryDiscount(ctx, &usecase.RegisterCategoryDiscountInput{
		Description: "clearance",
		PercentOff:  10,
		CategoryIDs: []uuid.UUID{rootID},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{rootID, childID}, discount.CategoryClosureIDs)
}

func TestDiscountService_RegisterPromoCode_TouchesNoPrices(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)

	bus := event.NewBus()
	pricing := newPricingReactor(newDiscardLogger())
	bus.Subscribe(event.NameDiscountRegistered, pricing.OnDiscountRegistered)

	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()

	discountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PromoCode")).
		Return(nil)

	discount, err := service.RegisterPromoCode(ctx, &usecase.RegisterPromoCodeInput{
		Description: "welcome",
		PercentOff:  15,
		Code:        "WELCOME15",
	})
	require.NoError(t, err)
	assert.Equal(t, "WELCOME15", discount.Code)
	productRepo.AssertNotCalled(t, "MultiplyActualPrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestDiscountService_SearchDiscounts(t *testing.T) {
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)

	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	stored := &entity.PromoCode{
		DiscountBase: entity.NewDiscountBase("summer sale", 25),
		Code:         "SUMMER25",
	}

	discountRepo.EXPECT().
		Search(ctx, "summer", pagination.Request{Page: 1, PageSize: 20}).
		Return([]entity.Discount{stored}, 1, nil)

	page, err := service.SearchDiscounts(ctx, "summer", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, stored, page.Items[0])
}

func TestDiscountService_SearchDiscounts_PageBounds(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewDiscountService(newTestConfig(10), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	_, err := service.SearchDiscounts(context.Background(), "summer", 1, 50)
	assert.ErrorIs(t, err, domainerrors.ErrPageSizeExceeded)
}

func TestDiscountService_DeleteDiscount_ReversesWithStoredMultiplier(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)

	bus := event.NewBus()
	pricing := newPricingReactor(newDiscardLogger())
	bus.Subscribe(event.NameDiscountDeleted, pricing.OnDiscountDeleted)

	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	discountID := uuid.New()
	targetID := uuid.New()

	stored := &entity.ProductDiscount{
		DiscountBase: entity.DiscountBase{
			ID:         discountID,
			PercentOff: 25,
			Multiplier: 0.75,
		},
		TargetProductIDs: []uuid.UUID{targetID},
	}

	discountRepo.EXPECT().FindByID(ctx, discountID).Return(stored, nil)
	discountRepo.EXPECT().Delete(ctx, discountID).Return(nil)
	productRepo.EXPECT().
		MultiplyActualPrice(ctx, []uuid.UUID{targetID}, 1/0.75).
		Return(nil)

	err := service.DeleteDiscount(ctx, discountID)
	require.NoError(t, err)
}

func TestDiscountService_DeleteDiscount_NotFound(t *testing.T) {
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)

	service := NewDiscountService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	discountID := uuid.New()

	discountRepo.EXPECT().
		FindByID(ctx, discountID).
		Return(nil, repository.ErrDiscountNotFound)

	err := service.DeleteDiscount(ctx, discountID)
	assert.ErrorIs(t, err, domainerrors.ErrDiscountNotFound)
}
