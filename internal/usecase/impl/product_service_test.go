package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	mockRepo "market/internal/mocks/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_RegisterProduct_ComputesClosure(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	rootID := uuid.New()
	childID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{childID}).
		Return([]entity.Category{{ID: childID, ParentID: &rootID, RequiredProps: []string{"brand"}}}, nil)
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{rootID}).
		Return([]entity.Category{{ID: rootID}}, nil)
	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.RegisterProduct(ctx, &usecase.RegisterProductInput{
		Name:            "Phone",
		CategoryIDs:     []uuid.UUID{childID},
		Characteristics: map[string]string{"brand": "acme"},
		Price:           499,
		Quantity:        10,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{childID, rootID}, product.RelatedCategoryIDs)
	assert.Equal(t, float64(499), product.Price)
	assert.Equal(t, float64(499), product.ActualPrice)
	assert.Equal(t, int64(10), product.AvailableQuantity)
}

func TestProductService_RegisterProduct_MissingRequiredProps(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{categoryID}).
		Return([]entity.Category{{ID: categoryID, RequiredProps: []string{"brand", "color"}}}, nil)

	_, err := service.RegisterProduct(ctx, &usecase.RegisterProductInput{
		Name:            "Phone",
		CategoryIDs:     []uuid.UUID{categoryID},
		Characteristics: map[string]string{"brand": "acme"},
		Price:           499,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MISSING_REQUIRED_PROPS", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "color")
}

func TestProductService_RegisterProduct_UnknownCategory(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{categoryID}).
		Return([]entity.Category{}, nil)

	_, err := service.RegisterProduct(ctx, &usecase.RegisterProductInput{
		Name:        "Phone",
		CategoryIDs: []uuid.UUID{categoryID},
		Price:       499,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestProductService_RegisterProduct_RepeatedCategoryID(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()

	// The lookup returns one row per distinct id, so a repeated id in the
	// request must not be mistaken for an unknown category.
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{categoryID}).
		Return([]entity.Category{{ID: categoryID}}, nil)
	productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.RegisterProduct(ctx, &usecase.RegisterProductInput{
		Name:        "Phone",
		CategoryIDs: []uuid.UUID{categoryID, categoryID},
		Price:       499,
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{categoryID}, product.CategoryIDs)
}

func TestProductService_UpdateProduct_PriceChangeKeepsDiscountFactor(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	// A 20% discount is in effect: actual price is 80 on a base of 100. The
	// rescale goes through the atomic repository operation, not a
	// read-modify-write of the row.
	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: 100, ActualPrice: 80}, nil)
	productRepo.EXPECT().
		RescalePrice(ctx, productID, 200.0).
		Return(nil)
	productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	newPrice := 200.0
	product, err := service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, float64(200), product.Price)
	assert.InDelta(t, 160, product.ActualPrice, 1e-9)
}

func TestProductService_UpdateProduct_CategoryChangeRecomputesClosure(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()
	oldCategoryID := uuid.New()
	newRootID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{
			ID:                 productID,
			CategoryIDs:        []uuid.UUID{oldCategoryID},
			RelatedCategoryIDs: []uuid.UUID{oldCategoryID},
			Characteristics:    map[string]string{},
		}, nil)
	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{newRootID}).
		Return([]entity.Category{{ID: newRootID}}, nil)
	productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.UpdateProduct(ctx, productID, &usecase.UpdateProductInput{
		CategoryIDs: []uuid.UUID{newRootID},
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newRootID}, product.RelatedCategoryIDs)
}

func TestProductService_DeleteProduct_CascadesCleanup(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	discountRepo := mockRepo.NewMockDiscountRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCommentRepository().Return(commentRepo)
	factory.EXPECT().NewDiscountRepository().Return(discountRepo)
	factory.EXPECT().NewCartRepository().Return(cartRepo)

	bus := event.NewBus()
	cascade := newCascadeReactor(newDiscardLogger())
	bus.Subscribe(event.NameProductDeleted, cascade.OnProductDeleted)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	productRepo.EXPECT().Delete(ctx, productID).Return(nil)
	commentRepo.EXPECT().DeleteByProduct(ctx, productID).Return(nil)
	discountRepo.EXPECT().PullProductFromTargets(ctx, productID).Return(nil)
	cartRepo.EXPECT().RemoveProductFromAll(ctx, productID).Return(nil)

	err := service.DeleteProduct(ctx, productID)
	require.NoError(t, err)
}

func TestProductService_SetQuantity_RejectsNegative(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	err := service.SetQuantity(context.Background(), uuid.New(), -1)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
}

func TestProductService_SetQuantity(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	service := NewProductService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	productRepo.EXPECT().SetQuantity(ctx, productID, int64(42)).Return(nil)

	err := service.SetQuantity(ctx, productID, 42)
	require.NoError(t, err)
}
