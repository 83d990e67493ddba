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

func TestCategoryService_RegisterCategory_Root(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	service := NewCategoryService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()

	catRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := service.RegisterCategory(ctx, &usecase.RegisterCategoryInput{
		Name:          "Electronics",
		RequiredProps: []string{"brand"},
	})
	require.NoError(t, err)
	assert.True(t, category.IsRoot())
	assert.Equal(t, []string{"brand"}, category.RequiredProps)
}

func TestCategoryService_RegisterCategory_ChildInheritsParentProps(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	service := NewCategoryService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	parentID := uuid.New()

	catRepo.EXPECT().
		FindByID(ctx, parentID).
		Return(&entity.Category{ID: parentID, RequiredProps: []string{"brand", "color"}}, nil)
	catRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)
	catRepo.EXPECT().
		AppendSubcategory(ctx, parentID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	category, err := service.RegisterCategory(ctx, &usecase.RegisterCategoryInput{
		Name:          "Phones",
		ParentID:      &parentID,
		RequiredProps: []string{"color", "size"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"brand", "color", "size"}, category.RequiredProps)
	assert.Equal(t, parentID, *category.ParentID)
}

func TestCategoryService_RegisterCategory_ParentNotFound(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	service := NewCategoryService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	parentID := uuid.New()

	catRepo.EXPECT().
		FindByID(ctx, parentID).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := service.RegisterCategory(ctx, &usecase.RegisterCategoryInput{
		Name:     "Orphan",
		ParentID: &parentID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_RegisterCategory_PublishesInsideTransaction(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	bus := event.NewBus()
	var published *entity.Category
	bus.Subscribe(event.NameCategoryRegistered, func(_ context.Context, _ repository.RepositoryFactory, evt event.Event) error {
		published = evt.(event.CategoryRegistered).Category

		return nil
	})

	service := NewCategoryService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()

	catRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	category, err := service.RegisterCategory(ctx, &usecase.RegisterCategoryInput{Name: "Books"})
	require.NoError(t, err)
	require.NotNil(t, published)
	assert.Equal(t, category.ID, published.ID)
}

func TestCategoryService_RegisterCategory_HandlerFailureAborts(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	bus := event.NewBus()
	bus.Subscribe(event.NameCategoryRegistered, func(context.Context, repository.RepositoryFactory, event.Event) error {
		return domainerrors.ErrPublishFailed
	})

	service := NewCategoryService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()

	catRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(nil)

	_, err := service.RegisterCategory(ctx, &usecase.RegisterCategoryInput{Name: "Books"})
	assert.ErrorIs(t, err, domainerrors.ErrPublishFailed)
}

func TestCategoryService_GetCategory_NotFound(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	service := NewCategoryService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	id := uuid.New()

	catRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := service.GetCategory(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_ListCategories_PageSizeBound(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCategoryService(newTestConfig(10), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	_, err := service.ListCategories(context.Background(), 1, 11)
	assert.ErrorIs(t, err, domainerrors.ErrPageSizeExceeded)

	_, err = service.ListCategories(context.Background(), 0, 5)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPage)
}

func TestCategoryService_ClosureFor_MapsNotFound(t *testing.T) {
	catRepo := mockRepo.NewMockCategoryRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCategoryRepository().Return(catRepo)

	service := NewCategoryService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	unknownID := uuid.New()

	catRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{unknownID}).
		Return([]entity.Category{}, nil)

	_, err := service.ClosureFor(ctx, []uuid.UUID{unknownID})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
