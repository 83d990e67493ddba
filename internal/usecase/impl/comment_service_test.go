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

func TestCommentService_RegisterComment_RatingBounds(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCommentService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()

	for _, rating := range []float64{-0.5, 5.5} {
		_, err := service.RegisterComment(ctx, ownerID, &usecase.RegisterCommentInput{
			ProductID: uuid.New(),
			Rating:    rating,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}
}

func TestCommentService_RegisterComment_RecomputesRating(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCommentRepository().Return(commentRepo)

	bus := event.NewBus()
	rating := newRatingReactor(newDiscardLogger())
	bus.Subscribe(event.NameCommentRegistered, rating.OnCommentChanged)

	service := NewCommentService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(&entity.Product{ID: productID}, nil)
	commentRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Comment")).
		Return(nil)
	commentRepo.EXPECT().
		AverageRating(ctx, productID).
		Return(4.5, nil)
	productRepo.EXPECT().
		UpdateRating(ctx, productID, 4.5).
		Return(nil)

	comment, err := service.RegisterComment(ctx, ownerID, &usecase.RegisterCommentInput{
		ProductID: productID,
		Content:   "solid",
		Rating:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, comment.OwnerID)
	assert.Equal(t, float64(5), comment.Rating)
}

func TestCommentService_RegisterComment_ProductNotFound(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)

	service := NewCommentService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	productID := uuid.New()

	productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := service.RegisterComment(ctx, uuid.New(), &usecase.RegisterCommentInput{
		ProductID: productID,
		Rating:    4,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCommentService_DeleteComment_NotOwner(t *testing.T) {
	commentRepo := mockRepo.NewMockCommentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCommentRepository().Return(commentRepo)

	service := NewCommentService(newTestConfig(100), stubTxManager{factory: factory}, event.NewBus(), newDiscardLogger())

	ctx := context.Background()
	commentID := uuid.New()

	commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, OwnerID: uuid.New()}, nil)

	err := service.DeleteComment(ctx, uuid.New(), commentID)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestCommentService_DeleteComment_RecomputesRating(t *testing.T) {
	productRepo := mockRepo.NewMockProductRepository(t)
	commentRepo := mockRepo.NewMockCommentRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewProductRepository().Return(productRepo)
	factory.EXPECT().NewCommentRepository().Return(commentRepo)

	bus := event.NewBus()
	rating := newRatingReactor(newDiscardLogger())
	bus.Subscribe(event.NameCommentDeleted, rating.OnCommentChanged)

	service := NewCommentService(newTestConfig(100), stubTxManager{factory: factory}, bus, newDiscardLogger())

	ctx := context.Background()
	ownerID := uuid.New()
	commentID := uuid.New()
	productID := uuid.New()

	commentRepo.EXPECT().
		FindByID(ctx, commentID).
		Return(&entity.Comment{ID: commentID, OwnerID: ownerID, ProductID: productID}, nil)
	commentRepo.EXPECT().Delete(ctx, commentID).Return(nil)
	commentRepo.EXPECT().AverageRating(ctx, productID).Return(0.0, nil)
	productRepo.EXPECT().UpdateRating(ctx, productID, 0.0).Return(nil)

	err := service.DeleteComment(ctx, ownerID, commentID)
	require.NoError(t, err)
}
