package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/event"
	"market/internal/domain/service"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationReactor_OnCategoryRegistered(t *testing.T) {
	publisher := mockSvc.NewMockIntegrationPublisher(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reactor := newIntegrationReactor(publisher, newDiscardLogger())

	ctx := context.Background()
	parentID := uuid.New()
	category := &entity.Category{
		ID:            uuid.New(),
		ParentID:      &parentID,
		RequiredProps: []string{"brand"},
	}

	publisher.EXPECT().
		PublishCategoryCreated(ctx, service.CategoryCreatedMessage{
			ID:            category.ID,
			ParentID:      &parentID,
			RequiredProps: []string{"brand"},
		}).
		Return(nil)

	err := reactor.OnCategoryRegistered(ctx, factory, event.CategoryRegistered{Category: category})
	require.NoError(t, err)
}

func TestIntegrationReactor_OnProductRegistered_PublishFailureSurfaces(t *testing.T) {
	publisher := mockSvc.NewMockIntegrationPublisher(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reactor := newIntegrationReactor(publisher, newDiscardLogger())

	ctx := context.Background()
	product := &entity.Product{
		ID:                 uuid.New(),
		Characteristics:    map[string]string{"brand": "acme"},
		RelatedCategoryIDs: []uuid.UUID{uuid.New()},
	}

	publisher.EXPECT().
		PublishProductCreated(ctx, service.ProductCreatedMessage{
			ID:                 product.ID,
			Characteristics:    product.Characteristics,
			RelatedCategoryIDs: product.RelatedCategoryIDs,
		}).
		Return(errors.New("broker unavailable"))

	err := reactor.OnProductRegistered(ctx, factory, event.ProductRegistered{Product: product})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PUBLISH_FAILED", appErr.ErrorCode())
}

func TestIntegrationReactor_IgnoresForeignEvents(t *testing.T) {
	publisher := mockSvc.NewMockIntegrationPublisher(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reactor := newIntegrationReactor(publisher, newDiscardLogger())

	err := reactor.OnCategoryRegistered(context.Background(), factory, event.ProductRegistered{Product: &entity.Product{}})
	require.NoError(t, err)
}
