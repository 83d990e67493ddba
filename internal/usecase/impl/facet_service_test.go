package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	mockRepo "market/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacetService_FindValues_SortedValues(t *testing.T) {
	clusterRepo := mockRepo.NewMockClusterRepository(t)
	service := NewFacetService(newTestConfig(100), clusterRepo, newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()
	clusterID := uuid.New()

	clusterRepo.EXPECT().FindClusterByCategory(ctx, categoryID).Return(clusterID, nil)
	clusterRepo.EXPECT().
		ValuesFor(ctx, clusterID, "color").
		Return(map[string]int64{"red": 3, "blue": 1, "green": 2}, nil)

	values, err := service.FindValues(ctx, categoryID, "color")
	require.NoError(t, err)
	assert.Equal(t, []string{"blue", "green", "red"}, values)
}

func TestFacetService_FindValues_UnknownCategoryYieldsEmpty(t *testing.T) {
	clusterRepo := mockRepo.NewMockClusterRepository(t)
	service := NewFacetService(newTestConfig(100), clusterRepo, newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()

	clusterRepo.EXPECT().
		FindClusterByCategory(ctx, categoryID).
		Return(uuid.Nil, repository.ErrClusterNotFound)

	values, err := service.FindValues(ctx, categoryID, "color")
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.NotNil(t, values)
}

func TestFacetService_FindValues_UndeclaredPropertyYieldsEmpty(t *testing.T) {
	clusterRepo := mockRepo.NewMockClusterRepository(t)
	service := NewFacetService(newTestConfig(100), clusterRepo, newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()
	clusterID := uuid.New()

	clusterRepo.EXPECT().FindClusterByCategory(ctx, categoryID).Return(clusterID, nil)
	clusterRepo.EXPECT().
		ValuesFor(ctx, clusterID, "weight").
		Return(nil, repository.ErrCounterNotFound)

	values, err := service.FindValues(ctx, categoryID, "weight")
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFacetService_ListFacets(t *testing.T) {
	clusterRepo := mockRepo.NewMockClusterRepository(t)
	service := NewFacetService(newTestConfig(100), clusterRepo, newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()
	clusterID := uuid.New()

	counters := []entity.PropertyCounter{
		{Property: "brand", Values: map[string]int64{"acme": 2}},
		{Property: "color", Values: map[string]int64{"red": 1}},
	}

	clusterRepo.EXPECT().FindClusterByCategory(ctx, categoryID).Return(clusterID, nil)
	clusterRepo.EXPECT().
		ListCounters(ctx, clusterID, pagination.Request{Page: 1, PageSize: 20}).
		Return(counters, int64(2), nil)

	page, err := service.ListFacets(ctx, categoryID, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, counters, page.Items)
	assert.Equal(t, int64(2), page.TotalItems)
	assert.Equal(t, int64(1), page.TotalPages)
}

func TestFacetService_ListFacets_PageSizeBound(t *testing.T) {
	clusterRepo := mockRepo.NewMockClusterRepository(t)
	service := NewFacetService(newTestConfig(10), clusterRepo, newDiscardLogger())

	_, err := service.ListFacets(context.Background(), uuid.New(), 1, 11)
	assert.ErrorIs(t, err, domainerrors.ErrPageSizeExceeded)
}

func TestFacetService_ListFacets_UnknownCategoryYieldsEmptyPage(t *testing.T) {
	clusterRepo := mockRepo.NewMockClusterRepository(t)
	service := NewFacetService(newTestConfig(100), clusterRepo, newDiscardLogger())

	ctx := context.Background()
	categoryID := uuid.New()

	clusterRepo.EXPECT().
		FindClusterByCategory(ctx, categoryID).
		Return(uuid.Nil, repository.ErrClusterNotFound)

	page, err := service.ListFacets(ctx, categoryID, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalItems)
}
