package impl

import (
	"context"
	"testing"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/infra/metrics"
	mockRepo "market/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestIndexer(t *testing.T) (*indexerService, *mockRepo.MockClusterRepository, *metrics.IndexerMetrics) {
	t.Helper()

	clusterRepo := mockRepo.NewMockClusterRepository(t)
	m := metrics.NewIndexerMetrics(prometheus.NewRegistry())
	srv := NewIndexerService(stubClusterTxManager{repo: clusterRepo}, m, newDiscardLogger()).(*indexerService)

	return srv, clusterRepo, m
}

func TestIndexerService_ApplyCategoryCreated_RootOpensCluster(t *testing.T) {
	srv, clusterRepo, m := newTestIndexer(t)

	ctx := context.Background()
	categoryID := uuid.New()
	requiredProps := []string{"brand", "color"}

	clusterRepo.EXPECT().
		MarkMessageApplied(ctx, "msg-1").
		Return(true, nil)
	clusterRepo.EXPECT().
		CreateCluster(ctx, mock.AnythingOfType("*entity.IndexCluster"), requiredProps).
		Run(func(_ context.Context, cluster *entity.IndexCluster, _ []string) {
			assert.Equal(t, []uuid.UUID{categoryID}, cluster.CategoryIDs)
		}).
		Return(nil)

	err := srv.ApplyCategoryCreated(ctx, "msg-1", service.CategoryCreatedMessage{
		ID:            categoryID,
		RequiredProps: requiredProps,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.AppliedMessages.WithLabelValues("category")))
}

func TestIndexerService_ApplyCategoryCreated_ChildJoinsParentCluster(t *testing.T) {
	srv, clusterRepo, _ := newTestIndexer(t)

	ctx := context.Background()
	parentID := uuid.New()
	categoryID := uuid.New()
	clusterID := uuid.New()

	clusterRepo.EXPECT().MarkMessageApplied(ctx, "msg-2").Return(true, nil)
	clusterRepo.EXPECT().FindClusterByCategory(ctx, parentID).Return(clusterID, nil)
	clusterRepo.EXPECT().AddMember(ctx, clusterID, categoryID).Return(nil)

	err := srv.ApplyCategoryCreated(ctx, "msg-2", service.CategoryCreatedMessage{
		ID:       categoryID,
		ParentID: &parentID,
	})
	require.NoError(t, err)
}

func TestIndexerService_ApplyCategoryCreated_UnclusteredParentIsDropped(t *testing.T) {
	srv, clusterRepo, m := newTestIndexer(t)

	ctx := context.Background()
	parentID := uuid.New()

	clusterRepo.EXPECT().MarkMessageApplied(ctx, "msg-3").Return(true, nil)
	clusterRepo.EXPECT().
		FindClusterByCategory(ctx, parentID).
		Return(uuid.Nil, repository.ErrClusterNotFound)

	err := srv.ApplyCategoryCreated(ctx, "msg-3", service.CategoryCreatedMessage{
		ID:       uuid.New(),
		ParentID: &parentID,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.DroppedEvents.WithLabelValues(metrics.DropReasonUnclusteredParent)))
}

func TestIndexerService_ApplyCategoryCreated_DuplicateMessageSkipped(t *testing.T) {
	srv, clusterRepo, m := newTestIndexer(t)

	ctx := context.Background()

	clusterRepo.EXPECT().MarkMessageApplied(ctx, "msg-4").Return(false, nil)

	err := srv.ApplyCategoryCreated(ctx, "msg-4", service.CategoryCreatedMessage{ID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DuplicateMessages))
}

func TestIndexerService_ApplyProductCreated_IncrementsDeclaredCounters(t *testing.T) {
	srv, clusterRepo, _ := newTestIndexer(t)

	ctx := context.Background()
	categoryID := uuid.New()
	clusterID := uuid.New()
	productID := uuid.New()

	clusterRepo.EXPECT().MarkMessageApplied(ctx, "msg-5").Return(true, nil)
	clusterRepo.EXPECT().
		FindClusterByAnyCategory(ctx, []uuid.UUID{categoryID}).
		Return(clusterID, nil)
	clusterRepo.EXPECT().CounterExists(ctx, clusterID, "brand").Return(true, nil)
	clusterRepo.EXPECT().IncrementValue(ctx, clusterID, "brand", "acme", int64(1)).Return(nil)
	clusterRepo.EXPECT().CounterExists(ctx, clusterID, "color").Return(true, nil)
	clusterRepo.EXPECT().IncrementValue(ctx, clusterID, "color", "red", int64(1)).Return(nil)

	err := srv.ApplyProductCreated(ctx, "msg-5", service.ProductCreatedMessage{
		ID:                 productID,
		Characteristics:    map[string]string{"brand": "acme", "color": "red"},
		RelatedCategoryIDs: []uuid.UUID{categoryID},
	})
	require.NoError(t, err)
}

func TestIndexerService_ApplyProductCreated_UndeclaredPropertyDroppedPerProperty(t *testing.T) {
	srv, clusterRepo, m := newTestIndexer(t)

	ctx := context.Background()
	categoryID := uuid.New()
	clusterID := uuid.New()

	clusterRepo.EXPECT().MarkMessageApplied(ctx, "msg-6").Return(true, nil)
	clusterRepo.EXPECT().
		FindClusterByAnyCategory(ctx, []uuid.UUID{categoryID}).
		Return(clusterID, nil)
	clusterRepo.EXPECT().CounterExists(ctx, clusterID, "brand").Return(true, nil)
	clusterRepo.EXPECT().IncrementValue(ctx, clusterID, "brand", "acme", int64(1)).Return(nil)
	clusterRepo.EXPECT().CounterExists(ctx, clusterID, "weight").Return(false, nil)

	err := srv.ApplyProductCreated(ctx, "msg-6", service.ProductCreatedMessage{
		ID:                 uuid.New(),
		Characteristics:    map[string]string{"brand": "acme", "weight": "2kg"},
		RelatedCategoryIDs: []uuid.UUID{categoryID},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.DroppedEvents.WithLabelValues(metrics.DropReasonMissingCounter)))
}

func TestIndexerService_ApplyProductCreated_NoClusterIsDropped(t *testing.T) {
	srv, clusterRepo, m := newTestIndexer(t)

	ctx := context.Background()
	categoryID := uuid.New()

	clusterRepo.EXPECT().MarkMessageApplied(ctx, "msg-7").Return(true, nil)
	clusterRepo.EXPECT().
		FindClusterByAnyCategory(ctx, []uuid.UUID{categoryID}).
		Return(uuid.Nil, repository.ErrClusterNotFound)

	err := srv.ApplyProductCreated(ctx, "msg-7", service.ProductCreatedMessage{
		ID:                 uuid.New(),
		Characteristics:    map[string]string{"brand": "acme"},
		RelatedCategoryIDs: []uuid.UUID{categoryID},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.DroppedEvents.WithLabelValues(metrics.DropReasonNoCluster)))
}

func TestIndexerService_ApplyCategoryCreated_StorageFailurePropagates(t *testing.T) {
	srv, clusterRepo, _ := newTestIndexer(t)

	ctx := context.Background()

	clusterRepo.EXPECT().
		MarkMessageApplied(ctx, "msg-8").
		Return(false, assert.AnError)

	err := srv.ApplyCategoryCreated(ctx, "msg-8", service.CategoryCreatedMessage{ID: uuid.New()})
	assert.ErrorIs(t, err, assert.AnError)
}
