package impl

import (
	"context"
	"log/slog"
	"time"

	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/infra/metrics"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// indexerService implements the IndexerUsecase interface. Every message is
// applied in one transaction together with its idempotency mark, so a
// redelivered message either repeats cleanly as a skip or was never applied
// at all.
type indexerService struct {
	txManager repository.ClusterTransactionManager
	metrics   *metrics.IndexerMetrics
	logger    *slog.Logger
}

// NewIndexerService is the constructor for indexerService.
func NewIndexerService(
	txManager repository.ClusterTransactionManager,
	m *metrics.IndexerMetrics,
	logger *slog.Logger,
) usecase.IndexerUsecase {
	return &indexerService{
		txManager: txManager,
		metrics:   m,
		logger:    logger,
	}
}

// ApplyCategoryCreated opens a new cluster for a root category, or joins a
// child to its parent's cluster. A child arriving before its parent is
// dropped: the drop is logged and counted, and the transport's redelivery
// gives the parent a chance to arrive first.
func (srv *indexerService) ApplyCategoryCreated(ctx context.Context, messageID string, msg service.CategoryCreatedMessage) error {
	err := srv.txManager.Execute(ctx, func(repo repository.ClusterRepository) error {
		fresh, err := repo.MarkMessageApplied(ctx, messageID)
		if err != nil {
			return errors.Wrap(err, "failed to record message id")
		}
		if !fresh {
			srv.metrics.DuplicateMessages.Inc()
			srv.logger.Info("Skipping redelivered category message", "messageID", messageID)

			return nil
		}

		if msg.ParentID == nil {
			cluster := &entity.IndexCluster{
				ID:          uuid.New(),
				CategoryIDs: []uuid.UUID{msg.ID},
				CreatedAt:   time.Now(),
			}
			if err := repo.CreateCluster(ctx, cluster, msg.RequiredProps); err != nil {
				return errors.Wrap(err, "failed to create cluster")
			}
			srv.logger.Info("Created cluster for root category", "categoryID", msg.ID, "clusterID", cluster.ID)

			return nil
		}

		clusterID, err := repo.FindClusterByCategory(ctx, *msg.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrClusterNotFound) {
				srv.metrics.DroppedEvents.WithLabelValues(metrics.DropReasonUnclusteredParent).Inc()
				srv.logger.Warn("Dropping category message, parent not clustered",
					"categoryID", msg.ID, "parentID", *msg.ParentID)

				return nil
			}

			return errors.Wrap(err, "failed to resolve parent cluster")
		}

		if err := repo.AddMember(ctx, clusterID, msg.ID); err != nil {
			return errors.Wrap(err, "failed to extend cluster")
		}
		srv.logger.Info("Joined category to cluster", "categoryID", msg.ID, "clusterID", clusterID)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply category message")
	}

	srv.metrics.AppliedMessages.WithLabelValues("category").Inc()

	return nil
}

// ApplyProductCreated increments the facet counters of the cluster the
// product's related categories belong to. Updates for properties the
// cluster never declared are dropped per property, logged and counted.
func (srv *indexerService) ApplyProductCreated(ctx context.Context, messageID string, msg service.ProductCreatedMessage) error {
	err := srv.txManager.Execute(ctx, func(repo repository.ClusterRepository) error {
		fresh, err := repo.MarkMessageApplied(ctx, messageID)
		if err != nil {
			return errors.Wrap(err, "failed to record message id")
		}
		if !fresh {
			srv.metrics.DuplicateMessages.Inc()
			srv.logger.Info("Skipping redelivered product message", "messageID", messageID)

			return nil
		}

		clusterID, err := repo.FindClusterByAnyCategory(ctx, msg.RelatedCategoryIDs)
		if err != nil {
			if errors.Is(err, repository.ErrClusterNotFound) {
				srv.metrics.DroppedEvents.WithLabelValues(metrics.DropReasonNoCluster).Inc()
				srv.logger.Warn("Dropping product message, no cluster for categories", "productID", msg.ID)

				return nil
			}

			return errors.Wrap(err, "failed to resolve product cluster")
		}

		for property, value := range msg.Characteristics {
			exists, err := repo.CounterExists(ctx, clusterID, property)
			if err != nil {
				return errors.Wrap(err, "failed to check counter")
			}
			if !exists {
				srv.metrics.DroppedEvents.WithLabelValues(metrics.DropReasonMissingCounter).Inc()
				srv.logger.Warn("Dropping counter update, property not declared",
					"clusterID", clusterID, "property", property)

				continue
			}

			if err := repo.IncrementValue(ctx, clusterID, property, value, 1); err != nil {
				return errors.Wrap(err, "failed to increment counter")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to apply product message")
	}

	srv.metrics.AppliedMessages.WithLabelValues("product").Inc()

	return nil
}
