package postgres

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/pagination"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clusterRepository implements the domain ClusterRepository interface using GORM.
// Membership lives in cluster_members keyed by category id, so a category
// can only ever be assigned once; counters live in property_counters with
// their value counts in facet_values.
type clusterRepository struct {
	db *gorm.DB
}

// NewClusterRepository is the constructor for clusterRepository.
func NewClusterRepository(db *gorm.DB) repository.ClusterRepository {
	return &clusterRepository{db: db}
}

// CreateCluster stores a new cluster with its initial member and one empty
// counter per required property.
func (repo *clusterRepository) CreateCluster(ctx context.Context, cluster *entity.IndexCluster, requiredProps []string) error {
	clusterM := &model.IndexClusterModel{
		ID:        cluster.ID,
		CreatedAt: cluster.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(clusterM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cluster")
	}

	for _, categoryID := range cluster.CategoryIDs {
		if err := repo.AddMember(ctx, cluster.ID, categoryID); err != nil {
			return err
		}
	}

	for _, property := range requiredProps {
		counterM := &model.PropertyCounterModel{
			ClusterID: cluster.ID,
			Property:  property,
			CreatedAt: time.Now(),
		}
		err := repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(counterM).Error
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create property counter")
		}
	}

	return nil
}

// FindClusterByCategory resolves the cluster the category belongs to.
func (repo *clusterRepository) FindClusterByCategory(ctx context.Context, categoryID uuid.UUID) (uuid.UUID, error) {
	var memberM model.ClusterMemberModel
	err := repo.db.WithContext(ctx).Where("category_id = ?", categoryID).First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrClusterNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find cluster membership")
	}

	return memberM.ClusterID, nil
}

// FindClusterByAnyCategory resolves the first cluster containing any of the
// given categories. Categories never belong to two clusters, so any match
// is the right one.
func (repo *clusterRepository) FindClusterByAnyCategory(ctx context.Context, categoryIDs []uuid.UUID) (uuid.UUID, error) {
	if len(categoryIDs) == 0 {
		return uuid.Nil, repository.ErrClusterNotFound
	}

	var memberM model.ClusterMemberModel
	err := repo.db.WithContext(ctx).Where("category_id IN ?", categoryIDs).First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, repository.ErrClusterNotFound
		}

		return uuid.Nil, errors.Wrap(err, "failed to find cluster membership")
	}

	return memberM.ClusterID, nil
}

// AddMember extends a cluster's membership. Membership only grows; adding an
// already assigned category is a no-op rather than a reassignment.
func (repo *clusterRepository) AddMember(ctx context.Context, clusterID, categoryID uuid.UUID) error {
	memberM := &model.ClusterMemberModel{
		CategoryID: categoryID,
		ClusterID:  clusterID,
		CreatedAt:  time.Now(),
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(memberM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to add cluster member")
	}

	return nil
}

// CounterExists reports whether the cluster declares a counter for the property.
func (repo *clusterRepository) CounterExists(ctx context.Context, clusterID uuid.UUID, property string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PropertyCounterModel{}).
		Where("cluster_id = ? AND property = ?", clusterID, property).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check property counter")
	}

	return count > 0, nil
}

// IncrementValue atomically adds delta to the count of value under the
// cluster's counter for property. Concurrent consumers are serialized by
// the upsert, not by read-modify-write.
func (repo *clusterRepository) IncrementValue(ctx context.Context, clusterID uuid.UUID, property, value string, delta int64) error {
	valueM := &model.FacetValueModel{
		ClusterID: clusterID,
		Property:  property,
		Value:     value,
		Count:     delta,
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cluster_id"}, {Name: "property"}, {Name: "value"}},
			DoUpdates: clause.Assignments(map[string]any{
				"count": gorm.Expr("facet_values.count + ?", delta),
			}),
		}).
		Create(valueM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment facet value")
	}

	return nil
}

// ValuesFor returns the value counts of one property's counter.
func (repo *clusterRepository) ValuesFor(ctx context.Context, clusterID uuid.UUID, property string) (map[string]int64, error) {
	exists, err := repo.CounterExists(ctx, clusterID, property)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrCounterNotFound
	}

	var models []model.FacetValueModel
	err = repo.db.WithContext(ctx).
		Where("cluster_id = ? AND property = ?", clusterID, property).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load facet values")
	}

	counts := make(map[string]int64, len(models))
	for _, valueM := range models {
		counts[valueM.Value] = valueM.Count
	}

	return counts, nil
}

// ListCounters retrieves one page of the cluster's counters in declaration
// order, each with its current value counts.
func (repo *clusterRepository) ListCounters(ctx context.Context, clusterID uuid.UUID, req pagination.Request) ([]entity.PropertyCounter, int64, error) {
	var total int64
	err := repo.db.WithContext(ctx).
		Model(&model.PropertyCounterModel{}).
		Where("cluster_id = ?", clusterID).
		Count(&total).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count property counters")
	}

	var counterModels []model.PropertyCounterModel
	err = repo.db.WithContext(ctx).
		Where("cluster_id = ?", clusterID).
		Order("seq ASC").
		Offset(req.Offset()).
		Limit(req.PageSize).
		Find(&counterModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list property counters")
	}

	if len(counterModels) == 0 {
		return []entity.PropertyCounter{}, total, nil
	}

	properties := make([]string, 0, len(counterModels))
	for _, counterM := range counterModels {
		properties = append(properties, counterM.Property)
	}

	var valueModels []model.FacetValueModel
	err = repo.db.WithContext(ctx).
		Where("cluster_id = ? AND property IN ?", clusterID, properties).
		Find(&valueModels).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to load facet values")
	}

	valuesByProperty := make(map[string]map[string]int64, len(properties))
	for _, valueM := range valueModels {
		if valuesByProperty[valueM.Property] == nil {
			valuesByProperty[valueM.Property] = make(map[string]int64)
		}
		valuesByProperty[valueM.Property][valueM.Value] = valueM.Count
	}

	counters := make([]entity.PropertyCounter, 0, len(counterModels))
	for _, counterM := range counterModels {
		values := valuesByProperty[counterM.Property]
		if values == nil {
			values = map[string]int64{}
		}
		counters = append(counters, entity.PropertyCounter{
			Property: counterM.Property,
			Values:   values,
		})
	}

	return counters, total, nil
}

// MarkMessageApplied records the message id, reporting false for an id that
// was already present.
func (repo *clusterRepository) MarkMessageApplied(ctx context.Context, messageID string) (bool, error) {
	messageM := &model.AppliedMessageModel{
		MessageID: messageID,
		AppliedAt: time.Now(),
	}
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(messageM)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record message id")
	}

	return result.RowsAffected > 0, nil
}
