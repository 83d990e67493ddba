package repository

import (
	"context"
	"errors"

	"market/internal/domain/entity"
	"market/internal/domain/pagination"

	"github.com/google/uuid"
)

// ErrClusterNotFound is returned when no cluster contains the queried category.
var ErrClusterNotFound = errors.New("cluster not found")

// ErrCounterNotFound is returned when a cluster has no counter for the
// queried property.
var ErrCounterNotFound = errors.New("property counter not found")

// ClusterRepository defines the operations on the indexer-side store: cluster
// membership, per-cluster facet counters, and the applied-message log that
// makes redelivery safe.
//
// Membership is stored as a mapping from category id to cluster id, so a
// category can never end up in two clusters and lookups are a single read.
type ClusterRepository interface {
	// CreateCluster stores a new cluster with its initial member and one
	// empty counter per required property.
	CreateCluster(ctx context.Context, cluster *entity.IndexCluster, requiredProps []string) error

	// FindClusterByCategory resolves the cluster the category belongs to.
	// Returns ErrClusterNotFound for an unassigned category.
	FindClusterByCategory(ctx context.Context, categoryID uuid.UUID) (uuid.UUID, error)

	// FindClusterByAnyCategory resolves the first cluster containing any of
	// the given categories. Returns ErrClusterNotFound when none match.
	FindClusterByAnyCategory(ctx context.Context, categoryIDs []uuid.UUID) (uuid.UUID, error)

	// AddMember extends a cluster's membership with one category.
	AddMember(ctx context.Context, clusterID, categoryID uuid.UUID) error

	// CounterExists reports whether the cluster declares a counter for the
	// property.
	CounterExists(ctx context.Context, clusterID uuid.UUID, property string) (bool, error)

	// IncrementValue atomically adds delta to the count of value under the
	// cluster's counter for property.
	IncrementValue(ctx context.Context, clusterID uuid.UUID, property, value string, delta int64) error

	// ValuesFor returns the value counts of one property's counter. Returns
	// ErrCounterNotFound when the cluster has no such counter.
	ValuesFor(ctx context.Context, clusterID uuid.UUID, property string) (map[string]int64, error)

	// ListCounters retrieves one page of the cluster's counters in insertion
	// order.
	ListCounters(ctx context.Context, clusterID uuid.UUID, req pagination.Request) ([]entity.PropertyCounter, int64, error)

	// MarkMessageApplied records the message id and reports whether it was
	// newly recorded. A false return means the message was already applied
	// and must be skipped.
	MarkMessageApplied(ctx context.Context, messageID string) (bool, error)
}

// ClusterTransactionManager runs indexer-side work in a single transaction so
// the applied-message mark and the counter mutations commit or roll back
// together.
type ClusterTransactionManager interface {
	Execute(ctx context.Context, fn func(repo ClusterRepository) error) error
}
