package model

import (
	"time"

	"github.com/google/uuid"
)

// IndexClusterModel mirrors the 'index_clusters' table.
type IndexClusterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IndexClusterModel) TableName() string {
	return "index_clusters"
}

// ClusterMemberModel mirrors the 'cluster_members' table. The category id is
// the primary key, so one category can never belong to two clusters and
// membership lookup is a single indexed read.
type ClusterMemberModel struct {
	CategoryID uuid.UUID `gorm:"type:uuid;primary_key"`
	ClusterID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClusterMemberModel) TableName() string {
	return "cluster_members"
}

// PropertyCounterModel mirrors the 'property_counters' table: one row per
// declared property per cluster. Seq preserves declaration order for the
// paginated facet listing.
type PropertyCounterModel struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ClusterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cluster_property"`
	Property  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cluster_property"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyCounterModel) TableName() string {
	return "property_counters"
}

// FacetValueModel mirrors the 'facet_values' table: the count of one
// observed value under one property counter. Increments go through an
// upsert so concurrent consumers never lose updates.
type FacetValueModel struct {
	ClusterID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Property  string    `gorm:"type:varchar(255);primaryKey"`
	Value     string    `gorm:"type:varchar(255);primaryKey"`
	Count     int64     `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (FacetValueModel) TableName() string {
	return "facet_values"
}

// AppliedMessageModel mirrors the 'indexer_applied_messages' table, the
// idempotency log that makes at-least-once redelivery safe.
type AppliedMessageModel struct {
	MessageID string `gorm:"type:varchar(255);primary_key"`
	AppliedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppliedMessageModel) TableName() string {
	return "indexer_applied_messages"
}
