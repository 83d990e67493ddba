package entity

import (
	"time"

	"github.com/google/uuid"
)

// IndexCluster groups the categories of one root subtree around a shared
// set of facet counters. Membership only grows: clusters never split or
// merge, and a category belongs to at most one cluster.
type IndexCluster struct {
	ID          uuid.UUID   `json:"id"`
	CategoryIDs []uuid.UUID `json:"category_ids"`
	CreatedAt   time.Time   `json:"created_at"`
}

// PropertyCounter is the facet document for one property within a cluster:
// a mapping from observed characteristic value to the number of products
// exhibiting it.
type PropertyCounter struct {
	Property string           `json:"property"`
	Values   map[string]int64 `json:"values"`
}
