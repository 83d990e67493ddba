// Package entity contains the core business objects of the marketplace.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the catalog hierarchy. A category without a parent
// is a root; the indexer opens a new counter cluster for every root.
type Category struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	ParentID       *uuid.UUID  `json:"parent_id,omitempty"`
	SubcategoryIDs []uuid.UUID `json:"subcategory_ids"`
	// RequiredProps is the set of characteristic keys every product in this
	// category must declare. A child's set is always a superset of its
	// parent's: it is computed as the union at registration time.
	RequiredProps []string  `json:"required_props"`
	CreatedAt     time.Time `json:"created_at"`
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
