package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is the mutable order builder: one per owner, holding desired
// quantities keyed by product id. Checkout consumes and deletes it.
type Cart struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	// Items maps product id to requested quantity. The product id is kept
	// as a string key so the map serializes directly to JSON.
	Items     map[string]int64 `json:"items"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
