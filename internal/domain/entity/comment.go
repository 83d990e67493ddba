package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MinRating and MaxRating bound a comment's product rating.
	MinRating = 0
	MaxRating = 5
)

// Comment is a user review of a product. Registering or deleting one
// triggers a full recompute of the product's mean rating.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	ProductID uuid.UUID `json:"product_id"`
	Content   string    `json:"content"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}
