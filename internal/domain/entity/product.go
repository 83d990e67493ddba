package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a sellable item. Price, rating, order count and stock carry
// denormalized values maintained exclusively by the event reactors; no
// other code path writes them.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Caption     string    `json:"caption"`
	Description string    `json:"description"`
	// CategoryIDs are the directly assigned categories.
	CategoryIDs []uuid.UUID `json:"category_ids"`
	// RelatedCategoryIDs is the ancestor closure: the direct categories plus
	// every transitive parent, recomputed on register and update.
	RelatedCategoryIDs []uuid.UUID       `json:"related_category_ids"`
	Characteristics    map[string]string `json:"characteristics"`
	Price              float64           `json:"price"`
	// ActualPrice is Price multiplied by every applicable discount
	// multiplier currently registered.
	ActualPrice       float64   `json:"actual_price"`
	Rating            float64   `json:"rating"`
	OrderCount        int64     `json:"order_count"`
	AvailableQuantity int64     `json:"available_quantity"`
	Images            []string  `json:"images"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
