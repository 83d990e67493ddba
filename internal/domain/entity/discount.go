package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountKind discriminates the discount variants for persistence.
type DiscountKind string

const (
	DiscountKindProduct  DiscountKind = "product"
	DiscountKindCategory DiscountKind = "category"
	DiscountKindPromo    DiscountKind = "promo_code"
)

// Discount is a closed sum type over the three discount variants. Consumers
// dispatch on the concrete type; the pricing reactor resolves each
// variant's target products through a type switch.
type Discount interface {
	isDiscount()
	// Base returns the fields shared by every variant.
	Base() DiscountBase
	// Kind returns the persistence discriminator for the variant.
	Kind() DiscountKind
}

// DiscountBase holds the fields common to all discount kinds. Multiplier is
// captured once at registration (1 - PercentOff/100) and never recomputed:
// deletion must reverse with the exact registered value.
type DiscountBase struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	PercentOff  float64   `json:"percent_off"`
	Multiplier  float64   `json:"multiplier"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b DiscountBase) isDiscount() {}

// Base implements Discount.
func (b DiscountBase) Base() DiscountBase { return b }

// NewDiscountBase computes the immutable multiplier from a percentage.
func NewDiscountBase(description string, percentOff float64) DiscountBase {
	return DiscountBase{
		ID:          uuid.New(),
		Description: description,
		PercentOff:  percentOff,
		Multiplier:  1 - percentOff/100,
		CreatedAt:   time.Now(),
	}
}

// ProductDiscount targets an explicit list of products.
type ProductDiscount struct {
	DiscountBase
	TargetProductIDs []uuid.UUID `json:"target_product_ids"`
}

// Kind implements Discount.
func (d *ProductDiscount) Kind() DiscountKind { return DiscountKindProduct }

// CategoryDiscount targets every product related to a category subtree.
// CategoryClosureIDs is the downward closure (the named categories plus all
// transitive descendants), resolved once at registration.
type CategoryDiscount struct {
	DiscountBase
	CategoryClosureIDs []uuid.UUID `json:"category_closure_ids"`
}

// Kind implements Discount.
func (d *CategoryDiscount) Kind() DiscountKind { return DiscountKindCategory }

// PromoCode is applied per order at checkout rather than to stored prices,
// so the pricing reactor ignores it.
type PromoCode struct {
	DiscountBase
	Code string `json:"code"`
}

// Kind implements Discount.
func (d *PromoCode) Kind() DiscountKind { return DiscountKindPromo }
