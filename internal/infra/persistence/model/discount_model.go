package model

import (
	"time"

	"github.com/google/uuid"
)

// DiscountModel mirrors the 'discounts' table. All three discount variants
// share one table, discriminated by kind; the variant-specific target
// columns stay empty for the other kinds.
type DiscountModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Kind               string    `gorm:"type:varchar(20);not null;index"`
	Description        string    `gorm:"type:text;not null"`
	PercentOff         float64   `gorm:"not null"`
	Multiplier         float64   `gorm:"not null"`
	TargetProductIDs   UUIDSlice `gorm:"type:jsonb;not null;default:'[]'"`
	CategoryClosureIDs UUIDSlice `gorm:"type:jsonb;not null;default:'[]'"`
	Code               *string   `gorm:"type:varchar(64);uniqueIndex"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (DiscountModel) TableName() string {
	return "discounts"
}
