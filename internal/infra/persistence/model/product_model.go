package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The denormalized columns
// (actual_price, rating, order_count, available_quantity) are only touched
// through atomic UPDATE expressions.
type ProductModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Caption            string    `gorm:"type:varchar(255);not null;index"`
	Description        string    `gorm:"type:text"`
	CategoryIDs        UUIDSlice `gorm:"type:jsonb;not null;default:'[]'"`
	RelatedCategoryIDs UUIDSlice `gorm:"type:jsonb;not null;default:'[]';index:,type:gin"`
	Characteristics    StringMap `gorm:"type:jsonb;not null;default:'{}'"`
	Price              float64   `gorm:"not null"`
	ActualPrice        float64   `gorm:"not null"`
	Rating             float64   `gorm:"not null;default:0"`
	OrderCount         int64     `gorm:"not null;default:0"`
	AvailableQuantity  int64     `gorm:"not null;default:0"`
	Images             StringSlice `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
