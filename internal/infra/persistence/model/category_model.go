package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Name           string    `gorm:"type:varchar(255);not null"`
	ParentID       *uuid.UUID `gorm:"type:uuid;index"`
	SubcategoryIDs UUIDSlice  `gorm:"type:jsonb;not null;default:'[]'"`
	RequiredProps  StringSlice `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
