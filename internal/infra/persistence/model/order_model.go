package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// OrderItemRecord is one line item inside the order's JSONB items column.
type OrderItemRecord struct {
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int64     `json:"quantity"`
	CapturedPrice float64   `json:"captured_price"`
}

// OrderItems stores the line items as a JSONB array.
type OrderItems []OrderItemRecord

// GormDataType tells GORM the column type.
func (OrderItems) GormDataType() string { return "jsonb" }

// Value implements driver.Valuer.
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		items = OrderItems{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "marshal order items")
	}

	return raw, nil
}

// Scan implements sql.Scanner.
func (items *OrderItems) Scan(src any) error {
	return scanJSON(src, items)
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Items           OrderItems `gorm:"type:jsonb;not null;default:'[]'"`
	Status          string     `gorm:"type:varchar(20);not null"`
	ShippingAddress string     `gorm:"type:text;not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
