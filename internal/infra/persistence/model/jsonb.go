// Package model contains the GORM persistence models for the marketplace.
package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UUIDSlice stores a list of UUIDs as a JSONB array.
type UUIDSlice []uuid.UUID

// GormDataType tells GORM the column type.
func (UUIDSlice) GormDataType() string { return "jsonb" }

// Value implements driver.Valuer.
func (s UUIDSlice) Value() (driver.Value, error) {
	if s == nil {
		s = UUIDSlice{}
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "marshal uuid slice")
	}

	return raw, nil
}

// Scan implements sql.Scanner.
func (s *UUIDSlice) Scan(src any) error {
	return scanJSON(src, s)
}

// StringSlice stores a list of strings as a JSONB array.
type StringSlice []string

// GormDataType tells GORM the column type.
func (StringSlice) GormDataType() string { return "jsonb" }

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = StringSlice{}
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "marshal string slice")
	}

	return raw, nil
}

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(src any) error {
	return scanJSON(src, s)
}

// StringMap stores a string-to-string mapping as a JSONB object.
type StringMap map[string]string

// GormDataType tells GORM the column type.
func (StringMap) GormDataType() string { return "jsonb" }

// Value implements driver.Valuer.
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "marshal string map")
	}

	return raw, nil
}

// Scan implements sql.Scanner.
func (m *StringMap) Scan(src any) error {
	return scanJSON(src, m)
}

// Int64Map stores a string-to-count mapping as a JSONB object.
type Int64Map map[string]int64

// GormDataType tells GORM the column type.
func (Int64Map) GormDataType() string { return "jsonb" }

// Value implements driver.Valuer.
func (m Int64Map) Value() (driver.Value, error) {
	if m == nil {
		m = Int64Map{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "marshal count map")
	}

	return raw, nil
}

// Scan implements sql.Scanner.
func (m *Int64Map) Scan(src any) error {
	return scanJSON(src, m)
}

func scanJSON(src, dest any) error {
	if src == nil {
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", src)
	}

	return errors.Wrap(json.Unmarshal(raw, dest), "unmarshal jsonb column")
}
