// Package pagination provides bounded page requests shared by the writer
// and indexer read paths.
package pagination

import (
	domainerrors "market/internal/domain/errors"
)

// DefaultMaxPageSize applies when no limit is configured.
const DefaultMaxPageSize = 50

// Request is a validated page request. Construct it with NewRequest so the
// size bound is enforced before any storage is touched.
type Request struct {
	Page     int
	PageSize int
}

// NewRequest validates the raw page parameters against the configured
// maximum. Pages are 1-based.
func NewRequest(page, pageSize, maxPageSize int) (Request, error) {
	if maxPageSize <= 0 {
		maxPageSize = DefaultMaxPageSize
	}
	if page < 1 {
		return Request{}, domainerrors.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return Request{}, domainerrors.ErrPageSizeExceeded
	}

	return Request{Page: page, PageSize: pageSize}, nil
}

// Offset returns the row offset for the request.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Page is one page of results plus totals.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int64 `json:"total_pages"`
}

// NewPage assembles a result page, deriving the page count from the total.
func NewPage[T any](items []T, req Request, total int64) *Page[T] {
	totalPages := total / int64(req.PageSize)
	if total%int64(req.PageSize) != 0 {
		totalPages++
	}

	return &Page[T]{
		Items:      items,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
