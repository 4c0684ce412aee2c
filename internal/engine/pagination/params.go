package pagination

import (
	"errors"
	"fmt"
	"math"
)

// Pagination defaults and validation limits.
const (
	DefaultPage     = 1
	MinPage         = 1
	DefaultPageSize = 8
	MinPageSize     = 1
	MaxPageSize     = 1000
)

// Common validation errors.
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("page-size must be between 1 and 1000")
)

// PaginationParams holds a 1-based page number and a fixed page size.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	// Page is the 1-based page number.
	Page int

	// PageSize is the number of records per page.
	PageSize int
}

// NewPaginationParams creates a PaginationParams with default values.
func NewPaginationParams() PaginationParams {
	return PaginationParams{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}

// Validate checks that page and page size are within bounds (value receiver).
func (p PaginationParams) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < MinPageSize || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// Normalize returns a copy with a page below 1 raised to 1 and a non-positive
// page size replaced by DefaultPageSize. The pipeline uses it so that bad knobs
// degrade instead of failing.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < MinPage {
		p.Page = MinPage
	}
	if p.PageSize < MinPageSize {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Offset returns the index of the first item on the page, saturating at
// math.MaxInt for pages too large to address.
func (p PaginationParams) Offset() int {
	n := p.Normalize()
	if n.Page-1 > math.MaxInt/n.PageSize {
		return math.MaxInt
	}
	return (n.Page - 1) * n.PageSize
}

// HasNextPage reports whether records remain after the given page, that is
// page*size < total, evaluated without multiplying.
func HasNextPage(page, pageSize, total int) bool {
	if total <= 0 || pageSize < MinPageSize {
		return false
	}
	return page <= (total-1)/pageSize
}

// CalculateTotalPages returns ceil(totalResults / PageSize); zero results means zero pages.
func (p PaginationParams) CalculateTotalPages(totalResults int) int {
	n := p.Normalize()
	if totalResults <= 0 {
		return 0
	}
	pages := totalResults / n.PageSize
	if totalResults%n.PageSize > 0 {
		pages++
	}
	return pages
}

// ApplyToSlice returns the items in positions [(Page-1)*PageSize, Page*PageSize).
// A page starting beyond the data yields an empty, non-nil slice. The returned
// slice is a copy; the input is never aliased.
func ApplyToSlice[T any](p PaginationParams, items []T) []T {
	n := p.Normalize()
	if len(items) == 0 || n.Page-1 > (len(items)-1)/n.PageSize {
		return []T{}
	}

	start := (n.Page - 1) * n.PageSize
	end := start + min(n.PageSize, len(items)-start)

	page := make([]T, end-start)
	copy(page, items[start:end])
	return page
}
