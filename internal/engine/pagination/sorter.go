package pagination

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/empdash/internal/roster"
)

// Sort orders accepted by SortBySalary.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ErrInvalidSortOrder is returned by ParseSortOrder for anything but asc/desc.
var ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")

// ParseSortOrder normalizes and validates a sort order string.
func ParseSortOrder(order string) (string, error) {
	o := strings.ToLower(strings.TrimSpace(order))
	if o != SortOrderAsc && o != SortOrderDesc {
		return "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return o, nil
}

// SortBySalary returns a copy of records ordered by salary. The sort is stable in
// both directions: records with equal salary keep their input order.
// An unknown order returns an unmodified copy.
func SortBySalary(records []roster.Record, order string) []roster.Record {
	sorted := make([]roster.Record, len(records))
	copy(sorted, records)

	switch order {
	case SortOrderAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Salary < sorted[j].Salary
		})
	case SortOrderDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Salary > sorted[j].Salary
		})
	}

	return sorted
}
