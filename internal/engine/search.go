package engine

import (
	"strings"

	"github.com/rshade/empdash/internal/roster"
)

// Search returns the records whose first or last name contains query,
// case-insensitively. An empty query matches every record. The input is never
// modified and the result keeps the input's relative order.
func Search(records []roster.Record, query string) []roster.Record {
	matched := make([]roster.Record, 0, len(records))
	if query == "" {
		return append(matched, records...)
	}

	needle := strings.ToLower(query)
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.FirstName), needle) ||
			strings.Contains(strings.ToLower(rec.LastName), needle) {
			matched = append(matched, rec)
		}
	}
	return matched
}
