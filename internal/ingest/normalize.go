package ingest

import (
	"fmt"

	"github.com/rshade/empdash/internal/roster"
)

// Normalize validates records and assigns ids to records that have none (id 0).
// Assigned ids start after the largest id present. Repeated ids are rejected with
// ErrDuplicateID. The input is not modified.
func Normalize(records []roster.Record) ([]roster.Record, error) {
	out := make([]roster.Record, len(records))
	copy(out, records)

	seen := make(map[roster.ID]int, len(out))
	var maxID roster.ID
	for i, rec := range out {
		if rec.ID < 0 {
			return nil, fmt.Errorf("record %d: negative id %d", i+1, rec.ID)
		}
		if rec.ID == 0 {
			continue
		}
		if first, ok := seen[rec.ID]; ok {
			return nil, fmt.Errorf("%w: %d (records %d and %d)", ErrDuplicateID, rec.ID, first+1, i+1)
		}
		seen[rec.ID] = i
		maxID = max(maxID, rec.ID)
	}

	for i := range out {
		if out[i].ID == 0 {
			maxID++
			out[i].ID = maxID
		}
		if err := out[i].Validate(); err != nil {
			return nil, fmt.Errorf("record %d (id %d): %w", i+1, out[i].ID, err)
		}
	}
	return out, nil
}
