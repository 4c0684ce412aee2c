package roster

import (
	"fmt"
	"slices"
)

// Roster is the caller-owned employee collection. It is not safe for concurrent
// use; all mutation happens synchronously from the view that owns it.
type Roster struct {
	records []Record
}

// New creates a Roster holding a copy of records in the given order.
func New(records []Record) *Roster {
	return &Roster{records: slices.Clone(records)}
}

// Records returns a copy of the collection in its current order.
func (r *Roster) Records() []Record {
	return slices.Clone(r.records)
}

// Len returns the number of records.
func (r *Roster) Len() int {
	return len(r.records)
}

// Get returns the record with the given id.
func (r *Roster) Get(id ID) (Record, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Record{}, false
	}
	return r.records[idx], true
}

// Apply edits the record with the given id in place. A rejected update leaves
// the record untouched. The record's ID is never changed.
func (r *Roster) Apply(id ID, u Update) error {
	return r.ApplyAll(id, u)
}

// ApplyAll applies updates in order to a copy of the record and stores the
// result only when every update succeeds, so a rejected update leaves none of
// the others applied.
func (r *Roster) ApplyAll(id ID, updates ...Update) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}

	edited := r.records[idx]
	for _, u := range updates {
		if err := u.apply(&edited); err != nil {
			return fmt.Errorf("updating %s of record %d: %w", u.Field(), id, err)
		}
	}
	edited.ID = id
	r.records[idx] = edited
	return nil
}

// Delete removes the record with the given id and reports whether it existed.
// Deleting an unknown id is a no-op.
func (r *Roster) Delete(id ID) bool {
	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.records = slices.Delete(r.records, idx, idx+1)
	return true
}

func (r *Roster) indexOf(id ID) int {
	return slices.IndexFunc(r.records, func(rec Record) bool {
		return rec.ID == id
	})
}
