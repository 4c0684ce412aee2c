package engine

import (
	"github.com/rshade/empdash/internal/engine/pagination"
	"github.com/rshade/empdash/internal/roster"
)

// Result is the output of one pipeline run.
type Result struct {
	// Visible is the page of records to display.
	Visible []roster.Record `json:"employees"`

	// TotalFilteredCount is the number of records that survived search and
	// gender filtering, before pagination.
	TotalFilteredCount int `json:"total_filtered_count"`

	// Meta describes the page position within the filtered set.
	Meta pagination.PaginationMeta `json:"pagination"`
}

// Derive runs the pipeline over records for the given view state. It never
// fails: an empty filtered set or a page beyond the data yields an empty
// Visible slice.
func Derive(records []roster.Record, state ViewState) Result {
	searched := Search(records, state.Query)
	filtered := FilterGender(searched, state.Gender)
	sorted := SortRecords(filtered, state.Sort)

	params := state.Params()
	return Result{
		Visible:            pagination.ApplyToSlice(params, sorted),
		TotalFilteredCount: len(sorted),
		Meta:               pagination.NewPaginationMeta(params, len(sorted)),
	}
}

// DeriveWith is Derive with the knobs passed positionally.
func DeriveWith(
	records []roster.Record,
	query string,
	gender GenderFilter,
	sortMode SortMode,
	page, pageSize int,
) Result {
	return Derive(records, ViewState{
		Query:    query,
		Gender:   gender,
		Sort:     sortMode,
		Page:     page,
		PageSize: pageSize,
	})
}

// FilterGender keeps the records matching the filter in their input order.
func FilterGender(records []roster.Record, gender GenderFilter) []roster.Record {
	kept := make([]roster.Record, 0, len(records))
	for _, rec := range records {
		if gender.Matches(rec.Gender) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// SortRecords applies the sort mode. SortDefault (and any unknown mode) keeps
// the input order; asc/desc are stable salary sorts.
func SortRecords(records []roster.Record, mode SortMode) []roster.Record {
	switch mode {
	case SortAsc:
		return pagination.SortBySalary(records, pagination.SortOrderAsc)
	case SortDesc:
		return pagination.SortBySalary(records, pagination.SortOrderDesc)
	default:
		out := make([]roster.Record, len(records))
		copy(out, records)
		return out
	}
}
