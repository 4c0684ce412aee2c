package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/empdash/internal/engine/pagination"
	"github.com/rshade/empdash/internal/roster"
)

// GenderFilter selects which genders survive the filter stage.
type GenderFilter string

// Gender filter values.
const (
	GenderAll    GenderFilter = "all"
	GenderMale   GenderFilter = GenderFilter(roster.GenderMale)
	GenderFemale GenderFilter = GenderFilter(roster.GenderFemale)
)

// SortMode is the salary ordering applied by the sort stage.
type SortMode string

// Sort modes, in Advance order.
const (
	SortDefault SortMode = "default"
	SortAsc     SortMode = "asc"
	SortDesc    SortMode = "desc"
)

// View state errors.
var (
	ErrUnknownGenderFilter = errors.New("gender filter must be one of all, Male, Female")
	ErrUnknownSortMode     = errors.New("sort mode must be one of default, asc, desc")
)

// ParseGenderFilter validates a gender filter string. Matching is exact except
// that "all" is accepted in any case and an empty string means "all".
func ParseGenderFilter(s string) (GenderFilter, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, string(GenderAll)) {
		return GenderAll, nil
	}
	switch GenderFilter(trimmed) {
	case GenderMale, GenderFemale:
		return GenderFilter(trimmed), nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrUnknownGenderFilter, s)
	}
}

// Valid reports whether g is one of the three filter values.
func (g GenderFilter) Valid() bool {
	return g == GenderAll || g == GenderMale || g == GenderFemale
}

// Matches reports whether a record with the given gender passes the filter.
// Unknown filter values match nothing.
func (g GenderFilter) Matches(gender roster.Gender) bool {
	switch g {
	case GenderAll:
		return true
	case GenderMale, GenderFemale:
		return string(gender) == string(g)
	default:
		return false
	}
}

// Next cycles all -> Male -> Female -> all.
func (g GenderFilter) Next() GenderFilter {
	switch g {
	case GenderAll:
		return GenderMale
	case GenderMale:
		return GenderFemale
	default:
		return GenderAll
	}
}

// Label returns the display label for the filter.
func (g GenderFilter) Label() string {
	if g == GenderAll {
		return "All"
	}
	return string(g)
}

// ParseSortMode validates a sort mode string (case-insensitive). An empty string
// means "default".
func ParseSortMode(s string) (SortMode, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if trimmed == "" || trimmed == string(SortDefault) {
		return SortDefault, nil
	}
	order, err := pagination.ParseSortOrder(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: got %q", ErrUnknownSortMode, s)
	}
	return SortMode(order), nil
}

// Advance moves one step along default -> asc -> desc -> default. It is the only
// transition between sort modes.
func (s SortMode) Advance() SortMode {
	switch s {
	case SortDefault:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortDefault
	}
}

// Glyph returns the indicator shown next to the salary header.
func (s SortMode) Glyph() string {
	switch s {
	case SortAsc:
		return "↑"
	case SortDesc:
		return "↓"
	default:
		return "↔"
	}
}

// ViewState is the full set of knobs driving derivation. It is a value type:
// transitions return a modified copy and never touch the receiver.
type ViewState struct {
	Query    string       `json:"query"     yaml:"query"`
	Gender   GenderFilter `json:"gender"    yaml:"gender"`
	Sort     SortMode     `json:"sort"      yaml:"sort"`
	Page     int          `json:"page"      yaml:"page"`
	PageSize int          `json:"page_size" yaml:"page_size"`
}

// NewViewState returns the initial state: empty query, all genders, default
// order, page 1 and the given page size (DefaultPageSize when < 1).
func NewViewState(pageSize int) ViewState {
	if pageSize < pagination.MinPageSize {
		pageSize = pagination.DefaultPageSize
	}
	return ViewState{
		Gender:   GenderAll,
		Sort:     SortDefault,
		Page:     pagination.DefaultPage,
		PageSize: pageSize,
	}
}

// Params returns the pagination parameters for the state.
func (v ViewState) Params() pagination.PaginationParams {
	return pagination.PaginationParams{Page: v.Page, PageSize: v.PageSize}.Normalize()
}

// WithQuery sets the search query and resets the page to 1.
func (v ViewState) WithQuery(q string) ViewState {
	v.Query = q
	v.Page = pagination.DefaultPage
	return v
}

// WithGender sets the gender filter and resets the page to 1. Unknown values
// are rejected and the state is returned unchanged.
func (v ViewState) WithGender(g GenderFilter) (ViewState, error) {
	if !g.Valid() {
		return v, fmt.Errorf("%w: got %q", ErrUnknownGenderFilter, g)
	}
	v.Gender = g
	v.Page = pagination.DefaultPage
	return v, nil
}

// CycleGender advances the gender filter (all -> Male -> Female -> all) and
// resets the page to 1.
func (v ViewState) CycleGender() ViewState {
	v.Gender = v.Gender.Next()
	v.Page = pagination.DefaultPage
	return v
}

// AdvanceSort moves the sort mode one step. The page is kept.
func (v ViewState) AdvanceSort() ViewState {
	v.Sort = v.Sort.Advance()
	return v
}

// NextPage moves forward one page when page*size < total; otherwise it is a no-op.
func (v ViewState) NextPage(total int) ViewState {
	p := v.Params()
	if pagination.HasNextPage(p.Page, p.PageSize, total) {
		v.Page = p.Page + 1
	}
	return v
}

// PrevPage moves back one page when the page is above 1.
func (v ViewState) PrevPage() ViewState {
	if v.Page > pagination.MinPage {
		v.Page--
	}
	return v
}

// ClampPage pulls the page back to the last page holding data for total
// filtered records (page 1 when there are none). Used after deletions.
func (v ViewState) ClampPage(total int) ViewState {
	p := v.Params()
	last := pagination.NewPaginationMeta(p, total).PageCount()
	if p.Page > last {
		v.Page = last
	} else {
		v.Page = p.Page
	}
	return v
}
