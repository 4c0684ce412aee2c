package pagination

// PaginationMeta contains metadata about a paginated result set.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta creates pagination metadata from parameters and total count.
// HasNext follows the page*size < total rule, so it is false on and past the
// last page.
func NewPaginationMeta(params PaginationParams, totalCount int) PaginationMeta {
	n := params.Normalize()

	return PaginationMeta{
		CurrentPage: n.Page,
		PageSize:    n.PageSize,
		TotalPages:  n.CalculateTotalPages(totalCount),
		TotalItems:  totalCount,
		HasPrevious: n.Page > MinPage,
		HasNext:     HasNextPage(n.Page, n.PageSize, totalCount),
	}
}

// PageCount is the page total shown to users ("Page P of N"). It is never below
// one, so an empty result still reads "Page 1 of 1".
func (m PaginationMeta) PageCount() int {
	if m.TotalPages < 1 {
		return 1
	}
	return m.TotalPages
}
