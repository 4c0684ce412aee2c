// Package pagination provides the page slicing, page metadata and stable salary
// ordering used by the derivation pipeline.
//
// This package contains:
//   - PaginationParams: 1-based page and page size with validation
//   - PaginationMeta: page count and previous/next availability for a result set
//   - SortBySalary: stable ascending/descending salary ordering
//
// Pagination here never fails on out-of-range pages: a page that starts past the
// end of the data yields an empty slice.
package pagination
