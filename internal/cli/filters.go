package cli

import (
	"context"

	"github.com/rshade/empdash/internal/engine"
	"github.com/rshade/empdash/internal/engine/pagination"
	"github.com/rshade/empdash/internal/logging"
)

// ViewFlags holds the list command's view-state flags as typed by the user.
type ViewFlags struct {
	Search   string
	Gender   string
	Sort     string
	Page     int
	PageSize int
}

// BuildViewState validates the flags and turns them into a view state.
// Unknown gender filters and sort modes, and out-of-range page values, are
// rejected with a UsageError; nothing is silently coerced.
//
// The query and gender are applied first because each resets the page; the
// requested page is set last.
func BuildViewState(ctx context.Context, flags ViewFlags) (engine.ViewState, error) {
	log := logging.FromContext(ctx)

	params := pagination.PaginationParams{Page: flags.Page, PageSize: flags.PageSize}
	if err := params.Validate(); err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "build_view_state").
			Int("page", flags.Page).
			Int("page_size", flags.PageSize).
			Err(err).
			Msg("invalid pagination flags")
		return engine.ViewState{}, &UsageError{Err: err}
	}

	gender, err := engine.ParseGenderFilter(flags.Gender)
	if err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "build_view_state").
			Str("gender", flags.Gender).
			Err(err).
			Msg("invalid gender filter")
		return engine.ViewState{}, &UsageError{Err: err}
	}

	sortMode, err := engine.ParseSortMode(flags.Sort)
	if err != nil {
		log.Warn().Ctx(ctx).
			Str("component", "cli").
			Str("operation", "build_view_state").
			Str("sort", flags.Sort).
			Err(err).
			Msg("invalid sort mode")
		return engine.ViewState{}, &UsageError{Err: err}
	}

	view := engine.NewViewState(params.PageSize).WithQuery(flags.Search)
	if view, err = view.WithGender(gender); err != nil {
		return engine.ViewState{}, &UsageError{Err: err}
	}
	view.Sort = sortMode
	view.Page = params.Page

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("operation", "build_view_state").
		Str("query", view.Query).
		Str("gender", string(view.Gender)).
		Str("sort", string(view.Sort)).
		Int("page", view.Page).
		Int("page_size", view.PageSize).
		Msg("view state built")

	return view, nil
}
