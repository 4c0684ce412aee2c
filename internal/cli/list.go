package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/empdash/internal/config"
	"github.com/rshade/empdash/internal/engine"
	"github.com/rshade/empdash/internal/engine/pagination"
	"github.com/rshade/empdash/internal/ingest"
	"github.com/rshade/empdash/internal/roster"
	"github.com/rshade/empdash/internal/tui"
)

// listOptions holds the list command flags.
type listOptions struct {
	view   ViewFlags
	data   []string
	output string
	plain  bool
}

// NewListCmd creates the list command, which derives one page of the employee
// directory and shows it interactively, as a table, or as JSON/NDJSON.
func NewListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search, filter, sort and page through employees",
		Long: `Shows one page of the employee directory.

Records come from --data files (JSON or YAML, repeatable), the data.files config
entry or EMPDASH_DATA, and fall back to the built-in sample directory.

On an interactive terminal the table is browsable and editable:
  /  search        g  cycle gender      s  cycle salary sort
  n  next page     p  previous page     e  edit row    d  delete row    q  quit

Edits and deletes are kept in memory only.`,
		Example: `  # Interactive table
  empdash list

  # Men with "an" in their name, highest salary first
  empdash list --search an --gender Male --sort desc --plain

  # Page 3 as JSON with pagination metadata
  empdash list --page 3 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.data, "data", nil, "employee file (.json, .yaml, .yml); repeatable")
	cmd.Flags().StringVar(&opts.view.Search, "search", "", "case-insensitive first/last name search")
	cmd.Flags().StringVar(&opts.view.Gender, "gender", string(engine.GenderAll), "gender filter: all, Male or Female")
	cmd.Flags().StringVar(&opts.view.Sort, "sort", string(engine.SortDefault), "salary sort: default, asc or desc")
	cmd.Flags().IntVar(&opts.view.Page, "page", pagination.DefaultPage, "1-based page number")
	cmd.Flags().IntVar(&opts.view.PageSize, "page-size", 0, "rows per page (default from config, 8)")
	cmd.Flags().StringVar(&opts.output, "output", "", "output format: table, json or ndjson (default from config)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "plain text table, no colors or interaction")

	return cmd
}

func runList(cmd *cobra.Command, opts listOptions) error {
	ctx := cmd.Context()

	if !cmd.Flags().Changed("page-size") {
		opts.view.PageSize = config.GetPageSize()
	}
	view, err := BuildViewState(ctx, opts.view)
	if err != nil {
		return err
	}

	format, err := engine.ParseOutputFormat(config.GetOutputFormat(opts.output))
	if err != nil {
		return &UsageError{Err: err}
	}

	files := opts.data
	if len(files) == 0 {
		files = config.GetDataFiles()
	}
	fetch := func(ctx context.Context) ([]roster.Record, error) {
		return ingest.LoadAll(ctx, files)
	}

	// Structured formats bypass the TUI completely.
	if format == engine.OutputJSON || format == engine.OutputNDJSON {
		return renderDerived(ctx, cmd.OutOrStdout(), fetch, view, format)
	}

	mode := tui.DetectOutputMode(opts.plain)
	logger.Debug().Ctx(ctx).Str("output_mode", mode.String()).Msg("rendering employees")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractiveTUI(ctx, fetch, view)
	case tui.OutputModeStyled:
		return renderStyledOutput(ctx, cmd.OutOrStdout(), fetch, view)
	case tui.OutputModePlain:
		return renderDerived(ctx, cmd.OutOrStdout(), fetch, view, engine.OutputTable)
	default:
		return renderDerived(ctx, cmd.OutOrStdout(), fetch, view, engine.OutputTable)
	}
}

// deriveFrom loads the records and runs the pipeline once.
func deriveFrom(ctx context.Context, fetch tui.RecordFetcher, view engine.ViewState) (engine.Result, error) {
	records, err := fetch(ctx)
	if err != nil {
		return engine.Result{}, fmt.Errorf("loading employees: %w", err)
	}
	result := engine.Derive(records, view)

	logger.Debug().Ctx(ctx).
		Str("operation", "derive").
		Int("records", len(records)).
		Int("matching", result.TotalFilteredCount).
		Int("visible", len(result.Visible)).
		Msg("derived page")
	return result, nil
}

func renderDerived(
	ctx context.Context,
	w io.Writer,
	fetch tui.RecordFetcher,
	view engine.ViewState,
	format engine.OutputFormat,
) error {
	result, err := deriveFrom(ctx, fetch, view)
	if err != nil {
		return err
	}
	return engine.RenderResults(w, format, result, view)
}

// renderStyledOutput renders the lipgloss table for a terminal that cannot be
// driven interactively.
func renderStyledOutput(ctx context.Context, w io.Writer, fetch tui.RecordFetcher, view engine.ViewState) error {
	result, err := deriveFrom(ctx, fetch, view)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, tui.RenderEmployeeTable(result, view, tui.TerminalWidth()))
	return err
}

func runInteractiveTUI(ctx context.Context, fetch tui.RecordFetcher, view engine.ViewState) error {
	// Console logging would draw over the table.
	if logToTerminal {
		ctx = zerolog.Nop().WithContext(ctx)
	}

	p := tea.NewProgram(tui.NewEmployeeModelWithLoading(ctx, fetch, view), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	if m, ok := final.(tui.EmployeeModel); ok && m.Err() != nil {
		return fmt.Errorf("loading employees: %w", m.Err())
	}
	return nil
}
