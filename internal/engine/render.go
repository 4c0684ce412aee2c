package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/rshade/empdash/internal/roster"
)

// OutputFormat selects how RenderResults writes a Result.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// Column widths for plain table output.
const (
	colWidthName  = 20
	colWidthEmail = 32
)

// truncateMinLen is the minimum truncation length below which no ellipsis is added.
const truncateMinLen = 3

// ParseOutputFormat validates an output format string.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputTable, OutputJSON, OutputNDJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// RenderResults writes the result in the requested format.
func RenderResults(w io.Writer, format OutputFormat, result Result, state ViewState) error {
	switch format {
	case OutputTable:
		return RenderTable(w, result, state)
	case OutputJSON:
		return RenderJSON(w, result, state)
	case OutputNDJSON:
		return RenderNDJSON(w, result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderTable writes the visible page as an aligned text table followed by the
// page indicator and previous/next availability.
func RenderTable(w io.Writer, result Result, state ViewState) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "ID\tFIRST NAME\tLAST NAME\tEMAIL\tGENDER\tSALARY %s\n", state.Sort.Glyph()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--\t----------\t---------\t-----\t------\t--------\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, rec := range result.Visible {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			strconv.Itoa(int(rec.ID)),
			truncate(rec.FirstName, colWidthName),
			truncate(rec.LastName, colWidthName),
			truncate(rec.Email, colWidthEmail),
			rec.Gender,
			FormatSalary(rec.Salary),
		); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if len(result.Visible) == 0 {
		if _, err := fmt.Fprintln(w, "No employees match the current filters."); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s  (%d matching, gender: %s, sort: %s)  [prev: %s] [next: %s]\n",
		PageIndicator(result),
		result.TotalFilteredCount,
		state.Gender.Label(),
		state.Sort,
		enabledLabel(result.Meta.HasPrevious),
		enabledLabel(result.Meta.HasNext),
	)
	return err
}

// JSONOutput is the top-level JSON output structure.
type JSONOutput struct {
	View ViewState `json:"view"`
	Result
}

// RenderJSON writes the result and the view state as one indented JSON object.
func RenderJSON(w io.Writer, result Result, state ViewState) error {
	// Initialize to empty slice so JSON produces [] instead of null.
	if result.Visible == nil {
		result.Visible = []roster.Record{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(JSONOutput{View: state, Result: result}); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// RenderNDJSON writes one JSON line per visible record with no wrapper.
func RenderNDJSON(w io.Writer, result Result) error {
	for _, rec := range result.Visible {
		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
		if _, err = fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	return nil
}

func enabledLabel(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= truncateMinLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
