package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/empdash/internal/engine"
)

// RenderEmployeeTable renders one derived page as a styled, non-interactive
// table followed by the page indicator and the active knobs.
func RenderEmployeeTable(result engine.Result, state engine.ViewState, width int) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("EMPLOYEES"))
	b.WriteString("\n")

	if len(result.Visible) == 0 {
		b.WriteString(SubtleStyle.Render(msgNoMatches))
		b.WriteString("\n")
	} else {
		rows := make([][]string, 0, len(result.Visible))
		for _, rec := range result.Visible {
			rows = append(rows, []string{
				strconv.Itoa(int(rec.ID)),
				rec.FirstName,
				rec.LastName,
				rec.Email,
				string(rec.Gender),
				engine.FormatSalary(rec.Salary),
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
			Headers("ID", "FIRST NAME", "LAST NAME", "EMAIL", "GENDER", "SALARY "+state.Sort.Glyph()).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				style := lipgloss.NewStyle().Padding(0, 1)
				if row == table.HeaderRow {
					return style.Bold(true).Foreground(colorHeader)
				}
				if col == 0 || col == 5 { //nolint:mnd // ID and salary columns.
					return style.Align(lipgloss.Right)
				}
				return style
			})
		if width > 0 {
			t = t.Width(min(width, TerminalWidth()))
		}
		b.WriteString(t.String())
		b.WriteString("\n")
	}

	footer := engine.PageIndicator(result) + "  · " +
		strconv.Itoa(result.TotalFilteredCount) + " matching · gender: " + state.Gender.Label() +
		" · sort: " + string(state.Sort)
	if state.Query != "" {
		footer += " · search: " + strconv.Quote(state.Query)
	}
	b.WriteString(SubtleStyle.Render(footer))
	b.WriteString("\n")
	return b.String()
}
