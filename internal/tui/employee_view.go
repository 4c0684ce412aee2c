package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/empdash/internal/engine"
)

const msgNoMatches = "No employees match the current filters."

// View renders the current view (Bubble Tea interface).
func (m EmployeeModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateEdit:
		return lipgloss.JoinVertical(lipgloss.Left, m.renderListView(), m.renderEditForm())
	case ViewStateConfirmDelete:
		return lipgloss.JoinVertical(lipgloss.Left, m.renderListView(), m.renderDeletePrompt())
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderListView renders the title, table, page footer and status bar.
func (m EmployeeModel) renderListView() string {
	sections := []string{m.renderTitle()}

	if len(m.result.Visible) == 0 {
		sections = append(sections, SubtleStyle.Render(msgNoMatches))
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderPageFooter(), m.renderStatusBar())

	if m.showSearch {
		sections = append(sections, LabelStyle.Render("Search: ")+m.search.View())
	}
	if m.status != "" {
		sections = append(sections, InfoStyle.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m EmployeeModel) renderTitle() string {
	title := HeaderStyle.Render("EMPLOYEES")
	summary := fmt.Sprintf("  %d of %d shown · gender: %s · sort: %s %s",
		m.result.TotalFilteredCount, m.roster.Len(),
		m.view.Gender.Label(), m.view.Sort, m.view.Sort.Glyph())
	if m.view.Query != "" {
		summary += fmt.Sprintf(" · search: %q", m.view.Query)
	}
	return title + SubtleStyle.Render(summary)
}

// renderPageFooter shows "Page P of N" between the previous and next hints,
// dimming whichever direction is unavailable.
func (m EmployeeModel) renderPageFooter() string {
	prev := hint("‹ prev (p)", m.result.Meta.HasPrevious)
	next := hint("next (n) ›", m.result.Meta.HasNext)
	return prev + "  " + ValueStyle.Render(engine.PageIndicator(m.result)) + "  " + next
}

func hint(label string, enabled bool) string {
	if enabled {
		return EnabledHintStyle.Render(label)
	}
	return DisabledHintStyle.Render(label)
}

func (m EmployeeModel) renderStatusBar() string {
	return SubtleStyle.Render("/ search · g gender · s sort · e edit · d delete · q quit")
}

func (m EmployeeModel) renderEditForm() string {
	if m.form == nil {
		return ""
	}
	return BoxStyle.Width(m.width - borderPadding).Render(m.form.View())
}

func (m EmployeeModel) renderDeletePrompt() string {
	rec := m.pendingDelete
	prompt := fmt.Sprintf("Delete %s (id %d)? y to confirm, any other key cancels", rec.FullName(), rec.ID)
	return WarningStyle.Render(prompt)
}
