package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorHeader   = lipgloss.Color("63")
	colorLabel    = lipgloss.Color("245")
	colorValue    = lipgloss.Color("252")
	colorSubtle   = lipgloss.Color("241")
	colorInfo     = lipgloss.Color("39")
	colorError    = lipgloss.Color("196")
	colorWarning  = lipgloss.Color("214")
	colorSelected = lipgloss.Color("229")
	colorSelectBg = lipgloss.Color("57")
	colorBorder   = lipgloss.Color("240")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are package-level by convention.
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	LabelStyle   = lipgloss.NewStyle().Foreground(colorLabel)
	ValueStyle   = lipgloss.NewStyle().Foreground(colorValue)
	SubtleStyle  = lipgloss.NewStyle().Foreground(colorSubtle)
	InfoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorHeader).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(colorSelected).
				Background(colorSelectBg).
				Bold(false)

	// Hint styles for the paging controls.
	EnabledHintStyle  = lipgloss.NewStyle().Foreground(colorValue)
	DisabledHintStyle = lipgloss.NewStyle().Foreground(colorSubtle).Faint(true)
)
