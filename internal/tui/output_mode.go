package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results reach the terminal.
type OutputMode int

const (
	// OutputModePlain writes uncolored text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes the lipgloss-styled table without interaction.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name used in logs.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// envPlain forces plain output when set to any non-empty value.
const envPlain = "EMPDASH_PLAIN"

// DetectOutputMode picks the output mode. forcePlain (the --plain flag),
// EMPDASH_PLAIN, NO_COLOR, CI and TERM=dumb all force plain text; a terminal on
// both stdin and stdout is interactive; stdout alone gets the styled table.
func DetectOutputMode(forcePlain bool) OutputMode {
	if forcePlain || os.Getenv(envPlain) != "" || os.Getenv("NO_COLOR") != "" ||
		os.Getenv("CI") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return OutputModePlain
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// TerminalWidth returns the stdout width, or defaultWidth when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
