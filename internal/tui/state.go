package tui

// ViewState is the screen the employee model is showing.
type ViewState int

const (
	// ViewStateLoading shows the spinner while records load.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the paged employee table.
	ViewStateList
	// ViewStateEdit shows the edit form for one record.
	ViewStateEdit
	// ViewStateConfirmDelete asks before removing the selected record.
	ViewStateConfirmDelete
	// ViewStateQuitting is the terminal state after 'q'.
	ViewStateQuitting
	// ViewStateError shows a load failure.
	ViewStateError
)

// String returns the state name used in logs.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateEdit:
		return "edit"
	case ViewStateConfirmDelete:
		return "confirm_delete"
	case ViewStateQuitting:
		return "quitting"
	case ViewStateError:
		return "error"
	default:
		return "unknown"
	}
}

// Key bindings.
const (
	keyQuit   = "q"
	keyCtrlC  = "ctrl+c"
	keyEnter  = "enter"
	keyEsc    = "esc"
	keySlash  = "/"
	keyS      = "s"
	keyG      = "g"
	keyE      = "e"
	keyD      = "d"
	keyY      = "y"
	keyN      = "n"
	keyP      = "p"
	keyRight  = "right"
	keyLeft   = "left"
	keyPgUp   = "pgup"
	keyPgDown = "pgdown"
	keyTab    = "tab"
	keyShTab  = "shift+tab"
	keyUp     = "up"
	keyDown   = "down"
	keySpace  = " "
)

// Layout defaults.
const (
	defaultWidth  = 100
	defaultHeight = 24
	minHeight     = 3
	borderPadding = 2

	filterInputCharLimit = 64
	filterInputWidth     = 30
	editInputCharLimit   = 128
	editInputWidth       = 40
)
