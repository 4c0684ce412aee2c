package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/empdash/internal/engine"
	"github.com/rshade/empdash/internal/logging"
	"github.com/rshade/empdash/internal/roster"
)

// Table column widths.
const (
	colWidthID     = 5
	colWidthFirst  = 14
	colWidthLast   = 14
	colWidthEmail  = 30
	colWidthGender = 8
	colWidthSalary = 12

	// chromeHeight is the number of lines around the table (title, footer, help, input).
	chromeHeight = 7
)

// RecordFetcher loads the initial records. The fetcher should honor ctx cancellation.
type RecordFetcher func(ctx context.Context) ([]roster.Record, error)

// employeesLoadedMsg carries the fetcher result.
type employeesLoadedMsg struct {
	records []roster.Record
	err     error
}

// EmployeeModel is the Bubble Tea model for the interactive employee table.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type EmployeeModel struct {
	state  ViewState
	ctx    context.Context
	roster *roster.Roster
	view   engine.ViewState
	result engine.Result

	// Interactive components
	table      table.Model
	search     textinput.Model
	showSearch bool
	form       *EditForm

	// Delete confirmation target
	pendingDelete roster.Record

	width  int
	height int

	// Status line shown under the table after an action.
	status string

	loading  *LoadingState
	fetchCmd tea.Cmd

	err error
}

// NewEmployeeModel creates a model over an already-loaded roster.
func NewEmployeeModel(ctx context.Context, r *roster.Roster, view engine.ViewState) EmployeeModel {
	m := EmployeeModel{
		state:  ViewStateList,
		ctx:    ctx,
		roster: r,
		view:   view,
		search: newSearchInput(view.Query),
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.recompute()
	return m
}

// NewEmployeeModelWithLoading creates a model that shows a spinner until fetcher returns.
func NewEmployeeModelWithLoading(ctx context.Context, fetcher RecordFetcher, view engine.ViewState) EmployeeModel {
	return EmployeeModel{
		state:   ViewStateLoading,
		ctx:     ctx,
		roster:  roster.New(nil),
		view:    view,
		search:  newSearchInput(view.Query),
		width:   defaultWidth,
		height:  defaultHeight,
		loading: NewLoadingState(),
		fetchCmd: func() tea.Msg {
			records, err := fetcher(ctx)
			return employeesLoadedMsg{records: records, err: err}
		},
	}
}

func newSearchInput(query string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search first or last name..."
	ti.CharLimit = filterInputCharLimit
	ti.Width = filterInputWidth
	ti.SetValue(query)
	return ti
}

// Init initializes the model (Bubble Tea interface).
func (m EmployeeModel) Init() tea.Cmd {
	if m.state == ViewStateLoading && m.loading != nil {
		return tea.Batch(m.loading.Init(), m.fetchCmd)
	}
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m EmployeeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	if loadedMsg, ok := msg.(employeesLoadedMsg); ok {
		return m.handleLoaded(loadedMsg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == keyCtrlC {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	if m.showSearch {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		if m.loading == nil {
			return m, nil
		}
		return m, m.loading.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateEdit:
		return m.handleEditUpdate(msg)
	case ViewStateConfirmDelete:
		return m.handleConfirmDelete(msg)
	case ViewStateQuitting, ViewStateError:
		return m, nil
	default:
		return m, nil
	}
}

func (m EmployeeModel) handleLoaded(msg employeesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.state = ViewStateError
		return m, tea.Quit
	}
	m.roster = roster.New(msg.records)
	m.state = ViewStateList
	m.recompute()

	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Int("record_count", m.roster.Len()).
		Msg("employees loaded")
	return m, nil
}

func (m EmployeeModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyEnter, keyEsc:
			m.showSearch = false
			m.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.view.Query {
		m.view = m.view.WithQuery(q)
		m.recompute()
	}
	return m, cmd
}

func (m EmployeeModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m.handleListKeypress(keyMsg)
}

func (m EmployeeModel) handleListKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case keyQuit:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.showSearch = true
		m.status = ""
		m.search.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.view.Query != "" {
			m.search.SetValue("")
			m.view = m.view.WithQuery("")
			m.recompute()
		}
		return m, nil
	case keyG:
		m.view = m.view.CycleGender()
		m.recompute()
		return m, nil
	case keyS:
		m.view = m.view.AdvanceSort()
		m.recompute()
		return m, nil
	case keyN, keyRight, keyPgDown:
		m.view = m.view.NextPage(m.result.TotalFilteredCount)
		m.recompute()
		return m, nil
	case keyP, keyLeft, keyPgUp:
		m.view = m.view.PrevPage()
		m.recompute()
		return m, nil
	case keyE, keyEnter:
		if rec, ok := m.selectedRecord(); ok {
			m.form = NewEditForm(rec)
			m.state = ViewStateEdit
			m.status = ""
			return m, textinput.Blink
		}
		return m, nil
	case keyD:
		if rec, ok := m.selectedRecord(); ok {
			m.pendingDelete = rec
			m.state = ViewStateConfirmDelete
			m.status = ""
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

func (m EmployeeModel) handleEditUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.form == nil {
		return m, nil
	}

	switch keyMsg.String() {
	case keyEsc:
		m.form = nil
		m.state = ViewStateList
		m.status = "Edit cancelled"
		return m, nil
	case keyEnter:
		return m.saveEdit()
	default:
		return m, m.form.Update(keyMsg)
	}
}

// saveEdit applies the form's updates. A rejected update keeps the form open
// with the error shown and leaves the record unchanged.
func (m EmployeeModel) saveEdit() (tea.Model, tea.Cmd) {
	log := logging.FromContext(m.ctx)
	id := m.form.RecordID()

	updates, err := m.form.Updates()
	if err != nil {
		m.form.SetErr(err)
		log.Debug().
			Ctx(m.ctx).
			Str("component", "tui").
			Str("operation", "edit").
			Int("id", int(id)).
			Err(err).
			Msg("edit rejected")
		return m, nil
	}

	if err = m.roster.ApplyAll(id, updates...); err != nil {
		m.form.SetErr(err)
		log.Warn().
			Ctx(m.ctx).
			Str("component", "tui").
			Str("operation", "edit").
			Int("id", int(id)).
			Err(err).
			Msg("update failed")
		return m, nil
	}

	log.Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "edit").
		Int("id", int(id)).
		Int("changed_fields", len(updates)).
		Msg("record updated")

	m.form = nil
	m.state = ViewStateList
	if len(updates) == 0 {
		m.status = "No changes"
	} else {
		m.status = fmt.Sprintf("Saved employee %d", id)
	}
	m.recompute()
	return m, nil
}

func (m EmployeeModel) handleConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.state = ViewStateList
	if keyMsg.String() != keyY {
		m.status = "Delete cancelled"
		return m, nil
	}

	id := m.pendingDelete.ID
	deleted := m.roster.Delete(id)
	logging.FromContext(m.ctx).Debug().
		Ctx(m.ctx).
		Str("component", "tui").
		Str("operation", "delete").
		Int("id", int(id)).
		Bool("deleted", deleted).
		Msg("delete requested")

	if deleted {
		m.status = fmt.Sprintf("Deleted %s", m.pendingDelete.FullName())
	}
	m.pendingDelete = roster.Record{}

	// The current page may now be past the end of the filtered set.
	m.recompute()
	m.view = m.view.ClampPage(m.result.TotalFilteredCount)
	m.recompute()
	return m, nil
}

// selectedRecord returns the record under the table cursor on the visible page.
func (m EmployeeModel) selectedRecord() (roster.Record, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.result.Visible) {
		return roster.Record{}, false
	}
	return m.result.Visible[cursor], true
}

// recompute re-runs the derivation over the whole roster and rebuilds the table.
func (m *EmployeeModel) recompute() {
	m.result = engine.Derive(m.roster.Records(), m.view)
	m.rebuildTable()
}

// rebuildTable reconstructs the table for the current page, keeping the cursor
// when it is still in range.
func (m *EmployeeModel) rebuildTable() {
	cursor := m.table.Cursor()
	m.table = m.buildEmployeeTable()
	if n := len(m.result.Visible); n > 0 {
		m.table.SetCursor(min(max(cursor, 0), n-1))
	}
}

func (m *EmployeeModel) buildEmployeeTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: colWidthID},
		{Title: "First Name", Width: colWidthFirst},
		{Title: "Last Name", Width: colWidthLast},
		{Title: "Email", Width: colWidthEmail},
		{Title: "Gender", Width: colWidthGender},
		{Title: "Salary " + m.view.Sort.Glyph(), Width: colWidthSalary},
	}

	rows := make([]table.Row, len(m.result.Visible))
	for i, rec := range m.result.Visible {
		rows[i] = table.Row{
			strconv.Itoa(int(rec.ID)),
			rec.FirstName,
			rec.LastName,
			rec.Email,
			string(rec.Gender),
			engine.FormatSalary(rec.Salary),
		}
	}

	// One line for the header row plus one per record on a full page.
	height := min(m.view.Params().PageSize+1, m.height-chromeHeight)
	if height < minHeight {
		height = minHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// Records returns a copy of the roster after any edits and deletes.
func (m EmployeeModel) Records() []roster.Record {
	return m.roster.Records()
}

// Err returns the load error, if loading failed.
func (m EmployeeModel) Err() error {
	return m.err
}
