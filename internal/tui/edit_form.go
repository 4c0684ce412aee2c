package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/empdash/internal/roster"
	listview "github.com/rshade/empdash/internal/tui/list"
)

// editField identifies one row of the edit form.
type editField int

const (
	fieldFirstName editField = iota
	fieldLastName
	fieldEmail
	fieldGender
	fieldSalary
	numEditFields
)

func (f editField) label() string {
	switch f {
	case fieldFirstName:
		return "First name"
	case fieldLastName:
		return "Last name"
	case fieldEmail:
		return "Email"
	case fieldGender:
		return "Gender"
	case fieldSalary:
		return "Salary"
	default:
		return ""
	}
}

// EditForm edits one record. Text fields use text inputs; gender toggles
// between the two valid values so it can never hold anything else.
type EditForm struct {
	original roster.Record
	fields   *listview.CursorList[editField]
	inputs   [numEditFields]textinput.Model
	gender   roster.Gender
	err      error
}

// NewEditForm creates a form prefilled from rec with the cursor on the first name.
func NewEditForm(rec roster.Record) *EditForm {
	f := &EditForm{original: rec, gender: rec.Gender}

	values := [numEditFields]string{
		fieldFirstName: rec.FirstName,
		fieldLastName:  rec.LastName,
		fieldEmail:     rec.Email,
		fieldSalary:    strconv.FormatFloat(rec.Salary, 'f', -1, 64),
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = editInputCharLimit
		ti.Width = editInputWidth
		ti.Prompt = ""
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}

	order := make([]editField, 0, numEditFields)
	for field := fieldFirstName; field < numEditFields; field++ {
		order = append(order, field)
	}
	f.fields = listview.NewCursorList(order, f.renderField)
	f.focusSelected()
	return f
}

// RecordID returns the id of the record being edited.
func (f *EditForm) RecordID() roster.ID {
	return f.original.ID
}

// Err returns the last validation error, if any.
func (f *EditForm) Err() error {
	return f.err
}

// SetErr records a validation error to show under the form.
func (f *EditForm) SetErr(err error) {
	f.err = err
}

func (f *EditForm) current() editField {
	if item := f.fields.SelectedItem(); item != nil {
		return *item
	}
	return fieldFirstName
}

func (f *EditForm) focusSelected() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if field := f.current(); field != fieldGender {
		f.inputs[field].Focus()
	}
}

// Update routes a key to field navigation, the gender toggle or the focused
// text input. Enter and Esc are handled by the owning model.
func (f *EditForm) Update(msg tea.KeyMsg) tea.Cmd {
	if f.fields.HandleKey(msg) {
		f.focusSelected()
		return nil
	}

	field := f.current()
	if field == fieldGender {
		switch msg.String() {
		case keySpace, keyLeft, keyRight:
			f.gender = f.gender.Next()
			f.err = nil
		}
		return nil
	}

	var cmd tea.Cmd
	f.inputs[field], cmd = f.inputs[field].Update(msg)
	if field == fieldSalary {
		f.err = nil
	}
	return cmd
}

// Updates returns the typed updates for the fields that changed. A salary that
// does not parse is reported as roster.ErrInvalidSalary and no updates are
// returned.
func (f *EditForm) Updates() ([]roster.Update, error) {
	var updates []roster.Update

	if v := f.inputs[fieldFirstName].Value(); v != f.original.FirstName {
		updates = append(updates, roster.UpdateFirstName{Value: v})
	}
	if v := f.inputs[fieldLastName].Value(); v != f.original.LastName {
		updates = append(updates, roster.UpdateLastName{Value: v})
	}
	if v := f.inputs[fieldEmail].Value(); v != f.original.Email {
		updates = append(updates, roster.UpdateEmail{Value: v})
	}
	if f.gender != f.original.Gender {
		updates = append(updates, roster.UpdateGender{Value: f.gender})
	}

	salary, err := roster.UpdateSalaryText(f.inputs[fieldSalary].Value())
	if err != nil {
		return nil, err
	}
	if salary.Value != f.original.Salary {
		updates = append(updates, salary)
	}
	return updates, nil
}

// View renders the form.
func (f *EditForm) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("EDIT EMPLOYEE " + strconv.Itoa(int(f.original.ID))))
	b.WriteString("\n\n")
	b.WriteString(f.fields.View())
	b.WriteString("\n")
	if f.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(f.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(SubtleStyle.Render("\ntab/↑↓ field · space toggles gender · enter save · esc cancel"))
	return b.String()
}

func (f *EditForm) renderField(field editField, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	label := LabelStyle.Render(padRight(field.label()+":", 12)) //nolint:mnd // Label column width.

	var value string
	if field == fieldGender {
		value = ValueStyle.Render("‹ " + string(f.gender) + " ›")
	} else {
		value = f.inputs[field].View()
	}
	return cursor + label + value
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
