package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders an item. The selected parameter reports whether the
// cursor is on this item.
type RenderFunc[T any] func(item T, selected bool) string

// CursorList is a wrap-around cursor over a fixed list of items.
type CursorList[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	selected   int
}

// NewCursorList creates a list with the cursor on the first item.
func NewCursorList[T any](items []T, renderFunc RenderFunc[T]) *CursorList[T] {
	return &CursorList[T]{items: items, renderFunc: renderFunc}
}

// Init implements tea.Model.
func (m *CursorList[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on navigation keys and ignores everything else.
func (m *CursorList[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.HandleKey(keyMsg)
	return m, nil
}

// HandleKey moves the cursor for up/down/tab/shift+tab/home/end and reports
// whether the key was consumed.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *CursorList[T]) HandleKey(msg tea.KeyMsg) bool {
	if len(m.items) == 0 {
		return false
	}
	switch msg.Type {
	case tea.KeyUp, tea.KeyShiftTab:
		m.Move(-1)
	case tea.KeyDown, tea.KeyTab:
		m.Move(1)
	case tea.KeyHome:
		m.selected = 0
	case tea.KeyEnd:
		m.selected = len(m.items) - 1
	default:
		return false
	}
	return true
}

// Move shifts the cursor by delta, wrapping at both ends.
func (m *CursorList[T]) Move(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// View renders every item, one per line.
func (m *CursorList[T]) View() string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		lines = append(lines, m.renderFunc(item, i == m.selected))
	}
	return strings.Join(lines, "\n")
}

// ItemCount returns the number of items.
func (m *CursorList[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the cursor index.
func (m *CursorList[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor to index, clamped to the list bounds.
func (m *CursorList[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
}

// SelectedItem returns the item under the cursor, or nil for an empty list.
func (m *CursorList[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
