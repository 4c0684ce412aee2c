// Package listview provides a small cursor list for Bubble Tea forms.
//
// A CursorList holds a fixed set of items and a selected index. Up/down and
// tab/shift+tab move the cursor with wrap-around, and View renders each item
// through a caller-supplied RenderFunc. The employee edit form uses it to
// move between fields.
package listview
