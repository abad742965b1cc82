package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/charchat/internal/chat"
)

// Layer ids used for hit testing the menu overlay.
const (
	menuLayerID       = "menu"
	menuItemLayerID   = "menu:"
	menuItemWidth     = 14
	menuBorderPadding = 1
)

// ActionMenu renders the copy/edit/delete popover and maps clicks to
// actions.
type ActionMenu struct {
	cursor  int
	pending bool
}

// NewActionMenu creates a menu with the cursor on the first action
func NewActionMenu() *ActionMenu {
	return &ActionMenu{}
}

// Reset moves the cursor back to the first action.
func (m *ActionMenu) Reset() {
	m.cursor = 0
	m.pending = false
}

// SetPending marks a copy as in flight.
func (m *ActionMenu) SetPending(pending bool) {
	m.pending = pending
}

// Cursor returns the highlighted action
func (m *ActionMenu) Cursor() chat.MenuAction {
	return chat.MenuActions[m.cursor]
}

// MoveCursor moves the highlight by delta, clamped to the menu.
func (m *ActionMenu) MoveCursor(delta int) {
	m.cursor = max(0, min(m.cursor+delta, len(chat.MenuActions)-1))
}

// ActionForKey returns the action bound to a shortcut key.
func ActionForKey(key string) (chat.MenuAction, bool) {
	for _, a := range chat.MenuActions {
		if a.Key() == key {
			return a, true
		}
	}
	return 0, false
}

func (m *ActionMenu) renderItem(i int, a chat.MenuAction) string {
	label := a.String()
	if a == chat.ActionCopy && m.pending {
		label = "Copying…"
	}
	style := MenuItemStyle
	switch {
	case a == chat.ActionCopy && m.pending:
		style = MenuPendingStyle
	case a.Destructive():
		style = MenuDestructiveStyle
	}
	if i == m.cursor && !m.pending {
		style = style.Reverse(true).Bold(true)
	}
	key := a.Key() + "  "
	return style.Width(menuItemWidth).Render(key + label)
}

// View renders the menu box
func (m *ActionMenu) View() string {
	var rows []string
	for i, a := range chat.MenuActions {
		rows = append(rows, m.renderItem(i, a))
	}
	return MenuStyle.Render(strings.Join(rows, "\n"))
}

// Size returns the rendered width and height of the menu.
func (m *ActionMenu) Size() (int, int) {
	v := m.View()
	return lipgloss.Width(v), lipgloss.Height(v)
}

// Place keeps the menu box on a screen of the given size when drawn at
// anchor.
func (m *ActionMenu) Place(anchor chat.Point, screenW, screenH int) chat.Point {
	w, h := m.Size()
	return chat.Point{
		X: max(0, min(anchor.X, screenW-w)),
		Y: max(0, min(anchor.Y, screenH-h)),
	}
}

// Layer returns the menu as a layer at pos with one child layer per
// action for hit testing.
func (m *ActionMenu) Layer(pos chat.Point) *lipgloss.Layer {
	layer := lipgloss.NewLayer(m.View()).X(pos.X).Y(pos.Y).Z(2).ID(menuLayerID)
	for i, a := range chat.MenuActions {
		item := lipgloss.NewLayer(m.renderItem(i, a)).
			X(menuBorderPadding).
			Y(menuBorderPadding + i).
			Z(3).
			ID(menuItemLayerID + a.Key())
		layer.AddLayers(item)
	}
	return layer
}

// actionForLayer maps a hit layer id back to its action.
func actionForLayer(id string) (chat.MenuAction, bool) {
	if !strings.HasPrefix(id, menuItemLayerID) {
		return 0, false
	}
	return ActionForKey(strings.TrimPrefix(id, menuItemLayerID))
}
