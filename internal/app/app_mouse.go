package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/charchat/internal/ui"
)

// routeMouseEvent sends a mouse event to the tab bar or the active screen.
// Screens sit at the top of the terminal, so their coordinates need no
// adjustment.
func (m *Model) routeMouseEvent(msg tea.Msg) tea.Cmd {
	if m.modal.IsVisible() {
		return nil
	}

	_, _, content := ui.GetViewContext().Size()

	if click, ok := msg.(tea.MouseClickMsg); ok {
		mouse := click.Mouse()
		if mouse.Y == content {
			if mouse.Button == tea.MouseLeft {
				if tab, ok := m.tabbar.TabAt(mouse.X); ok {
					m.switchTab(tab)
				}
			}
			return nil
		}
		if mouse.Y > content {
			// Footer
			return nil
		}
	}

	switch m.tabbar.Active() {
	case ui.TabHome:
		return m.updateFeed(msg)
	case ui.TabMessages:
		// Releases go to the chat wherever they land so a held press ends
		return m.updateChat(msg)
	}
	return nil
}
