package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/charchat/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterContext()

	width, _, content := ui.GetViewContext().Size()

	var screen string
	switch {
	case m.modal.IsVisible():
		// Modal replaces the screen while visible
		screen = m.modal.View(width, content)
	case m.tabbar.Active() == ui.TabMessages:
		screen = m.chat.View()
	default:
		screen = m.feed.View()
	}

	screen = lipgloss.NewStyle().Height(content).MaxHeight(content).Render(screen)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		screen,
		m.tabbar.View(),
		m.footer.View(),
	)
}

// updateFooterContext picks the footer bindings for the current state
func (m *Model) updateFooterContext() {
	switch {
	case m.modal.IsVisible():
		m.footer.SetMode(ui.FooterModal)
	case m.tabbar.Active() == ui.TabMessages:
		m.footer.SetMode(m.chat.FooterMode())
	default:
		m.footer.SetMode(ui.FooterFeed)
	}
}
