package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/charchat/internal/chat"
	"github.com/zhubert/charchat/internal/keys"
	"github.com/zhubert/charchat/internal/logger"
	"github.com/zhubert/charchat/internal/toast"
	"github.com/zhubert/charchat/internal/ui"
	"github.com/zhubert/charchat/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.FocusMsg:
		m.windowFocused = true
		logger.Log("App: Window focused")
		return m, nil

	case tea.BlurMsg:
		m.windowFocused = false
		logger.Log("App: Window blurred")
		return m, nil

	case NavigateMsg:
		m.switchTab(msg.Tab)
		return m, nil

	case HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case tea.MouseClickMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.routeMouseEvent(msg)

	// Chat results arrive whichever tab is showing
	case chat.CopyResultMsg, toast.ExpiredMsg, ui.LongPressMsg:
		return m, m.updateChat(msg)
	}

	// Cursor blink and other component internals
	if m.modal.IsVisible() {
		return m, m.modal.Update(msg)
	}
	if m.tabbar.Active() == ui.TabMessages {
		return m, m.updateChat(msg)
	}
	return m, nil
}

func (m *Model) updateChat(msg tea.Msg) tea.Cmd {
	c, cmd := m.chat.Update(msg)
	m.chat = c
	return cmd
}

func (m *Model) updateFeed(msg tea.Msg) tea.Cmd {
	f, cmd := m.feed.Update(msg)
	m.feed = f
	return cmd
}

// handleKeyPress handles keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Log("App: KeyPressMsg received: key=%q, tab=%s, modalVisible=%v", key, m.tabbar.Active(), m.modal.IsVisible())

	// Handle ctrl+c specially - always quits
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(key, msg)
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	switch m.tabbar.Active() {
	case ui.TabHome:
		return m, m.updateFeed(msg)
	case ui.TabMessages:
		return m, m.updateChat(msg)
	}
	return m, nil
}

// handleModalKey routes keys to the visible modal.
func (m *Model) handleModalKey(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch state := m.modal.State.(type) {
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, state)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, state)
	}
	if key == keys.Escape {
		m.modal.Hide()
		return m, nil
	}
	return m, m.modal.Update(msg)
}

// handleSettingsModal handles key events for the Settings modal.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.config.SetUserName(state.GetUserName())
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())
		if state.ThemeChanged() {
			ui.SetThemeByName(state.GetSelectedTheme())
			m.config.SetTheme(state.GetSelectedTheme())
			m.chat.RefreshStyles()
		}
		m.feed.SetUserName(m.config.GetUserName())
		if err := m.config.Save(); err != nil {
			m.log.Error("failed to save settings", "error", err)
			m.modal.SetError("Failed to save: " + err.Error())
			return m, nil
		}
		m.log.Info("settings saved",
			"theme", m.config.GetTheme(),
			"notifications", m.config.GetNotificationsEnabled(),
		)
		m.modal.Hide()
		return m, nil
	}
	// Forward other keys to modal for text input handling
	return m, m.modal.Update(msg)
}

// handleHelpModal handles key events for the help modal. Enter on a
// shortcut closes the modal and runs it.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	if state.IsFiltering() {
		return m, m.modal.Update(msg)
	}
	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.SelectedShortcut()
		m.modal.Hide()
		if shortcut == nil {
			return m, nil
		}
		return m, func() tea.Msg {
			return HelpShortcutTriggeredMsg{Key: shortcut.Key}
		}
	}
	return m, m.modal.Update(msg)
}

// handleHelpShortcutTrigger runs a shortcut picked from the help modal.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	s, ok := shortcutForDisplayKey(key)
	if !ok {
		return m, nil // Display-only shortcut, no action
	}
	result, cmd, _ := m.ExecuteShortcut(s.Key)
	return result, cmd
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)
	width, _, content := ctx.Size()

	m.tabbar.SetWidth(width)
	m.footer.SetWidth(width)
	m.feed.SetSize(width, content)
	m.chat.SetSize(width, content)
}
