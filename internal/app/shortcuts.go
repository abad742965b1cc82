package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/charchat/internal/keys"
	"github.com/zhubert/charchat/internal/logger"
	"github.com/zhubert/charchat/internal/ui"
	"github.com/zhubert/charchat/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for shortcuts handled by the root model.
type Shortcut struct {
	Key          string                              // The key binding (e.g., "p", "ctrl+left")
	DisplayKey   string                              // Display name in help; defaults to Key
	Description  string                              // Human-readable description
	Category     string                              // Section for help modal grouping
	RequiresFeed bool                                // Only on the Home tab, where keys are not text
	Handler      func(m *Model) (tea.Model, tea.Cmd) // Action to perform
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryNavigation = "Navigation"
	CategoryFeed       = "Feed"
	CategoryChat       = "Chat"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryNavigation,
	CategoryFeed,
	CategoryChat,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of root-level shortcuts.
// Entries appear in the help modal and can be run from it.
var ShortcutRegistry = []Shortcut{
	// Navigation
	{Key: "1", Description: "Home", Category: CategoryNavigation, RequiresFeed: true, Handler: tabShortcut(ui.TabHome)},
	{Key: "2", Description: "Search (coming soon)", Category: CategoryNavigation, RequiresFeed: true, Handler: tabShortcut(ui.TabSearch)},
	{Key: "3", Description: "Create (coming soon)", Category: CategoryNavigation, RequiresFeed: true, Handler: tabShortcut(ui.TabCreate)},
	{Key: "4", Description: "Messages", Category: CategoryNavigation, RequiresFeed: true, Handler: tabShortcut(ui.TabMessages)},
	{Key: "5", Description: "Profile (coming soon)", Category: CategoryNavigation, RequiresFeed: true, Handler: tabShortcut(ui.TabProfile)},
	{
		Key:         keys.CtrlLeft,
		DisplayKey:  "ctrl-←",
		Description: "Previous tab",
		Category:    CategoryNavigation,
		Handler:     shortcutPrevTab,
	},
	{
		Key:         keys.CtrlRight,
		DisplayKey:  "ctrl-→",
		Description: "Next tab",
		Category:    CategoryNavigation,
		Handler:     shortcutNextTab,
	},

	// General
	{
		Key:          "p",
		Description:  "Settings",
		Category:     CategoryGeneral,
		RequiresFeed: true,
		Handler:      shortcutSettings,
	},
	{
		Key:          "q",
		Description:  "Quit application",
		Category:     CategoryGeneral,
		RequiresFeed: true,
		Handler:      shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:          "?",
	Description:  "Show this help",
	Category:     CategoryGeneral,
	RequiresFeed: true,
}

// DisplayOnlyShortcuts are shown in help but handled by the screens.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "j/k", Description: "Next / previous character", Category: CategoryFeed},
	{DisplayKey: "Home/End", Description: "First / last character", Category: CategoryFeed},
	{DisplayKey: "r", Description: "Read more / show less", Category: CategoryFeed},

	{DisplayKey: "Enter", Description: "Send message", Category: CategoryChat},
	{DisplayKey: "Tab", Description: "Switch composer / message list", Category: CategoryChat},
	{DisplayKey: "↑/↓", Description: "Select message", Category: CategoryChat},
	{DisplayKey: "Home/End", Description: "First / last message", Category: CategoryChat},
	{DisplayKey: "Right click", Description: "Message actions", Category: CategoryChat},
	{DisplayKey: "Hold click", Description: "Message actions", Category: CategoryChat},
	{DisplayKey: "c/e/d", Description: "Copy / edit / delete", Category: CategoryChat},
	{DisplayKey: "Ctrl+S", Description: "Save edit", Category: CategoryChat},
	{DisplayKey: "Esc", Description: "Close menu / back to feed", Category: CategoryChat},
}

func displayKey(s Shortcut) string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	return s.Key
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresFeed && m.tabbar.Active() != ui.TabHome {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		if !m.isShortcutApplicable(helpShortcut) {
			return m, nil, false
		}
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.Log("Shortcut: Guard failed for %q on tab %s", key, m.tabbar.Active())
			return m, nil, false
		}
		logger.Log("Shortcut: Executing handler for %q", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// shortcutForDisplayKey maps a help modal row back to its registry entry.
func shortcutForDisplayKey(key string) (Shortcut, bool) {
	for _, s := range ShortcutRegistry {
		if displayKey(s) == key {
			return s, true
		}
	}
	return Shortcut{}, false
}

// getApplicableHelpSections generates help modal sections from shortcuts that are
// applicable in the current application state.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}
	for _, s := range displayOnly {
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey(s),
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{
				Title:     cat,
				Shortcuts: shortcuts,
			})
		}
	}
	return sections
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func tabShortcut(tab ui.Tab) func(m *Model) (tea.Model, tea.Cmd) {
	return func(m *Model) (tea.Model, tea.Cmd) {
		m.switchTab(tab)
		return m, nil
	}
}

func shortcutPrevTab(m *Model) (tea.Model, tea.Cmd) {
	m.switchTab(m.tabbar.Next(-1))
	return m, nil
}

func shortcutNextTab(m *Model) (tea.Model, tea.Cmd) {
	m.switchTab(m.tabbar.Next(1))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	allShortcuts := append(append([]Shortcut{}, ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpState(sections))
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	themes, labels := ui.ThemeOptions()
	m.modal.Show(modals.NewSettingsState(
		themes, labels,
		m.config.GetTheme(),
		m.config.GetUserName(),
		m.config.GetNotificationsEnabled(),
	))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}

