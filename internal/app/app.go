package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/chat"
	"github.com/zhubert/charchat/internal/config"
	"github.com/zhubert/charchat/internal/logger"
	"github.com/zhubert/charchat/internal/notification"
	"github.com/zhubert/charchat/internal/toast"
	"github.com/zhubert/charchat/internal/ui"
	"github.com/zhubert/charchat/internal/ui/modals"
)

// NavigateMsg asks the root model to switch tabs.
type NavigateMsg struct {
	Tab ui.Tab
}

// HelpShortcutTriggeredMsg is sent when a shortcut is picked in the help modal.
type HelpShortcutTriggeredMsg struct {
	Key string
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	catalog *catalog.Catalog
	version string

	tabbar *ui.TabBar
	footer *ui.Footer
	feed   *ui.Feed
	chat   *ui.Chat
	modal  *modals.Modal

	width         int
	height        int
	windowFocused bool

	chatOpts []chat.Option
	notify   func(toast.Toast) error

	log *slog.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithChatOptions passes extra options to the chat controller, after the
// defaults.
func WithChatOptions(opts ...chat.Option) Option {
	return func(m *Model) { m.chatOpts = append(m.chatOpts, opts...) }
}

// WithNotifier replaces the desktop notification backend for mirrored toasts.
func WithNotifier(fn func(toast.Toast) error) Option {
	return func(m *Model) { m.notify = fn }
}

// New creates the root model. The chat screen talks to the character chosen
// by the config, seeded with the catalog's history.
func New(cfg *config.Config, cat *catalog.Catalog, version string, opts ...Option) *Model {
	m := &Model{
		config:        cfg,
		catalog:       cat,
		version:       version,
		tabbar:        ui.NewTabBar(),
		footer:        ui.NewFooter(),
		modal:         modals.NewModal(),
		windowFocused: true,
		notify:        notification.Toast,
		log:           logger.WithComponent("app"),
	}
	for _, opt := range opts {
		opt(m)
	}

	ui.SetThemeByName(cfg.GetTheme())

	partner := cat.ChatPartner(cfg.GetChatCharacterID())
	ctrlOpts := append([]chat.Option{
		chat.WithMenuBounds(chat.CellMenuBounds),
		chat.WithToastObserver(m.mirrorToast),
	}, m.chatOpts...)
	ctrl := chat.NewController(
		chat.MetaFor(partner),
		chat.NewStore(chat.FromSeed(cat.History)),
		ctrlOpts...,
	)

	m.chat = ui.NewChat(ctrl, navigateTo)
	m.feed = ui.NewFeed(cat.Characters, cfg.GetUserName())

	m.log.Info("app created",
		"version", version,
		"characters", len(cat.Characters),
		"partner", partner.ID,
	)
	return m
}

// navigateTo is handed to screens that may leave themselves.
func navigateTo(tab ui.Tab) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Tab: tab}
	}
}

// Init returns the initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Chat returns the chat screen.
func (m *Model) Chat() *ui.Chat {
	return m.chat
}

// Feed returns the feed screen.
func (m *Model) Feed() *ui.Feed {
	return m.feed
}

// ActiveTab returns the selected tab.
func (m *Model) ActiveTab() ui.Tab {
	return m.tabbar.Active()
}

// switchTab selects tab if it is enabled.
func (m *Model) switchTab(tab ui.Tab) {
	prev := m.tabbar.Active()
	if !m.tabbar.Select(tab) {
		m.log.Debug("ignoring disabled tab", "tab", tab.String())
		return
	}
	if prev != tab {
		m.log.Debug("tab switched", "from", prev.String(), "to", tab.String())
	}
}

// mirrorToast sends toasts to the desktop while the terminal is in the
// background.
func (m *Model) mirrorToast(t toast.Toast) {
	if m.windowFocused || !m.config.GetNotificationsEnabled() || m.notify == nil {
		return
	}
	notify := m.notify
	go func() {
		if err := notify(t); err != nil {
			logger.Warn("App: toast notification failed: %v", err)
		}
	}()
}
