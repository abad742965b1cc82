package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FooterMode selects which set of bindings the footer shows.
type FooterMode int

const (
	FooterFeed FooterMode = iota
	FooterChatCompose
	FooterChatList
	FooterChatMenu
	FooterChatEdit
	FooterModal
)

var footerBindings = map[FooterMode][]KeyBinding{
	FooterFeed: {
		{Key: "j/k", Desc: "page"},
		{Key: "r", Desc: "read more"},
		{Key: "1-5", Desc: "tabs"},
		{Key: "p", Desc: "settings"},
		{Key: "q", Desc: "quit"},
	},
	FooterChatCompose: {
		{Key: "enter", Desc: "send"},
		{Key: "tab", Desc: "messages"},
		{Key: "pgup/dn", Desc: "scroll"},
		{Key: "esc", Desc: "back"},
	},
	FooterChatList: {
		{Key: "↑/↓", Desc: "select"},
		{Key: "home/end", Desc: "first/last"},
		{Key: "enter", Desc: "actions"},
		{Key: "tab", Desc: "compose"},
		{Key: "esc", Desc: "back"},
	},
	FooterChatMenu: {
		{Key: "c", Desc: "copy"},
		{Key: "e", Desc: "edit"},
		{Key: "d/del", Desc: "delete"},
		{Key: "esc", Desc: "close"},
	},
	FooterChatEdit: {
		{Key: "enter/ctrl+s", Desc: "save"},
		{Key: "shift+enter", Desc: "newline"},
	},
	FooterModal: {
		{Key: "enter", Desc: "save"},
		{Key: "esc", Desc: "cancel"},
	},
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width int
	mode  FooterMode
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetMode updates which bindings are shown
func (f *Footer) SetMode(mode FooterMode) {
	f.mode = mode
}

// Mode returns the current footer mode
func (f *Footer) Mode() FooterMode {
	return f.mode
}

// Bindings returns the bindings for the current mode
func (f *Footer) Bindings() []KeyBinding {
	return footerBindings[f.mode]
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.Bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")
	return FooterStyle.Width(f.width).MaxHeight(FooterHeight).Render(content)
}
