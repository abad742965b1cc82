package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/chat"
)

const (
	backLabel   = "‹"
	headerIcons = "♡  ⋯  ↩"
)

// ChatHeader is the top bar of the chat screen: back control, avatar and
// partner name.
type ChatHeader struct {
	width int
	meta  chat.Meta
}

// NewChatHeader creates a header for the given partner
func NewChatHeader(meta chat.Meta) *ChatHeader {
	return &ChatHeader{meta: meta}
}

// SetWidth sets the header width
func (h *ChatHeader) SetWidth(width int) {
	h.width = width
}

// BackWidth is the number of columns the back control occupies.
func (h *ChatHeader) BackWidth() int {
	return lipgloss.Width(HeaderBackStyle.Render(backLabel))
}

// BackHit reports whether column x on the header row is the back control.
func (h *ChatHeader) BackHit(x int) bool {
	return x >= 0 && x < h.BackWidth()
}

// avatar renders the partner initial, linked to the avatar URL when the
// terminal supports OSC 8 hyperlinks.
func (h *ChatHeader) avatar() string {
	initial := AvatarStyle.Render(catalog.Initial(h.meta.Name))
	if h.meta.AvatarURL == "" {
		return initial
	}
	return ansi.SetHyperlink(h.meta.AvatarURL) + initial + ansi.ResetHyperlink()
}

// View renders the header
func (h *ChatHeader) View() string {
	back := HeaderBackStyle.Render(backLabel)
	avatar := h.avatar()
	icons := HeaderIconStyle.Render(headerIcons)
	gap := HeaderStyle.Render(" ")

	fixed := lipgloss.Width(back) + lipgloss.Width(avatar) + lipgloss.Width(icons) + 2*lipgloss.Width(gap)
	nameWidth := max(h.width-fixed, 1)
	name := HeaderTitleStyle.Render(runewidth.Truncate(h.meta.Name, nameWidth, "…"))

	left := back + avatar + gap + name
	pad := max(h.width-lipgloss.Width(left)-lipgloss.Width(icons), 0)
	return left + HeaderStyle.Render(strings.Repeat(" ", pad)) + icons
}
