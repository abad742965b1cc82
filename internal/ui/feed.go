package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/charchat/internal/catalog"
	"github.com/zhubert/charchat/internal/keys"
)

const (
	readMoreLabel = "Read More"
	showLessLabel = "Show Less"
)

// Feed pages through the character catalog one card at a time.
type Feed struct {
	characters []catalog.Character
	userName   string
	index      int
	expanded   bool
	width      int
	height     int
}

// NewFeed creates a feed over the catalog's characters
func NewFeed(characters []catalog.Character, userName string) *Feed {
	return &Feed{characters: characters, userName: userName}
}

// SetSize sets the feed dimensions
func (f *Feed) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetUserName changes the name substituted into greetings.
func (f *Feed) SetUserName(name string) {
	f.userName = name
}

// Index returns the position of the card on screen.
func (f *Feed) Index() int {
	return f.index
}

// Current returns the character on screen.
func (f *Feed) Current() (catalog.Character, bool) {
	if len(f.characters) == 0 {
		return catalog.Character{}, false
	}
	return f.characters[f.index], true
}

// Expanded reports whether the greeting is showing in full.
func (f *Feed) Expanded() bool {
	return f.expanded
}

// Page moves by delta cards and collapses the greeting.
func (f *Feed) Page(delta int) {
	if len(f.characters) == 0 {
		return
	}
	next := max(0, min(f.index+delta, len(f.characters)-1))
	if next != f.index {
		f.index = next
		f.expanded = false
	}
}

// ToggleGreeting flips Read More / Show Less. Short greetings have no toggle.
func (f *Feed) ToggleGreeting() bool {
	c, ok := f.Current()
	if !ok || !c.IsLongGreeting(f.userName) {
		return false
	}
	f.expanded = !f.expanded
	return true
}

// Update handles messages
func (f *Feed) Update(msg tea.Msg) (*Feed, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "j", keys.Down, keys.PgDown:
			f.Page(1)
		case "k", keys.Up, keys.PgUp:
			f.Page(-1)
		case keys.Home:
			f.Page(-len(f.characters))
		case keys.End:
			f.Page(len(f.characters))
		case "r":
			f.ToggleGreeting()
		}
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelDown:
			f.Page(1)
		case tea.MouseWheelUp:
			f.Page(-1)
		}
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			if _, row := f.sections(); row >= 0 && msg.Y == row {
				f.ToggleGreeting()
			}
		}
	}
	return f, nil
}

// avatar renders the character initial linked to the profile picture.
func (f *Feed) avatar(c catalog.Character) string {
	initial := AvatarStyle.Render(c.Initial())
	if c.ProfilePicURL == "" {
		return initial
	}
	return ansi.SetHyperlink(c.ProfilePicURL) + initial + ansi.ResetHyperlink()
}

func (f *Feed) topBar(c catalog.Character, width int) string {
	left := f.avatar(c) + " " + FeedNameStyle.Render(c.Name)
	stats := FeedStatsStyle.Render(fmt.Sprintf("♡ %s  ✎ %s",
		catalog.FormatCount(c.Likes), catalog.FormatCount(c.Comments)))
	pad := max(width-lipgloss.Width(left)-lipgloss.Width(stats), 1)
	return left + strings.Repeat(" ", pad) + stats
}

// greeting returns the wrapped greeting, clamped unless expanded.
func (f *Feed) greeting(c catalog.Character, width int) string {
	lines := strings.Split(wrapText(c.Greeting(f.userName), width), "\n")
	if !f.expanded && len(lines) > GreetingCollapsedLines {
		lines = lines[:GreetingCollapsedLines]
		last := lines[len(lines)-1]
		lines[len(lines)-1] = ansi.Truncate(last, max(width-1, 1), "") + "…"
	}
	return FeedGreetingStyle.Render(strings.Join(lines, "\n"))
}

// sections renders the card top to bottom and returns the screen row of the
// Read More toggle, or -1 when there is none.
func (f *Feed) sections() ([]string, int) {
	c, ok := f.Current()
	if !ok {
		return []string{FeedPagerStyle.Render("No characters")}, -1
	}
	width := f.width
	if width <= 0 {
		width = DefaultWrapWidth
	}
	inner := max(width-2, 10)

	parts := []string{
		f.topBar(c, width),
		"",
		f.greeting(c, inner),
	}
	toggleRow := -1
	if c.IsLongGreeting(f.userName) {
		label := readMoreLabel
		if f.expanded {
			label = showLessLabel
		}
		toggleRow = lipgloss.Height(strings.Join(parts, "\n"))
		parts = append(parts, FeedToggleStyle.Render(label))
	}

	card := FeedCardStyle.Width(width).Render(wrapText(renderActions(c.Message, FeedActionStyle), max(inner-2, 1)))
	parts = append(parts, "", card, "",
		FeedMessageBoxStyle.Width(width).Render("Write a message"),
	)
	return parts, toggleRow
}

// View renders the feed
func (f *Feed) View() string {
	parts, _ := f.sections()
	body := strings.Join(parts, "\n")

	pager := ""
	if n := len(f.characters); n > 0 {
		pager = FeedPagerStyle.Render(fmt.Sprintf("%d / %d  j/k to page", f.index+1, n))
	}
	if f.height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, body, pager)
	}
	bodyHeight := max(f.height-1, 1)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, body, lipgloss.PlaceHorizontal(max(f.width, 1), lipgloss.Center, pager))
}
