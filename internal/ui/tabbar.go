package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab identifies a bottom tab.
type Tab int

const (
	TabHome Tab = iota
	TabSearch
	TabCreate
	TabMessages
	TabProfile
)

// TabConfig describes one entry of the tab bar.
type TabConfig struct {
	Tab     Tab
	Icon    string
	Label   string
	Enabled bool
}

// Tabs lists the tab bar entries in display order. Only Home and Messages
// have screens behind them.
var Tabs = []TabConfig{
	{Tab: TabHome, Icon: "⌂", Label: "Home", Enabled: true},
	{Tab: TabSearch, Icon: "⌕", Label: "Search"},
	{Tab: TabCreate, Icon: "+", Label: "Create"},
	{Tab: TabMessages, Icon: "✉", Label: "Messages", Enabled: true},
	{Tab: TabProfile, Icon: "☺", Label: "Profile"},
}

func (t Tab) String() string {
	for _, c := range Tabs {
		if c.Tab == t {
			return c.Label
		}
	}
	return "Unknown"
}

// Enabled reports whether pressing the tab switches screens.
func (t Tab) Enabled() bool {
	for _, c := range Tabs {
		if c.Tab == t {
			return c.Enabled
		}
	}
	return false
}

// TabBar renders the bottom navigation and maps clicks to tabs.
type TabBar struct {
	width  int
	active Tab
}

// NewTabBar creates a tab bar with Home active
func NewTabBar() *TabBar {
	return &TabBar{active: TabHome}
}

// SetWidth sets the tab bar width
func (b *TabBar) SetWidth(width int) {
	b.width = width
}

// Active returns the selected tab
func (b *TabBar) Active() Tab {
	return b.active
}

// Select makes t active. Disabled tabs are ignored.
func (b *TabBar) Select(t Tab) bool {
	if !t.Enabled() {
		return false
	}
	b.active = t
	return true
}

// Next returns the next enabled tab after the active one, wrapping around.
// delta is +1 or -1.
func (b *TabBar) Next(delta int) Tab {
	n := len(Tabs)
	idx := 0
	for i, c := range Tabs {
		if c.Tab == b.active {
			idx = i
		}
	}
	for step := 1; step <= n; step++ {
		c := Tabs[((idx+delta*step)%n+n)%n]
		if c.Enabled {
			return c.Tab
		}
	}
	return b.active
}

// cellWidth is the width of each tab's slot
func (b *TabBar) cellWidth() int {
	return max(b.width/len(Tabs), 1)
}

// TabAt returns the tab under column x.
func (b *TabBar) TabAt(x int) (Tab, bool) {
	if x < 0 || x >= b.width {
		return 0, false
	}
	i := min(x/b.cellWidth(), len(Tabs)-1)
	return Tabs[i].Tab, true
}

// View renders the tab bar
func (b *TabBar) View() string {
	cw := b.cellWidth()
	var cells []string
	for i, c := range Tabs {
		style := TabStyle
		switch {
		case c.Tab == b.active:
			style = TabActiveStyle
		case !c.Enabled:
			style = TabDisabledStyle
		}
		w := cw
		if i == len(Tabs)-1 {
			// Last slot absorbs the remainder
			w = max(b.width-cw*(len(Tabs)-1), 1)
		}
		label := c.Icon + " " + c.Label
		if lipgloss.Width(label)+2 > w {
			label = c.Icon
		}
		cells = append(cells, style.Width(w).Align(lipgloss.Center).Render(label))
	}
	return TabBarStyle.Render(strings.Join(cells, ""))
}
