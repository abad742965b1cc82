package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestTabs_OnlyHomeAndMessagesEnabled(t *testing.T) {
	var enabled []Tab
	for _, c := range Tabs {
		if c.Enabled {
			enabled = append(enabled, c.Tab)
		}
	}
	if len(enabled) != 2 || enabled[0] != TabHome || enabled[1] != TabMessages {
		t.Errorf("enabled tabs = %v, want [Home Messages]", enabled)
	}
}

func TestTabBar_Select(t *testing.T) {
	tests := []struct {
		tab    Tab
		ok     bool
		active Tab
	}{
		{TabMessages, true, TabMessages},
		{TabSearch, false, TabHome},
		{TabCreate, false, TabHome},
		{TabProfile, false, TabHome},
		{TabHome, true, TabHome},
	}

	for _, tt := range tests {
		t.Run(tt.tab.String(), func(t *testing.T) {
			b := NewTabBar()
			if got := b.Select(tt.tab); got != tt.ok {
				t.Errorf("Select(%s) = %v, want %v", tt.tab, got, tt.ok)
			}
			if b.Active() != tt.active {
				t.Errorf("Active() = %s, want %s", b.Active(), tt.active)
			}
		})
	}
}

func TestTabBar_NextSkipsDisabled(t *testing.T) {
	b := NewTabBar()

	if got := b.Next(1); got != TabMessages {
		t.Errorf("Next(1) from Home = %s, want Messages", got)
	}
	if got := b.Next(-1); got != TabMessages {
		t.Errorf("Next(-1) from Home = %s, want Messages (wrap)", got)
	}

	b.Select(TabMessages)
	if got := b.Next(1); got != TabHome {
		t.Errorf("Next(1) from Messages = %s, want Home", got)
	}
}

func TestTabBar_TabAt(t *testing.T) {
	b := NewTabBar()
	b.SetWidth(100)

	tests := []struct {
		x    int
		want Tab
		ok   bool
	}{
		{0, TabHome, true},
		{19, TabHome, true},
		{20, TabSearch, true},
		{65, TabMessages, true},
		{99, TabProfile, true},
		{100, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		got, ok := b.TabAt(tt.x)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("TabAt(%d) = %s,%v want %s,%v", tt.x, got, ok, tt.want, tt.ok)
		}
	}
}

func TestTabBar_View(t *testing.T) {
	b := NewTabBar()
	b.SetWidth(101)

	view := b.View()
	if w := lipgloss.Width(view); w != 101 {
		t.Errorf("tab bar width = %d, want 101", w)
	}
	plain := ansi.Strip(view)
	for _, label := range []string{"Home", "Search", "Create", "Messages", "Profile"} {
		if !strings.Contains(plain, label) {
			t.Errorf("tab bar missing %q: %q", label, plain)
		}
	}
}
