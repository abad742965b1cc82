package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testSections() []HelpSection {
	return []HelpSection{
		{Title: "Feed", Shortcuts: []HelpShortcut{
			{Key: "j/k", Desc: "page"},
			{Key: "r", Desc: "read more"},
		}},
		{Title: "Chat", Shortcuts: []HelpShortcut{
			{Key: "c", Desc: "copy message"},
		}},
	}
}

func TestHelpState_StartsOnShortcut(t *testing.T) {
	s := NewHelpState(testSections())

	sel := s.SelectedShortcut()
	if sel == nil || sel.Key != "j/k" {
		t.Fatalf("selected = %+v, want j/k", sel)
	}
}

func TestHelpState_Navigate(t *testing.T) {
	s := NewHelpState(testSections())

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	sel := s.SelectedShortcut()
	if sel == nil || sel.Key != "r" {
		t.Errorf("selected = %+v, want r", sel)
	}
}

func TestHelpState_Render(t *testing.T) {
	s := NewHelpState(testSections())

	view := s.Render()
	for _, want := range []string{"Keyboard Shortcuts", "Feed", "Chat", "read more"} {
		if !strings.Contains(view, want) {
			t.Errorf("render missing %q", want)
		}
	}
	if s.IsFiltering() {
		t.Error("should not start filtering")
	}
}
