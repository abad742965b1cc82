package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()

	footer.SetWidth(120)

	if footer.width != 120 {
		t.Errorf("Expected width 120, got %d", footer.width)
	}
}

func TestFooter_ModeBindings(t *testing.T) {
	tests := []struct {
		name    string
		mode    FooterMode
		want    []string
		notWant []string
	}{
		{"feed", FooterFeed, []string{"j/k", "settings", "quit"}, []string{"copy"}},
		{"compose", FooterChatCompose, []string{"send", "messages"}, []string{"delete"}},
		{"list", FooterChatList, []string{"select", "actions"}, []string{"send"}},
		{"menu", FooterChatMenu, []string{"copy", "edit", "delete", "close"}, []string{"send"}},
		{"edit", FooterChatEdit, []string{"save"}, []string{"send", "back"}},
		{"modal", FooterModal, []string{"save", "cancel"}, []string{"quit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(200)
			footer.SetMode(tt.mode)

			view := ansi.Strip(footer.View())
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("footer %q missing %q", view, s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("footer %q should not contain %q", view, s)
				}
			}
		})
	}
}

func TestFooter_EveryModeHasBindings(t *testing.T) {
	for mode := FooterFeed; mode <= FooterModal; mode++ {
		footer := NewFooter()
		footer.SetMode(mode)
		if len(footer.Bindings()) == 0 {
			t.Errorf("mode %d has no bindings", mode)
		}
	}
}
