package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/charchat/internal/chat"
)

func TestActionMenu_Order(t *testing.T) {
	m := NewActionMenu()
	view := ansi.Strip(m.View())

	copyIdx := strings.Index(view, "Copy")
	editIdx := strings.Index(view, "Edit")
	deleteIdx := strings.Index(view, "Delete")
	if copyIdx < 0 || editIdx < copyIdx || deleteIdx < editIdx {
		t.Errorf("menu order wrong: %q", view)
	}
}

func TestActionMenu_Pending(t *testing.T) {
	m := NewActionMenu()
	m.SetPending(true)
	if !strings.Contains(ansi.Strip(m.View()), "Copying") {
		t.Error("pending copy should be shown")
	}
	m.Reset()
	if strings.Contains(ansi.Strip(m.View()), "Copying") {
		t.Error("reset should clear pending")
	}
}

func TestActionMenu_Cursor(t *testing.T) {
	m := NewActionMenu()
	m.MoveCursor(-1)
	if m.Cursor() != chat.ActionCopy {
		t.Errorf("cursor = %s, want Copy", m.Cursor())
	}
	m.MoveCursor(5)
	if m.Cursor() != chat.ActionDelete {
		t.Errorf("cursor = %s, want Delete", m.Cursor())
	}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		key  string
		want chat.MenuAction
		ok   bool
	}{
		{"c", chat.ActionCopy, true},
		{"e", chat.ActionEdit, true},
		{"d", chat.ActionDelete, true},
		{"x", 0, false},
	}
	for _, tt := range tests {
		got, ok := ActionForKey(tt.key)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ActionForKey(%q) = %v,%v want %v,%v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestActionMenu_Place(t *testing.T) {
	m := NewActionMenu()
	w, h := m.Size()

	tests := []struct {
		name   string
		anchor chat.Point
		want   chat.Point
	}{
		{"fits", chat.Point{X: 5, Y: 5}, chat.Point{X: 5, Y: 5}},
		{"past right edge", chat.Point{X: 78, Y: 5}, chat.Point{X: 80 - w, Y: 5}},
		{"past bottom", chat.Point{X: 5, Y: 23}, chat.Point{X: 5, Y: 24 - h}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Place(tt.anchor, 80, 24); got != tt.want {
				t.Errorf("Place(%+v) = %+v, want %+v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestActionMenu_LayerHit(t *testing.T) {
	m := NewActionMenu()
	pos := chat.Point{X: 10, Y: 4}
	comp := lipgloss.NewCompositor(m.Layer(pos))

	for i, a := range chat.MenuActions {
		hit := comp.Hit(pos.X+menuBorderPadding+1, pos.Y+menuBorderPadding+i)
		got, ok := actionForLayer(hit.ID())
		if !ok || got != a {
			t.Errorf("row %d hit %q, want %s", i, hit.ID(), a)
		}
	}

	// Border belongs to the menu but to no action
	hit := comp.Hit(pos.X, pos.Y)
	if hit.ID() != menuLayerID {
		t.Errorf("border hit = %q, want %q", hit.ID(), menuLayerID)
	}
	if !comp.Hit(0, 0).Empty() {
		t.Error("outside the menu should hit nothing")
	}
}
