package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	ctx1 := GetViewContext()
	ctx2 := GetViewContext()

	if ctx1 != ctx2 {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 {
		t.Errorf("Expected TerminalWidth 120, got %d", ctx.TerminalWidth)
	}

	if ctx.TerminalHeight != 40 {
		t.Errorf("Expected TerminalHeight 40, got %d", ctx.TerminalHeight)
	}

	if ctx.TabBarHeight != TabBarHeight {
		t.Errorf("Expected TabBarHeight %d, got %d", TabBarHeight, ctx.TabBarHeight)
	}

	if ctx.FooterHeight != FooterHeight {
		t.Errorf("Expected FooterHeight %d, got %d", FooterHeight, ctx.FooterHeight)
	}

	expectedContent := 40 - TabBarHeight - FooterHeight
	if ctx.ContentHeight != expectedContent {
		t.Errorf("Expected ContentHeight %d, got %d", expectedContent, ctx.ContentHeight)
	}
}

func TestViewContext_MinimumSize(t *testing.T) {
	ctx := GetViewContext()

	ctx.UpdateTerminalSize(10, 3)

	w, h, content := ctx.Size()
	if w != MinTerminalWidth || h != MinTerminalHeight {
		t.Errorf("Expected size clamped to %dx%d, got %dx%d", MinTerminalWidth, MinTerminalHeight, w, h)
	}
	if content <= 0 {
		t.Errorf("Expected positive content height, got %d", content)
	}
}

func TestMaxBubbleWidth(t *testing.T) {
	tests := []struct {
		panelWidth int
		expected   int
	}{
		{100, 85},
		{80, 68},
		{0, 10},
		{5, 10},
	}

	for _, tt := range tests {
		result := MaxBubbleWidth(tt.panelWidth)
		if result != tt.expected {
			t.Errorf("MaxBubbleWidth(%d) = %d, expected %d", tt.panelWidth, result, tt.expected)
		}
	}
}

func TestViewContext_ConcurrentAccess(t *testing.T) {
	ctx := GetViewContext()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+n, 24+n)
			_, _, _ = ctx.Size()
		}(i)
	}
	wg.Wait()
}
