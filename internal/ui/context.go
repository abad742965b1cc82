package ui

import (
	"sync"

	"github.com/zhubert/charchat/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	TabBarHeight  int
	FooterHeight  int
	ContentHeight int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			TabBarHeight: TabBarHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.TabBarHeight = TabBarHeight
	v.FooterHeight = FooterHeight

	// Screens get everything above the tab bar and footer
	v.ContentHeight = height - v.TabBarHeight - v.FooterHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
	)
}

// Size returns the current terminal size and content height.
func (v *ViewContext) Size() (width, height, content int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.TerminalWidth, v.TerminalHeight, v.ContentHeight
}

// MaxBubbleWidth returns the widest a chat bubble may be in a panel.
func MaxBubbleWidth(panelWidth int) int {
	return max(panelWidth*BubbleWidthPercent/100, 10)
}
