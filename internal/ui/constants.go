// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// TabBarHeight is the height of the bottom tab bar in lines
	TabBarHeight = 1

	// FooterHeight is the height of the key hint footer in lines
	FooterHeight = 1

	// HeaderHeight is the height of the chat header in lines
	HeaderHeight = 1

	// ComposerHeight is the number of text lines in the chat composer
	ComposerHeight = 1

	// ComposerBorderHeight is the border size around the composer
	ComposerBorderHeight = 2

	// ComposerTotalHeight is the total height of the composer area
	ComposerTotalHeight = ComposerHeight + ComposerBorderHeight

	// BubbleWidthPercent is the maximum bubble width as a share of the panel
	BubbleWidthPercent = 85

	// BubbleGap is the number of blank lines between bubbles
	BubbleGap = 1

	// GreetingCollapsedLines is how many greeting lines the feed shows
	// before Read More
	GreetingCollapsedLines = 3

	// MinTerminalWidth and MinTerminalHeight bound the layout math
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// DefaultWrapWidth is used when the panel width is unknown
	DefaultWrapWidth = 80
)

// Interaction constants
const (
	// LongPressThreshold is how long a left button must be held on a bubble
	// to open the action menu
	LongPressThreshold = 500 * time.Millisecond
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 56
)
