// Package ui provides the user interface components for the charchat TUI.
//
// # Layout
//
// Both screens share the bottom rows:
//
//	┌─────────────────────────────────────────────┐
//	│ Screen (feed or chat)                       │
//	│                                             │
//	├─────────────────────────────────────────────┤
//	│ Tab bar: Home Search Create Messages Profile│
//	│ Footer: context-aware key hints             │
//	└─────────────────────────────────────────────┘
//
// The chat screen splits its area into a one-line header with the back
// control and partner name, a scrolling list of bubbles and the composer.
// The action menu and toasts are drawn over the screen as layers.
//
// # Components
//
// ViewContext: singleton with the layout math, updated on resize.
//
// Feed: pages through the character catalog, one character at a time.
//
// Chat: renders a chat.Controller and translates keys and mouse events into
// controller operations. It never mutates messages itself.
//
// ChatHeader, TabBar, Footer, ToastStack and ActionMenu are small view
// components with SetWidth/View and hit testing where they take clicks.
//
// # Styles
//
// All styles live in styles.go and are regenerated from the active Theme
// (theme.go) whenever SetTheme is called.
package ui
