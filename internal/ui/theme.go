// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI.
package ui

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the accent color (send button, active tab, focus)
	Primary string
	// Secondary is used for key hints and links
	Secondary string

	// Background colors
	Bg      string // Main background
	Surface string // Composer, header and other raised areas

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on light backgrounds

	// Bubble colors
	BubbleMine     string // Background of the local user's messages
	BubbleOther    string // Background of the partner's messages
	BubbleSelected string // Background of the message the menu is open for
	Emphasis       string // Italic first lines and *action* text

	// Action menu
	MenuBg   string
	MenuText string

	// Semantic colors
	Success string
	Error   string
	Border  string

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeMidnight ThemeName = "midnight"
	ThemeNord     ThemeName = "nord"
	ThemeDracula  ThemeName = "dracula"
	ThemeLight    ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeMidnight

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeMidnight: {
		Name:           "Midnight",
		Primary:        "#FF3D5A",
		Secondary:      "#818CF8",
		Bg:             "#0A0A0B",
		Surface:        "#1E1E20",
		Text:           "#FFFFFF",
		TextMuted:      "#B0B0B0",
		TextInverse:    "#222222",
		BubbleMine:     "#4F46E5",
		BubbleOther:    "#1E1E20",
		BubbleSelected: "#6D28D9",
		Emphasis:       "#BCBCBC",
		MenuBg:         "#FFFFFF",
		MenuText:       "#222222",
		Success:        "#4CAF50",
		Error:          "#E53935",
		Border:         "#3F3F46",
		CodeStyle:      "monokai",
	},
	ThemeNord: {
		Name:           "Nord",
		Primary:        "#88C0D0",
		Secondary:      "#81A1C1",
		Bg:             "#2E3440",
		Surface:        "#3B4252",
		Text:           "#ECEFF4",
		TextMuted:      "#D8DEE9",
		TextInverse:    "#2E3440",
		BubbleMine:     "#5E81AC",
		BubbleOther:    "#434C5E",
		BubbleSelected: "#B48EAD",
		Emphasis:       "#A3BE8C",
		MenuBg:         "#ECEFF4",
		MenuText:       "#2E3440",
		Success:        "#A3BE8C",
		Error:          "#BF616A",
		Border:         "#4C566A",
		CodeStyle:      "nord",
	},
	ThemeDracula: {
		Name:           "Dracula",
		Primary:        "#FF79C6",
		Secondary:      "#8BE9FD",
		Bg:             "#282A36",
		Surface:        "#343746",
		Text:           "#F8F8F2",
		TextMuted:      "#BFBFBF",
		TextInverse:    "#282A36",
		BubbleMine:     "#6272A4",
		BubbleOther:    "#44475A",
		BubbleSelected: "#BD93F9",
		Emphasis:       "#F1FA8C",
		MenuBg:         "#F8F8F2",
		MenuText:       "#282A36",
		Success:        "#50FA7B",
		Error:          "#FF5555",
		Border:         "#6272A4",
		CodeStyle:      "dracula",
	},
	ThemeLight: {
		Name:           "Light",
		Primary:        "#E11D48",
		Secondary:      "#4F46E5",
		Bg:             "#FFFFFF",
		Surface:        "#F3F4F6",
		Text:           "#111827",
		TextMuted:      "#6B7280",
		TextInverse:    "#FFFFFF",
		BubbleMine:     "#C7D2FE",
		BubbleOther:    "#E5E7EB",
		BubbleSelected: "#FDE68A",
		Emphasis:       "#6B7280",
		MenuBg:         "#111827",
		MenuText:       "#F9FAFB",
		Success:        "#16A34A",
		Error:          "#DC2626",
		Border:         "#D1D5DB",
		CodeStyle:      "github",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeMidnight,
		ThemeNord,
		ThemeDracula,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to Midnight if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var (
	currentTheme     = BuiltinThemes[DefaultTheme]
	currentThemeName = DefaultTheme
)

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	currentTheme = BuiltinThemes[name]
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// ThemeOptions returns parallel slices of theme keys and display names for
// the settings form.
func ThemeOptions() (keys []string, labels []string) {
	for _, name := range ThemeNames() {
		keys = append(keys, string(name))
		labels = append(labels, BuiltinThemes[name].Name)
	}
	return keys, labels
}

func init() {
	regenerateStyles()
}
