package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/charchat/internal/ui/modals"
)

// Palette, set from the current theme by regenerateStyles.
var (
	ColorPrimary        color.Color
	ColorSecondary      color.Color
	ColorBg             color.Color
	ColorSurface        color.Color
	ColorText           color.Color
	ColorTextMuted      color.Color
	ColorTextInverse    color.Color
	ColorBubbleMine     color.Color
	ColorBubbleOther    color.Color
	ColorBubbleSelected color.Color
	ColorEmphasis       color.Color
	ColorMenuBg         color.Color
	ColorMenuText       color.Color
	ColorSuccess        color.Color
	ColorError          color.Color
	ColorBorder         color.Color
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	HeaderBackStyle  lipgloss.Style
	HeaderIconStyle  lipgloss.Style
	AvatarStyle      lipgloss.Style
)

// Tab bar styles
var (
	TabBarStyle      lipgloss.Style
	TabStyle         lipgloss.Style
	TabActiveStyle   lipgloss.Style
	TabDisabledStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Chat styles
var (
	BubbleMineStyle     lipgloss.Style
	BubbleOtherStyle    lipgloss.Style
	BubbleSelectedStyle lipgloss.Style
	BubbleEmphasisStyle lipgloss.Style
	BubbleCursorStyle   lipgloss.Style
	EditFieldStyle      lipgloss.Style
	EditSaveStyle       lipgloss.Style
	ComposerStyle       lipgloss.Style
	ComposerFocusStyle  lipgloss.Style
	ComposerSendStyle   lipgloss.Style
	EditHintStyle       lipgloss.Style
)

// Action menu styles
var (
	MenuStyle            lipgloss.Style
	MenuItemStyle        lipgloss.Style
	MenuItemActiveStyle  lipgloss.Style
	MenuDestructiveStyle lipgloss.Style
	MenuPendingStyle     lipgloss.Style
)

// Toast styles
var (
	ToastSuccessStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// Feed styles
var (
	FeedNameStyle       lipgloss.Style
	FeedStatsStyle      lipgloss.Style
	FeedGreetingStyle   lipgloss.Style
	FeedToggleStyle     lipgloss.Style
	FeedCardStyle       lipgloss.Style
	FeedActionStyle     lipgloss.Style
	FeedMessageBoxStyle lipgloss.Style
	FeedPagerStyle      lipgloss.Style
)

// Modal styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBg = lipgloss.Color(t.Bg)
	ColorSurface = lipgloss.Color(t.Surface)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorBubbleMine = lipgloss.Color(t.BubbleMine)
	ColorBubbleOther = lipgloss.Color(t.BubbleOther)
	ColorBubbleSelected = lipgloss.Color(t.BubbleSelected)
	ColorEmphasis = lipgloss.Color(t.Emphasis)
	ColorMenuBg = lipgloss.Color(t.MenuBg)
	ColorMenuText = lipgloss.Color(t.MenuText)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorError = lipgloss.Color(t.Error)
	ColorBorder = lipgloss.Color(t.Border)

	HeaderStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorText)
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorSurface)
	HeaderBackStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorSurface).
		Padding(0, 1)
	HeaderIconStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorSurface).
		Padding(0, 1)
	AvatarStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)

	TabBarStyle = lipgloss.NewStyle().
		Background(ColorSurface)
	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorSurface).
		Padding(0, 1)
	TabActiveStyle = TabStyle.
		Foreground(ColorPrimary).
		Bold(true)
	TabDisabledStyle = TabStyle.
		Faint(true)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)
	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	bubble := lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)
	BubbleMineStyle = bubble.Background(ColorBubbleMine)
	BubbleOtherStyle = bubble.Background(ColorBubbleOther)
	BubbleSelectedStyle = bubble.Background(ColorBubbleSelected)
	BubbleEmphasisStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorEmphasis)
	BubbleCursorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
	EditFieldStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorMenuBg).
		Padding(0, 1)
	EditSaveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSuccess).
		Padding(0, 1)

	ComposerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	ComposerFocusStyle = ComposerStyle.
		BorderForeground(ColorPrimary)
	ComposerSendStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)
	EditHintStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(ColorTextMuted).
		Padding(0, 1)

	MenuStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorMenuBg).
		Foreground(ColorMenuText)
	MenuItemStyle = lipgloss.NewStyle().
		Foreground(ColorMenuText).
		Background(ColorMenuBg).
		Padding(0, 1)
	MenuItemActiveStyle = MenuItemStyle.
		Bold(true).
		Reverse(true)
	MenuDestructiveStyle = MenuItemStyle.
		Foreground(ColorError)
	MenuPendingStyle = MenuItemStyle.
		Italic(true).
		Faint(true)

	toast := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2)
	ToastSuccessStyle = toast.Background(ColorSuccess)
	ToastErrorStyle = toast.Background(ColorError)

	FeedNameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)
	FeedStatsStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)
	FeedGreetingStyle = lipgloss.NewStyle().
		Foreground(ColorText)
	FeedToggleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
	FeedCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	FeedActionStyle = BubbleEmphasisStyle
	FeedMessageBoxStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorSurface).
		Padding(0, 1)
	FeedPagerStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)
	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	modals.SetStyles(
		ModalStyle, ModalTitleStyle, ModalHelpStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorError,
		ModalWidth,
	)
}
