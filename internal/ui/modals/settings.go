package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// UserNameCharLimit caps the user name input.
const UserNameCharLimit = 40

// SettingsState is the state for the Settings modal.
type SettingsState struct {
	userName             string
	selectedTheme        string
	OriginalTheme        string
	NotificationsEnabled bool

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetUserName returns the trimmed user name input
func (s *SettingsState) GetUserName() string {
	return strings.TrimSpace(s.userName)
}

// GetSelectedTheme returns the selected theme key
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

// NewSettingsState builds the settings form. themes and themeLabels are
// parallel slices of theme keys and display names.
func NewSettingsState(themes, themeLabels []string, currentTheme, userName string, notificationsEnabled bool) *SettingsState {
	s := &SettingsState{
		userName:             userName,
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		NotificationsEnabled: notificationsEnabled,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeLabels[i], themes[i])
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Your name").
			Description("Used for {user} in character greetings").
			Placeholder("Chad").
			CharLimit(UserNameCharLimit).
			Value(&s.userName),
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewConfirm().
			Title("Desktop notifications").
			Description("Mirror toasts while the terminal is in the background").
			Affirmative("On").
			Negative("Off").
			Value(&s.NotificationsEnabled),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	s.form.Init()
	return s
}
