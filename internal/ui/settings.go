package ui

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
)

// Names of the settings multiselect options.
const (
	optionNotifications = "notifications"
	optionDebug         = "debug"
)

// ThemeNames lists the selectable UI themes.
var ThemeNames = []string{"dark-indigo", "nord", "dracula", "gruvbox"}

// SettingsPanel is the modal settings form.
type SettingsPanel struct {
	basePanel
	form *huh.Form

	selectedTheme string
	options       []string
}

// NewSettingsPanel creates the settings form with default values; use
// SetValues before showing it to reflect the current configuration.
func NewSettingsPanel(id string) *SettingsPanel {
	s := &SettingsPanel{
		basePanel:     basePanel{id: id, typ: "settings", title: "Settings"},
		selectedTheme: ThemeNames[0],
	}
	s.buildForm(true, false)
	return s
}

// SetValues loads the current configuration into the form.
func (s *SettingsPanel) SetValues(theme string, notifications, debug bool) {
	if theme != "" {
		s.selectedTheme = theme
	}
	s.buildForm(notifications, debug)
}

func (s *SettingsPanel) buildForm(notifications, debug bool) {
	themeOptions := make([]huh.Option[string], len(ThemeNames))
	for i, name := range ThemeNames {
		themeOptions[i] = huh.NewOption(name, name)
	}

	opts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).Selected(notifications),
		huh.NewOption("Debug logging", optionDebug).Selected(debug),
	}
	s.options = nil
	if notifications {
		s.options = append(s.options, optionNotifications)
	}
	if debug {
		s.options = append(s.options, optionDebug)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(opts...).
			Height(len(opts)).
			Value(&s.options),
	)).
		WithTheme(FormTheme()).
		WithShowHelp(false).
		WithWidth(s.innerWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
}

// Values returns the form's current selections.
func (s *SettingsPanel) Values() (theme string, notifications, debug bool) {
	theme = s.selectedTheme
	for _, o := range s.options {
		switch o {
		case optionNotifications:
			notifications = true
		case optionDebug:
			debug = true
		}
	}
	return theme, notifications, debug
}

func (s *SettingsPanel) SetSize(width, height int) {
	s.basePanel.SetSize(width, height)
	s.form = s.form.WithWidth(width)
}

func (s *SettingsPanel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return cmd
}

func (s *SettingsPanel) View() string {
	return s.form.View()
}
