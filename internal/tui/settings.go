package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/productive/internal/state"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var widgetLabels = map[state.Widget]string{
	state.WidgetStats:    "Analytics",
	state.WidgetTrend:    "Flow Matrix",
	state.WidgetPriority: "Urgency",
	state.WidgetFocus:    "Focus & Assistant",
	state.WidgetZen:      "Zen (minimal chrome)",
	state.WidgetCoffee:   "Restoration reminders",
}

type settingsModel struct {
	state  *state.Container
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	theme   *state.Theme
	colors  *[3]string
	widgets *[]state.Widget
}

func newSettingsModel(c *state.Container) settingsModel {
	theme := state.ThemeObsidian
	var colors [3]string
	var widgets []state.Widget
	return settingsModel{
		state:   c,
		theme:   &theme,
		colors:  &colors,
		widgets: &widgets,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		case key.Matches(msg, keys.Logout):
			s.state.Logout()
			return s, func() tea.Msg { return loggedOutMsg{} }
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	current := s.state.Settings()
	*s.theme = current.Theme
	*s.colors = current.BrandColors
	*s.widgets = (*s.widgets)[:0]
	for _, w := range state.Widgets {
		if current.Widgets[w] {
			*s.widgets = append(*s.widgets, w)
		}
	}

	themeOptions := make([]huh.Option[state.Theme], len(state.Themes))
	for i, t := range state.Themes {
		themeOptions[i] = huh.NewOption(string(t), t)
	}
	widgetOptions := make([]huh.Option[state.Widget], len(state.Widgets))
	for i, w := range state.Widgets {
		widgetOptions[i] = huh.NewOption(widgetLabels[w], w)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[state.Theme]().Title("Theme").Options(themeOptions...).Value(s.theme),
			huh.NewInput().Title("Primary color").Value(&s.colors[0]).Validate(validHex),
			huh.NewInput().Title("Secondary color").Value(&s.colors[1]).Validate(validHex),
			huh.NewInput().Title("Accent color").Value(&s.colors[2]).Validate(validHex),
		).Title("Appearance"),
		huh.NewGroup(
			huh.NewMultiSelect[state.Widget]().Title("Widgets").Options(widgetOptions...).Value(s.widgets),
		).Title("Widgets"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func validHex(v string) error {
	if !hexColor.MatchString(strings.TrimSpace(v)) {
		return fmt.Errorf("use a #RRGGBB color")
	}
	return nil
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		s.saveSettings()
		return s, statusCmd("Settings saved", false)
	}

	return s, cmd
}

func (s settingsModel) saveSettings() {
	s.state.SetTheme(*s.theme)

	var colors [3]string
	for i, c := range s.colors {
		colors[i] = strings.TrimSpace(c)
	}
	s.state.SetBrandColors(colors)

	enabled := make(map[state.Widget]bool, len(*s.widgets))
	for _, w := range *s.widgets {
		enabled[w] = true
	}
	for _, w := range state.Widgets {
		if s.state.WidgetEnabled(w) != enabled[w] {
			s.state.SetWidget(w, enabled[w])
		}
	}

	applyTheme(s.state.Settings())
}

func (s settingsModel) view() string {
	w := s.width - 4
	title := titleStyle.Render("Settings")

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	settings := s.state.Settings()
	auth := s.state.Auth()

	label := lipgloss.NewStyle().Width(24)
	var rows []string
	rows = append(rows, title, "")

	user := auth.UserName
	if auth.UserEmail != "" {
		user += " <" + auth.UserEmail + ">"
	}
	rows = append(rows, fmt.Sprintf("  %s %s", label.Render("Signed in as"), highlightStyle.Render(user)))
	rows = append(rows, fmt.Sprintf("  %s %s", label.Render("Theme"), highlightStyle.Render(string(settings.Theme))))

	var swatches []string
	for _, c := range settings.BrandColors {
		swatches = append(swatches, lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("● "+c))
	}
	rows = append(rows, fmt.Sprintf("  %s %s", label.Render("Brand colors"), strings.Join(swatches, "  ")))

	rows = append(rows, "", "  "+subtitleStyle.Render("Widgets"))
	for _, wd := range state.Widgets {
		mark := mutedStyle.Render("○ off")
		if settings.Widgets[wd] {
			mark = successStyle.Render("● on")
		}
		rows = append(rows, fmt.Sprintf("  %s %s", label.Render(widgetLabels[wd]), mark))
	}

	rows = append(rows, "", mutedStyle.Render("  enter: edit settings  o: log out"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
