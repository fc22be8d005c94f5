package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/productive/internal/state"
)

// loginModel is the auth gate: while the container is unauthenticated it
// is the only reachable screen. Any non-blank name opens the gate.
type loginModel struct {
	state  *state.Container
	width  int
	height int

	form  *huh.Form
	name  *string
	email *string
}

func newLoginModel(c *state.Container) loginModel {
	name, email := "", ""
	m := loginModel{state: c, name: &name, email: &email}
	m.reset()
	return m
}

// reset prefills the form with the previous identity.
func (m *loginModel) reset() {
	auth := m.state.Auth()
	*m.name = auth.UserName
	*m.email = auth.UserEmail

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(m.name).Validate(requireText("name")),
			huh.NewInput().Title("Email (optional)").Value(m.email),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (m *loginModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m loginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state.Login(*m.name, *m.email) {
			return m, func() tea.Msg { return loggedInMsg{} }
		}
		m.reset()
		return m, m.form.Init()
	case huh.StateAborted:
		return m, tea.Quit
	}
	return m, cmd
}

func (m loginModel) view() string {
	w := min(m.width-4, 60)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("productive")
	sub := subtitleStyle.Render("Identify yourself to continue")

	panel := activePanelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, sub, "", m.form.View()),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
