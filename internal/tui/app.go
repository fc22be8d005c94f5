package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/sadopc/productive/internal/config"
	"github.com/sadopc/productive/internal/export"
	"github.com/sadopc/productive/internal/insight"
	"github.com/sadopc/productive/internal/state"
)

// Options wires the App to its collaborators.
type Options struct {
	State    *state.Container
	Provider insight.Provider
	Focus    config.FocusConfig
	Logger   *log.Logger

	// ExportDir receives export files; empty means the home directory.
	ExportDir string
}

var exportFormats = []string{"Tasks CSV", "Tasks JSON", "Focus sessions CSV", "Focus sessions JSON"}

// App is the root Bubble Tea model.
type App struct {
	state     *state.Container
	logger    *log.Logger
	exportDir string
	width     int
	height    int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	login     loginModel
	dashboard dashboardModel
	tasks     tasksModel
	focus     focusModel
	assistant assistantModel
	settings  settingsModel

	help   help.Model
	status string
}

func NewApp(opts Options) App {
	h := help.New()
	h.ShowAll = false

	provider := opts.Provider
	if provider == nil {
		provider = insight.Offline{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	focusCfg := opts.Focus
	if focusCfg.TickInterval <= 0 {
		focusCfg = config.Default().Focus
	}

	applyTheme(opts.State.Settings())

	return App{
		state:      opts.State,
		logger:     logger,
		exportDir:  opts.ExportDir,
		activeView: viewDashboard,
		login:      newLoginModel(opts.State),
		dashboard:  newDashboardModel(opts.State, provider),
		tasks:      newTasksModel(opts.State),
		focus:      newFocusModel(opts.State, focusCfg),
		assistant:  newAssistantModel(opts.State, provider),
		settings:   newSettingsModel(opts.State),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), a.focus.resume()}
	if a.state.Authenticated() {
		cmds = append(cmds, a.dashboard.loadInsight())
	} else {
		cmds = append(cmds, a.login.Init())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.login.setSize(a.width, a.height)
		a.dashboard.setSize(a.width, contentHeight)
		a.tasks.setSize(a.width, contentHeight)
		a.focus.setSize(a.width, contentHeight)
		a.assistant.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		return a, tea.Batch(tickCmd(), a.checkAlarms(time.Time(msg)))

	case focusTickMsg:
		// Timers keep running on every screen.
		var cmd tea.Cmd
		a.focus, cmd = a.focus.update(msg)
		return a, cmd

	case insightMsg:
		a.dashboard, _ = a.dashboard.update(msg)
		return a, nil

	case chatReplyMsg:
		a.assistant, _ = a.assistant.update(msg)
		return a, nil

	case statusMsg:
		a.status = msg.text
		if msg.isError {
			a.logger.Debug("status", "text", msg.text)
		}
		return a, nil

	case loggedInMsg:
		a.logger.Info("signed in", "user", a.state.Auth().UserName)
		a.activeView = viewDashboard
		a.status = "Welcome, " + a.state.Auth().UserName
		a.dashboard.buildChart()
		return a, a.dashboard.loadInsight()

	case loggedOutMsg:
		a.logger.Info("signed out")
		a.status = ""
		a.login.reset()
		return a, a.login.Init()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	if !a.state.Authenticated() {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.login, cmd = a.login.update(msg)
		return a, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			if msg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewDashboard)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewTasks)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewFocus)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewAssistant)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Tab):
			next := a.activeView
			for {
				next = (next + 1) % viewState(len(viewNames))
				if a.viewEnabled(next) {
					break
				}
			}
			return a.switchView(next)
		}
	}

	return a.updateActiveView(msg)
}

// viewEnabled reports whether v is reachable. The focus widget gates the
// Focus and Assistant screens.
func (a App) viewEnabled(v viewState) bool {
	switch v {
	case viewFocus, viewAssistant:
		return a.state.WidgetEnabled(state.WidgetFocus)
	}
	return true
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	if !a.viewEnabled(v) {
		a.status = viewNames[v] + " is disabled in settings"
		return a, nil
	}
	a.activeView = v
	switch v {
	case viewDashboard:
		a.dashboard.buildChart()
	case viewAssistant:
		return a, a.assistant.focus()
	}
	return a, nil
}

// checkAlarms fires every alarm due at now once.
func (a App) checkAlarms(now time.Time) tea.Cmd {
	var cmds []tea.Cmd
	for _, alarm := range a.state.DueAlarms(now) {
		a.state.MarkAlarmTriggered(alarm.ID)
		a.logger.Info("alarm", "time", alarm.Time)
		cmds = append(cmds, statusCmd("Alarm "+alarm.Time+" \a", false))
	}
	return tea.Batch(cmds...)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewTasks:
		a.tasks, cmd = a.tasks.update(msg)
	case viewFocus:
		a.focus, cmd = a.focus.update(msg)
	case viewAssistant:
		a.assistant, cmd = a.assistant.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewTasks:
		return a.tasks.formActive
	case viewFocus:
		return a.focus.formActive
	case viewAssistant:
		return a.assistant.typing()
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if !a.state.Authenticated() {
		return a.login.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewDashboard:
		content = a.dashboard.view()
	case viewTasks:
		content = a.tasks.view()
	case viewFocus:
		content = a.focus.view()
	case viewAssistant:
		content = a.assistant.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		v := viewState(i)
		if !a.viewEnabled(v) {
			continue
		}
		if v == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("productive")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)
	if a.state.WidgetEnabled(state.WidgetZen) && !a.showHelp {
		helpView = "?"
	}

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Timer indicators in footer
	timerInfo := ""
	if a.focus.stopwatch.Running() {
		timerInfo += successStyle.Render(" ● " + formatDuration(a.focus.stopwatch.Elapsed()))
	}
	if a.focus.countdown.Running() {
		timerInfo += warningStyle.Render(" ◷ " + formatClock(a.focus.countdown.Seconds()))
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(choice int) tea.Cmd {
	snap := a.state.Snapshot()
	dir := a.exportDir
	return func() tea.Msg {
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
			}
			dir = home
		}
		dateStr := time.Now().Format("2006-01-02")

		var (
			path string
			err  error
		)
		switch choice {
		case 0:
			path = filepath.Join(dir, fmt.Sprintf("productive-tasks-%s.csv", dateStr))
			err = export.TasksToCSV(snap.Tasks, path)
		case 1:
			path = filepath.Join(dir, fmt.Sprintf("productive-tasks-%s.json", dateStr))
			err = export.TasksToJSON(snap.Tasks, path)
		case 2:
			path = filepath.Join(dir, fmt.Sprintf("productive-sessions-%s.csv", dateStr))
			err = export.SessionsToCSV(snap.FocusSessions, path)
		default:
			path = filepath.Join(dir, fmt.Sprintf("productive-sessions-%s.json", dateStr))
			err = export.SessionsToJSON(snap.FocusSessions, path)
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
