package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/productive/internal/config"
	"github.com/sadopc/productive/internal/state"
)

type stubProvider struct{ text string }

func (s stubProvider) Generate(context.Context, string, string) (string, error) {
	return s.text, nil
}

func newTestContainer(t *testing.T) *state.Container {
	t.Helper()
	return state.Open(nil)
}

func fastFocus() config.FocusConfig {
	return config.FocusConfig{
		TickInterval:     time.Millisecond,
		DefaultCountdown: 3,
		Presets:          []int{15, 25, 50},
	}
}

func newTestApp(t *testing.T) App {
	t.Helper()
	c := newTestContainer(t)
	c.Login("Ada", "ada@example.com")
	app := NewApp(Options{
		State:     c,
		Provider:  stubProvider{text: "Ship the release first."},
		Focus:     fastFocus(),
		ExportDir: t.TempDir(),
	})
	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return model.(App)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := app.Update(msg)
	return model.(App), cmd
}

// ============================================================
// Helpers
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{time.Minute, "00:01:00"},
		{time.Hour, "01:00:00"},
		{3661 * time.Second, "01:01:01"},
		{25 * time.Hour, "25:00:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{1500, "25:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.secs); got != tt.want {
			t.Errorf("formatClock(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestFormatHoursMinutes(t *testing.T) {
	if got := formatHoursMinutes(3*time.Hour + 30*time.Minute); got != "3h 30m" {
		t.Fatalf("got %q", got)
	}
	if got := formatHoursMinutes(0); got != "0h 0m" {
		t.Fatalf("got %q", got)
	}
}

func TestViewNames(t *testing.T) {
	if len(viewNames) != 5 {
		t.Fatalf("expected 5 view names, got %d", len(viewNames))
	}
	if viewNames[viewAssistant] != "Assistant" {
		t.Fatalf("viewNames[viewAssistant] = %q", viewNames[viewAssistant])
	}
}

// ============================================================
// Auth gate
// ============================================================

func TestAppLoadingState(t *testing.T) {
	app := NewApp(Options{State: newTestContainer(t)})
	// Width 0 means not yet sized
	if output := app.View(); output != "Loading..." {
		t.Fatalf("expected 'Loading...', got %q", output)
	}
}

func TestAppShowsLoginWhenSignedOut(t *testing.T) {
	c := newTestContainer(t)
	app := NewApp(Options{State: c})
	app, _ = send(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})

	out := app.View()
	if !strings.Contains(out, "Identify yourself") {
		t.Fatal("signed-out view should show the login form")
	}
	if strings.Contains(out, "Dashboard") {
		t.Fatal("tabs should not be reachable while signed out")
	}

	// Keys go to the form, not the tab switcher.
	app, _ = send(t, app, runeKey("2"))
	if app.activeView != viewDashboard {
		t.Fatal("tab switch should be blocked by the auth gate")
	}
}

func TestAppLoginAndLogout(t *testing.T) {
	c := newTestContainer(t)
	app := NewApp(Options{State: c})
	app, _ = send(t, app, tea.WindowSizeMsg{Width: 120, Height: 40})

	c.Login("Grace", "")
	app, cmd := send(t, app, loggedInMsg{})
	if cmd == nil {
		t.Fatal("login should trigger an insight request")
	}
	if !strings.Contains(app.status, "Grace") {
		t.Fatalf("status = %q", app.status)
	}
	if !strings.Contains(app.View(), "Dashboard") {
		t.Fatal("signed-in view should show tabs")
	}

	app, _ = send(t, app, runeKey("5"))
	app, cmd = send(t, app, runeKey("o"))
	if c.Authenticated() {
		t.Fatal("o in settings should log out")
	}
	if cmd == nil {
		t.Fatal("logout should emit loggedOutMsg")
	}
	app, _ = send(t, app, cmd())
	if !strings.Contains(app.View(), "Identify yourself") {
		t.Fatal("expected login form after logout")
	}
	if *app.login.name != "Grace" {
		t.Fatalf("login form should prefill the previous name, got %q", *app.login.name)
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app := newTestApp(t)

	if app.activeView != viewDashboard {
		t.Fatal("default view should be dashboard")
	}
	if app.showHelp {
		t.Fatal("help should be hidden by default")
	}
	if app.exportPicking {
		t.Fatal("export picker should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)

	views := []viewState{viewDashboard, viewTasks, viewFocus, viewAssistant, viewSettings}
	for _, v := range views {
		app.activeView = v
		if output := app.View(); output == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppTabKeys(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, runeKey("2"))
	if app.activeView != viewTasks {
		t.Fatalf("activeView = %d, want tasks", app.activeView)
	}
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.activeView != viewFocus {
		t.Fatalf("activeView = %d, want focus", app.activeView)
	}
}

func TestAppFocusWidgetGatesTabs(t *testing.T) {
	app := newTestApp(t)
	app.state.SetWidget(state.WidgetFocus, false)

	header := app.renderHeader()
	if strings.Contains(header, "Focus") || strings.Contains(header, "Assistant") {
		t.Fatal("focus and assistant tabs should be hidden")
	}

	app, _ = send(t, app, runeKey("3"))
	if app.activeView == viewFocus {
		t.Fatal("disabled view should not be reachable")
	}

	// Tab skips the hidden screens.
	app.activeView = viewTasks
	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyTab})
	if app.activeView != viewSettings {
		t.Fatalf("activeView = %d, want settings", app.activeView)
	}
}

func TestAppRenderHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)
	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppStatusMessage(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, statusMsg{text: "test status"})

	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain status message")
	}
}

func TestAppAlarmFiresOnce(t *testing.T) {
	now := time.Date(2026, 3, 2, 7, 30, 15, 0, time.Local)
	c := state.Open(nil, state.WithClock(func() time.Time { return now }))
	c.Login("Ada", "")
	app := NewApp(Options{State: c})

	alarm, ok := c.AddAlarm("07:30")
	if !ok {
		t.Fatal("add alarm failed")
	}

	if cmd := app.checkAlarms(now); cmd == nil {
		t.Fatal("due alarm should produce a status command")
	}
	if len(c.DueAlarms(now)) != 0 {
		t.Fatal("alarm should not fire twice in the same minute")
	}
	if got := c.Alarms()[0]; got.ID != alarm.ID || got.LastTriggered == "" {
		t.Fatalf("unexpected alarm state %+v", got)
	}

	// The next day it is due again.
	if len(c.DueAlarms(now.AddDate(0, 0, 1))) != 1 {
		t.Fatal("alarm should be due the next day")
	}
}

func TestAppExport(t *testing.T) {
	app := newTestApp(t)

	app, _ = send(t, app, runeKey("e"))
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	app, _ = send(t, app, runeKey("j"))
	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should start the export")
	}

	msg, ok := cmd().(exportDoneMsg)
	if !ok {
		t.Fatalf("expected exportDoneMsg")
	}
	if filepath.Ext(msg.path) != ".json" {
		t.Fatalf("expected tasks JSON export, got %s", msg.path)
	}
	if _, err := os.Stat(msg.path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}

// ============================================================
// Dashboard
// ============================================================

func TestDashboardInsight(t *testing.T) {
	app := newTestApp(t)

	cmd := app.dashboard.loadInsight()
	if !app.dashboard.loadingInsight {
		t.Fatal("loading flag should be set")
	}
	app, _ = send(t, app, cmd())
	if app.dashboard.insight != "Ship the release first." {
		t.Fatalf("insight = %q", app.dashboard.insight)
	}
	if !strings.Contains(app.View(), "Ship the release first.") {
		t.Fatal("dashboard should render the insight")
	}
}

func TestDashboardWidgets(t *testing.T) {
	app := newTestApp(t)

	if !strings.Contains(app.dashboard.view(), "Completion") {
		t.Fatal("stats widget should be visible by default")
	}
	app.state.SetWidget(state.WidgetStats, false)
	app.state.SetWidget(state.WidgetTrend, false)
	out := app.dashboard.view()
	if strings.Contains(out, "Completion") || strings.Contains(out, "Completions by Weekday") {
		t.Fatal("disabled widgets should be hidden")
	}
}

// ============================================================
// Tasks board
// ============================================================

func TestTasksColumns(t *testing.T) {
	m := newTasksModel(newTestContainer(t))

	// Seed: 1 todo, 1 in progress, 4 done.
	for col, want := range []int{1, 1, 4} {
		if got := len(m.columnTasks(col)); got != want {
			t.Fatalf("column %d has %d tasks, want %d", col, got, want)
		}
	}

	m.filter = 1 // high
	for _, task := range m.columnTasks(2) {
		if task.Priority != state.PriorityHigh {
			t.Fatalf("filter leaked %s task", task.Priority)
		}
	}
}

func TestTasksToggleCountsCompletion(t *testing.T) {
	c := newTestContainer(t)
	m := newTasksModel(c)
	before := c.History().Total()

	m.column = 1 // in progress: task 5
	m, _ = m.update(runeKey(" "))
	task, _ := c.Task("5")
	if task.Status != state.StatusDone {
		t.Fatalf("status = %s, want done", task.Status)
	}
	if c.History().Total() != before+1 {
		t.Fatal("toggle should bump the history")
	}
}

func TestTasksMoveDoesNotCount(t *testing.T) {
	c := newTestContainer(t)
	m := newTasksModel(c)
	before := c.History().Total()

	m.column = 1
	m, _ = m.update(runeKey(">"))
	task, _ := c.Task("5")
	if task.Status != state.StatusDone {
		t.Fatalf("status = %s, want done", task.Status)
	}
	if c.History().Total() != before {
		t.Fatal("move should not bump the history")
	}

	// Cannot move past the last column.
	m.column = 2
	m.cursor = 0
	m, _ = m.update(runeKey(">"))
	if len(m.columnTasks(2)) != 5 {
		t.Fatal("done column should keep its tasks")
	}
}

func TestTasksDelete(t *testing.T) {
	c := newTestContainer(t)
	m := newTasksModel(c)
	m, cmd := m.update(runeKey("d"))
	if cmd == nil {
		t.Fatal("delete should report status")
	}
	if len(c.Tasks()) != 5 {
		t.Fatalf("tasks = %d, want 5", len(c.Tasks()))
	}
	if len(m.columnTasks(0)) != 0 {
		t.Fatal("todo column should be empty")
	}
}

func TestTasksSaveForm(t *testing.T) {
	c := newTestContainer(t)
	m := newTasksModel(c)

	m, _ = m.showForm(state.Task{})
	if !m.formActive {
		t.Fatal("form should be active")
	}
	*m.formTitle = "Write tests"
	*m.formPriority = state.PriorityHigh
	*m.formDueDays = "2"
	m.saveForm()

	if len(c.Tasks()) != 7 {
		t.Fatalf("tasks = %d, want 7", len(c.Tasks()))
	}
	added := c.Tasks()[len(c.Tasks())-1]
	if added.Title != "Write tests" || added.Priority != state.PriorityHigh || added.DueDate == nil {
		t.Fatalf("unexpected task %+v", added)
	}

	// Editing keeps createdAt and clears a blank due date.
	m, _ = m.showForm(added)
	*m.formTitle = "Write more tests"
	*m.formDueDays = ""
	m.saveForm()
	edited, _ := c.Task(added.ID)
	if edited.Title != "Write more tests" || edited.DueDate != nil || edited.CreatedAt != added.CreatedAt {
		t.Fatalf("unexpected edit %+v", edited)
	}
}

func TestTasksEditKeepsDueDate(t *testing.T) {
	c := newTestContainer(t)
	m := newTasksModel(c)

	due := time.Now().Add(30*time.Hour + 20*time.Minute).UnixMilli()
	c.UpdateTask("2", state.TaskPatch{DueDate: &due})
	task, _ := c.Task("2")

	// Title-only edit.
	m, _ = m.showForm(task)
	*m.formTitle = "renamed"
	m.saveForm()

	edited, _ := c.Task("2")
	if edited.Title != "renamed" {
		t.Fatalf("title = %q", edited.Title)
	}
	if edited.DueDate == nil || *edited.DueDate != due {
		t.Fatalf("title-only edit changed the due date: %v", edited.DueDate)
	}

	// Changing the days field does move it.
	m, _ = m.showForm(edited)
	*m.formDueDays = "5"
	m.saveForm()
	moved, _ := c.Task("2")
	if moved.DueDate == nil || *moved.DueDate == due {
		t.Fatal("changed due field should set a new due date")
	}
}

func TestTasksFormEscape(t *testing.T) {
	m := newTasksModel(newTestContainer(t))
	m, _ = m.showForm(state.Task{})
	m, _ = m.update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.formActive {
		t.Fatal("esc should close the form")
	}
}

func TestDueFromDays(t *testing.T) {
	if dueFromDays("") != nil {
		t.Fatal("blank should mean no due date")
	}
	if dueFromDays("x") != nil {
		t.Fatal("garbage should mean no due date")
	}
	due := dueFromDays("1")
	if due == nil || *due <= time.Now().UnixMilli() {
		t.Fatal("expected a due date in the future")
	}
	if optionalDays("abc") == nil || optionalDays(" 3 ") != nil {
		t.Fatal("optionalDays validation is wrong")
	}
}

// ============================================================
// Focus
// ============================================================

func TestFocusStopwatchTicks(t *testing.T) {
	c := newTestContainer(t)
	f := newFocusModel(c, fastFocus())

	f, cmd := f.update(runeKey("s"))
	if cmd == nil {
		t.Fatal("start should schedule a tick")
	}
	if !c.Timers().IsStopwatchRunning {
		t.Fatal("running flag should be persisted")
	}

	msg := cmd().(focusTickMsg)
	f, next := f.update(msg)
	if next == nil {
		t.Fatal("accepted tick should schedule exactly one follow-up")
	}
	if f.stopwatch.Elapsed() != time.Millisecond {
		t.Fatalf("elapsed = %v", f.stopwatch.Elapsed())
	}
	if c.Timers().StopwatchMs != 1 {
		t.Fatalf("stopwatchMs = %d", c.Timers().StopwatchMs)
	}

	// Restarting invalidates the old chain.
	f, _ = f.update(runeKey("s")) // pause
	f, _ = f.update(runeKey("s")) // start again
	if _, again := f.update(msg); again != nil {
		t.Fatal("stale tick must not schedule a follow-up")
	}
}

func TestFocusCompleteSession(t *testing.T) {
	c := newTestContainer(t)
	f := newFocusModel(c, fastFocus())
	before := len(c.FocusSessions())

	f.stopwatch.Set(500 * time.Millisecond)
	f, _ = f.update(runeKey("c"))
	if len(c.FocusSessions()) != before {
		t.Fatal("short session should be discarded")
	}

	f.stopwatch.Set(90 * time.Second)
	f, _ = f.update(runeKey("c"))
	sessions := c.FocusSessions()
	if len(sessions) != before+1 {
		t.Fatal("session should be recorded")
	}
	if sessions[len(sessions)-1].DurationMs != 90000 {
		t.Fatalf("durationMs = %d", sessions[len(sessions)-1].DurationMs)
	}
	if f.stopwatch.Elapsed() != 0 || c.Timers().StopwatchMs != 0 {
		t.Fatal("stopwatch should reset after completing")
	}
}

func TestFocusCountdownFinishes(t *testing.T) {
	c := newTestContainer(t)
	cfg := fastFocus()
	cfg.TickInterval = time.Second
	c.SetTimerSeconds(2)
	f := newFocusModel(c, cfg)

	f, cmd := f.update(runeKey("t"))
	if cmd == nil || !c.Timers().IsTimerRunning {
		t.Fatal("countdown should start")
	}

	tick := focusTickMsg{tick: cmd().(focusTickMsg).tick}
	f, cmd = f.update(tick)
	if cmd == nil || c.Timers().TimerSeconds != 1 {
		t.Fatalf("after one tick: seconds = %d", c.Timers().TimerSeconds)
	}
	f, cmd = f.update(tick)
	if c.Timers().TimerSeconds != 0 || c.Timers().IsTimerRunning {
		t.Fatal("countdown should halt at zero")
	}
	if msg, ok := cmd().(statusMsg); !ok || !strings.Contains(msg.text, "finished") {
		t.Fatal("finishing should report status")
	}

	// At zero the countdown refuses to start.
	f, cmd = f.update(runeKey("t"))
	if msg, ok := cmd().(statusMsg); !ok || !msg.isError {
		t.Fatal("expected an error status")
	}
}

func TestFocusPreset(t *testing.T) {
	c := newTestContainer(t)
	f := newFocusModel(c, fastFocus())

	f, _ = f.update(runeKey("p"))
	if c.Timers().TimerSeconds != 25*60 {
		t.Fatalf("timerSeconds = %d, want 1500", c.Timers().TimerSeconds)
	}
	if f.countdown.Seconds() != 25*60 {
		t.Fatalf("countdown = %d", f.countdown.Seconds())
	}
}

func TestFocusResumesRunningTimers(t *testing.T) {
	c := newTestContainer(t)
	c.SetStopwatchMs(5000)
	c.SetStopwatchRunning(true)

	f := newFocusModel(c, fastFocus())
	if f.stopwatch.Elapsed() != 5*time.Second {
		t.Fatalf("elapsed = %v", f.stopwatch.Elapsed())
	}
	if cmd := f.resume(); cmd == nil {
		t.Fatal("running stopwatch should resume")
	}
	if !f.stopwatch.Running() {
		t.Fatal("stopwatch should be running")
	}
}

func TestFocusAlarmDelete(t *testing.T) {
	c := newTestContainer(t)
	c.AddAlarm("07:30")
	c.AddAlarm("12:00")
	f := newFocusModel(c, fastFocus())

	f, _ = f.update(runeKey("j"))
	f, _ = f.update(runeKey("d"))
	alarms := c.Alarms()
	if len(alarms) != 1 || alarms[0].Time != "07:30" {
		t.Fatalf("unexpected alarms %+v", alarms)
	}
	if f.alarmCursor != 0 {
		t.Fatalf("cursor = %d", f.alarmCursor)
	}
	if validAlarmTime("25:00") == nil || validAlarmTime("09:15") != nil {
		t.Fatal("alarm validation is wrong")
	}
}

// ============================================================
// Assistant
// ============================================================

func TestAssistantSend(t *testing.T) {
	c := newTestContainer(t)
	a := newAssistantModel(c, stubProvider{text: "Do the hard thing first."})
	a.setSize(120, 40)

	if len(a.messages) != 1 {
		t.Fatal("assistant should open with a greeting")
	}

	a.focus()
	a.input.SetValue("what now?")
	a, cmd := a.update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !a.waiting {
		t.Fatal("enter should send the message")
	}
	if a.input.Value() != "" {
		t.Fatal("input should be cleared")
	}

	// A second send while waiting is ignored.
	a.input.SetValue("again")
	if _, again := a.send(); again != nil {
		t.Fatal("only one request may be in flight")
	}

	a, _ = a.update(cmd())
	last := a.messages[len(a.messages)-1]
	if last.fromUser || last.text != "Do the hard thing first." {
		t.Fatalf("unexpected reply %+v", last)
	}
	if a.waiting {
		t.Fatal("waiting should clear after the reply")
	}
}

func TestAssistantEscapeReleasesKeyboard(t *testing.T) {
	app := newTestApp(t)
	app, _ = send(t, app, runeKey("4"))
	if !app.isFormActive() {
		t.Fatal("assistant input should own the keyboard")
	}

	// q is typed, not quit.
	app, _ = send(t, app, runeKey("q"))
	if app.assistant.input.Value() != "q" {
		t.Fatalf("input = %q", app.assistant.input.Value())
	}

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	if app.isFormActive() {
		t.Fatal("esc should release the keyboard")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsSave(t *testing.T) {
	c := newTestContainer(t)
	s := newSettingsModel(c)

	s, _ = s.showForm()
	*s.theme = state.ThemeRoyal
	s.colors[0] = "#112233"
	*s.widgets = []state.Widget{state.WidgetStats, state.WidgetCoffee}
	s.saveSettings()

	got := c.Settings()
	if got.Theme != state.ThemeRoyal {
		t.Fatalf("theme = %s", got.Theme)
	}
	if got.BrandColors[0] != "#112233" {
		t.Fatalf("brand colors = %v", got.BrandColors)
	}
	if !got.Widgets[state.WidgetCoffee] || got.Widgets[state.WidgetTrend] {
		t.Fatalf("widgets = %v", got.Widgets)
	}
}

func TestValidHex(t *testing.T) {
	for _, ok := range []string{"#FF8C42", "#abcdef"} {
		if validHex(ok) != nil {
			t.Errorf("%s should be valid", ok)
		}
	}
	for _, bad := range []string{"FF8C42", "#FFF", "#GGGGGG", ""} {
		if validHex(bad) == nil {
			t.Errorf("%s should be invalid", bad)
		}
	}
}

// ============================================================
// Key bindings
// ============================================================

func TestKeyMapShortHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
}

func TestKeyMapFullHelp(t *testing.T) {
	groups := keys.FullHelp()
	if len(groups) == 0 {
		t.Fatal("full help should have groups")
	}
	for i, g := range groups {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

// ============================================================
// Styles (smoke test: they render under every theme)
// ============================================================

func TestStylesRender(t *testing.T) {
	defer applyTheme(state.Seed(time.Now()).Settings)

	for _, theme := range state.Themes {
		applyTheme(state.Settings{Theme: theme, BrandColors: [3]string{"#010203", "", ""}})
		styles := []struct {
			name string
			fn   func() string
		}{
			{"activeTab", func() string { return activeTabStyle.Render("test") }},
			{"panel", func() string { return panelStyle.Render("test") }},
			{"timer", func() string { return timerStyle.Render("test") }},
			{"title", func() string { return titleStyle.Render("test") }},
			{"accent", func() string { return accentStyle.Render("test") }},
			{"highlight", func() string { return highlightStyle.Render("test") }},
			{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		}
		for _, s := range styles {
			if s.fn() == "" {
				t.Fatalf("%s: style %q rendered empty", theme, s.name)
			}
		}
	}
}
