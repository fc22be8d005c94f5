package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/productive/internal/config"
	"github.com/sadopc/productive/internal/focus"
	"github.com/sadopc/productive/internal/state"
)

// coffeeAfter is how long the stopwatch may run before the restoration
// widget suggests a break.
const coffeeAfter = 50 * time.Minute

type focusModel struct {
	state  *state.Container
	width  int
	height int

	stopwatch *focus.Stopwatch
	countdown *focus.Countdown
	presets   []int // minutes
	preset    int

	alarmCursor int
	formActive  bool
	form        *huh.Form
	formAlarm   *string
}

func newFocusModel(c *state.Container, cfg config.FocusConfig) focusModel {
	timers := c.Timers()

	sw := focus.NewStopwatch(cfg.TickInterval)
	sw.Set(time.Duration(timers.StopwatchMs) * time.Millisecond)

	secs := timers.TimerSeconds
	if secs <= 0 {
		secs = cfg.DefaultCountdown
	}
	cd := focus.NewCountdown(time.Duration(secs)*time.Second, cfg.TickInterval)

	presets := cfg.Presets
	if len(presets) == 0 {
		presets = config.Default().Focus.Presets
	}

	alarm := ""
	return focusModel{
		state:     c,
		stopwatch: sw,
		countdown: cd,
		presets:   presets,
		formAlarm: &alarm,
	}
}

func (f *focusModel) setSize(w, h int) {
	f.width = w
	f.height = h
}

func scheduleTick(t focus.Tick, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return focusTickMsg{tick: t}
	})
}

// resume restarts the tick chains of timers that were running when the
// state was saved.
func (f focusModel) resume() tea.Cmd {
	timers := f.state.Timers()
	var cmds []tea.Cmd
	if timers.IsStopwatchRunning {
		cmds = append(cmds, scheduleTick(f.stopwatch.Start(), f.stopwatch.Interval()))
	}
	if timers.IsTimerRunning {
		if t, ok := f.countdown.Start(); ok {
			cmds = append(cmds, scheduleTick(t, f.countdown.Interval()))
		} else {
			f.state.SetTimerRunning(false)
		}
	}
	return tea.Batch(cmds...)
}

func (f focusModel) update(msg tea.Msg) (focusModel, tea.Cmd) {
	// Ticks bypass the alarm form so the chains survive it.
	if msg, ok := msg.(focusTickMsg); ok {
		return f.advance(msg.tick)
	}
	if f.formActive && f.form != nil {
		return f.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Start):
			return f.toggleStopwatch()
		case key.Matches(msg, keys.Complete):
			return f.completeSession()
		case key.Matches(msg, keys.Reset):
			f.stopwatch.Reset()
			f.state.SetStopwatchRunning(false)
			f.state.SetStopwatchMs(0)
			return f, nil
		case key.Matches(msg, keys.Countdown):
			return f.toggleCountdown()
		case key.Matches(msg, keys.Preset):
			f.preset = (f.preset + 1) % len(f.presets)
			secs := f.presets[f.preset] * 60
			f.countdown.Set(time.Duration(secs) * time.Second)
			f.state.SetTimerRunning(false)
			f.state.SetTimerSeconds(secs)
			return f, nil
		case key.Matches(msg, keys.Up):
			if f.alarmCursor > 0 {
				f.alarmCursor--
			}
		case key.Matches(msg, keys.Down):
			if f.alarmCursor < len(f.state.Alarms())-1 {
				f.alarmCursor++
			}
		case key.Matches(msg, keys.New):
			return f.showAlarmForm()
		case key.Matches(msg, keys.Delete):
			alarms := f.state.Alarms()
			if f.alarmCursor < len(alarms) {
				f.state.DeleteAlarm(alarms[f.alarmCursor].ID)
				if f.alarmCursor > 0 && f.alarmCursor >= len(alarms)-1 {
					f.alarmCursor--
				}
			}
		}
	}
	return f, nil
}

// advance feeds a tick to the timer it belongs to. Stale ticks from a
// superseded chain are dropped without scheduling a follow-up, which keeps
// at most one live chain per timer.
func (f focusModel) advance(t focus.Tick) (focusModel, tea.Cmd) {
	switch t.ID {
	case f.stopwatch.ID():
		if !f.stopwatch.Advance(t) {
			return f, nil
		}
		f.state.SetStopwatchMs(f.stopwatch.Elapsed().Milliseconds())
		return f, scheduleTick(t, f.stopwatch.Interval())

	case f.countdown.ID():
		accepted, done := f.countdown.Advance(t)
		if !accepted {
			return f, nil
		}
		f.state.SetTimerSeconds(f.countdown.Seconds())
		if done {
			f.state.SetTimerRunning(false)
			return f, statusCmd("Countdown finished \a", false)
		}
		return f, scheduleTick(t, f.countdown.Interval())
	}
	return f, nil
}

func (f focusModel) toggleStopwatch() (focusModel, tea.Cmd) {
	if f.stopwatch.Running() {
		f.stopwatch.Stop()
		f.state.SetStopwatchRunning(false)
		return f, nil
	}
	t := f.stopwatch.Start()
	f.state.SetStopwatchRunning(true)
	return f, scheduleTick(t, f.stopwatch.Interval())
}

func (f focusModel) completeSession() (focusModel, tea.Cmd) {
	elapsed := f.stopwatch.Elapsed()
	f.state.SetStopwatchMs(elapsed.Milliseconds())
	if !f.state.CompleteFocusSession() {
		return f, statusCmd("Session too short to record", true)
	}
	f.stopwatch.Reset()
	return f, statusCmd("Focus session recorded: "+formatDuration(elapsed), false)
}

func (f focusModel) toggleCountdown() (focusModel, tea.Cmd) {
	if f.countdown.Running() {
		f.countdown.Stop()
		f.state.SetTimerRunning(false)
		return f, nil
	}
	t, ok := f.countdown.Start()
	if !ok {
		return f, statusCmd("Countdown is at zero; press p for a preset", true)
	}
	f.state.SetTimerRunning(true)
	return f, scheduleTick(t, f.countdown.Interval())
}

func (f focusModel) showAlarmForm() (focusModel, tea.Cmd) {
	*f.formAlarm = ""
	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Alarm time (HH:MM)").Value(f.formAlarm).Validate(validAlarmTime),
		),
	).WithShowHelp(true).WithShowErrors(true)
	f.formActive = true
	return f, f.form.Init()
}

func validAlarmTime(s string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use 24h HH:MM")
	}
	return nil
}

func (f focusModel) updateForm(msg tea.Msg) (focusModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			f.formActive = false
			f.form = nil
			return f, nil
		}
	}

	form, cmd := f.form.Update(msg)
	if fm, ok := form.(*huh.Form); ok {
		f.form = fm
	}

	if f.form.State == huh.StateCompleted {
		f.formActive = false
		f.form = nil
		if a, ok := f.state.AddAlarm(strings.TrimSpace(*f.formAlarm)); ok {
			return f, statusCmd("Alarm set for "+a.Time, false)
		}
		return f, nil
	}
	return f, cmd
}

func (f focusModel) view() string {
	w := f.width - 4

	if f.formActive && f.form != nil {
		content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("New Alarm"), "", f.form.View())
		return panelStyle.Width(w).Render(content)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		f.renderStopwatch(w),
		f.renderCountdown(w),
		f.renderAlarms(w),
	)
}

func (f focusModel) renderStopwatch(w int) string {
	elapsed := formatDuration(f.stopwatch.Elapsed())

	var display, indicator string
	switch {
	case f.stopwatch.Running():
		display = timerRunningStyle.Width(w - 6).Render(elapsed)
		indicator = successStyle.Render("●  FOCUSING")
	case f.stopwatch.Elapsed() > 0:
		display = timerPausedStyle.Width(w - 6).Render(elapsed)
		indicator = warningStyle.Render("⏸  PAUSED")
	default:
		display = timerStyle.Width(w - 6).Render(elapsed)
		indicator = mutedStyle.Render("■  READY")
	}

	sessions := len(f.state.FocusSessions())
	stats := mutedStyle.Render(fmt.Sprintf("%d sessions · total %s · avg %s",
		sessions, formatHoursMinutes(f.state.TotalFocus()), formatHoursMinutes(f.state.AverageFocus())))

	lines := []string{titleStyle.Render("Stopwatch"), display, indicator, stats}
	if f.state.WidgetEnabled(state.WidgetCoffee) && f.stopwatch.Elapsed() >= coffeeAfter {
		lines = append(lines, accentStyle.Render("Time for a restoration break."))
	}
	lines = append(lines, mutedStyle.Render("s: start/pause  c: complete  r: reset"))

	style := panelStyle
	if f.stopwatch.Running() {
		style = activePanelStyle
	}
	return style.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (f focusModel) renderCountdown(w int) string {
	clock := formatClock(f.countdown.Seconds())

	var display string
	switch {
	case f.countdown.Running():
		display = accentStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(clock)
	case f.countdown.Seconds() == 0:
		display = successStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).Render("Done!")
	default:
		display = timerStyle.Width(w - 6).Render(clock)
	}

	var presets []string
	for i, m := range f.presets {
		label := fmt.Sprintf("%dm", m)
		if i == f.preset {
			presets = append(presets, selectedItemStyle.Render(label))
		} else {
			presets = append(presets, mutedStyle.Render(label))
		}
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Countdown"),
		display,
		strings.Join(presets, "  "),
		mutedStyle.Render("t: start/stop  p: next preset"),
	))
}

func (f focusModel) renderAlarms(w int) string {
	alarms := f.state.Alarms()

	rows := []string{titleStyle.Render("Alarms")}
	if len(alarms) == 0 {
		rows = append(rows, mutedStyle.Render("  No alarms. Press n to add one."))
	}
	for i, a := range alarms {
		cursor := "  "
		style := normalItemStyle
		if i == f.alarmCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		line := style.Render(cursor + a.Time)
		if a.LastTriggered != "" {
			line += mutedStyle.Render("  last " + a.LastTriggered)
		}
		rows = append(rows, line)
	}
	rows = append(rows, "", mutedStyle.Render("  n: new alarm  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
