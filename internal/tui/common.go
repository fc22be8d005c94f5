package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/productive/internal/focus"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewTasks
	viewFocus
	viewAssistant
	viewSettings
)

var viewNames = []string{"Dashboard", "Tasks", "Focus", "Assistant", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

// tickMsg is the once-a-second wall clock used for alarms.
type tickMsg time.Time

// focusTickMsg carries one tick of a stopwatch or countdown chain.
type focusTickMsg struct {
	tick focus.Tick
}

type insightMsg struct {
	text string
}

type chatReplyMsg struct {
	text string
}

type loggedInMsg struct{}
type loggedOutMsg struct{}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// formatClock renders a countdown as MM:SS.
func formatClock(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// formatHoursMinutes renders d as "1h 5m".
func formatHoursMinutes(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}
