package state

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every status in board column order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", v)
	}
	return s, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ParsePriority(v string) (Priority, error) {
	p := Priority(v)
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", v)
	}
	return p, nil
}

// Task is a unit of work on the board. Timestamps are epoch milliseconds.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	CreatedAt   int64    `json:"createdAt"`
	DueDate     *int64   `json:"dueDate,omitempty"`
}

func (t Task) Created() time.Time { return time.UnixMilli(t.CreatedAt) }

// Due returns the due date and whether one is set.
func (t Task) Due() (time.Time, bool) {
	if t.DueDate == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*t.DueDate), true
}

// TaskInput carries the caller-supplied fields of a new task.
type TaskInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *int64
}

// TaskPatch lists the fields UpdateTask may change. Nil fields are left
// untouched; ClearDueDate removes the due date.
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *Status
	Priority     *Priority
	DueDate      *int64
	ClearDueDate bool
}

// FocusSession is a completed stopwatch interval.
type FocusSession struct {
	ID         string `json:"id"`
	DurationMs int64  `json:"durationMs"`
	Timestamp  int64  `json:"timestamp"`
}

func (f FocusSession) Duration() time.Duration {
	return time.Duration(f.DurationMs) * time.Millisecond
}

type Theme string

const (
	ThemeObsidian Theme = "obsidian"
	ThemeRoyal    Theme = "royal"
	ThemeAuto     Theme = "auto"
)

var Themes = []Theme{ThemeObsidian, ThemeRoyal, ThemeAuto}

// Widget names an optional dashboard module.
type Widget string

const (
	WidgetStats    Widget = "stats"
	WidgetTrend    Widget = "trend"
	WidgetPriority Widget = "priority"
	WidgetFocus    Widget = "focus"
	WidgetZen      Widget = "zen"
	WidgetCoffee   Widget = "coffee"
)

var Widgets = []Widget{WidgetStats, WidgetTrend, WidgetPriority, WidgetFocus, WidgetZen, WidgetCoffee}

type Settings struct {
	Theme       Theme           `json:"theme"`
	BrandColors [3]string       `json:"brandColors"`
	Widgets     map[Widget]bool `json:"widgets"`
}

type Auth struct {
	UserName        string `json:"userName,omitempty"`
	UserEmail       string `json:"userEmail,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// Timers holds the persisted stopwatch and countdown fields.
type Timers struct {
	StopwatchMs        int64 `json:"stopwatchMs"`
	IsStopwatchRunning bool  `json:"isStopwatchRunning"`
	TimerSeconds       int   `json:"timerSeconds"`
	IsTimerRunning     bool  `json:"isTimerRunning"`
}

// Alarm fires once per matching minute while active. Time is "HH:MM".
type Alarm struct {
	ID            string `json:"id"`
	Time          string `json:"time"`
	Active        bool   `json:"active"`
	LastTriggered string `json:"lastTriggeredDate,omitempty"`
}
