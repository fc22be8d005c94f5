package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/productive/internal/state"
)

// priorityFilters is the cycle order of the board's priority filter; the
// empty priority shows everything.
var priorityFilters = []state.Priority{"", state.PriorityHigh, state.PriorityMedium, state.PriorityLow}

type tasksModel struct {
	state  *state.Container
	width  int
	height int

	column int // index into state.Statuses
	cursor int
	filter int // index into priorityFilters

	formActive bool
	form       *huh.Form
	editingID  string // empty when the form creates a task
	dueDaysWas string // prefilled due field; unchanged means keep the due date

	// Form field pointers (survive value copies)
	formTitle       *string
	formDescription *string
	formPriority    *state.Priority
	formStatus      *state.Status
	formDueDays     *string
}

func newTasksModel(c *state.Container) tasksModel {
	title, desc, due := "", "", ""
	prio, status := state.PriorityMedium, state.StatusTodo
	return tasksModel{
		state:           c,
		formTitle:       &title,
		formDescription: &desc,
		formPriority:    &prio,
		formStatus:      &status,
		formDueDays:     &due,
	}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// columnTasks returns the tasks shown in the given status column.
func (m tasksModel) columnTasks(col int) []state.Task {
	status := state.Statuses[col]
	want := priorityFilters[m.filter]
	var out []state.Task
	for _, t := range m.state.Tasks() {
		if t.Status != status {
			continue
		}
		if want != "" && t.Priority != want {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (m tasksModel) selected() (state.Task, bool) {
	tasks := m.columnTasks(m.column)
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return state.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *tasksModel) clampCursor() {
	n := len(m.columnTasks(m.column))
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msgKey, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msgKey, keys.Down):
		m.cursor++
		m.clampCursor()
	case key.Matches(msgKey, keys.Left):
		if m.column > 0 {
			m.column--
			m.clampCursor()
		}
	case key.Matches(msgKey, keys.Right):
		if m.column < len(state.Statuses)-1 {
			m.column++
			m.clampCursor()
		}
	case key.Matches(msgKey, keys.Filter):
		m.filter = (m.filter + 1) % len(priorityFilters)
		m.clampCursor()
	case key.Matches(msgKey, keys.New):
		return m.showForm(state.Task{})
	case key.Matches(msgKey, keys.Enter):
		if t, ok := m.selected(); ok {
			return m.showForm(t)
		}
	case key.Matches(msgKey, keys.Toggle):
		if t, ok := m.selected(); ok {
			m.state.ToggleTaskCompletion(t.ID)
			m.clampCursor()
			return m, statusCmd(fmt.Sprintf("Toggled %q", t.Title), false)
		}
	case key.Matches(msgKey, keys.MovePrev):
		return m.move(-1)
	case key.Matches(msgKey, keys.MoveNext):
		return m.move(1)
	case key.Matches(msgKey, keys.Delete):
		if t, ok := m.selected(); ok {
			m.state.DeleteTask(t.ID)
			m.clampCursor()
			return m, statusCmd(fmt.Sprintf("Deleted %q", t.Title), false)
		}
	}
	return m, nil
}

// move shifts the selected task one status column. Moving never counts as
// a completion; only toggling does.
func (m tasksModel) move(dir int) (tasksModel, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	to := m.column + dir
	if to < 0 || to >= len(state.Statuses) {
		return m, nil
	}
	m.state.MoveTask(t.ID, state.Statuses[to])
	m.clampCursor()
	return m, nil
}

func (m tasksModel) showForm(t state.Task) (tasksModel, tea.Cmd) {
	m.editingID = t.ID
	*m.formTitle = t.Title
	*m.formDescription = t.Description
	*m.formPriority = state.PriorityMedium
	*m.formStatus = state.Statuses[m.column]
	*m.formDueDays = ""
	if t.ID != "" {
		*m.formPriority = t.Priority
		*m.formStatus = t.Status
		if due, ok := t.Due(); ok {
			days := int(time.Until(due).Hours()/24 + 0.5)
			*m.formDueDays = strconv.Itoa(days)
		}
	}
	m.dueDaysWas = *m.formDueDays

	prioOptions := make([]huh.Option[state.Priority], len(state.Priorities))
	for i, p := range state.Priorities {
		prioOptions[i] = huh.NewOption(string(p), p)
	}
	statusOptions := make([]huh.Option[state.Status], len(state.Statuses))
	for i, s := range state.Statuses {
		statusOptions[i] = huh.NewOption(string(s), s)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(m.formTitle).Validate(requireText("title")),
			huh.NewInput().Title("Description").Value(m.formDescription),
			huh.NewSelect[state.Priority]().Title("Priority").Options(prioOptions...).Value(m.formPriority),
			huh.NewSelect[state.Status]().Title("Status").Options(statusOptions...).Value(m.formStatus),
			huh.NewInput().Title("Due in days (blank for none)").Value(m.formDueDays).Validate(optionalDays),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func optionalDays(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number of days")
	}
	return nil
}

// dueFromDays converts the form's "due in N days" into epoch ms.
func dueFromDays(s string) *int64 {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	due := time.Now().AddDate(0, 0, days).UnixMilli()
	return &due
}

func (m tasksModel) updateForm(msg tea.Msg) (tasksModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		m.saveForm()
		m.clampCursor()
		return m, nil
	}

	return m, cmd
}

func (m tasksModel) saveForm() {
	due := dueFromDays(*m.formDueDays)

	if m.editingID == "" {
		m.state.AddTask(state.TaskInput{
			Title:       *m.formTitle,
			Description: *m.formDescription,
			Status:      *m.formStatus,
			Priority:    *m.formPriority,
			DueDate:     due,
		})
		return
	}

	title := strings.TrimSpace(*m.formTitle)
	patch := state.TaskPatch{
		Description: m.formDescription,
		Status:      m.formStatus,
		Priority:    m.formPriority,
	}
	if title != "" {
		patch.Title = &title
	}
	if strings.TrimSpace(*m.formDueDays) != strings.TrimSpace(m.dueDaysWas) {
		patch.DueDate = due
		patch.ClearDueDate = due == nil
	}
	m.state.UpdateTask(m.editingID, patch)
}

func (m tasksModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Task")
		if m.editingID != "" {
			title = titleStyle.Render("Edit Task")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	filter := "all"
	if p := priorityFilters[m.filter]; p != "" {
		filter = string(p)
	}
	header := fmt.Sprintf("%s  %s",
		titleStyle.Render("Tasks"),
		mutedStyle.Render(fmt.Sprintf("%d%% complete · filter: %s", m.state.CompletionRate(), filter)),
	)

	colWidth := (w - 6) / len(state.Statuses)
	var columns []string
	for i := range state.Statuses {
		columns = append(columns, m.renderColumn(i, colWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	hint := mutedStyle.Render("  n: new  enter: edit  space: toggle  </>: move  d: delete  f: filter")
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", board, "", hint))
}

func (m tasksModel) renderColumn(col, width int) string {
	status := state.Statuses[col]
	tasks := m.columnTasks(col)

	heading := mutedStyle.Render(fmt.Sprintf("%s (%d)", strings.ToUpper(string(status)), len(tasks)))
	if col == m.column {
		heading = selectedItemStyle.Render(fmt.Sprintf("%s (%d)", strings.ToUpper(string(status)), len(tasks)))
	}

	rows := []string{heading, ""}
	if len(tasks) == 0 {
		rows = append(rows, mutedStyle.Render("  empty"))
	}
	for i, t := range tasks {
		cursor := "  "
		style := normalItemStyle
		if col == m.column && i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		dot := priorityStyle(t.Priority).Render("●")
		line := style.Render(cursor) + dot + " " + style.Render(t.Title)
		if due, ok := t.Due(); ok {
			line += mutedStyle.Render(" " + due.Local().Format("Jan 02"))
		}
		rows = append(rows, line)
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}
