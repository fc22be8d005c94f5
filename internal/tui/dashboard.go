package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/productive/internal/insight"
	"github.com/sadopc/productive/internal/state"
)

const insightPending = "Initializing neural engine..."

type dashboardModel struct {
	state    *state.Container
	provider insight.Provider
	width    int
	height   int

	insight        string
	loadingInsight bool

	chart barchart.Model
}

func newDashboardModel(c *state.Container, p insight.Provider) dashboardModel {
	return dashboardModel{
		state:    c,
		provider: p,
		insight:  insightPending,
		chart:    barchart.New(60, 10),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.buildChart()
}

// loadInsight asks the provider for a tip about the current board. The
// request runs off the update loop; its result arrives as an insightMsg.
func (d *dashboardModel) loadInsight() tea.Cmd {
	d.loadingInsight = true
	d.insight = insightPending
	tasks := d.state.Tasks()
	p := d.provider
	return func() tea.Msg {
		return insightMsg{text: insight.Insight(context.Background(), p, tasks)}
	}
}

func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case insightMsg:
		d.insight = msg.text
		d.loadingInsight = false
		return d, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Refresh) && !d.loadingInsight {
			cmd := d.loadInsight()
			return d, cmd
		}
	}
	return d, nil
}

func (d *dashboardModel) buildChart() {
	chartWidth := d.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 8
	if d.height > 30 {
		chartHeight = 12
	}

	d.chart = barchart.New(chartWidth, chartHeight)

	style := lipgloss.NewStyle().Foreground(colorPrimary)
	today := time.Now().Weekday().String()[:3]

	var bars []barchart.BarData
	for _, datum := range d.state.History().Datums() {
		barStyle := style
		if datum.Date == today {
			barStyle = lipgloss.NewStyle().Foreground(colorSecondary)
		}
		bars = append(bars, barchart.BarData{
			Label: datum.Date,
			Values: []barchart.BarValue{{
				Name:  datum.Date,
				Value: float64(datum.CompletedCount),
				Style: barStyle,
			}},
		})
	}

	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}

	contentWidth := d.width - 4

	panels := []string{d.renderInsightPanel(contentWidth)}
	if d.state.WidgetEnabled(state.WidgetStats) {
		panels = append(panels, d.renderStatsPanel(contentWidth))
	}
	if d.state.WidgetEnabled(state.WidgetTrend) {
		panels = append(panels, d.renderTrendPanel(contentWidth))
	}
	if d.state.WidgetEnabled(state.WidgetPriority) {
		panels = append(panels, d.renderPriorityPanel(contentWidth))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func (d dashboardModel) renderInsightPanel(w int) string {
	title := titleStyle.Render("Neural Insight")
	body := highlightStyle.Width(w - 6).Render(fmt.Sprintf("%q", d.insight))
	if d.loadingInsight {
		body = mutedStyle.Render(d.insight)
	}
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (d dashboardModel) renderStatsPanel(w int) string {
	active := len(d.state.ActiveTasks(""))
	rate := d.state.CompletionRate()

	// Focus time includes the stopwatch's unsaved run.
	running := time.Duration(d.state.Timers().StopwatchMs) * time.Millisecond
	focusTotal := d.state.TotalFocus() + running

	cell := lipgloss.NewStyle().Width((w - 6) / 4)
	stat := func(label, value string) string {
		return cell.Render(lipgloss.JoinVertical(lipgloss.Left,
			mutedStyle.Render(label),
			titleStyle.Render(value),
		))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Active Tasks", fmt.Sprintf("%d", active)),
		stat("Completion", fmt.Sprintf("%d%%", rate)),
		stat("Focus Time", formatHoursMinutes(focusTotal)),
		stat("Avg Session", formatHoursMinutes(d.state.AverageFocus())),
	)
	return panelStyle.Width(w).Render(row)
}

func (d dashboardModel) renderTrendPanel(w int) string {
	history := d.state.History()
	title := fmt.Sprintf("%s  %s",
		titleStyle.Render("Completions by Weekday"),
		mutedStyle.Render(fmt.Sprintf("%d total", history.Total())),
	)
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, title, "", d.chart.View()))
}

func (d dashboardModel) renderPriorityPanel(w int) string {
	counts := d.state.PriorityCounts()
	statuses := d.state.StatusCounts()

	var rows []string
	rows = append(rows, titleStyle.Render("Urgency"))
	for _, p := range []state.Priority{state.PriorityHigh, state.PriorityMedium, state.PriorityLow} {
		bar := strings.Repeat("■", counts[p])
		rows = append(rows, fmt.Sprintf("  %-8s %s %d", p, priorityStyle(p).Render(bar), counts[p]))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %d todo  %d in progress  %d done",
		statuses[state.StatusTodo], statuses[state.StatusInProgress], statuses[state.StatusDone])))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func priorityStyle(p state.Priority) lipgloss.Style {
	switch p {
	case state.PriorityHigh:
		return errorStyle
	case state.PriorityMedium:
		return warningStyle
	}
	return successStyle
}
