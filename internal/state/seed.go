package state

import "time"

const day = 24 * time.Hour

// DefaultBrandColors is the "Solar" preset.
var DefaultBrandColors = [3]string{"#FF8C42", "#F04393", "#8D46E7"}

// DefaultTimerSeconds is the countdown length used before the user picks one.
const DefaultTimerSeconds = 1500

// Seed returns the sample state used on first start and whenever the stored
// blob cannot be read. Timestamps are relative to now.
func Seed(now time.Time) Snapshot {
	at := func(offset time.Duration) int64 { return now.Add(offset).UnixMilli() }
	due := at(2 * day)

	var h History
	h[time.Monday] = 3
	h[time.Tuesday] = 5
	h[time.Wednesday] = 2
	h[time.Thursday] = 8
	h[time.Friday] = 4
	h[time.Saturday] = 6
	h[time.Sunday] = 1

	return Snapshot{
		Version: SnapshotVersion,
		Tasks: []Task{
			{ID: "1", Title: "Architect System Core", Status: StatusDone, Priority: PriorityHigh, CreatedAt: at(-5 * day)},
			{ID: "2", Title: "Optimize Neural Pathing", Status: StatusTodo, Priority: PriorityMedium, CreatedAt: at(-2 * day), DueDate: &due},
			{ID: "3", Title: "Deployment Sync", Status: StatusDone, Priority: PriorityLow, CreatedAt: at(-1 * day)},
			{ID: "4", Title: "UI Refinement", Status: StatusDone, Priority: PriorityHigh, CreatedAt: at(-4 * day)},
			{ID: "5", Title: "Security Protocol Audit", Status: StatusInProgress, Priority: PriorityHigh, CreatedAt: at(0)},
			{ID: "6", Title: "Database Optimization", Status: StatusDone, Priority: PriorityMedium, CreatedAt: at(-3 * day)},
		},
		FocusSessions: []FocusSession{
			{ID: "s1", DurationMs: 2700000, Timestamp: at(-3 * day)},
			{ID: "s2", DurationMs: 1800000, Timestamp: at(-2 * day)},
			{ID: "s3", DurationMs: 4500000, Timestamp: at(-1 * day)},
			{ID: "s4", DurationMs: 3600000, Timestamp: at(-4 * day)},
		},
		PerformanceHistory: h,
		Timers:             Timers{TimerSeconds: DefaultTimerSeconds},
		Settings: Settings{
			Theme:       ThemeObsidian,
			BrandColors: DefaultBrandColors,
			Widgets: map[Widget]bool{
				WidgetStats:    true,
				WidgetTrend:    true,
				WidgetPriority: true,
				WidgetFocus:    true,
				WidgetZen:      true,
				WidgetCoffee:   false,
			},
		},
	}
}
