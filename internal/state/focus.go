package state

import "time"

// MinSessionMs is the discard threshold: sessions must be strictly longer.
const MinSessionMs = 1000

// RecordElapsed logs a focus session of ms milliseconds and resets the
// stopwatch. Sessions of MinSessionMs or less are dropped and leave the
// stopwatch untouched.
func (c *Container) RecordElapsed(ms int64) bool {
	if !c.appendSession(ms) {
		return false
	}
	c.snap.Timers.StopwatchMs = 0
	c.snap.Timers.IsStopwatchRunning = false
	c.commit()
	return true
}

// AddFocusSession logs a session timed elsewhere. The stopwatch is left
// alone.
func (c *Container) AddFocusSession(ms int64) bool {
	if !c.appendSession(ms) {
		return false
	}
	c.commit()
	return true
}

func (c *Container) appendSession(ms int64) bool {
	if ms <= MinSessionMs {
		return false
	}
	c.snap.FocusSessions = append(c.snap.FocusSessions, FocusSession{
		ID:         c.newID(),
		DurationMs: ms,
		Timestamp:  c.now().UnixMilli(),
	})
	return true
}

// CompleteFocusSession records the stopwatch's accumulated time.
func (c *Container) CompleteFocusSession() bool {
	return c.RecordElapsed(c.snap.Timers.StopwatchMs)
}

func (c *Container) FocusSessions() []FocusSession {
	return c.Snapshot().FocusSessions
}

// TotalFocus sums every recorded session.
func (c *Container) TotalFocus() time.Duration {
	var ms int64
	for _, s := range c.snap.FocusSessions {
		ms += s.DurationMs
	}
	return time.Duration(ms) * time.Millisecond
}

// AverageFocus is the mean session length, zero when nothing is logged.
func (c *Container) AverageFocus() time.Duration {
	n := len(c.snap.FocusSessions)
	if n == 0 {
		return 0
	}
	return c.TotalFocus() / time.Duration(n)
}

func (c *Container) Timers() Timers { return c.snap.Timers }

func (c *Container) SetStopwatchMs(ms int64) {
	c.snap.Timers.StopwatchMs = ms
	c.commit()
}

func (c *Container) SetStopwatchRunning(running bool) {
	c.snap.Timers.IsStopwatchRunning = running
	c.commit()
}

func (c *Container) SetTimerSeconds(secs int) {
	c.snap.Timers.TimerSeconds = secs
	c.commit()
}

func (c *Container) SetTimerRunning(running bool) {
	c.snap.Timers.IsTimerRunning = running
	c.commit()
}

// RecordCompletion bumps the history bucket for at's weekday.
func (c *Container) RecordCompletion(at time.Time) {
	c.snap.PerformanceHistory.record(at)
	c.commit()
}

func (c *Container) History() History { return c.snap.PerformanceHistory }
