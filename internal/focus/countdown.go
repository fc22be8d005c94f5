package focus

import "time"

// Countdown counts down to zero, one interval per accepted tick, and halts
// there.
type Countdown struct {
	source
	remaining time.Duration
}

func NewCountdown(d, interval time.Duration) *Countdown {
	c := &Countdown{source: newSource(interval)}
	c.Set(d)
	return c
}

// Start begins a new tick chain. It refuses to start with nothing left.
func (c *Countdown) Start() (Tick, bool) {
	if c.remaining <= 0 {
		return Tick{}, false
	}
	return c.begin(), true
}

func (c *Countdown) Stop() {
	c.halt()
}

// Set stops the countdown and loads d.
func (c *Countdown) Set(d time.Duration) {
	c.halt()
	if d < 0 {
		d = 0
	}
	c.remaining = d
}

// Advance applies t. accepted is false for stale or foreign ticks. done
// reports that this tick reached zero; the countdown is stopped and no
// follow-up should be scheduled.
func (c *Countdown) Advance(t Tick) (accepted, done bool) {
	if !c.accepts(t) {
		return false, false
	}
	c.remaining -= c.interval
	if c.remaining <= 0 {
		c.remaining = 0
		c.halt()
		return true, true
	}
	return true, false
}

func (c *Countdown) Remaining() time.Duration { return c.remaining }

// Seconds is the remaining time rounded up to whole seconds.
func (c *Countdown) Seconds() int {
	return int((c.remaining + time.Second - 1) / time.Second)
}
