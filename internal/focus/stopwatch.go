package focus

import "time"

// Stopwatch accumulates elapsed time, one interval per accepted tick.
type Stopwatch struct {
	source
	elapsed time.Duration
}

func NewStopwatch(interval time.Duration) *Stopwatch {
	return &Stopwatch{source: newSource(interval)}
}

// Start begins a new tick chain and returns its first tick. Calling Start
// while running restarts the chain; the elapsed time is kept.
func (s *Stopwatch) Start() Tick {
	return s.begin()
}

// Stop pauses the stopwatch, keeping the elapsed time.
func (s *Stopwatch) Stop() {
	s.halt()
}

// Reset stops the stopwatch and clears the elapsed time.
func (s *Stopwatch) Reset() {
	s.halt()
	s.elapsed = 0
}

// Set restores a previously persisted elapsed time.
func (s *Stopwatch) Set(d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.elapsed = d
}

// Advance applies t. It reports false for stale or foreign ticks, in which
// case the caller must not schedule a follow-up.
func (s *Stopwatch) Advance(t Tick) bool {
	if !s.accepts(t) {
		return false
	}
	s.elapsed += s.interval
	return true
}

func (s *Stopwatch) Elapsed() time.Duration { return s.elapsed }
