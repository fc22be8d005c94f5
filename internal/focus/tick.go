// Package focus provides the stopwatch and countdown tick sources behind the
// focus screen. They hold no goroutines: the caller schedules each Tick
// (tea.Tick in the TUI) and feeds it back through Advance.
package focus

import (
	"sync/atomic"
	"time"
)

// DefaultInterval is the nominal tick period.
const DefaultInterval = time.Second

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// Tick identifies one scheduled tick. ID names the timer, Gen the chain the
// tick belongs to. A tick from a superseded chain is ignored.
type Tick struct {
	ID  int
	Gen int
}

// source is the generation bookkeeping shared by both timers.
type source struct {
	id       int
	gen      int
	running  bool
	interval time.Duration
}

func newSource(interval time.Duration) source {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return source{id: nextID(), interval: interval}
}

// begin invalidates any outstanding chain and opens a new one.
func (s *source) begin() Tick {
	s.gen++
	s.running = true
	return Tick{ID: s.id, Gen: s.gen}
}

func (s *source) halt() {
	s.gen++
	s.running = false
}

func (s *source) accepts(t Tick) bool {
	return s.running && t.ID == s.id && t.Gen == s.gen
}

func (s source) ID() int                 { return s.id }
func (s source) Running() bool           { return s.running }
func (s source) Interval() time.Duration { return s.interval }
