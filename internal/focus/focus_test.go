package focus

import (
	"testing"
	"time"
)

// ============================================================
// Stopwatch
// ============================================================

func TestStopwatchAccumulates(t *testing.T) {
	sw := NewStopwatch(time.Second)
	tick := sw.Start()
	for i := 0; i < 3; i++ {
		if !sw.Advance(tick) {
			t.Fatalf("tick %d rejected", i)
		}
	}
	if sw.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v, want 3s", sw.Elapsed())
	}
}

func TestStopwatchRestartDropsOldChain(t *testing.T) {
	sw := NewStopwatch(time.Second)
	old := sw.Start()
	fresh := sw.Start()

	if sw.Advance(old) {
		t.Fatal("stale tick was accepted")
	}
	if !sw.Advance(fresh) {
		t.Fatal("current tick was rejected")
	}
	if sw.Elapsed() != time.Second {
		t.Fatalf("elapsed = %v, want 1s", sw.Elapsed())
	}
}

func TestStopwatchStopIgnoresTicks(t *testing.T) {
	sw := NewStopwatch(time.Second)
	tick := sw.Start()
	sw.Advance(tick)
	sw.Stop()

	if sw.Advance(tick) {
		t.Fatal("tick accepted after stop")
	}
	if sw.Running() {
		t.Fatal("still running")
	}
	if sw.Elapsed() != time.Second {
		t.Fatalf("stop should keep elapsed, got %v", sw.Elapsed())
	}

	// Resuming continues from the kept value.
	tick = sw.Start()
	sw.Advance(tick)
	if sw.Elapsed() != 2*time.Second {
		t.Fatalf("elapsed = %v, want 2s", sw.Elapsed())
	}
}

func TestStopwatchReset(t *testing.T) {
	sw := NewStopwatch(time.Second)
	tick := sw.Start()
	sw.Advance(tick)
	sw.Reset()
	if sw.Elapsed() != 0 || sw.Running() {
		t.Fatalf("reset left elapsed=%v running=%v", sw.Elapsed(), sw.Running())
	}
}

func TestStopwatchSet(t *testing.T) {
	sw := NewStopwatch(0)
	if sw.Interval() != DefaultInterval {
		t.Fatalf("interval = %v, want default", sw.Interval())
	}
	sw.Set(90 * time.Second)
	if sw.Elapsed() != 90*time.Second {
		t.Fatalf("elapsed = %v", sw.Elapsed())
	}
	sw.Set(-time.Second)
	if sw.Elapsed() != 0 {
		t.Fatalf("negative set should clamp, got %v", sw.Elapsed())
	}
}

func TestTicksAreBoundToTheirTimer(t *testing.T) {
	a := NewStopwatch(time.Second)
	b := NewStopwatch(time.Second)
	if a.ID() == b.ID() {
		t.Fatal("timers share an id")
	}
	ta := a.Start()
	b.Start()
	if b.Advance(ta) {
		t.Fatal("foreign tick accepted")
	}
}

// ============================================================
// Countdown
// ============================================================

func TestCountdownRunsToZero(t *testing.T) {
	cd := NewCountdown(3*time.Second, time.Second)
	tick, ok := cd.Start()
	if !ok {
		t.Fatal("start refused")
	}

	for i := 0; i < 2; i++ {
		accepted, done := cd.Advance(tick)
		if !accepted || done {
			t.Fatalf("tick %d: accepted=%v done=%v", i, accepted, done)
		}
	}
	accepted, done := cd.Advance(tick)
	if !accepted || !done {
		t.Fatalf("final tick: accepted=%v done=%v", accepted, done)
	}
	if cd.Remaining() != 0 || cd.Running() {
		t.Fatalf("remaining=%v running=%v", cd.Remaining(), cd.Running())
	}

	// Halted at zero: the chain is dead.
	if accepted, _ := cd.Advance(tick); accepted {
		t.Fatal("tick accepted after reaching zero")
	}
}

func TestCountdownRefusesEmptyStart(t *testing.T) {
	cd := NewCountdown(0, time.Second)
	if _, ok := cd.Start(); ok {
		t.Fatal("started with nothing remaining")
	}
}

func TestCountdownSetStops(t *testing.T) {
	cd := NewCountdown(25*time.Minute, time.Second)
	tick, _ := cd.Start()
	cd.Set(15 * time.Minute)

	if cd.Running() {
		t.Fatal("set should stop the countdown")
	}
	if accepted, _ := cd.Advance(tick); accepted {
		t.Fatal("tick from before set was accepted")
	}
	if cd.Seconds() != 900 {
		t.Fatalf("seconds = %d, want 900", cd.Seconds())
	}
}

func TestCountdownDoubleStartSingleChain(t *testing.T) {
	cd := NewCountdown(10*time.Second, time.Second)
	first, _ := cd.Start()
	second, _ := cd.Start()

	cd.Advance(first)
	cd.Advance(second)
	if cd.Seconds() != 9 {
		t.Fatalf("seconds = %d, want 9 (one chain only)", cd.Seconds())
	}
}

func TestCountdownSecondsRoundsUp(t *testing.T) {
	cd := NewCountdown(1500*time.Millisecond, time.Second)
	if cd.Seconds() != 2 {
		t.Fatalf("seconds = %d, want 2", cd.Seconds())
	}
}
