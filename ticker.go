package tween

import "math"

// DefaultDelta is the tick length used when the host supplies no delta time
// (a NaN dt).
const DefaultDelta float32 = 1.0 / 60

// Ticker drives a Manager from the host's frame loop. Call Tick exactly once
// per simulated frame.
type Ticker struct {
	Manager *Manager

	// Simulating reports whether the host is running its simulation. While it
	// returns false (for example in an editor) ticks are skipped and no time
	// passes for any tween. Nil means always simulating.
	Simulating func() bool

	// Runner, if set, executes its next scripted step before the manager
	// advances, the same way a host fires its events before the tick update.
	Runner *Runner

	ticks   uint64
	skipped uint64
}

// NewTicker returns a Ticker for m that always simulates.
func NewTicker(m *Manager) *Ticker {
	return &Ticker{Manager: m}
}

// Tick applies one frame of dt seconds. Pass NaN when the host has no delta
// for this frame and DefaultDelta is used instead. A zero dt is a frozen frame
// and is passed through unchanged. It reports whether the frame was simulated.
func (t *Ticker) Tick(dt float32) bool {
	if t.Simulating != nil && !t.Simulating() {
		t.skipped++
		return false
	}
	if math.IsNaN(float64(dt)) {
		dt = DefaultDelta
	}
	if t.Runner != nil {
		t.Runner.Step()
	}
	t.Manager.Advance(dt)
	t.ticks++
	return true
}

// Ticks returns the number of frames that advanced the manager.
func (t *Ticker) Ticks() uint64 {
	return t.ticks
}

// Skipped returns the number of frames dropped while not simulating.
func (t *Ticker) Skipped() uint64 {
	return t.skipped
}
