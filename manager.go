package tween

import (
	"log"
	"math"
)

// Handle identifies a tween owned by a Manager. Handles are assigned in
// increasing order and are never handed out twice by the same Manager, so a
// stale handle simply stops resolving once its tween is destroyed or expires.
type Handle uint32

// NoHandle is the zero Handle. It never refers to a tween and is returned by
// Create when a capacity-bounded Manager is full.
const NoHandle Handle = 0

// Valid reports whether h is not the NoHandle sentinel. It says nothing about
// whether the tween is still alive; use Manager.IsRunning for that.
func (h Handle) Valid() bool {
	return h != NoHandle
}

// Record is one live interpolation. Manager methods hand out copies; the
// Manager keeps the only mutable instance.
type Record struct {
	Handle   Handle
	From     float32
	To       float32
	Duration float32 // seconds; <= 0 or NaN means complete on the next Advance
	Elapsed  float32 // seconds since creation, excluding paused ticks
	Easing   Easing
	Paused   bool
}

// Done reports whether the record has reached its duration. A NaN duration
// counts as done.
func (r Record) Done() bool {
	return !(r.Elapsed < r.Duration)
}

// Progress returns elapsed/duration clamped to [0, 1]. A non-positive or NaN
// duration counts as complete.
func (r Record) Progress() float32 {
	if !(r.Duration > 0) || r.Done() {
		return 1
	}
	if r.Elapsed <= 0 {
		return 0
	}
	return r.Elapsed / r.Duration
}

// Value returns the interpolated value at the record's current elapsed time.
// Once the duration is reached the result is exactly To.
func (r Record) Value() float32 {
	if !(r.Duration > 0) || r.Done() {
		return r.To
	}
	return r.From + (r.To-r.From)*r.Easing.Ease(r.Elapsed/r.Duration)
}

// Config holds optional Manager settings. The zero value is an unbounded
// Manager that logs through the standard logger.
type Config struct {
	// MaxTweens caps the number of live tweens. Zero means no cap. When the
	// cap is reached Create logs a diagnostic and returns NoHandle.
	MaxTweens int

	// Logger receives diagnostics. Nil uses log.Default().
	Logger *log.Logger

	// Debug logs per-tick sweep counts.
	Debug bool
}

// Manager owns a set of live tweens and advances them once per tick.
//
// A Manager is not safe for concurrent use. All calls, including Advance,
// must come from the same simulation goroutine or be serialized by the caller.
type Manager struct {
	records []Record
	index   map[Handle]int
	last    Handle

	maxTweens int
	logger    *log.Logger
	debug     bool
	destroyed int
}

// NewManager creates an empty Manager.
func NewManager(cfg Config) *Manager {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	capacity := 16
	if cfg.MaxTweens > 0 && cfg.MaxTweens < capacity {
		capacity = cfg.MaxTweens
	}
	return &Manager{
		records:   make([]Record, 0, capacity),
		index:     make(map[Handle]int, capacity),
		maxTweens: cfg.MaxTweens,
		logger:    logger,
		debug:     cfg.Debug,
	}
}

// Create starts a tween from `from` to `to` over duration seconds and returns
// its handle. The tween starts unpaused with zero elapsed time.
func (m *Manager) Create(from, to, duration float32, easing Easing) Handle {
	if m.maxTweens > 0 && len(m.records) >= m.maxTweens {
		m.logger.Printf("tween: only %d tweens can be active at the same time", m.maxTweens)
		return NoHandle
	}
	m.last++
	if m.last == NoHandle {
		// 32-bit wraparound; skip the sentinel.
		m.last++
	}
	h := m.last
	m.index[h] = len(m.records)
	m.records = append(m.records, Record{
		Handle:   h,
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
	})
	return h
}

// Destroy removes the tween behind h. Unknown or expired handles are ignored.
func (m *Manager) Destroy(h Handle) {
	i, ok := m.index[h]
	if !ok {
		return
	}
	m.removeAt(i)
	m.destroyed++
}

// Find returns a copy of the record behind h.
func (m *Manager) Find(h Handle) (Record, bool) {
	i, ok := m.index[h]
	if !ok {
		return Record{}, false
	}
	return m.records[i], true
}

// Value returns the current interpolated value of h, or 0 if h does not
// resolve to a live tween.
func (m *Manager) Value(h Handle) float32 {
	i, ok := m.index[h]
	if !ok {
		return 0
	}
	return m.records[i].Value()
}

// Progress returns the normalized progress of h in [0, 1], or 0 if h does not
// resolve to a live tween.
func (m *Manager) Progress(h Handle) float32 {
	i, ok := m.index[h]
	if !ok {
		return 0
	}
	return m.records[i].Progress()
}

// IsRunning reports whether h resolves to a live tween, paused or not.
func (m *Manager) IsRunning(h Handle) bool {
	_, ok := m.index[h]
	return ok
}

// IsPaused reports whether h resolves to a live, paused tween.
func (m *Manager) IsPaused(h Handle) bool {
	i, ok := m.index[h]
	return ok && m.records[i].Paused
}

// SetPaused pauses or resumes h. Unknown handles are ignored.
func (m *Manager) SetPaused(h Handle, paused bool) {
	if i, ok := m.index[h]; ok {
		m.records[i].Paused = paused
	}
}

// Advance is the per-tick update. It first sweeps out every tween whose
// elapsed time already reached its duration, then adds dt to the elapsed time
// of each remaining unpaused tween. A tween therefore reads exactly To for one
// full tick before it is removed.
//
// A dt that is not positive and finite adds no time; the sweep still runs.
func (m *Manager) Advance(dt float32) {
	expired := m.sweep()
	if !(dt > 0) || dt > math.MaxFloat32 {
		if m.debug && dt != 0 {
			m.logger.Printf("tween: ignoring delta %v", dt)
		}
		dt = 0
	}
	for i := range m.records {
		if !m.records[i].Paused {
			m.records[i].Elapsed += dt
		}
	}
	if m.debug && (expired > 0 || m.destroyed > 0) {
		m.logger.Printf("tween: expired %d | destroyed %d | live %d", expired, m.destroyed, len(m.records))
	}
	m.destroyed = 0
}

// sweep removes done records with swap-with-last compaction and returns how
// many were removed. The slot at i is re-checked after a swap because it now
// holds a record that has not been examined yet.
func (m *Manager) sweep() int {
	removed := 0
	for i := 0; i < len(m.records); {
		if m.records[i].Done() {
			m.removeAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

func (m *Manager) removeAt(i int) {
	last := len(m.records) - 1
	delete(m.index, m.records[i].Handle)
	if i != last {
		m.records[i] = m.records[last]
		m.index[m.records[i].Handle] = i
	}
	m.records[last] = Record{}
	m.records = m.records[:last]
}

// Logger returns the diagnostic logger the manager was configured with.
func (m *Manager) Logger() *log.Logger {
	return m.logger
}

// Len returns the number of live tweens.
func (m *Manager) Len() int {
	return len(m.records)
}

// Each calls fn with a copy of every live record until fn returns false.
// Iteration order is storage order, which removals may change.
func (m *Manager) Each(fn func(Record) bool) {
	for _, r := range m.records {
		if !fn(r) {
			return
		}
	}
}

// Clear destroys every live tween. Handles issued afterwards still continue
// from the last one issued.
func (m *Manager) Clear() {
	m.destroyed += len(m.records)
	clear(m.records)
	m.records = m.records[:0]
	clear(m.index)
}
