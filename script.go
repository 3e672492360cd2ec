package tween

import (
	"encoding/json"
	"fmt"
)

// Payload defaults for a "start" step with missing fields.
const (
	DefaultFrom     float32 = 0
	DefaultTo       float32 = 1
	DefaultDuration float32 = 1
	DefaultEasing           = Linear
)

// Payload carries the loosely-typed arguments of a "start tween" event. Nil
// fields take the package defaults, so an explicit zero is distinct from an
// absent value.
type Payload struct {
	From     *float32 `json:"from,omitempty"`
	To       *float32 `json:"to,omitempty"`
	Duration *float32 `json:"duration,omitempty"`
	Easing   *Easing  `json:"easing,omitempty"`
}

// Args resolves p against DefaultFrom, DefaultTo, DefaultDuration and
// DefaultEasing.
func (p Payload) Args() (from, to, duration float32, easing Easing) {
	from, to, duration, easing = DefaultFrom, DefaultTo, DefaultDuration, DefaultEasing
	if p.From != nil {
		from = *p.From
	}
	if p.To != nil {
		to = *p.To
	}
	if p.Duration != nil {
		duration = *p.Duration
	}
	if p.Easing != nil {
		easing = *p.Easing
	}
	return from, to, duration, easing
}

// CreatePayload is Create with p's arguments resolved against the defaults.
func (m *Manager) CreatePayload(p Payload) Handle {
	return m.Create(p.Args())
}

// scriptStep is a single event in a tween script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Frames int    `json:"frames,omitempty"`
	Payload
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a parsed sequence of tween events.
type Script struct {
	steps []scriptStep
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// LoadScript parses a JSON tween script:
//
//	{"steps": [
//		{"action": "start", "label": "fade", "to": 100, "duration": 2, "easing": "Out Bounce"},
//		{"action": "wait", "frames": 30},
//		{"action": "pause", "label": "fade"},
//		{"action": "resume", "label": "fade"},
//		{"action": "stop", "label": "fade"}
//	]}
//
// Easing may be a display name or the enum number.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("tween: parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("tween: parse script: no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// Runner plays a Script against a Manager, one step per frame. Started
// tweens are remembered by label so the host can query them.
type Runner struct {
	manager   *Manager
	steps     []scriptStep
	handles   map[string]Handle
	cursor    int
	waitCount int
	done      bool
}

// NewRunner returns a Runner that plays s against m.
func NewRunner(m *Manager, s *Script) *Runner {
	return &Runner{
		manager: m,
		steps:   s.steps,
		handles: make(map[string]Handle),
	}
}

// Done reports whether every step has been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Handle returns the handle started under label, or NoHandle.
func (r *Runner) Handle(label string) Handle {
	return r.handles[label]
}

// Step executes the next step, or counts down a pending wait.
func (r *Runner) Step() {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "start":
		r.start(st)
	case "stop":
		r.manager.Destroy(r.handles[st.Label])
	case "pause":
		r.manager.SetPaused(r.handles[st.Label], true)
	case "resume":
		r.manager.SetPaused(r.handles[st.Label], false)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		r.manager.logger.Printf("tween: script step %d: unknown action %q", r.cursor-1, st.Action)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *Runner) start(st scriptStep) {
	h := r.manager.CreatePayload(st.Payload)
	if st.Label != "" {
		r.handles[st.Label] = h
	}
}
