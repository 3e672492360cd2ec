package tween

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte(`{`)); err == nil {
		t.Error("expected error for bad JSON")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty script")
	}
	if _, err := LoadScript([]byte(`{"steps": [{"action": "start", "easing": "wobble"}]}`)); err == nil {
		t.Error("expected error for unknown easing")
	}
}

func TestRunnerStartDefaults(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"action": "start", "label": "a"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	m := newTestManager()
	r := NewRunner(m, s)
	r.Step()

	rec, ok := m.Find(r.Handle("a"))
	if !ok {
		t.Fatal("start step did not create a tween")
	}
	if rec.From != DefaultFrom || rec.To != DefaultTo || rec.Duration != DefaultDuration || rec.Easing != DefaultEasing {
		t.Errorf("record = %+v, want defaults", rec)
	}
	if !r.Done() {
		t.Error("runner should be done after its only step")
	}
}

func TestRunnerStartExplicitZero(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "start", "label": "a", "from": 5, "to": 0, "duration": 2, "easing": 29}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	m := newTestManager()
	r := NewRunner(m, s)
	r.Step()

	rec, _ := m.Find(r.Handle("a"))
	if rec.From != 5 || rec.To != 0 || rec.Duration != 2 || rec.Easing != OutBounce {
		t.Errorf("record = %+v", rec)
	}
}

func TestRunnerFullScript(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "start", "label": "fade", "from": 0, "to": 100, "duration": 10, "easing": "Linear"},
		{"action": "wait", "frames": 3},
		{"action": "pause", "label": "fade"},
		{"action": "wait", "frames": 2},
		{"action": "resume", "label": "fade"},
		{"action": "stop", "label": "fade"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 6 {
		t.Fatalf("Len = %d", s.Len())
	}

	m := newTestManager()
	r := NewRunner(m, s)
	tk := &Ticker{Manager: m, Runner: r}

	tk.Tick(1) // start, then advance 1s
	h := r.Handle("fade")
	if v := m.Value(h); v != 10 {
		t.Fatalf("Value after first tick = %f, want 10", v)
	}

	tk.Tick(1) // wait 1/3
	tk.Tick(1) // wait 2/3
	tk.Tick(1) // wait 3/3
	if v := m.Value(h); v != 40 {
		t.Fatalf("Value after wait = %f, want 40", v)
	}

	tk.Tick(1) // pause
	if !m.IsPaused(h) {
		t.Fatal("expected paused")
	}
	tk.Tick(1) // wait
	tk.Tick(1) // wait
	if v := m.Value(h); v != 40 {
		t.Fatalf("paused Value = %f, want 40", v)
	}

	tk.Tick(1) // resume
	if m.IsPaused(h) {
		t.Fatal("expected resumed")
	}
	if v := m.Value(h); v != 50 {
		t.Fatalf("Value after resume tick = %f, want 50", v)
	}

	tk.Tick(1) // stop
	if m.IsRunning(h) {
		t.Fatal("expected stopped")
	}
	if !r.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerUnknownLabelsAreNoOps(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [
		{"action": "start", "label": "a"},
		{"action": "pause", "label": "missing"},
		{"action": "stop", "label": "missing"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	m := newTestManager()
	r := NewRunner(m, s)
	for !r.Done() {
		r.Step()
	}
	if r.Handle("missing") != NoHandle {
		t.Error("missing label should resolve to NoHandle")
	}
	if !m.IsRunning(r.Handle("a")) || m.IsPaused(r.Handle("a")) {
		t.Error("unrelated tween should be untouched")
	}
}

func TestRunnerUnknownActionLogged(t *testing.T) {
	s, err := LoadScript([]byte(`{"steps": [{"action": "explode"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	m := NewManager(Config{Logger: log.New(&buf, "", 0)})
	r := NewRunner(m, s)
	r.Step()

	if !strings.Contains(buf.String(), `unknown action "explode"`) {
		t.Errorf("log = %q", buf.String())
	}
	if m.Len() != 0 {
		t.Error("unknown action should not create tweens")
	}
}

func TestPayloadArgs(t *testing.T) {
	from, to := float32(3), float32(0)
	e := InCirc
	p := Payload{From: &from, To: &to, Easing: &e}

	gotFrom, gotTo, gotDuration, gotEasing := p.Args()
	if gotFrom != 3 || gotTo != 0 || gotDuration != DefaultDuration || gotEasing != InCirc {
		t.Errorf("Args = %f, %f, %f, %v", gotFrom, gotTo, gotDuration, gotEasing)
	}

	m := newTestManager()
	h := m.CreatePayload(Payload{})
	r, ok := m.Find(h)
	if !ok {
		t.Fatal("CreatePayload did not create a tween")
	}
	if r.From != 0 || r.To != 1 || r.Duration != 1 || r.Easing != Linear {
		t.Errorf("record = %+v, want defaults", r)
	}
}
