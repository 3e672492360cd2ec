package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	donburiecs "github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// StateData is the per-world tween state, stored on a singleton entity.
type StateData struct {
	Manager *tween.Manager

	// Editing suspends time: events still apply but no tween advances.
	Editing bool
}

// State is the singleton component holding a world's StateData.
var State = donburi.NewComponentType[StateData]()

// BindingData links an entity to the tween started for it. The system
// refreshes Value, Running and Paused every tick. After the tween ends,
// Running is false and Value keeps the last value read.
type BindingData struct {
	Handle  tween.Handle
	Value   float32
	Running bool
	Paused  bool
}

// Binding is the component receiving an entity's tween output.
var Binding = donburi.NewComponentType[BindingData]()

// StartEvent starts a tween for Entity, replacing any tween already bound
// to it. Absent payload fields take the tween package defaults.
type StartEvent struct {
	Entity donburi.Entity
	tween.Payload
}

// StopEvent destroys the tween bound to Entity.
type StopEvent struct {
	Entity donburi.Entity
}

// PauseEvent pauses or resumes the tween bound to Entity.
type PauseEvent struct {
	Entity donburi.Entity
	Paused bool
}

var (
	StartEventType = events.NewEventType[StartEvent]()
	StopEventType  = events.NewEventType[StopEvent]()
	PauseEventType = events.NewEventType[PauseEvent]()
)

// Setup stores m as the world's tween manager and subscribes the event
// handlers. Calling it again replaces the manager without subscribing twice.
func Setup(w donburi.World, m *tween.Manager) *StateData {
	if entry, ok := State.First(w); ok {
		st := State.Get(entry)
		st.Manager = m
		return st
	}
	entry := w.Entry(w.Create(State))
	State.SetValue(entry, StateData{Manager: m})

	StartEventType.Subscribe(w, onStart)
	StopEventType.Subscribe(w, onStop)
	PauseEventType.Subscribe(w, onPause)
	return State.Get(entry)
}

// GetOrCreate returns the world's tween state, creating an unbounded manager
// on first use.
func GetOrCreate(w donburi.World) *StateData {
	if entry, ok := State.First(w); ok {
		return State.Get(entry)
	}
	return Setup(w, tween.NewManager(tween.Config{}))
}

// NewSystem returns a system that applies queued tween events, advances the
// manager by dt() seconds and refreshes every Binding. A nil dt uses
// tween.DefaultDelta.
func NewSystem(dt func() float32) func(*donburiecs.ECS) {
	return func(e *donburiecs.ECS) {
		Update(e.World, dt)
	}
}

// Update runs one tick of the tween system against w.
func Update(w donburi.World, dt func() float32) {
	st := GetOrCreate(w)

	StartEventType.ProcessEvents(w)
	StopEventType.ProcessEvents(w)
	PauseEventType.ProcessEvents(w)

	if !st.Editing {
		delta := tween.DefaultDelta
		if dt != nil {
			delta = dt()
		}
		st.Manager.Advance(delta)
	}

	Binding.Each(w, func(entry *donburi.Entry) {
		refresh(st.Manager, Binding.Get(entry))
	})
}

func refresh(m *tween.Manager, b *BindingData) {
	r, ok := m.Find(b.Handle)
	if !ok {
		b.Running = false
		b.Paused = false
		return
	}
	b.Value = r.Value()
	b.Running = true
	b.Paused = r.Paused
}

func onStart(w donburi.World, ev StartEvent) {
	m := GetOrCreate(w).Manager
	if !w.Valid(ev.Entity) {
		m.Logger().Printf("tween: start event for invalid entity %v", ev.Entity)
		return
	}
	entry := w.Entry(ev.Entity)

	h := m.CreatePayload(ev.Payload)
	if h == tween.NoHandle {
		return
	}

	if entry.HasComponent(Binding) {
		b := Binding.Get(entry)
		m.Destroy(b.Handle)
		*b = BindingData{}
	} else {
		donburi.Add(entry, Binding, &BindingData{})
	}
	b := Binding.Get(entry)
	b.Handle = h
	refresh(m, b)
}

func onStop(w donburi.World, ev StopEvent) {
	b := binding(w, ev.Entity)
	if b == nil {
		return
	}
	GetOrCreate(w).Manager.Destroy(b.Handle)
	b.Running = false
	b.Paused = false
}

func onPause(w donburi.World, ev PauseEvent) {
	b := binding(w, ev.Entity)
	if b == nil {
		return
	}
	m := GetOrCreate(w).Manager
	m.SetPaused(b.Handle, ev.Paused)
	b.Paused = m.IsPaused(b.Handle)
}

func binding(w donburi.World, e donburi.Entity) *BindingData {
	if !w.Valid(e) {
		return nil
	}
	entry := w.Entry(e)
	if !entry.HasComponent(Binding) {
		return nil
	}
	return Binding.Get(entry)
}
