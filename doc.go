// Package tween runs many independent scalar tweens addressed by handle.
//
// A [Manager] owns every tween. Create one explicitly and pass it to whatever
// needs it; there is no package-level instance.
//
//	m := tween.NewManager(tween.Config{})
//	h := m.Create(0, 100, 2, tween.OutBounce)
//
//	// once per simulated frame:
//	m.Advance(dt)
//
//	// anywhere in the frame:
//	x := m.Value(h)
//
// # Lifetime
//
// [Manager.Advance] is the only place a tween finishes. Each call first
// removes tweens whose elapsed time already reached their duration, then
// advances the rest. A tween whose duration has just been reached reads
// exactly its end value until the following Advance removes it. After that
// its handle no longer resolves: [Manager.Value] returns 0,
// [Manager.IsRunning] returns false, and the mutating calls do nothing.
// Stale handles are expected and never an error.
//
// # Easing
//
// Linear plus thirty in/out curves (31 in all) are available as [Easing]
// constants, backed by the [gween] ease functions. [Easing.Ease] maps
// normalized progress and hits 0 and 1 exactly at the endpoints.
//
// # Hosts
//
// [Ticker] calls Advance once per frame and skips frames while the host is
// not simulating. [Runner] plays JSON event scripts with the default payload
// (from 0, to 1, duration 1, Linear). The ecs subpackage drives a Manager
// from a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tween
