// Package ecs drives a tween Manager from a [Donburi] world.
//
// Hosts publish [StartEventType], [StopEventType] and [PauseEventType]
// events aimed at entities and add the system returned by [NewSystem] to
// their scheduler. Each tick the system applies the queued events, advances
// the manager once (unless [StateData.Editing] is set), and copies every
// entity's current tween value into its [Binding] component.
//
// Usage:
//
//	world := donburi.NewWorld()
//	e := ecs.NewECS(world)
//	tweenecs.Setup(world, tween.NewManager(tween.Config{}))
//	e.AddSystem(tweenecs.NewSystem(func() float32 { return 1.0 / float32(ebiten.TPS()) }))
//
//	tweenecs.StartEventType.Publish(world, tweenecs.StartEvent{Entity: ent})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
