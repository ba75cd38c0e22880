// Package ecs provides ECS adapters for worldui's dispatch events.
//
// The primary adapter is [NewDonburiSink], which bridges every event a
// stage executes (pointer, click, scroll, drag) into a [Donburi] world as
// typed events. Subscribe to [DispatchEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	surface.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
