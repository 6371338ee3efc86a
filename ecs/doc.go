// Package ecs provides ECS adapters for expand's controller lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges expand events
// (started, popped, retargeted, settled, cancelled) into a [Donburi] world as typed
// events. Subscribe to [ExpandEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ctrl := expand.NewController(cfg, list, expand.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
