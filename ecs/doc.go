// Package ecs provides ECS adapters for gesture's event bus.
//
// The primary adapter is [NewDonburiStore], which publishes every detector
// event into a [Donburi] world. Subscribe to [GestureEventType] for all
// events, or to [MoveEventType] for move payloads only.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
