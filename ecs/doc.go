// Package ecs bridges folderdrop world events into an ECS.
//
// The primary adapter is [NewDonburiSink], which publishes every
// [folderdrop.Event] (insertions, rejections, drag and hover transitions) into
// a [Donburi] world as a typed event. Subscribe to [DropEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	board.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
