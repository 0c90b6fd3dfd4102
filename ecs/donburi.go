package ecs

import (
	"github.com/phanxgames/folderdrop"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DropEventType is the Donburi event type for folderdrop events.
// Subscribe to this in your ECS systems to receive insertion, rejection,
// drag, and hover events.
var DropEventType = events.NewEventType[folderdrop.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on DropEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) folderdrop.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event folderdrop.Event) {
	DropEventType.Publish(s.world, event)
}
