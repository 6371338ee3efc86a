package ecs

import (
	"github.com/google/uuid"
	"github.com/phanxgames/expand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ExpandEventType is the Donburi event type for expand lifecycle events.
// Subscribe to this in your ECS systems to react to items opening and closing.
var ExpandEventType = events.NewEventType[expand.ExpandEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are published to ExpandEventType and can be consumed with
// events.Subscribe and ProcessEvents. Events without a gesture session
// (uuid.Nil) are dropped: every event a Controller emits carries one.
func NewDonburiSink(world donburi.World) expand.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event expand.ExpandEvent) {
	if event.Session == uuid.Nil {
		return
	}
	ExpandEventType.Publish(s.world, event)
}
