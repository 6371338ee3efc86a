package expand

import "github.com/google/uuid"

// EventSink is the interface for optional lifecycle observers, such as an ECS
// bridge. When set on a Controller, every gesture start, pop, re-target and
// settle is forwarded to it.
type EventSink interface {
	Emit(event ExpandEvent)
}

// ExpandEvent carries lifecycle data for an EventSink.
type ExpandEvent struct {
	Type    ExpandEventType
	Session uuid.UUID
	Item    Handle
	Style   Style

	// Heights captured at gesture start.
	OldHeight     float64
	NaturalHeight float64

	// Height is the item's height when the event fired.
	Height float64

	// Settle fields (valid for ExpandSettled)
	Target   float64
	Expanded bool
	Forced   bool
}

// SinkFunc adapts an ordinary function to the EventSink interface.
type SinkFunc func(ExpandEvent)

// Emit calls f(event).
func (f SinkFunc) Emit(event ExpandEvent) {
	f(event)
}
