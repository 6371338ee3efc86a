package expand

import "github.com/google/uuid"

// session is the state of the gesture in the current touch cycle.
//
// Invariant: style == StyleNone iff item is the zero Handle.
type session struct {
	id    uuid.UUID
	style Style
	item  Handle

	// Bounds captured when the item was locked.
	oldHeight     float64
	naturalHeight float64

	// Fusion origins. initialFocusY and initialSpan are re-baselined on every
	// intercepted event until a gesture claims the stream.
	initialFocusY float64
	initialSpan   float64
	initialTouchY float64

	lastFocusY  float64
	lastSpan    float64
	lastMotionY float64

	hasPopped       bool
	watchingForPull bool

	stats gestureStats
}

func (s *session) expanding() bool {
	return s.style != StyleNone
}

// release forgets the target item but keeps the pointer baselines, so a blinds
// drag can move on to another item without lifting.
func (s *session) release() {
	s.style = StyleNone
	s.item = Handle{}
	s.oldHeight = 0
	s.naturalHeight = 0
	s.hasPopped = false
	s.id = uuid.Nil
}

// reset ends the touch cycle.
func (s *session) reset() {
	*s = session{}
}
