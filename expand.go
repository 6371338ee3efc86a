package expand

// Vec2 is a 2D vector used for positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// containsStrict is Contains with the edges excluded.
func (r Rect) containsStrict(x, y float64) bool {
	lx := x - r.X
	ly := y - r.Y
	return lx > 0 && ly > 0 && lx < r.Width && ly < r.Height
}

// Style identifies which gesture is currently driving an item's height.
// At most one style is active at a time.
type Style uint8

const (
	StyleNone    Style = iota // no item is being resized
	StyleBlinds               // single-finger drag gated by the pop threshold
	StylePull                 // two-finger, horizontally separated vertical drag
	StyleStretch              // pinch/spread reported by the scale detector
)

// String returns the lower-case style name.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "none"
	case StyleBlinds:
		return "blinds"
	case StylePull:
		return "pull"
	case StyleStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// Gravity is the anchor edge of the container. With GravityBottom the drag
// channel is inverted so that dragging away from the anchor still expands.
type Gravity uint8

const (
	GravityTop    Gravity = iota // items hang from the top edge (default)
	GravityBottom                // items stack up from the bottom edge
)

// Action identifies the kind of pointer event.
type Action uint8

const (
	ActionDown        Action = iota // first pointer went down
	ActionUp                        // last pointer went up
	ActionMove                      // one or more pointers moved
	ActionCancel                    // the stream was aborted by the host
	ActionPointerDown               // an additional pointer went down
	ActionPointerUp                 // a non-last pointer went up
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionUp:
		return "up"
	case ActionMove:
		return "move"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer_down"
	case ActionPointerUp:
		return "pointer_up"
	default:
		return "unknown"
	}
}

// ExpandEventType identifies a controller lifecycle event.
type ExpandEventType uint8

const (
	ExpandStarted    ExpandEventType = iota // an item was locked and a gesture began on it
	ExpandPopped                            // a blinds drag crossed the pop threshold
	ExpandRetargeted                        // a blinds drag moved on to a different item
	ExpandSettled                           // the gesture ended and a settle target was chosen
	ExpandCancelled                         // Controller.Cancel aborted the gesture; a forced ExpandSettled follows
)

// String returns the event type name.
func (t ExpandEventType) String() string {
	switch t {
	case ExpandStarted:
		return "started"
	case ExpandPopped:
		return "popped"
	case ExpandRetargeted:
		return "retargeted"
	case ExpandSettled:
		return "settled"
	case ExpandCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
