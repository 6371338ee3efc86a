package expand

// Handle refers to an item owned by a Container. The container may recycle
// the slot an item lived in, so a handle carries the slot's generation and a
// container must treat a handle whose generation no longer matches as gone.
// The zero Handle never refers to an item.
type Handle struct {
	Index      int
	Generation uint32
}

// Valid reports whether h could refer to an item at all.
func (h Handle) Valid() bool {
	return h.Generation != 0
}

// Container owns the items a Controller resizes. The controller never keeps
// anything but handles; every read and mutation goes through these methods,
// which are called on the event thread and must be cheap.
type Container interface {
	// ItemAt resolves coordinates in the event source's local space to the
	// item beneath them.
	ItemAt(x, y float64) (Handle, bool)
	// ItemAtRaw resolves screen coordinates to the item beneath them. Used
	// instead of ItemAt when the controller has an EventSource.
	ItemAtRaw(x, y float64) (Handle, bool)

	// Resizable reports whether h belongs to the family of items the
	// controller may lock and resize at all.
	Resizable(h Handle) bool
	// CanExpand reports whether h has extra height to reveal.
	CanExpand(h Handle) bool

	Height(h Handle) float64
	MaxHeight(h Handle) float64
	SetHeight(h Handle, height float64)

	SetUserExpanded(h Handle, expanded bool)
	SetUserLocked(h Handle, locked bool)
}

// ScrollAdapter describes the scrollable region hosting the items. Blinds
// gestures are only armed for downs inside HostBounds, and nothing but pull
// and stretch gestures starts while the region is scrolled away from the top.
type ScrollAdapter interface {
	IsScrolledToTop() bool
	// HostBounds returns the scroll host's rectangle in screen coordinates.
	HostBounds() Rect
}

// EventSource is the surface events are reported relative to. When set, event
// coordinates are offset by its screen origin before hit testing.
type EventSource interface {
	ScreenOrigin() Vec2
}
