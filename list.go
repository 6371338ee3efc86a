package expand

// RowKind distinguishes rows the controller may resize from the rest.
type RowKind uint8

const (
	RowKindItem   RowKind = iota // resizable content row
	RowKindHeader                // section header, never resized
	RowKindSpacer                // fixed gap between sections
)

// Row is one entry of a List. Height is the current (possibly animating)
// height; MaxHeight is the row's own fully expanded height.
type Row struct {
	ID   uint32
	Name string
	Kind RowKind

	Height     float64
	MaxHeight  float64
	Expandable bool

	// Set by the controller; the list only stores them.
	UserExpanded bool
	UserLocked   bool

	// Metadata
	UserData any
}

// rowIDCounter is a plain counter (lists are single-threaded).
var rowIDCounter uint32

func nextRowID() uint32 {
	rowIDCounter++
	return rowIDCounter
}

// NewRow creates a resizable row at height, expandable up to maxHeight.
// A maxHeight not above height makes the row non-expandable.
func NewRow(name string, height, maxHeight float64) *Row {
	return &Row{
		ID:         nextRowID(),
		Name:       name,
		Kind:       RowKindItem,
		Height:     height,
		MaxHeight:  maxHeight,
		Expandable: maxHeight > height,
	}
}

// NewHeader creates a fixed-height header row.
func NewHeader(name string, height float64) *Row {
	return &Row{
		ID:        nextRowID(),
		Name:      name,
		Kind:      RowKindHeader,
		Height:    height,
		MaxHeight: height,
	}
}

type listSlot struct {
	row *Row
	gen uint32
}

// List is a vertically stacked, scrollable set of rows. It implements
// Container and ScrollAdapter and is what the example programs and tests use;
// hosts with their own item storage implement those interfaces directly.
type List struct {
	// Bounds is the list viewport in screen coordinates.
	Bounds  Rect
	Gravity Gravity

	scrollY float64
	slots   []listSlot
	order   []int // slot indices in display order
	free    []int
}

var (
	_ Container     = (*List)(nil)
	_ ScrollAdapter = (*List)(nil)
	_ EventSource   = (*List)(nil)
)

// NewList creates an empty list occupying bounds on screen.
func NewList(bounds Rect) *List {
	return &List{Bounds: bounds}
}

// Add appends r to the end of the list and returns its handle.
func (l *List) Add(r *Row) Handle {
	var idx int
	if n := len(l.free); n > 0 {
		idx = l.free[n-1]
		l.free = l.free[:n-1]
	} else {
		idx = len(l.slots)
		l.slots = append(l.slots, listSlot{})
	}
	s := &l.slots[idx]
	s.row = r
	s.gen++
	l.order = append(l.order, idx)
	return Handle{Index: idx, Generation: s.gen}
}

// Remove deletes the row h refers to. The slot's generation is bumped so h and
// every copy of it stop resolving.
func (l *List) Remove(h Handle) {
	if l.Row(h) == nil {
		return
	}
	s := &l.slots[h.Index]
	s.row = nil
	s.gen++
	l.free = append(l.free, h.Index)
	for i, idx := range l.order {
		if idx == h.Index {
			copy(l.order[i:], l.order[i+1:])
			l.order = l.order[:len(l.order)-1]
			break
		}
	}
	l.clampScroll()
}

// Row returns the row h refers to, or nil if it no longer exists.
func (l *List) Row(h Handle) *Row {
	if h.Index < 0 || h.Index >= len(l.slots) {
		return nil
	}
	s := l.slots[h.Index]
	if s.row == nil || s.gen != h.Generation {
		return nil
	}
	return s.row
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.order)
}

// Handles returns the handles of all rows in display order.
func (l *List) Handles() []Handle {
	out := make([]Handle, len(l.order))
	for i, idx := range l.order {
		out[i] = Handle{Index: idx, Generation: l.slots[idx].gen}
	}
	return out
}

// ContentHeight returns the sum of all row heights.
func (l *List) ContentHeight() float64 {
	var h float64
	for _, idx := range l.order {
		h += l.slots[idx].row.Height
	}
	return h
}

// contentTop is the local Y of the first row.
func (l *List) contentTop() float64 {
	if l.Gravity == GravityBottom {
		if gap := l.Bounds.Height - l.ContentHeight(); gap > 0 {
			return gap
		}
	}
	return -l.scrollY
}

// RowBounds returns the row's rectangle in screen coordinates.
func (l *List) RowBounds(h Handle) (Rect, bool) {
	y := l.contentTop()
	for _, idx := range l.order {
		r := l.slots[idx].row
		if idx == h.Index && l.slots[idx].gen == h.Generation {
			return Rect{X: l.Bounds.X, Y: l.Bounds.Y + y, Width: l.Bounds.Width, Height: r.Height}, true
		}
		y += r.Height
	}
	return Rect{}, false
}

// ScrollY returns how far the content is scrolled past its top edge.
func (l *List) ScrollY() float64 {
	return l.scrollY
}

// ScrollBy scrolls the content by dy pixels, clamped to the content.
func (l *List) ScrollBy(dy float64) {
	l.scrollY += dy
	l.clampScroll()
}

func (l *List) clampScroll() {
	maxScroll := l.ContentHeight() - l.Bounds.Height
	if l.scrollY > maxScroll {
		l.scrollY = maxScroll
	}
	if l.scrollY < 0 {
		l.scrollY = 0
	}
}

// --- ScrollAdapter ---

// IsScrolledToTop reports whether the first row is fully in view.
func (l *List) IsScrolledToTop() bool {
	return l.scrollY <= 0
}

// HostBounds returns the list viewport.
func (l *List) HostBounds() Rect {
	return l.Bounds
}

// --- EventSource ---

// ScreenOrigin returns the top-left of the viewport, for hosts that report
// events relative to the list.
func (l *List) ScreenOrigin() Vec2 {
	return Vec2{X: l.Bounds.X, Y: l.Bounds.Y}
}

// --- Container ---

// ItemAt finds the row under (x, y) in list-local coordinates.
func (l *List) ItemAt(x, y float64) (Handle, bool) {
	if x < 0 || x > l.Bounds.Width || y < 0 || y > l.Bounds.Height {
		return Handle{}, false
	}
	top := l.contentTop()
	for _, idx := range l.order {
		s := l.slots[idx]
		if y >= top && y < top+s.row.Height {
			return Handle{Index: idx, Generation: s.gen}, true
		}
		top += s.row.Height
	}
	return Handle{}, false
}

// ItemAtRaw finds the row under (x, y) in screen coordinates.
func (l *List) ItemAtRaw(x, y float64) (Handle, bool) {
	return l.ItemAt(x-l.Bounds.X, y-l.Bounds.Y)
}

// Resizable reports whether h is a live content row.
func (l *List) Resizable(h Handle) bool {
	r := l.Row(h)
	return r != nil && r.Kind == RowKindItem
}

// CanExpand reports whether h has height to reveal.
func (l *List) CanExpand(h Handle) bool {
	r := l.Row(h)
	return r != nil && r.Expandable
}

// Height returns the row's current height, or 0 for a stale handle.
func (l *List) Height(h Handle) float64 {
	if r := l.Row(h); r != nil {
		return r.Height
	}
	return 0
}

// MaxHeight returns the row's fully expanded height, or 0 for a stale handle.
func (l *List) MaxHeight(h Handle) float64 {
	if r := l.Row(h); r != nil {
		return r.MaxHeight
	}
	return 0
}

// SetHeight sets the row's height. Stale handles are ignored.
func (l *List) SetHeight(h Handle, height float64) {
	if r := l.Row(h); r != nil {
		r.Height = height
	}
}

// SetUserExpanded records whether the user left the row expanded.
func (l *List) SetUserExpanded(h Handle, expanded bool) {
	if r := l.Row(h); r != nil {
		r.UserExpanded = expanded
	}
}

// SetUserLocked records whether a gesture or settle owns the row's height.
func (l *List) SetUserLocked(h Handle, locked bool) {
	if r := l.Row(h); r != nil {
		r.UserLocked = locked
	}
}
