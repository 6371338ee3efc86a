package expand

import "math"

// Pointer is a single tracked touch point.
type Pointer struct {
	ID   int
	X, Y float64
}

// Event is one pointer sample delivered by the host. Pointers lists every
// pointer that is down, in the order they went down. For ActionPointerUp and
// ActionUp the lifting pointer is still included and ActionIndex points at it;
// for ActionPointerDown ActionIndex points at the new pointer.
type Event struct {
	Action      Action
	ActionIndex int
	Pointers    []Pointer
}

// X returns the primary pointer's X coordinate, or 0 if there are no pointers.
func (e Event) X() float64 {
	if len(e.Pointers) == 0 {
		return 0
	}
	return e.Pointers[0].X
}

// Y returns the primary pointer's Y coordinate, or 0 if there are no pointers.
func (e Event) Y() float64 {
	if len(e.Pointers) == 0 {
		return 0
	}
	return e.Pointers[0].Y
}

// PointerCount returns the number of pointers in the sample.
func (e Event) PointerCount() int {
	return len(e.Pointers)
}

// liftingIndex returns the index of the pointer leaving the gesture with this
// event, or -1 if none is.
func (e Event) liftingIndex() int {
	if e.Action == ActionPointerUp || e.Action == ActionUp {
		return e.ActionIndex
	}
	return -1
}

// focus returns the centroid of the pointers, skipping index skip.
func (e Event) focus(skip int) (float64, float64) {
	var sumX, sumY float64
	n := 0
	for i, p := range e.Pointers {
		if i == skip {
			continue
		}
		sumX += p.X
		sumY += p.Y
		n++
	}
	if n == 0 {
		return 0, 0
	}
	return sumX / float64(n), sumY / float64(n)
}

// spans returns twice the mean deviation of the pointers from (fx, fy) along
// each axis, and their combined length.
func (e Event) spans(fx, fy float64, skip int) (spanX, spanY, span float64) {
	var devX, devY float64
	n := 0
	for i, p := range e.Pointers {
		if i == skip {
			continue
		}
		devX += math.Abs(p.X - fx)
		devY += math.Abs(p.Y - fy)
		n++
	}
	if n == 0 {
		return 0, 0, 0
	}
	spanX = devX / float64(n) * 2
	spanY = devY / float64(n) * 2
	return spanX, spanY, math.Hypot(spanX, spanY)
}
