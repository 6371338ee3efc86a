package expand

import "math"

// ScaleDetector turns raw pointer events into focus and span readings and
// reports pinch/spread gestures to a ScaleListener. PinchDetector is the
// default; any multi-touch primitive can stand in for it.
type ScaleDetector interface {
	// OnEvent feeds one pointer event. Listener callbacks fire from inside it.
	OnEvent(ev Event) bool
	FocusX() float64
	FocusY() float64
	CurrentSpan() float64
	CurrentSpanX() float64
	CurrentSpanY() float64
	InProgress() bool
	// Reset discards all touch history.
	Reset()
}

// ScaleListener receives scale gesture callbacks. OnScaleBegin returns whether
// the gesture should be tracked; OnScale returns whether the detector should
// take the current span as the new previous span.
type ScaleListener interface {
	OnScaleBegin(d ScaleDetector) bool
	OnScale(d ScaleDetector) bool
	OnScaleEnd(d ScaleDetector)
}

// PinchDetector is the default ScaleDetector. Focus is the centroid of the
// pointers that remain down; span is twice their mean distance from it.
type PinchDetector struct {
	listener ScaleListener
	minSpan  float64
	spanSlop float64

	focusX, focusY float64

	currSpan, currSpanX, currSpanY float64
	prevSpan, prevSpanX, prevSpanY float64
	initialSpan                    float64

	inProgress bool
}

// NewPinchDetector creates a detector that reports to l. Spans below minSpan
// are never reported as scaling, and a gesture only begins once the span has
// moved by more than spanSlop since the last pointer-count change.
func NewPinchDetector(l ScaleListener, minSpan, spanSlop float64) *PinchDetector {
	return &PinchDetector{listener: l, minSpan: minSpan, spanSlop: spanSlop}
}

// OnEvent updates the readings from ev and fires listener callbacks.
func (d *PinchDetector) OnEvent(ev Event) bool {
	action := ev.Action
	streamComplete := action == ActionUp || action == ActionCancel

	if action == ActionDown || streamComplete {
		// A new stream or its end always terminates an in-flight scale.
		if d.inProgress {
			d.listener.OnScaleEnd(d)
			d.inProgress = false
			d.initialSpan = 0
		}
		if streamComplete {
			return true
		}
	}

	configChanged := action == ActionDown ||
		action == ActionPointerDown ||
		action == ActionPointerUp

	skip := ev.liftingIndex()
	fx, fy := ev.focus(skip)
	spanX, spanY, span := ev.spans(fx, fy, skip)
	d.focusX = fx
	d.focusY = fy

	wasInProgress := d.inProgress
	if d.inProgress && (span < d.minSpan || configChanged) {
		d.listener.OnScaleEnd(d)
		d.inProgress = false
		d.initialSpan = span
	}
	if configChanged {
		d.prevSpanX, d.currSpanX = spanX, spanX
		d.prevSpanY, d.currSpanY = spanY, spanY
		d.initialSpan, d.prevSpan, d.currSpan = span, span, span
	}

	if !d.inProgress && span >= d.minSpan &&
		(wasInProgress || math.Abs(span-d.initialSpan) > d.spanSlop) {
		d.prevSpanX, d.currSpanX = spanX, spanX
		d.prevSpanY, d.currSpanY = spanY, spanY
		d.prevSpan, d.currSpan = span, span
		d.inProgress = d.listener.OnScaleBegin(d)
	}

	if action == ActionMove {
		d.currSpanX = spanX
		d.currSpanY = spanY
		d.currSpan = span
		update := true
		if d.inProgress {
			update = d.listener.OnScale(d)
		}
		if update {
			d.prevSpanX = d.currSpanX
			d.prevSpanY = d.currSpanY
			d.prevSpan = d.currSpan
		}
	}
	return true
}

// FocusX returns the X coordinate of the current gesture's focal point.
func (d *PinchDetector) FocusX() float64 { return d.focusX }

// FocusY returns the Y coordinate of the current gesture's focal point.
func (d *PinchDetector) FocusY() float64 { return d.focusY }

// CurrentSpan returns the current average distance between pointers, doubled.
func (d *PinchDetector) CurrentSpan() float64 { return d.currSpan }

// CurrentSpanX returns the horizontal component of CurrentSpan.
func (d *PinchDetector) CurrentSpanX() float64 { return d.currSpanX }

// CurrentSpanY returns the vertical component of CurrentSpan.
func (d *PinchDetector) CurrentSpanY() float64 { return d.currSpanY }

// PreviousSpan returns the span the last OnScale accepted. The controller does
// not read it; it is there for hosts drawing pinch feedback.
func (d *PinchDetector) PreviousSpan() float64 { return d.prevSpan }

// ScaleFactor returns the ratio of the current span to the previous one.
// Informational, like PreviousSpan.
func (d *PinchDetector) ScaleFactor() float64 {
	if d.prevSpan > 0 {
		return d.currSpan / d.prevSpan
	}
	return 1
}

// InProgress reports whether a scale gesture is being tracked.
func (d *PinchDetector) InProgress() bool { return d.inProgress }

// Reset discards all touch history without firing OnScaleEnd.
func (d *PinchDetector) Reset() {
	*d = PinchDetector{listener: d.listener, minSpan: d.minSpan, spanSlop: d.spanSlop}
}
