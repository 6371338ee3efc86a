package expand

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Controller recognizes expand/collapse gestures over the items of a Container
// and resizes them. It fuses a two-finger spread with a focal-point drag into a
// single height target, and separately supports a single-finger "blinds" drag
// that pops open past a threshold with haptic feedback.
//
// A Controller is driven from a single event thread: the host passes every
// pointer event to OnInterceptEvent until it returns true, and from then on to
// OnEvent until the stream ends. It is not safe for concurrent use.
type Controller struct {
	cfg       Config
	container Container
	scroll    ScrollAdapter
	source    EventSource
	gravity   Gravity

	detector ScaleDetector
	newDet   func(ScaleListener) ScaleDetector
	animator SettleAnimator
	haptics  Haptics
	sink     EventSink
	log      zerolog.Logger
	debug    bool

	s session
}

// Option configures a Controller.
type Option func(*Controller)

// WithAnimator sets the settle animator. Without it the controller creates a
// TweenAnimator, advanced by Controller.Update.
func WithAnimator(a SettleAnimator) Option {
	return func(c *Controller) { c.animator = a }
}

// WithHaptics sets the haptic feedback used when a blinds drag pops.
func WithHaptics(h Haptics) Option {
	return func(c *Controller) { c.haptics = h }
}

// WithEventSink forwards lifecycle events to sink.
func WithEventSink(sink EventSink) Option {
	return func(c *Controller) { c.sink = sink }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithScaleDetector replaces the default PinchDetector. newDetector is called
// once, with the controller's listener, at construction.
func WithScaleDetector(newDetector func(ScaleListener) ScaleDetector) Option {
	return func(c *Controller) { c.newDet = newDetector }
}

// NewController creates a controller resizing the items of container.
func NewController(cfg Config, container Container, opts ...Option) *Controller {
	c := &Controller{
		cfg:       cfg,
		container: container,
		gravity:   GravityTop,
		log:       zerolog.Nop(),
	}
	c.newDet = func(l ScaleListener) ScaleDetector {
		return NewPinchDetector(l, cfg.ScaleMinSpan, cfg.TouchSlop*2)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.animator == nil {
		c.animator = NewTweenAnimator()
	}
	c.detector = c.newDet(scaleListener{c})
	return c
}

// SetEventSource sets the surface event coordinates are relative to.
func (c *Controller) SetEventSource(src EventSource) {
	c.source = src
}

// SetGravity sets the container's anchor edge.
func (c *Controller) SetGravity(g Gravity) {
	c.gravity = g
}

// SetScrollAdapter sets the scrollable region blinds gestures are armed in.
// Without one, blinds gestures never start.
func (c *Controller) SetScrollAdapter(a ScrollAdapter) {
	c.scroll = a
}

// Style returns the style of the gesture in progress, or StyleNone.
func (c *Controller) Style() Style {
	return c.s.style
}

// Target returns the item being resized, if any.
func (c *Controller) Target() (Handle, bool) {
	return c.s.item, c.s.expanding()
}

// Update advances the default animator by dt seconds. It does nothing when a
// custom animator without its own Update method was supplied.
func (c *Controller) Update(dt float32) {
	if t, ok := c.animator.(interface{ Update(float32) }); ok {
		t.Update(dt)
	}
}

// OnInterceptEvent inspects an event before the container's children see it
// and reports whether the controller claims the rest of the stream.
func (c *Controller) OnInterceptEvent(ev Event) bool {
	c.traceEvent("intercept", ev)

	// Stretch can begin from inside the detector.
	c.detector.OnEvent(ev)
	x := c.detector.FocusX()
	y := c.detector.FocusY()

	c.s.initialFocusY = y
	c.s.initialSpan = c.detector.CurrentSpan()
	c.s.lastFocusY = c.s.initialFocusY
	c.s.lastSpan = c.s.initialSpan

	if c.s.expanding() {
		return true
	}

	if ev.Action == ActionMove {
		xspan := c.detector.CurrentSpanX()
		if xspan > c.cfg.PullMinXSpan && xspan > c.detector.CurrentSpanY() {
			c.log.Debug().Float64("xspan", xspan).Msg("pull gesture")
			h, ok := c.findItem(x, y)
			return c.startExpanding(h, ok, StylePull)
		}
	}

	if c.scroll != nil && !c.scroll.IsScrolledToTop() {
		c.s.watchingForPull = false
		return false
	}

	switch ev.Action {
	case ActionMove:
		if c.s.watchingForPull {
			if y-c.s.lastMotionY > c.cfg.TouchSlop {
				c.log.Debug().Float64("dy", y-c.s.lastMotionY).Msg("blinds gesture")
				c.s.lastMotionY = y
				h, ok := c.findItem(x, y)
				if c.startExpanding(h, ok, StyleBlinds) {
					c.s.initialTouchY = c.s.lastMotionY
					c.s.hasPopped = false
				}
			}
		}
	case ActionDown:
		c.s.watchingForPull = c.scroll != nil && c.isInside(c.scroll.HostBounds(), x, y)
		c.s.lastMotionY = y
	case ActionUp, ActionCancel:
		c.finishExpanding(false)
		c.s.reset()
	}
	return c.s.expanding()
}

// OnEvent handles an event of a claimed stream. It always reports the event
// as handled.
func (c *Controller) OnEvent(ev Event) bool {
	c.traceEvent("touch", ev)

	c.detector.OnEvent(ev)

	switch ev.Action {
	case ActionMove:
		if c.s.style == StyleBlinds {
			c.updateBlinds()
		} else if c.s.expanding() {
			c.updateExpansion()
		}
	case ActionPointerDown, ActionPointerUp:
		// Shift the origins by however far the readings jumped so the height
		// stays put when the finger count changes.
		dy := c.detector.FocusY() - c.s.lastFocusY
		dspan := c.detector.CurrentSpan() - c.s.lastSpan
		c.s.initialTouchY += dy
		c.s.initialFocusY += dy
		c.s.initialSpan += dspan
		c.s.lastFocusY = c.detector.FocusY()
		c.s.lastSpan = c.detector.CurrentSpan()
		c.log.Debug().Float64("dy", dy).Float64("dspan", dspan).Msg("pointer change")
	case ActionUp, ActionCancel:
		c.finishExpanding(false)
		c.s.reset()
	}
	return true
}

// Cancel aborts the gesture in progress, snapping its item fully open if it
// started closed and fully closed otherwise, and resets the detector. A
// gesture in progress emits ExpandCancelled ahead of its forced ExpandSettled.
func (c *Controller) Cancel() {
	if c.s.expanding() {
		c.emit(ExpandEvent{Type: ExpandCancelled, Item: c.s.item})
		c.log.Debug().Int("item", c.s.item.Index).Msg("gesture cancelled")
	}
	c.finishExpanding(true)
	c.s.reset()
	c.detector.Reset()
}

// updateExpansion applies the fused span and drag channels.
func (c *Controller) updateExpansion() {
	focusY := c.detector.FocusY()
	currSpan := c.detector.CurrentSpan()

	var span, drag float64
	if c.cfg.UseSpan {
		span = currSpan - c.s.initialSpan
	}
	if c.cfg.UseDrag {
		drag = focusY - c.s.initialFocusY
		if c.gravity == GravityBottom {
			drag = -drag
		}
	}
	target := c.s.oldHeight + fuse(drag, span)
	c.container.SetHeight(c.s.item, c.clamp(target))

	c.s.lastFocusY = focusY
	c.s.lastSpan = currSpan
}

// updateBlinds follows a single-finger drag, holding the item still until the
// drag pops, and moves on to another item once this one is fully open or
// closed. The focus point stands in for the finger so that extra fingers
// landing mid-drag are absorbed by the pointer-change re-baselining.
func (c *Controller) updateBlinds() {
	y := c.detector.FocusY()
	raw := y - c.s.initialTouchY + c.s.oldHeight
	height := c.clamp(raw)
	finished := raw > c.s.naturalHeight || raw < c.cfg.SmallSize

	if !c.s.hasPopped && math.Abs(y-c.s.initialTouchY) > c.cfg.PopThreshold {
		c.pop()
	}
	if c.s.hasPopped {
		c.container.SetHeight(c.s.item, height)
	}

	fx := c.detector.FocusX()
	fy := y
	c.s.lastFocusY = fy
	c.s.lastSpan = c.detector.CurrentSpan()

	if !finished {
		return
	}
	under, ok := c.findItem(fx, fy)
	if !ok || under == c.s.item {
		return
	}
	prev := c.s.item
	c.finishExpanding(false)
	c.s.stats.retargets++
	if c.begin(under, StyleBlinds) {
		c.emit(ExpandEvent{Type: ExpandRetargeted, Item: under})
		c.log.Debug().Int("from", prev.Index).Int("to", under.Index).Msg("blinds retarget")
	}
	c.s.initialTouchY = fy
	c.s.hasPopped = false
}

// pop marks the blinds gesture as committed. Haptics fire once per gesture.
func (c *Controller) pop() {
	c.s.hasPopped = true
	c.s.stats.popped = true
	if c.haptics != nil {
		c.haptics.Vibrate(c.cfg.PopDuration)
	}
	c.emit(ExpandEvent{Type: ExpandPopped, Item: c.s.item})
	c.log.Debug().Int("item", c.s.item.Index).Msg("blinds pop")
}

func (c *Controller) clamp(target float64) float64 {
	return clampHeight(target, c.cfg.SmallSize, c.cfg.LargeSize, c.s.naturalHeight)
}

// startExpanding begins a gesture of the given style on h. A running settle
// animation is cancelled first. It reports false, changing nothing, when there
// is no item or the item is not resizable.
func (c *Controller) startExpanding(h Handle, found bool, style Style) bool {
	if !found || !c.container.Resizable(h) {
		c.log.Debug().Stringer("style", style).Bool("found", found).Msg("gesture rejected")
		return false
	}
	if c.s.expanding() && h == c.s.item {
		c.s.style = style
		return true
	}
	if c.s.expanding() {
		c.finishExpanding(false)
	}
	if c.animator.IsRunning() {
		c.animator.Cancel()
	}
	return c.begin(h, style)
}

// begin locks h and captures the height bounds for a new gesture.
func (c *Controller) begin(h Handle, style Style) bool {
	if !c.container.Resizable(h) {
		return false
	}
	c.s.style = style
	c.s.item = h
	c.s.id = uuid.New()
	c.s.watchingForPull = false
	if c.s.stats.start.IsZero() {
		c.s.stats.start = time.Now()
	}

	c.container.SetUserLocked(h, true)
	c.s.oldHeight = c.container.Height(h)
	c.s.naturalHeight = c.s.oldHeight
	if c.container.CanExpand(h) {
		c.s.naturalHeight = math.Max(c.s.oldHeight, math.Min(c.cfg.LargeSize, c.container.MaxHeight(h)))
	}

	c.log.Debug().
		Str("session", c.s.id.String()).
		Stringer("style", style).
		Int("item", h.Index).
		Float64("old_height", c.s.oldHeight).
		Float64("natural_height", c.s.naturalHeight).
		Msg("gesture started")
	c.emit(ExpandEvent{Type: ExpandStarted, Item: h})
	return true
}

// finishExpanding picks the settle target, tells the container the resulting
// expanded state and animates towards the target. The item is unlocked when
// the animation completes, or right away if it is already at the target.
func (c *Controller) finishExpanding(force bool) {
	if !c.s.expanding() {
		return
	}
	item := c.s.item
	current := c.container.Height(item)
	target := settleTarget(current, c.s.oldHeight, c.cfg.SmallSize, c.s.naturalHeight, force)

	if c.animator.IsRunning() {
		c.animator.Cancel()
	}
	expanded := target == c.s.naturalHeight
	c.container.SetUserExpanded(item, expanded)

	if target != current {
		container := c.container
		c.animator.Animate(SettleTask{
			Item:     item,
			From:     current,
			To:       target,
			Duration: c.cfg.SettleDuration,
			Apply: func(height float64) {
				container.SetHeight(item, height)
			},
			OnComplete: func() {
				container.SetUserLocked(item, false)
			},
		})
	} else {
		c.container.SetUserLocked(item, false)
	}

	c.emit(ExpandEvent{
		Type:     ExpandSettled,
		Item:     item,
		Height:   current,
		Target:   target,
		Expanded: expanded,
		Forced:   force,
	})
	c.debugLog(current, target, force)
	c.s.release()
}

// findItem hit-tests the container at event coordinates.
func (c *Controller) findItem(x, y float64) (Handle, bool) {
	if c.source != nil {
		o := c.source.ScreenOrigin()
		return c.container.ItemAtRaw(x+o.X, y+o.Y)
	}
	return c.container.ItemAt(x, y)
}

// isInside reports whether event coordinates fall strictly inside the screen
// rectangle r.
func (c *Controller) isInside(r Rect, x, y float64) bool {
	if c.source != nil {
		o := c.source.ScreenOrigin()
		x += o.X
		y += o.Y
	}
	return r.containsStrict(x, y)
}

// emit fills in the session fields and forwards ev to the sink.
func (c *Controller) emit(ev ExpandEvent) {
	if c.sink == nil {
		return
	}
	ev.Session = c.s.id
	ev.Style = c.s.style
	ev.OldHeight = c.s.oldHeight
	ev.NaturalHeight = c.s.naturalHeight
	if ev.Type != ExpandSettled && ev.Item.Valid() {
		ev.Height = c.container.Height(ev.Item)
	}
	c.sink.Emit(ev)
}

// scaleListener routes detector callbacks into the controller.
type scaleListener struct {
	c *Controller
}

func (l scaleListener) OnScaleBegin(d ScaleDetector) bool {
	c := l.c
	if c.s.expanding() {
		// A pinch takes over the gesture already in progress.
		c.s.style = StyleStretch
		return true
	}
	h, ok := c.findItem(d.FocusX(), d.FocusY())
	return c.startExpanding(h, ok, StyleStretch)
}

func (l scaleListener) OnScale(ScaleDetector) bool { return true }

func (l scaleListener) OnScaleEnd(ScaleDetector) {}
