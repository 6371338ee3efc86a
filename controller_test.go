package expand

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Test helpers ---

type mockHaptics struct{ mock.Mock }

func (m *mockHaptics) Vibrate(d time.Duration) { m.Called(d) }

type fixedScroll struct {
	top    bool
	bounds Rect
}

func (f fixedScroll) IsScrolledToTop() bool { return f.top }
func (f fixedScroll) HostBounds() Rect     { return f.bounds }

type harness struct {
	list *List
	ctrl *Controller
	anim *TweenAnimator
	disp *Dispatcher

	a, b, hdr, fixed Handle

	fallback []Event
	events   []ExpandEvent
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SmallSize = 50
	cfg.LargeSize = 300
	cfg.PopThreshold = 24
	return cfg
}

// newHarness lays out, top to bottom:
//
//	a      0-50    expandable to 200
//	b      50-100  expandable past LargeSize
//	hdr    100-130 header
//	fixed  130-180 not expandable
func newHarness(t *testing.T, cfg Config, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		list: NewList(Rect{Width: 400, Height: 600}),
		anim: NewTweenAnimator(),
	}
	h.a = h.list.Add(NewRow("a", 50, 200))
	h.b = h.list.Add(NewRow("b", 50, 500))
	h.hdr = h.list.Add(NewHeader("section", 30))
	h.fixed = h.list.Add(NewRow("fixed", 50, 50))

	opts = append([]Option{
		WithAnimator(h.anim),
		WithEventSink(SinkFunc(func(e ExpandEvent) { h.events = append(h.events, e) })),
	}, opts...)
	h.ctrl = NewController(cfg, h.list, opts...)
	h.ctrl.SetScrollAdapter(h.list)

	h.disp = NewDispatcher(h.ctrl)
	h.disp.Fallback = func(ev Event) bool {
		h.fallback = append(h.fallback, ev)
		return false
	}
	return h
}

func (h *harness) send(evs ...Event) {
	for _, e := range evs {
		h.disp.Dispatch(e)
	}
}

func (h *harness) row(x Handle) *Row {
	return h.list.Row(x)
}

// settle runs frames until the settle animation finishes.
func (h *harness) settle() {
	for i := 0; i < 600 && h.anim.IsRunning(); i++ {
		h.ctrl.Update(1.0 / 60)
	}
}

func (h *harness) eventTypes() []ExpandEventType {
	out := make([]ExpandEventType, len(h.events))
	for i, e := range h.events {
		out[i] = e.Type
	}
	return out
}

// startPull puts two fingers down 100px apart around x=150 at y, then moves
// them 1px down so the pull gesture claims the stream.
func (h *harness) startPull(y float64) {
	h.send(
		ev(ActionDown, 0, pt(0, 100, y)),
		ev(ActionPointerDown, 1, pt(0, 100, y), pt(1, 200, y)),
		ev(ActionMove, 0, pt(0, 100, y+1), pt(1, 200, y+1)),
	)
}

func (h *harness) pullTo(y float64) {
	h.send(ev(ActionMove, 0, pt(0, 100, y), pt(1, 200, y)))
}

func (h *harness) releasePull(y float64) {
	h.send(
		ev(ActionPointerUp, 1, pt(0, 100, y), pt(1, 200, y)),
		ev(ActionUp, 0, pt(0, 100, y)),
	)
}

// --- Pull ---

func TestPull_FusedDrag(t *testing.T) {
	cfg := testConfig()
	cfg.UseSpan = false
	h := newHarness(t, cfg)

	h.startPull(20)
	require.True(t, h.disp.Claimed())
	assert.Equal(t, StylePull, h.ctrl.Style())
	target, ok := h.ctrl.Target()
	require.True(t, ok)
	assert.Equal(t, h.a, target)
	assert.True(t, h.row(h.a).UserLocked)

	// Drag of +80: the fused delta is just under 80.
	h.pullTo(101)
	assert.InDelta(t, 130, h.row(h.a).Height, 1.0)
	assert.InDelta(t, 50+fuse(80, 0), h.row(h.a).Height, 1e-9)

	// Far past natural height: capped at the row's own max.
	h.pullTo(521)
	assert.Equal(t, 200.0, h.row(h.a).Height)

	h.pullTo(101)
	h.releasePull(101)
	assert.False(t, h.disp.Claimed())
	assert.Equal(t, StyleNone, h.ctrl.Style())
	assert.True(t, h.row(h.a).UserExpanded)
	assert.True(t, h.row(h.a).UserLocked, "locked until the settle completes")

	h.settle()
	assert.Equal(t, 200.0, h.row(h.a).Height)
	assert.False(t, h.row(h.a).UserLocked)
}

func TestPull_SettlesOpenOnAnyOpening(t *testing.T) {
	h := newHarness(t, testConfig())

	h.startPull(20)
	h.pullTo(23)
	require.Greater(t, h.row(h.a).Height, 50.0)
	h.releasePull(23)

	require.True(t, h.anim.IsRunning())
	h.settle()
	assert.Equal(t, 200.0, h.row(h.a).Height)
	assert.True(t, h.row(h.a).UserExpanded)
}

func TestPull_NaturalHeightCappedAtLargeSize(t *testing.T) {
	h := newHarness(t, testConfig())

	// b sits at 50-100 and can grow to 500, beyond LargeSize.
	h.startPull(70)
	target, _ := h.ctrl.Target()
	require.Equal(t, h.b, target)

	h.pullTo(1000)
	assert.Equal(t, 300.0, h.row(h.b).Height)
}

func TestPull_WorksWhenScrolled(t *testing.T) {
	h := newHarness(t, testConfig())
	h.ctrl.SetScrollAdapter(fixedScroll{top: false, bounds: h.list.Bounds})

	h.startPull(20)
	assert.Equal(t, StylePull, h.ctrl.Style())
}

func TestPull_NeedsHorizontalSeparation(t *testing.T) {
	h := newHarness(t, testConfig())

	// Fingers stacked vertically: ySpan dominates, no pull. The second
	// finger lands above the first so the focus moves up, away from blinds.
	h.send(
		ev(ActionDown, 0, pt(0, 150, 40)),
		ev(ActionPointerDown, 1, pt(0, 150, 40), pt(1, 160, 10)),
		ev(ActionMove, 0, pt(0, 150, 41), pt(1, 160, 11)),
	)
	assert.False(t, h.disp.Claimed())
	assert.Equal(t, StyleNone, h.ctrl.Style())
}

func TestPull_GravityBottomInvertsDrag(t *testing.T) {
	cfg := testConfig()
	cfg.UseSpan = false
	h := newHarness(t, cfg)
	h.ctrl.SetGravity(GravityBottom)

	h.startPull(40)
	h.pullTo(-39) // 80 up, away from the bottom anchor
	assert.InDelta(t, 50+fuse(80, 0), h.row(h.a).Height, 1e-9)

	h.pullTo(100) // below the start: collapses, clamped to small
	assert.Equal(t, 50.0, h.row(h.a).Height)
}

// --- Settle hysteresis ---

func TestSettle_OpenItemCollapsesOnAnyClosing(t *testing.T) {
	h := newHarness(t, testConfig())
	h.row(h.a).Height = 200

	h.startPull(20)
	h.pullTo(-9) // 30 up
	require.Less(t, h.row(h.a).Height, 200.0)
	h.releasePull(-9)

	h.settle()
	assert.Equal(t, 50.0, h.row(h.a).Height)
	assert.False(t, h.row(h.a).UserExpanded)
	assert.False(t, h.row(h.a).UserLocked)
}

func TestSettle_AlreadyAtTargetUnlocksImmediately(t *testing.T) {
	h := newHarness(t, testConfig())
	h.row(h.a).Height = 200

	h.startPull(20)
	h.send(ev(ActionPointerUp, 1, pt(0, 100, 21), pt(1, 200, 21)), ev(ActionUp, 0, pt(0, 100, 21)))

	assert.False(t, h.anim.IsRunning())
	assert.Equal(t, 200.0, h.row(h.a).Height)
	assert.True(t, h.row(h.a).UserExpanded)
	assert.False(t, h.row(h.a).UserLocked)
}

// --- Cancel ---

func TestCancel_ForcesClosedItemOpen(t *testing.T) {
	h := newHarness(t, testConfig())

	h.startPull(20)
	h.ctrl.Cancel()

	assert.Equal(t, StyleNone, h.ctrl.Style())
	assert.True(t, h.row(h.a).UserExpanded)
	h.settle()
	assert.Equal(t, 200.0, h.row(h.a).Height)
	assert.False(t, h.row(h.a).UserLocked)

	assert.Equal(t, []ExpandEventType{ExpandStarted, ExpandCancelled, ExpandSettled}, h.eventTypes())
	cancelled, settled := h.events[1], h.events[2]
	assert.Equal(t, h.a, cancelled.Item)
	assert.Equal(t, StylePull, cancelled.Style)
	assert.Equal(t, 50.0, cancelled.Height)
	assert.Equal(t, h.events[0].Session, cancelled.Session)
	assert.Equal(t, cancelled.Session, settled.Session)
	assert.True(t, settled.Forced)
	assert.Equal(t, 200.0, settled.Target)
}

func TestCancel_ForcesOpenItemClosed(t *testing.T) {
	h := newHarness(t, testConfig())
	h.row(h.a).Height = 200

	h.startPull(20)
	h.ctrl.Cancel()

	assert.False(t, h.row(h.a).UserExpanded)
	h.settle()
	assert.Equal(t, 50.0, h.row(h.a).Height)
}

func TestCancel_Idle(t *testing.T) {
	h := newHarness(t, testConfig())
	h.ctrl.Cancel()
	assert.Equal(t, StyleNone, h.ctrl.Style())
	assert.Empty(t, h.events)
}

func TestCancelAction_SettlesWithoutForce(t *testing.T) {
	h := newHarness(t, testConfig())

	h.startPull(20)
	h.send(ev(ActionCancel, 0, pt(0, 100, 21), pt(1, 200, 21)))

	assert.False(t, h.disp.Claimed())
	assert.Equal(t, StyleNone, h.ctrl.Style())
	assert.False(t, h.row(h.a).UserExpanded)
	assert.False(t, h.row(h.a).UserLocked)
}

// --- Blinds ---

func TestBlinds_PopThreshold(t *testing.T) {
	hm := &mockHaptics{}
	cfg := testConfig()
	hm.On("Vibrate", cfg.PopDuration).Return().Once()
	h := newHarness(t, cfg, WithHaptics(hm))

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 30)),
	)
	require.True(t, h.disp.Claimed())
	assert.Equal(t, StyleBlinds, h.ctrl.Style())

	// 10px past the start: below the pop threshold, nothing moves.
	h.send(ev(ActionMove, 0, pt(0, 100, 40)))
	assert.Equal(t, 50.0, h.row(h.a).Height)
	hm.AssertNotCalled(t, "Vibrate", mock.Anything)

	// 30px: popped, and the item follows the finger.
	h.send(ev(ActionMove, 0, pt(0, 100, 60)))
	assert.Equal(t, 80.0, h.row(h.a).Height)

	h.send(ev(ActionMove, 0, pt(0, 100, 70)))
	assert.Equal(t, 90.0, h.row(h.a).Height)
	hm.AssertNumberOfCalls(t, "Vibrate", 1)

	h.send(ev(ActionUp, 0, pt(0, 100, 70)))
	h.settle()
	assert.Equal(t, 200.0, h.row(h.a).Height)
	assert.False(t, h.row(h.a).UserLocked)
	hm.AssertExpectations(t)

	assert.Equal(t, []ExpandEventType{ExpandStarted, ExpandPopped, ExpandSettled}, h.eventTypes())
	sess := h.events[0].Session
	assert.NotEqual(t, uuid.Nil, sess)
	for _, e := range h.events {
		assert.Equal(t, sess, e.Session)
		assert.Equal(t, StyleBlinds, e.Style)
	}
	settled := h.events[2]
	assert.Equal(t, 90.0, settled.Height)
	assert.Equal(t, 200.0, settled.Target)
	assert.True(t, settled.Expanded)
}

func TestBlinds_UnpoppedReleaseStaysClosed(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 30)),
		ev(ActionMove, 0, pt(0, 100, 45)),
		ev(ActionUp, 0, pt(0, 100, 45)),
	)
	assert.False(t, h.anim.IsRunning())
	assert.Equal(t, 50.0, h.row(h.a).Height)
	assert.False(t, h.row(h.a).UserExpanded)
	assert.False(t, h.row(h.a).UserLocked)
}

func TestBlinds_TouchSlop(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 28)), // exactly the slop
	)
	assert.False(t, h.disp.Claimed())

	h.send(ev(ActionMove, 0, pt(0, 100, 29)))
	assert.True(t, h.disp.Claimed())
	assert.Equal(t, StyleBlinds, h.ctrl.Style())
}

func TestBlinds_UpwardDragIgnored(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 90)),
		ev(ActionMove, 0, pt(0, 100, 60)),
	)
	assert.False(t, h.disp.Claimed())
	assert.Len(t, h.fallback, 2)
}

func TestBlinds_RequiresScrolledToTop(t *testing.T) {
	h := newHarness(t, testConfig())
	h.ctrl.SetScrollAdapter(fixedScroll{top: false, bounds: h.list.Bounds})

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 60)),
	)
	assert.False(t, h.disp.Claimed())
	assert.Equal(t, StyleNone, h.ctrl.Style())
}

func TestBlinds_WatchingClearedWhenScrolledAway(t *testing.T) {
	h := newHarness(t, testConfig())
	scroll := &fixedScroll{top: true, bounds: h.list.Bounds}
	h.ctrl.SetScrollAdapter(scroll)

	h.send(ev(ActionDown, 0, pt(0, 100, 20)))
	scroll.top = false
	h.send(ev(ActionMove, 0, pt(0, 100, 25)))
	scroll.top = true
	h.send(ev(ActionMove, 0, pt(0, 100, 60)))

	assert.False(t, h.disp.Claimed())
}

func TestBlinds_NeedsScrollAdapter(t *testing.T) {
	h := newHarness(t, testConfig())
	h.ctrl.SetScrollAdapter(nil)

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 60)),
	)
	assert.False(t, h.disp.Claimed())
}

func TestBlinds_DownOnHostEdgeNotArmed(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 0)),
		ev(ActionMove, 0, pt(0, 100, 30)),
	)
	assert.False(t, h.disp.Claimed())
}

func TestBlinds_RejectedOnHeader(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 105)),
		ev(ActionMove, 0, pt(0, 100, 115)),
	)
	assert.False(t, h.disp.Claimed())
	assert.Equal(t, StyleNone, h.ctrl.Style())
	assert.False(t, h.row(h.hdr).UserLocked)
	assert.Empty(t, h.events)
}

func TestBlinds_RejectedBelowContent(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 300)),
		ev(ActionMove, 0, pt(0, 100, 320)),
	)
	assert.False(t, h.disp.Claimed())
	assert.Empty(t, h.events)
}

func TestBlinds_NonExpandableRowStaysPut(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 140)),
		ev(ActionMove, 0, pt(0, 100, 150)),
	)
	require.Equal(t, StyleBlinds, h.ctrl.Style())
	assert.Equal(t, 50.0, h.events[0].NaturalHeight)

	h.send(ev(ActionMove, 0, pt(0, 100, 200)))
	assert.Equal(t, 50.0, h.row(h.fixed).Height)

	h.send(ev(ActionUp, 0, pt(0, 100, 200)))
	assert.False(t, h.anim.IsRunning())
	assert.False(t, h.row(h.fixed).UserLocked)
}

func TestBlinds_RetargetsPastNaturalHeight(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 30)),
	)
	// Raw height 250 is past a's natural 200. a fills 0-200, so the finger is
	// now over b.
	h.send(ev(ActionMove, 0, pt(0, 100, 230)))

	assert.Equal(t, 200.0, h.row(h.a).Height)
	assert.True(t, h.row(h.a).UserExpanded)
	assert.False(t, h.row(h.a).UserLocked)

	target, ok := h.ctrl.Target()
	require.True(t, ok)
	assert.Equal(t, h.b, target)
	assert.Equal(t, StyleBlinds, h.ctrl.Style())
	assert.True(t, h.row(h.b).UserLocked)

	assert.Equal(t, []ExpandEventType{
		ExpandStarted, ExpandPopped, ExpandSettled, ExpandStarted, ExpandRetargeted,
	}, h.eventTypes())
	assert.NotEqual(t, h.events[0].Session, h.events[3].Session)
	assert.Equal(t, h.events[3].Session, h.events[4].Session)

	// b starts un-popped from the new touch point.
	h.send(ev(ActionMove, 0, pt(0, 100, 240)))
	assert.Equal(t, 50.0, h.row(h.b).Height)
	h.send(ev(ActionMove, 0, pt(0, 100, 290)))
	assert.Equal(t, 110.0, h.row(h.b).Height)

	h.send(ev(ActionUp, 0, pt(0, 100, 290)))
	h.settle()
	assert.Equal(t, 300.0, h.row(h.b).Height)
	assert.Equal(t, 200.0, h.row(h.a).Height)
}

func TestBlinds_HapticsOncePerItem(t *testing.T) {
	var calls int
	h := newHarness(t, testConfig(), WithHaptics(HapticsFunc(func(time.Duration) { calls++ })))

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 30)),
		ev(ActionMove, 0, pt(0, 100, 230)), // pops a and moves on to b
		ev(ActionMove, 0, pt(0, 100, 260)), // pops b
		ev(ActionMove, 0, pt(0, 100, 280)),
	)
	assert.Equal(t, 2, calls)
}

// --- Stretch ---

func TestStretch_SpreadExpands(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 130, 25)),
		ev(ActionPointerDown, 1, pt(0, 130, 25), pt(1, 170, 25)),
		ev(ActionMove, 0, pt(0, 110, 25), pt(1, 190, 25)), // span 40 -> 80
	)
	require.True(t, h.disp.Claimed())
	assert.Equal(t, StyleStretch, h.ctrl.Style())
	target, _ := h.ctrl.Target()
	assert.Equal(t, h.a, target)
	assert.Equal(t, 50.0, h.row(h.a).Height)

	h.send(ev(ActionMove, 0, pt(0, 50, 25), pt(1, 250, 25))) // span 200
	assert.InDelta(t, 50+fuse(0, 120), h.row(h.a).Height, 1e-9)
}

func TestStretch_TakesOverPull(t *testing.T) {
	h := newHarness(t, testConfig())

	h.startPull(20)
	require.Equal(t, StylePull, h.ctrl.Style())

	h.send(ev(ActionMove, 0, pt(0, 50, 21), pt(1, 250, 21)))
	assert.Equal(t, StyleStretch, h.ctrl.Style())
	target, _ := h.ctrl.Target()
	assert.Equal(t, h.a, target)
	assert.Equal(t, []ExpandEventType{ExpandStarted}, h.eventTypes())
}

func TestStretch_RejectedOnHeader(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 180, 115)),
		ev(ActionPointerDown, 1, pt(0, 180, 115), pt(1, 180, 115)),
		ev(ActionMove, 0, pt(0, 180, 95), pt(1, 180, 135)), // vertical spread
	)
	assert.False(t, h.disp.Claimed())
	assert.Equal(t, StyleNone, h.ctrl.Style())
	assert.False(t, h.row(h.hdr).UserLocked)
}

// --- Re-baselining ---

func TestPointerChange_KeepsHeight(t *testing.T) {
	h := newHarness(t, testConfig())

	h.startPull(20)
	h.pullTo(61)
	before := h.row(h.a).Height
	require.InDelta(t, 50+fuse(40, 0), before, 1e-9)

	// A third finger well below the others moves focus and span.
	three := []Pointer{pt(0, 100, 61), pt(1, 200, 61), pt(2, 150, 121)}
	h.send(ev(ActionPointerDown, 2, three...))
	h.send(ev(ActionMove, 0, three...))
	assert.InDelta(t, before, h.row(h.a).Height, 1e-9)

	h.send(ev(ActionPointerUp, 2, three...))
	h.pullTo(61)
	assert.InDelta(t, before, h.row(h.a).Height, 1e-6)

	// Tracking carries on from the same origin.
	h.pullTo(81)
	assert.InDelta(t, 50+fuse(60, 0), h.row(h.a).Height, 1e-6)
}

func TestPointerChange_BlindsNoJump(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 30)),
		ev(ActionMove, 0, pt(0, 100, 70)),
	)
	require.Equal(t, 90.0, h.row(h.a).Height)

	two := []Pointer{pt(0, 100, 70), pt(1, 300, 150)}
	h.send(ev(ActionPointerDown, 1, two...), ev(ActionMove, 0, two...))
	assert.Equal(t, StyleBlinds, h.ctrl.Style())
	assert.Equal(t, 90.0, h.row(h.a).Height)
}

// --- Superseded settles ---

func TestNewGestureCancelsSettle(t *testing.T) {
	h := newHarness(t, testConfig())

	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 30)),
		ev(ActionMove, 0, pt(0, 100, 70)),
		ev(ActionUp, 0, pt(0, 100, 70)),
	)
	require.True(t, h.anim.IsRunning())
	h.ctrl.Update(0.05)
	partial := h.row(h.a).Height
	require.Greater(t, partial, 90.0)
	require.Less(t, partial, 200.0)

	bounds, ok := h.list.RowBounds(h.b)
	require.True(t, ok)
	y := bounds.Y + bounds.Height/2
	h.startPull(y)

	target, _ := h.ctrl.Target()
	require.Equal(t, h.b, target)
	assert.False(t, h.anim.IsRunning())
	assert.False(t, h.row(h.a).UserLocked, "superseded settle must still unlock its item")
	assert.True(t, h.row(h.b).UserLocked)
	assert.Equal(t, partial, h.row(h.a).Height)

	h.pullTo(y + 41)
	h.releasePull(y + 41)
	h.settle()

	assert.Equal(t, 300.0, h.row(h.b).Height)
	assert.False(t, h.row(h.b).UserLocked)
	assert.Equal(t, partial, h.row(h.a).Height, "old settle must not touch a after cancel")
}

func TestSettleIgnoresRemovedItem(t *testing.T) {
	h := newHarness(t, testConfig())

	h.startPull(20)
	h.pullTo(60)
	h.releasePull(60)
	require.True(t, h.anim.IsRunning())

	h.list.Remove(h.a)
	c := h.list.Add(NewRow("c", 50, 200)) // reuses a's slot
	require.Equal(t, h.a.Index, c.Index)

	h.settle()
	assert.Equal(t, 50.0, h.list.Row(c).Height)
	assert.False(t, h.list.Row(c).UserLocked)
}

// --- Coordinates ---

func TestEventSource_Offsets(t *testing.T) {
	h := newHarness(t, testConfig())
	h.list.Bounds.Y = 100

	// Event coordinates are list-local but the host bounds are on screen.
	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 40)),
		ev(ActionUp, 0, pt(0, 100, 40)),
	)
	assert.Empty(t, h.events)

	h.ctrl.SetEventSource(h.list)
	h.send(
		ev(ActionDown, 0, pt(0, 100, 20)),
		ev(ActionMove, 0, pt(0, 100, 40)),
	)
	target, ok := h.ctrl.Target()
	require.True(t, ok)
	assert.Equal(t, h.a, target)
}

func TestController_DefaultsAndOptions(t *testing.T) {
	list := NewList(Rect{Width: 100, Height: 100})
	c := NewController(DefaultConfig(), list)
	_, isTween := c.animator.(*TweenAnimator)
	assert.True(t, isTween)
	_, isPinch := c.detector.(*PinchDetector)
	assert.True(t, isPinch)

	var built int
	c = NewController(DefaultConfig(), list, WithScaleDetector(func(l ScaleListener) ScaleDetector {
		built++
		return NewPinchDetector(l, 10, 5)
	}))
	assert.Equal(t, 1, built)
	c.Cancel()
	assert.Equal(t, 1, built, "cancel reuses the detector")
}

// resetCounter wraps a PinchDetector and counts Reset calls.
type resetCounter struct {
	*PinchDetector
	resets int
}

func (r *resetCounter) Reset() {
	r.resets++
	r.PinchDetector.Reset()
}

func TestCancel_ResetsDetector(t *testing.T) {
	var det *resetCounter
	h := newHarness(t, testConfig(), WithScaleDetector(func(l ScaleListener) ScaleDetector {
		det = &resetCounter{PinchDetector: NewPinchDetector(l, 27, 16)}
		return det
	}))

	h.send(
		ev(ActionDown, 0, pt(0, 130, 25)),
		ev(ActionPointerDown, 1, pt(0, 130, 25), pt(1, 170, 25)),
		ev(ActionMove, 0, pt(0, 110, 25), pt(1, 190, 25)),
	)
	require.Equal(t, StyleStretch, h.ctrl.Style())
	require.True(t, det.InProgress())

	h.ctrl.Cancel()
	assert.Equal(t, 1, det.resets)
	assert.False(t, det.InProgress())
	assert.Equal(t, 0.0, det.CurrentSpan())

	// The same detector drives the next gesture.
	h.send(ev(ActionUp, 0, pt(0, 110, 25)))
	h.settle()
	h.startPull(20)
	assert.Equal(t, StylePull, h.ctrl.Style())
}
