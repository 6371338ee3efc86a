package expand

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// Input turns Ebitengine mouse and touch state into pointer Events, one poll
// per frame, and feeds them to a Dispatcher. The left mouse button acts as a
// single touch whenever no real touches are down.
type Input struct {
	dispatcher *Dispatcher

	active []Pointer // pointers currently down, in the order they went down

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []Event
	synth       []Pointer
	testRunner  *TestRunner
}

// NewInput creates an input poller delivering to d.
func NewInput(d *Dispatcher) *Input {
	return &Input{dispatcher: d}
}

// Update polls one frame of input. Queued synthetic events take precedence:
// while any are pending one is delivered per frame and real input is skipped.
func (in *Input) Update() {
	if in.testRunner != nil {
		in.testRunner.step(in)
	}
	if in.processInjectedInput() {
		return
	}
	in.poll()
}

// poll reads the current touch and mouse state.
func (in *Input) poll() {
	var down [maxPointers]bool
	var pos [maxPointers]Vec2

	touchIDs := ebiten.AppendTouchIDs(in.prevTouchIDs[:0])
	in.prevTouchIDs = touchIDs
	for _, tid := range touchIDs {
		slot := in.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		down[slot] = true
		pos[slot] = Vec2{X: float64(tx), Y: float64(ty)}
	}

	// Free any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && !down[i] {
			in.touchUsed[i] = false
			in.touchMap[i] = 0
		}
	}

	if len(touchIDs) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		down[0] = true
		pos[0] = Vec2{X: float64(mx), Y: float64(my)}
	}

	in.sync(down, pos)
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (in *Input) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if in.touchUsed[i] && in.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !in.touchUsed[i] {
			in.touchUsed[i] = true
			in.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// sync diffs the pointers that are down this frame against the previous frame
// and dispatches lifts first, then new pointers, then a single move.
func (in *Input) sync(down [maxPointers]bool, pos [maxPointers]Vec2) {
	for i := 0; i < len(in.active); {
		p := in.active[i]
		if down[p.ID] {
			i++
			continue
		}
		action := ActionPointerUp
		if len(in.active) == 1 {
			action = ActionUp
		}
		in.dispatch(Event{Action: action, ActionIndex: i, Pointers: snapshot(in.active)})
		in.active = append(in.active[:i], in.active[i+1:]...)
	}

	for id := 0; id < maxPointers; id++ {
		if !down[id] || in.isActive(id) {
			continue
		}
		in.active = append(in.active, Pointer{ID: id, X: pos[id].X, Y: pos[id].Y})
		action := ActionPointerDown
		if len(in.active) == 1 {
			action = ActionDown
		}
		in.dispatch(Event{Action: action, ActionIndex: len(in.active) - 1, Pointers: snapshot(in.active)})
	}

	moved := false
	for i := range in.active {
		p := &in.active[i]
		np := pos[p.ID]
		if p.X != np.X || p.Y != np.Y {
			p.X, p.Y = np.X, np.Y
			moved = true
		}
	}
	if moved {
		in.dispatch(Event{Action: ActionMove, Pointers: snapshot(in.active)})
	}
}

func (in *Input) isActive(id int) bool {
	for _, p := range in.active {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (in *Input) dispatch(ev Event) {
	if in.dispatcher != nil {
		in.dispatcher.Dispatch(ev)
	}
}

// snapshot copies ps so a dispatched Event never aliases live state.
func snapshot(ps []Pointer) []Pointer {
	out := make([]Pointer, len(ps))
	copy(out, ps)
	return out
}
