package expand

// Synthetic pointer events use the same coordinates real input would. Each
// Inject call records the event immediately, so multi-finger sequences can be
// built up step by step; events are delivered one per frame by Input.Update.

// InjectDown queues the first pointer (ID 0) going down at (x, y).
// Any synthetic pointers still down are forgotten.
func (in *Input) InjectDown(x, y float64) {
	in.synth = append(in.synth[:0], Pointer{ID: 0, X: x, Y: y})
	in.enqueue(ActionDown, 0)
}

// InjectPointerDown queues an additional pointer going down at (x, y).
func (in *Input) InjectPointerDown(id int, x, y float64) {
	in.synth = append(in.synth, Pointer{ID: id, X: x, Y: y})
	in.enqueue(ActionPointerDown, len(in.synth)-1)
}

// InjectMove queues pointer id moving to (x, y). Unknown IDs are ignored.
func (in *Input) InjectMove(id int, x, y float64) {
	i := in.synthIndex(id)
	if i < 0 {
		return
	}
	in.synth[i].X = x
	in.synth[i].Y = y
	in.enqueue(ActionMove, 0)
}

// InjectPointerUp queues pointer id lifting. When it is the last pointer down
// the event is an ActionUp.
func (in *Input) InjectPointerUp(id int) {
	i := in.synthIndex(id)
	if i < 0 {
		return
	}
	action := ActionPointerUp
	if len(in.synth) == 1 {
		action = ActionUp
	}
	in.enqueue(action, i)
	in.synth = append(in.synth[:i], in.synth[i+1:]...)
}

// InjectUp queues every remaining pointer lifting, the last as ActionUp.
func (in *Input) InjectUp() {
	for len(in.synth) > 0 {
		in.InjectPointerUp(in.synth[len(in.synth)-1].ID)
	}
}

// InjectCancel queues the host aborting the stream.
func (in *Input) InjectCancel() {
	in.enqueue(ActionCancel, 0)
	in.synth = in.synth[:0]
}

// InjectDrag queues a full single-finger drag: down at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, a move to
// (toX, toY) and the release. Minimum frames is 2.
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectDown(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(0, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectMove(0, toX, toY)
	in.InjectUp()
}

// InjectPinch queues a two-finger horizontal pinch centered on (cx, cy): both
// fingers go down fromSpan apart, move apart to toSpan over frames moves, and
// lift.
func (in *Input) InjectPinch(cx, cy, fromSpan, toSpan float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	in.InjectDown(cx-fromSpan/2, cy)
	in.InjectPointerDown(1, cx+fromSpan/2, cy)
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		half := (fromSpan + (toSpan-fromSpan)*t) / 2
		in.synth[0].X = cx - half
		in.InjectMove(1, cx+half, cy)
	}
	in.InjectUp()
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int {
	return len(in.injectQueue)
}

func (in *Input) enqueue(action Action, index int) {
	in.injectQueue = append(in.injectQueue, Event{
		Action:      action,
		ActionIndex: index,
		Pointers:    snapshot(in.synth),
	})
}

func (in *Input) synthIndex(id int) int {
	for i, p := range in.synth {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (real input should be skipped).
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	ev := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]
	in.dispatch(ev)
	return true
}
