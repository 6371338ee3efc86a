package expand

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SettleTask describes one settle animation. It is built once when the gesture
// ends and never changes afterwards; Apply and OnComplete capture the item they
// were built for, so a later gesture cannot redirect them.
type SettleTask struct {
	Item     Handle
	From, To float64
	Duration time.Duration
	// Apply writes an interpolated height.
	Apply func(height float64)
	// OnComplete runs exactly once, when the animation finishes or is
	// cancelled.
	OnComplete func()
}

// SettleAnimator runs settle animations one at a time on the host frame clock.
type SettleAnimator interface {
	// Animate starts task. A still-running animation is cancelled first.
	Animate(task SettleTask)
	// Cancel stops the running animation where it is and completes it.
	Cancel()
	IsRunning() bool
}

// TweenAnimator is the default SettleAnimator, backed by a gween tween. It has
// no clock of its own: the host calls Update every frame.
type TweenAnimator struct {
	// Ease shapes the animation. Defaults to ease.OutQuad.
	Ease ease.TweenFunc

	tween   *gween.Tween
	task    SettleTask
	running bool
}

// NewTweenAnimator creates an idle animator using ease.OutQuad.
func NewTweenAnimator() *TweenAnimator {
	return &TweenAnimator{Ease: ease.OutQuad}
}

// Animate starts task. A running animation is cancelled first.
func (a *TweenAnimator) Animate(task SettleTask) {
	if a.running {
		a.Cancel()
	}
	fn := a.Ease
	if fn == nil {
		fn = ease.OutQuad
	}
	a.task = task
	a.tween = gween.New(float32(task.From), float32(task.To), float32(task.Duration.Seconds()), fn)
	a.running = true
}

// Update advances the animation by dt seconds and applies the new height.
// On the frame the tween finishes the exact target is applied and the task
// completes.
func (a *TweenAnimator) Update(dt float32) {
	if !a.running {
		return
	}
	val, finished := a.tween.Update(dt)
	if finished {
		a.apply(a.task.To)
		a.complete()
		return
	}
	a.apply(float64(val))
}

// Cancel stops the running animation at its current height and runs the
// task's completion.
func (a *TweenAnimator) Cancel() {
	if !a.running {
		return
	}
	a.complete()
}

// IsRunning reports whether an animation is in flight.
func (a *TweenAnimator) IsRunning() bool {
	return a.running
}

func (a *TweenAnimator) apply(h float64) {
	if a.task.Apply != nil {
		a.task.Apply(h)
	}
}

func (a *TweenAnimator) complete() {
	done := a.task.OnComplete
	a.running = false
	a.tween = nil
	a.task = SettleTask{}
	if done != nil {
		done()
	}
}
