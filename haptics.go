package expand

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Haptics plays tactile feedback. The controller calls Vibrate at most once per
// gesture, when a blinds drag pops.
type Haptics interface {
	Vibrate(d time.Duration)
}

// HapticsFunc adapts an ordinary function to the Haptics interface.
type HapticsFunc func(time.Duration)

// Vibrate calls f(d).
func (f HapticsFunc) Vibrate(d time.Duration) {
	f(d)
}

// EbitenHaptics vibrates the device through Ebitengine. Magnitude is in [0, 1];
// zero means full strength. Only mobile and gamepad-less browsers vibrate, on
// other platforms ebiten.Vibrate is a no-op.
type EbitenHaptics struct {
	Magnitude float64
}

// Vibrate requests a vibration of duration d.
func (h EbitenHaptics) Vibrate(d time.Duration) {
	mag := h.Magnitude
	if mag <= 0 || mag > 1 {
		mag = 1
	}
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: mag,
	})
}
