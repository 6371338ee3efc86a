package expand

import (
	"time"

	"github.com/rs/zerolog"
)

// gestureStats holds per-gesture counters. Only reported when the controller
// is in debug mode.
type gestureStats struct {
	start     time.Time
	events    int
	moves     int
	retargets int
	popped    bool
}

// SetDebugMode enables or disables debug mode. When enabled, a summary of every
// gesture is logged at info level when it settles.
func (c *Controller) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugLog reports the finished gesture's stats.
func (c *Controller) debugLog(current, target float64, forced bool) {
	if !c.debug {
		return
	}
	st := c.s.stats
	var elapsed time.Duration
	if !st.start.IsZero() {
		elapsed = time.Since(st.start)
	}
	c.log.Info().
		Str("session", c.s.id.String()).
		Stringer("style", c.s.style).
		Int("item", c.s.item.Index).
		Float64("old_height", c.s.oldHeight).
		Float64("natural_height", c.s.naturalHeight).
		Float64("current_height", current).
		Float64("target_height", target).
		Bool("forced", forced).
		Bool("popped", st.popped).
		Int("events", st.events).
		Int("moves", st.moves).
		Int("retargets", st.retargets).
		Dur("elapsed", elapsed).
		Msg("gesture finished")
}

// traceEvent logs one pointer event at debug level.
func (c *Controller) traceEvent(phase string, ev Event) {
	c.s.stats.events++
	if ev.Action == ActionMove {
		c.s.stats.moves++
	}
	if c.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	c.log.Debug().
		Str("phase", phase).
		Stringer("action", ev.Action).
		Int("pointers", ev.PointerCount()).
		Stringer("style", c.s.style).
		Msg("pointer event")
}
