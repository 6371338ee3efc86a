package expand

import "math"

// fuse blends the drag and span channels into one height delta. Each channel
// is weighted by its own share of the combined magnitude, so whichever gesture
// dominates drives the result without a hard switch between them. The +1
// keeps the divisor positive when both channels are idle.
func fuse(drag, span float64) float64 {
	pull := math.Abs(drag) + math.Abs(span) + 1
	return drag*math.Abs(drag)/pull + span*math.Abs(span)/pull
}

// clampHeight bounds target to [small, large] and then caps it at natural.
func clampHeight(target, small, large, natural float64) float64 {
	out := target
	if out < small {
		out = small
	} else if out > large {
		out = large
	}
	if out > natural {
		out = natural
	}
	return out
}

// settleTarget picks the height an item snaps to on release. Any net movement
// away from the state the gesture started in commits to the opposite state;
// force always commits.
func settleTarget(current, old, small, natural float64, force bool) float64 {
	if old == small {
		if force || current > small {
			return natural
		}
		return small
	}
	if force || current < natural {
		return small
	}
	return natural
}
