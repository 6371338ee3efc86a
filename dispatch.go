package expand

// Handler is the event-handling surface a Controller exposes to its host.
type Handler interface {
	OnInterceptEvent(ev Event) bool
	OnEvent(ev Event) bool
}

// Dispatcher routes pointer events the way a view hierarchy does: every event
// is offered to the handler's OnInterceptEvent until it claims the stream, and
// from then on goes straight to OnEvent until the stream ends. Events nobody
// claimed go to Fallback, typically the container's own scrolling.
type Dispatcher struct {
	handler  Handler
	claimed  bool
	Fallback func(ev Event) bool
}

// NewDispatcher creates a dispatcher in front of h.
func NewDispatcher(h Handler) *Dispatcher {
	return &Dispatcher{handler: h}
}

// Claimed reports whether the handler owns the current stream.
func (d *Dispatcher) Claimed() bool {
	return d.claimed
}

// Dispatch delivers ev and reports whether anyone handled it. The event that
// causes the claim is consumed by OnInterceptEvent and not repeated to OnEvent.
func (d *Dispatcher) Dispatch(ev Event) bool {
	var handled bool
	switch {
	case d.claimed:
		handled = d.handler.OnEvent(ev)
	case d.handler.OnInterceptEvent(ev):
		d.claimed = true
		handled = true
	case d.Fallback != nil:
		handled = d.Fallback(ev)
	}
	if ev.Action == ActionUp || ev.Action == ActionCancel {
		d.claimed = false
	}
	return handled
}
