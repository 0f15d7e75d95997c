package lifecycle

// Invalidator requests a repaint on the next opportunity
type Invalidator interface {
	Invalidate()
}

// Signal coalesces repaint requests; any number of Invalidate calls between two
// receives on C produce a single repaint
type Signal struct {
	ch chan struct{}
}

// NewSignal creates a repaint signal
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Invalidate marks the surface dirty
func (s *Signal) Invalidate() {
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

// C is readable while a repaint is pending
func (s *Signal) C() <-chan struct{} {
	return s.ch
}

// Pending reports whether a repaint is pending without consuming it
func (s *Signal) Pending() bool {
	return len(s.ch) > 0
}
