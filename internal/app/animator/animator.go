package animator

// Animator walks a fixed ordered sequence of frames.
//
// Next increments before returning, so the first frame shown is 1 and frame 0 is only
// revisited after a full wrap.
type Animator struct {
	prev int
}

// New creates an animator positioned at start
func New(start int) *Animator {
	return &Animator{prev: start}
}

// Next advances to the following frame of an n-frame sequence and returns it
func (a *Animator) Next(n int) int {
	if n <= 0 {
		return 0
	}

	a.prev++
	if a.prev >= n {
		a.prev = 0
	}

	return a.prev
}

// Current returns the last returned frame
func (a *Animator) Current() int {
	return a.prev
}

// Reset moves back to frame 0
func (a *Animator) Reset() {
	a.prev = 0
}
