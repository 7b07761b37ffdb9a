package state

import "time"

// frameClock tracks the timestamp of the previous animation frame so each
// frame can compute its elapsed time.
type frameClock struct {
	last    time.Time
	started bool
}

// elapsed returns the time since the previous frame and records now. The
// first frame after a clear has zero elapsed time.
func (c *frameClock) elapsed(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}

// clear forgets the previous frame so a gap (pause, reset) is not counted.
func (c *frameClock) clear() {
	c.started = false
	c.last = time.Time{}
}
