// Package frame provides "request next frame" scheduling for the animation
// loop. A request runs its callback once; callers reschedule from inside the
// callback to keep a loop going.
package frame

import (
	"sync"
	"time"
)

// Func is a frame callback. now is the frame timestamp.
type Func func(now time.Time)

// Handle identifies a pending request. The zero Handle is never issued.
type Handle uint64

// Scheduler schedules single frame callbacks. Cancel must be idempotent:
// cancelling a handle that already ran, was already cancelled or was never
// issued is a no-op. A cancelled request never runs.
type Scheduler interface {
	Request(fn Func) Handle
	Cancel(h Handle)
}

// DefaultInterval is one frame at 60 fps.
const DefaultInterval = time.Second / 60

// Timer schedules frames with time.AfterFunc and hands each callback to
// Dispatch, which must run it on the goroutine that owns the animated state.
// It needs no running fyne app, so headless editors use it.
type Timer struct {
	Interval time.Duration
	Dispatch func(func())

	mu      sync.Mutex
	next    Handle
	pending map[Handle]*time.Timer
}

// NewTimer returns a Timer firing every interval. A non-positive interval
// falls back to DefaultInterval; a nil dispatch runs callbacks on the timer
// goroutine.
func NewTimer(interval time.Duration, dispatch func(func())) *Timer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &Timer{
		Interval: interval,
		Dispatch: dispatch,
		pending:  make(map[Handle]*time.Timer),
	}
}

func (t *Timer) Request(fn Func) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	h := t.next
	t.pending[h] = time.AfterFunc(t.Interval, func() {
		t.Dispatch(func() {
			// The request may have been cancelled between firing and dispatch.
			if !t.take(h) {
				return
			}
			fn(time.Now())
		})
	})
	return h
}

func (t *Timer) Cancel(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if tm, ok := t.pending[h]; ok {
		tm.Stop()
		delete(t.pending, h)
	}
}

// Pending reports the number of outstanding requests.
func (t *Timer) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

func (t *Timer) take(h Handle) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.pending[h]; !ok {
		return false
	}
	delete(t.pending, h)
	return true
}

// Manual is a Scheduler driven by hand, for tests and headless use. Nothing
// runs until Step is called.
type Manual struct {
	now     time.Time
	next    Handle
	pending map[Handle]Func
	order   []Handle
}

// NewManual returns a Manual scheduler whose clock starts at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start, pending: make(map[Handle]Func)}
}

func (m *Manual) Request(fn Func) Handle {
	m.next++
	m.pending[m.next] = fn
	m.order = append(m.order, m.next)
	return m.next
}

func (m *Manual) Cancel(h Handle) {
	delete(m.pending, h)
}

// Now returns the scheduler clock.
func (m *Manual) Now() time.Time { return m.now }

// Pending reports the number of outstanding requests.
func (m *Manual) Pending() int { return len(m.pending) }

// Step advances the clock by dt and runs every request that was pending
// before the step, in request order. Requests made by those callbacks wait
// for the next Step. It reports how many callbacks ran.
func (m *Manual) Step(dt time.Duration) int {
	m.now = m.now.Add(dt)
	due := m.order
	m.order = nil
	ran := 0
	for _, h := range due {
		fn, ok := m.pending[h]
		if !ok {
			continue
		}
		delete(m.pending, h)
		fn(m.now)
		ran++
	}
	return ran
}

// Run steps the scheduler by dt until nothing is pending or limit steps have
// been taken, and returns the number of steps taken.
func (m *Manual) Run(dt time.Duration, limit int) int {
	steps := 0
	for steps < limit && len(m.pending) > 0 {
		m.Step(dt)
		steps++
	}
	return steps
}
