package frame

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Animation schedules frames on fyne's animation loop, so callbacks run on
// the fyne event goroutine right before the window paints. The loop only
// ticks while a request is pending.
type Animation struct {
	// MinInterval caps the frame rate. Ticks arriving within three quarters
	// of MinInterval of the previous frame are skipped. Zero runs a frame on
	// every tick.
	MinInterval time.Duration

	start func(tick func()) (stop func())

	mu      sync.Mutex
	next    Handle
	pending map[Handle]Func
	order   []Handle
	gen     uint64
	ticking bool
	stop    func()
	last    time.Time
}

// NewAnimation returns a scheduler driven by a fyne.Animation that repeats
// until no frame is pending.
func NewAnimation(minInterval time.Duration) *Animation {
	return newAnimation(minInterval, startFyne)
}

func newAnimation(minInterval time.Duration, start func(tick func()) (stop func())) *Animation {
	if minInterval < 0 {
		minInterval = 0
	}
	return &Animation{
		MinInterval: minInterval,
		start:       start,
		pending:     make(map[Handle]Func),
	}
}

func startFyne(tick func()) (stop func()) {
	anim := fyne.NewAnimation(time.Second, func(float32) { tick() })
	anim.Curve = fyne.AnimationLinear
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Start()
	return anim.Stop
}

func (a *Animation) Request(fn Func) Handle {
	a.mu.Lock()
	a.next++
	h := a.next
	a.pending[h] = fn
	a.order = append(a.order, h)
	if a.ticking {
		a.mu.Unlock()
		return h
	}
	a.ticking = true
	a.gen++
	gen := a.gen
	a.mu.Unlock()

	// The driver may tick before start returns.
	stop := a.start(func() { a.tick(gen) })

	a.mu.Lock()
	if a.ticking && a.gen == gen {
		a.stop = stop
		stop = nil
	}
	a.mu.Unlock()
	if stop != nil {
		stop()
	}
	return h
}

func (a *Animation) Cancel(h Handle) {
	a.mu.Lock()
	delete(a.pending, h)
	a.idleLocked()
}

// Pending reports the number of outstanding requests.
func (a *Animation) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}

// Ticking reports whether the fyne animation is running.
func (a *Animation) Ticking() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticking
}

func (a *Animation) tick(gen uint64) {
	now := time.Now()
	a.mu.Lock()
	if !a.ticking || a.gen != gen {
		a.mu.Unlock()
		return
	}
	if !a.last.IsZero() && now.Sub(a.last) < a.MinInterval*3/4 {
		a.mu.Unlock()
		return
	}
	a.last = now
	due := a.order
	a.order = nil
	a.mu.Unlock()

	for _, h := range due {
		a.mu.Lock()
		fn, ok := a.pending[h]
		delete(a.pending, h)
		a.mu.Unlock()
		if ok {
			fn(now)
		}
	}

	a.mu.Lock()
	a.idleLocked()
}

// idleLocked stops the loop when nothing is pending and releases a.mu.
func (a *Animation) idleLocked() {
	if !a.ticking || len(a.pending) > 0 {
		a.mu.Unlock()
		return
	}
	a.ticking = false
	a.order = nil
	a.last = time.Time{}
	stop := a.stop
	a.stop = nil
	a.mu.Unlock()
	if stop != nil {
		stop()
	}
}
