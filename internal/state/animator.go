package state

import (
	"time"

	"ChartAnimator/internal/frame"
)

// Track is what the animator traces: it needs at least two points and a
// positive path length to run.
type Track interface {
	PointCount() int
	PathLength() float64
}

// Animator advances a progress value along a Track at Speed px/s, one frame
// at a time.
//
//	Idle    --Start-->  Running
//	any     --Pause-->  Paused
//	Running --(progress reaches 1)--> Paused
//	Paused  --Start-->  Running
//	any     --Reset-->  Idle
type Animator struct {
	sched    frame.Scheduler
	track    Track
	onChange func()

	state    AnimationState
	progress float64
	speed    float64
	handle   frame.Handle
	clock    frameClock
}

// NewAnimator returns an idle animator at speed (clamped).
func NewAnimator(sched frame.Scheduler, track Track, speed float64) *Animator {
	return &Animator{
		sched: sched,
		track: track,
		speed: ClampSpeed(speed),
	}
}

func (a *Animator) State() AnimationState { return a.state }
func (a *Animator) Progress() float64     { return a.progress }
func (a *Animator) Speed() float64        { return a.speed }

// SetSpeed sets the speed in px/s, clamped to [MinSpeed, MaxSpeed]. A
// running animation picks it up on its next frame.
func (a *Animator) SetSpeed(v float64) {
	a.speed = ClampSpeed(v)
	a.changed()
}

// Start begins or resumes the animation. It does nothing when already
// running or when the track has fewer than two points or no length. A run
// that already reached the end starts over from the beginning.
func (a *Animator) Start() {
	if a.state == Running {
		return
	}
	if a.track.PointCount() < 2 || a.track.PathLength() <= 0 {
		return
	}
	if a.progress >= 1 {
		a.progress = 0
	}
	a.state = Running
	a.clock.clear()
	a.schedule()
	a.changed()
}

// Pause freezes progress. It moves to Paused from any state, so an idle
// animation becomes paused at zero progress.
func (a *Animator) Pause() {
	a.cancel()
	a.state = Paused
	a.clock.clear()
	a.changed()
}

// Reset returns to Idle with zero progress. Calling it repeatedly is the
// same as calling it once.
func (a *Animator) Reset() {
	a.cancel()
	a.state = Idle
	a.progress = 0
	a.clock.clear()
	a.changed()
}

// Close cancels any scheduled frame without touching progress. A running
// animation is left paused so a later Start resumes it.
func (a *Animator) Close() {
	a.cancel()
	if a.state == Running {
		a.state = Paused
		a.clock.clear()
	}
}

// invalidate resets a started animation after the path changed.
func (a *Animator) invalidate() {
	if a.state != Idle || a.progress != 0 {
		a.Reset()
	}
}

func (a *Animator) schedule() {
	a.handle = a.sched.Request(a.frame)
}

func (a *Animator) cancel() {
	if a.handle != 0 {
		a.sched.Cancel(a.handle)
		a.handle = 0
	}
}

func (a *Animator) frame(now time.Time) {
	a.handle = 0
	if a.state != Running {
		return
	}

	length := a.track.PathLength()
	if length <= 0 {
		a.state = Paused
		a.clock.clear()
		a.changed()
		return
	}

	dt := a.clock.elapsed(now)
	a.progress = min(a.progress+a.speed*dt.Seconds()/length, 1)
	if a.progress >= 1 {
		a.progress = 1
		a.state = Paused
		a.clock.clear()
	} else {
		a.schedule()
	}
	a.changed()
}

func (a *Animator) changed() {
	if a.onChange != nil {
		a.onChange()
	}
}
