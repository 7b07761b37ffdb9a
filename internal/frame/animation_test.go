package frame

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loop stands in for the fyne animation runner.
type loop struct {
	tick   func()
	starts int
	stops  int
	// sync ticks once inside start, like the fyne test driver.
	sync bool
}

func (l *loop) start(tick func()) func() {
	l.starts++
	l.tick = tick
	if l.sync {
		tick()
	}
	return func() { l.stops++ }
}

func TestAnimationStartsAndStopsLoop(t *testing.T) {
	l := &loop{}
	a := newAnimation(0, l.start)
	assert.False(t, a.Ticking())

	var stamps []time.Time
	a.Request(func(now time.Time) { stamps = append(stamps, now) })
	require.True(t, a.Ticking())
	assert.Equal(t, 1, l.starts)
	assert.Equal(t, 1, a.Pending())

	l.tick()
	assert.Len(t, stamps, 1)
	assert.False(t, stamps[0].IsZero())
	assert.False(t, a.Ticking(), "loop should stop once nothing is pending")
	assert.Equal(t, 1, l.stops)

	l.tick()
	assert.Len(t, stamps, 1, "stale ticks must not run anything")

	a.Request(func(now time.Time) { stamps = append(stamps, now) })
	assert.Equal(t, 2, l.starts)
	l.tick()
	assert.Len(t, stamps, 2)
	assert.Equal(t, 2, l.stops)
}

func TestAnimationRescheduleWaitsForNextTick(t *testing.T) {
	l := &loop{}
	a := newAnimation(0, l.start)

	runs := 0
	var step Func
	step = func(time.Time) {
		runs++
		if runs < 3 {
			a.Request(step)
		}
	}
	a.Request(step)

	l.tick()
	assert.Equal(t, 1, runs)
	assert.True(t, a.Ticking())
	l.tick()
	l.tick()
	assert.Equal(t, 3, runs)
	assert.False(t, a.Ticking())
	assert.Equal(t, 1, l.starts, "one loop serves the whole run")
	assert.Equal(t, 1, l.stops)
}

func TestAnimationCancel(t *testing.T) {
	l := &loop{}
	a := newAnimation(0, l.start)

	ran := false
	h := a.Request(func(time.Time) { ran = true })
	a.Cancel(h)
	a.Cancel(h)
	a.Cancel(0)
	assert.False(t, a.Ticking())
	assert.Equal(t, 1, l.stops)

	l.tick()
	assert.False(t, ran)
	assert.Zero(t, a.Pending())
}

func TestAnimationCancelFromCallback(t *testing.T) {
	l := &loop{}
	a := newAnimation(0, l.start)

	var second Handle
	ran := false
	a.Request(func(time.Time) { a.Cancel(second) })
	second = a.Request(func(time.Time) { ran = true })

	l.tick()
	assert.False(t, ran)
	assert.False(t, a.Ticking())
}

func TestAnimationMinInterval(t *testing.T) {
	l := &loop{}
	a := newAnimation(time.Hour, l.start)

	runs := 0
	var step Func
	step = func(time.Time) {
		runs++
		a.Request(step)
	}
	a.Request(step)

	l.tick()
	l.tick()
	l.tick()
	assert.Equal(t, 1, runs)
	assert.Equal(t, 1, a.Pending())
}

func TestAnimationTickDuringStart(t *testing.T) {
	l := &loop{sync: true}
	a := newAnimation(0, l.start)

	ran := false
	a.Request(func(time.Time) { ran = true })
	assert.True(t, ran)
	assert.False(t, a.Ticking())
	assert.Equal(t, 1, l.stops)
}

func TestAnimationOnFyneDriver(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)

	a := NewAnimation(DefaultInterval)
	ran := false
	a.Request(func(time.Time) { ran = true })
	assert.True(t, ran)
	assert.Zero(t, a.Pending())
	assert.False(t, a.Ticking())
}
