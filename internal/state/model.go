package state

import (
	"github.com/google/uuid"
)

// Point is a user-placed point. X and Y are percentages (0-100) of the
// canvas width and height.
type Point struct {
	ID string
	X  float64
	Y  float64
}

// AnimationState is the state of the marker animation.
type AnimationState int

const (
	Idle AnimationState = iota
	Running
	Paused
)

func (s AnimationState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Action reports what a pointer-down did.
type Action int

const (
	None Action = iota
	Placed
	Grabbed
)

const (
	DefaultSpeed         = 120.0 // px/s
	MinSpeed             = 20.0
	MaxSpeed             = 300.0
	DefaultCaptureRadius = 18.0 // px
)

// ClampSpeed clamps v into [MinSpeed, MaxSpeed].
func ClampSpeed(v float64) float64 {
	return min(max(v, MinSpeed), MaxSpeed)
}

func clampPercent(v float64) float64 {
	return min(max(v, 0), 100)
}

func newPointID() string {
	return uuid.NewString()
}
