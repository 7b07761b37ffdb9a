package state

import (
	"honnef.co/go/curve"
)

// Surface is the canvas as laid out on screen: its origin in pointer
// coordinates and its size in pixels.
type Surface struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewSurface returns a surface with its origin at (0,0).
func NewSurface(width, height float64) Surface {
	return Surface{Width: width, Height: height}
}

// Realized reports whether the surface has a drawable size. Nothing can be
// measured on an unrealized surface.
func (s Surface) Realized() bool {
	return s.Width > 0 && s.Height > 0
}

// SameSize reports whether s and o have the same pixel size.
func (s Surface) SameSize(o Surface) bool {
	return s.Width == o.Width && s.Height == o.Height
}

// Contains reports whether the pointer position lies on the surface.
func (s Surface) Contains(px, py float64) bool {
	return px >= s.X && px <= s.X+s.Width &&
		py >= s.Y && py <= s.Y+s.Height
}

// Local converts a pointer position into surface pixel coordinates.
func (s Surface) Local(px, py float64) curve.Point {
	return curve.Pt(px-s.X, py-s.Y)
}

// ToPercent converts a pointer position into percentages of the surface,
// clamped to [0,100]. Positions off the surface are clamped, not rejected.
// An unrealized surface maps everything to (0,0).
func (s Surface) ToPercent(px, py float64) (float64, float64) {
	if !s.Realized() {
		return 0, 0
	}
	x := (px - s.X) * 100 / s.Width
	y := (py - s.Y) * 100 / s.Height
	return clampPercent(x), clampPercent(y)
}

// ToPixels converts a point into surface pixel coordinates.
func (s Surface) ToPixels(p Point) curve.Point {
	return curve.Pt(p.X*s.Width/100, p.Y*s.Height/100)
}
