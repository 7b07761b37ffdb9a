// Package state is the curve editor: the user's points, pointer handling
// (place, grab, drag) and the marker animation along the resulting path.
//
// An Editor is not safe for concurrent use. Pointer events and frame
// callbacks must all be delivered on the same goroutine.
package state

import (
	"log"

	"honnef.co/go/curve"

	"ChartAnimator/internal/frame"
	"ChartAnimator/internal/path"
)

// Options configures an Editor. Zero values pick the defaults. Without a
// Scheduler, frames run on timer goroutines; UI code must pass a scheduler
// that dispatches onto its event goroutine.
type Options struct {
	Scheduler     frame.Scheduler
	Speed         float64
	CaptureRadius float64
}

// Editor owns the point list and the animator tracing it.
type Editor struct {
	*Animator

	points        *PointStore
	surface       Surface
	captureRadius float64
	dragging      string

	// OnChange is called after any change that affects rendering.
	OnChange func()
}

var _ Track = (*Editor)(nil)

// NewEditor creates an editor with no points and an unrealized surface.
func NewEditor(opts Options) *Editor {
	if opts.Scheduler == nil {
		opts.Scheduler = frame.NewTimer(frame.DefaultInterval, nil)
	}
	if opts.Speed == 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.CaptureRadius <= 0 {
		opts.CaptureRadius = DefaultCaptureRadius
	}
	e := &Editor{
		points:        NewPointStore(),
		captureRadius: opts.CaptureRadius,
	}
	e.Animator = NewAnimator(opts.Scheduler, e, opts.Speed)
	e.Animator.onChange = e.notify
	return e
}

func (e *Editor) notify() {
	if e.OnChange != nil {
		e.OnChange()
	}
}

// Surface returns the current canvas surface.
func (e *Editor) Surface() Surface { return e.surface }

// CaptureRadius returns the grab distance in pixels.
func (e *Editor) CaptureRadius() float64 { return e.captureRadius }

// Resize updates the canvas surface. A change of pixel size changes the
// rendered path, so a started animation is reset.
func (e *Editor) Resize(s Surface) {
	old := e.surface
	e.surface = s
	if old.SameSize(s) {
		return
	}
	e.invalidate()
	e.notify()
}

// Points returns the points in path order.
func (e *Editor) Points() []Point { return e.points.Points() }

// PointCount returns the number of points.
func (e *Editor) PointCount() int { return e.points.Len() }

// Dragging returns the ID of the point being dragged, if any.
func (e *Editor) Dragging() (string, bool) {
	return e.dragging, e.dragging != ""
}

// PointerDown grabs the nearest point within the capture radius or, failing
// that, places a new point under the pointer. Pointer coordinates are in the
// same space as the surface origin. Nothing happens on an unrealized
// surface.
func (e *Editor) PointerDown(px, py float64) (Action, Point) {
	if !e.surface.Realized() {
		return None, Point{}
	}

	pts := e.points.Points()
	pixels := make([]curve.Point, len(pts))
	for i, p := range pts {
		pixels[i] = e.surface.ToPixels(p)
	}
	if i, ok := path.Nearest(pixels, e.surface.Local(px, py), e.captureRadius); ok {
		e.dragging = pts[i].ID
		return Grabbed, pts[i]
	}

	x, y := e.surface.ToPercent(px, py)
	p := e.points.Add(x, y)
	e.invalidate()
	e.notify()
	return Placed, p
}

// PointerMove moves the dragged point, if any, under the pointer.
func (e *Editor) PointerMove(px, py float64) {
	if e.dragging == "" || !e.surface.Realized() {
		return
	}
	x, y := e.surface.ToPercent(px, py)
	if !e.points.Move(e.dragging, x, y) {
		e.dragging = ""
		return
	}
	e.invalidate()
	e.notify()
}

// PointerUp ends a drag.
func (e *Editor) PointerUp() {
	e.dragging = ""
}

// PointerLeave ends a drag; drags do not continue outside the canvas.
func (e *Editor) PointerLeave() {
	e.dragging = ""
}

// Clear removes all points.
func (e *Editor) Clear() {
	if e.points.Len() == 0 {
		return
	}
	e.points.Clear()
	e.dragging = ""
	e.invalidate()
	e.notify()
}

// Path returns the polyline in surface pixel coordinates.
func (e *Editor) Path() curve.BezPath {
	pts := e.points.Points()
	pixels := make([]curve.Point, len(pts))
	for i, p := range pts {
		pixels[i] = e.surface.ToPixels(p)
	}
	return path.Build(pixels)
}

// PathDescription returns the polyline as SVG path data in percentage
// coordinates, suitable for a 0 0 100 100 view box.
func (e *Editor) PathDescription() string {
	pts := e.points.Points()
	coords := make([]curve.Point, len(pts))
	for i, p := range pts {
		coords[i] = curve.Pt(p.X, p.Y)
	}
	return path.Describe(path.Build(coords))
}

// PathLength returns the length of the rendered polyline in pixels, or 0
// when the surface is not realized.
func (e *Editor) PathLength() float64 {
	if !e.surface.Realized() {
		return 0
	}
	return path.Length(e.Path())
}

// Marker returns the marker position in surface pixels. It reports false
// when there is no path length or the animation has not progressed.
func (e *Editor) Marker() (curve.Point, bool) {
	progress := e.Progress()
	if progress <= 0 {
		return curve.Point{}, false
	}
	p := e.Path()
	length := path.Length(p)
	if !e.surface.Realized() || length <= 0 {
		return curve.Point{}, false
	}
	return path.PointAt(p, length*progress)
}

// Close stops the animation loop. The editor remains usable.
func (e *Editor) Close() {
	e.Animator.Close()
	log.Println("[EDITOR] Closed")
}
