// Package path derives the animated polyline from an ordered list of points.
//
// Paths are plain [curve.BezPath] values: a MoveTo for the first point
// followed by one LineTo per remaining point. Everything here is a pure
// function of its inputs; callers recompute on every read instead of caching.
package path

import (
	"math"

	"honnef.co/go/curve"
)

// Accuracy used for arc length computations. Polylines only contain lines,
// whose lengths are exact, so this only matters if curved segments appear.
const Accuracy = 1e-6

// Build returns the polyline through points in order. An empty input yields
// an empty path.
func Build(points []curve.Point) curve.BezPath {
	if len(points) == 0 {
		return nil
	}
	p := make(curve.BezPath, 0, len(points))
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	return p
}

// Describe returns the SVG path data for p, e.g. "M10,10 L50,50".
func Describe(p curve.BezPath) string {
	if len(p) == 0 {
		return ""
	}
	return p.SVG(curve.SVGOptions{})
}

// Length returns the total arc length of p. Paths without segments (empty,
// or a lone MoveTo) have length 0.
func Length(p curve.BezPath) float64 {
	if !p.HasSegments() {
		return 0
	}
	l := p.Arclen(Accuracy)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return 0
	}
	return l
}

// PointAt returns the point at arc length s along p. s is clamped to
// [0, Length(p)]. It reports false when p has no length.
func PointAt(p curve.BezPath, s float64) (curve.Point, bool) {
	total := Length(p)
	if total <= 0 {
		return curve.Point{}, false
	}
	s = min(max(s, 0), total)

	var last curve.PathSegment
	for seg := range p.Segments() {
		l := seg.Arclen(Accuracy)
		if s <= l {
			if l == 0 {
				return seg.Start(), true
			}
			return seg.Eval(seg.SolveForArclen(s, Accuracy)), true
		}
		s -= l
		last = seg
	}
	// Rounding can leave a sliver of s past the final segment.
	return last.End(), true
}

// Nearest returns the index of the point in points closest to pt, provided it
// lies within radius. Ties resolve to the earliest point.
func Nearest(points []curve.Point, pt curve.Point, radius float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range points {
		if d := p.Distance(pt); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist > radius {
		return -1, false
	}
	return best, true
}
