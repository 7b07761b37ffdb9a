package state

import (
	"log"
)

// PointStore holds the user-placed points: records indexed by ID plus an
// explicit insertion order, which is the polyline order.
type PointStore struct {
	points map[string]Point
	order  []string
	newID  func() string
}

// NewPointStore creates an empty store.
func NewPointStore() *PointStore {
	return &PointStore{
		points: make(map[string]Point),
		newID:  newPointID,
	}
}

// Add appends a point at (x, y), clamped to [0,100] on both axes, under a
// fresh ID and returns it.
func (s *PointStore) Add(x, y float64) Point {
	p := Point{ID: s.newID(), X: clampPercent(x), Y: clampPercent(y)}
	s.points[p.ID] = p
	s.order = append(s.order, p.ID)
	log.Printf("[EDITOR] Point added: %s at (%.2f, %.2f)", p.ID, p.X, p.Y)
	return p
}

// Move repositions an existing point, clamping as Add does. It reports false
// if id is unknown; a move never creates a point.
func (s *PointStore) Move(id string, x, y float64) bool {
	p, ok := s.points[id]
	if !ok {
		return false
	}
	p.X, p.Y = clampPercent(x), clampPercent(y)
	s.points[id] = p
	return true
}

// Get returns the point with the given ID.
func (s *PointStore) Get(id string) (Point, bool) {
	p, ok := s.points[id]
	return p, ok
}

// Points returns the points in insertion order.
func (s *PointStore) Points() []Point {
	out := make([]Point, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.points[id])
	}
	return out
}

// Len returns the number of points.
func (s *PointStore) Len() int {
	return len(s.order)
}

// Clear removes every point.
func (s *PointStore) Clear() {
	if len(s.order) > 0 {
		log.Printf("[EDITOR] Cleared %d points", len(s.order))
	}
	s.points = make(map[string]Point)
	s.order = nil
}
