package path

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestBuild(t *testing.T) {
	if p := Build(nil); len(p) != 0 {
		t.Fatalf("expected empty path, got %v", p)
	}

	p := Build([]curve.Point{curve.Pt(10, 10), curve.Pt(50, 50), curve.Pt(90, 10)})
	want := curve.BezPath{
		curve.MoveTo(curve.Pt(10, 10)),
		curve.LineTo(curve.Pt(50, 50)),
		curve.LineTo(curve.Pt(90, 10)),
	}
	diff(t, want, p)
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name   string
		points []curve.Point
		want   string
	}{
		{"empty", nil, ""},
		{"single", []curve.Point{curve.Pt(10, 10)}, "M10,10"},
		{"three", []curve.Point{curve.Pt(10, 10), curve.Pt(50, 50), curve.Pt(90, 10)}, "M10,10 L50,50 L90,10"},
		{"fractional", []curve.Point{curve.Pt(0.5, 12.25), curve.Pt(100, 0)}, "M0.5,12.25 L100,0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Describe(Build(c.points)); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

func TestLength(t *testing.T) {
	cases := []struct {
		name   string
		points []curve.Point
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []curve.Point{curve.Pt(3, 4)}, 0},
		{"same_point_twice", []curve.Point{curve.Pt(3, 4), curve.Pt(3, 4)}, 0},
		{"one_segment", []curve.Point{curve.Pt(0, 0), curve.Pt(3, 4)}, 5},
		{"two_segments", []curve.Point{curve.Pt(0, 0), curve.Pt(3, 4), curve.Pt(3, 10)}, 11},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			diff(t, c.want, Length(Build(c.points)), approx)
		})
	}
}

func TestPointAt(t *testing.T) {
	p := Build([]curve.Point{curve.Pt(0, 0), curve.Pt(3, 4), curve.Pt(3, 10)})

	cases := []struct {
		name string
		s    float64
		want curve.Point
	}{
		{"start", 0, curve.Pt(0, 0)},
		{"before_start", -3, curve.Pt(0, 0)},
		{"first_half", 2.5, curve.Pt(1.5, 2)},
		{"joint", 5, curve.Pt(3, 4)},
		{"second_half", 8, curve.Pt(3, 7)},
		{"end", 11, curve.Pt(3, 10)},
		{"past_end", 20, curve.Pt(3, 10)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PointAt(p, c.s)
			if !ok {
				t.Fatal("expected a point")
			}
			diff(t, c.want, got, approx)
		})
	}
}

func TestPointAtWithoutLength(t *testing.T) {
	for _, p := range []curve.BezPath{
		nil,
		Build([]curve.Point{curve.Pt(1, 1)}),
		Build([]curve.Point{curve.Pt(1, 1), curve.Pt(1, 1)}),
	} {
		if _, ok := PointAt(p, 0.5); ok {
			t.Errorf("PointAt(%v) should report no point", p)
		}
	}
}

func TestPointAtSkipsDegenerateSegment(t *testing.T) {
	p := Build([]curve.Point{curve.Pt(0, 0), curve.Pt(0, 0), curve.Pt(10, 0)})
	got, ok := PointAt(p, 4)
	if !ok {
		t.Fatal("expected a point")
	}
	diff(t, curve.Pt(4, 0), got, approx)
}

func TestNearest(t *testing.T) {
	points := []curve.Point{curve.Pt(0, 0), curve.Pt(100, 0), curve.Pt(10, 0)}

	cases := []struct {
		name   string
		pt     curve.Point
		radius float64
		want   int
		ok     bool
	}{
		{"exact_hit", curve.Pt(100, 0), 18, 1, true},
		{"closest_wins", curve.Pt(7, 0), 18, 2, true},
		{"on_radius", curve.Pt(118, 0), 18, 1, true},
		{"outside_radius", curve.Pt(50, 50), 18, -1, false},
		{"tie_keeps_earliest", curve.Pt(5, 0), 18, 0, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := Nearest(points, c.pt, c.radius)
			if got != c.want || ok != c.ok {
				t.Errorf("got (%d, %v), want (%d, %v)", got, ok, c.want, c.ok)
			}
		})
	}

	if _, ok := Nearest(nil, curve.Pt(0, 0), 18); ok {
		t.Error("no points should never report a hit")
	}
}
