package geom

import (
	"math"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

type penCall struct {
	op   string
	x, y float64
}

type recordingPen struct {
	calls []penCall
}

func (p *recordingPen) MoveTo(x, y float64) { p.calls = append(p.calls, penCall{"move", x, y}) }
func (p *recordingPen) LineTo(x, y float64) { p.calls = append(p.calls, penCall{"line", x, y}) }
func (p *recordingPen) Stroke()             { p.calls = append(p.calls, penCall{op: "stroke"}) }

func TestVectorPolarViews(t *testing.T) {
	v := New(3, 4)
	if v.Mag() != 5 {
		t.Fatalf("expected magnitude 5, got %f", v.Mag())
	}

	down := New(0, -1)
	if !near(down.Degs(), 270) {
		t.Fatalf("expected 270 degrees for (0,-1), got %f", down.Degs())
	}

	v.SetMag(10)
	if !near(v.X, 6) || !near(v.Y, 8) {
		t.Fatalf("expected (6,8) after rescale, got (%f,%f)", v.X, v.Y)
	}

	v.SetDegs(90)
	if !near(v.Mag(), 10) || !near(v.X, 0) || !near(v.Y, 10) {
		t.Fatalf("expected (0,10) after rotation, got (%f,%f)", v.X, v.Y)
	}

	p := Polar(1, 180)
	if !near(p.X, -1) || !near(p.Y, 0) {
		t.Fatalf("expected (-1,0), got (%f,%f)", p.X, p.Y)
	}

	sum := Add(New(1, 2), New(3, 5))
	diff := Sub(sum, New(1, 1))
	if sum != New(4, 7) || diff != New(3, 6) {
		t.Fatalf("unexpected add/sub results %v %v", sum, diff)
	}
}

func TestVectorArithmeticMatchesVec2(t *testing.T) {
	a, b := New(3, -4), New(0.5, 2)
	if got, want := Add(a, b).Vec2(), a.Vec2().Add(vec.Vec2{X: 0.5, Y: 2}); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := Sub(a, b); got != New(2.5, -6) {
		t.Fatalf("expected (2.5, -6), got %v", got)
	}
	if got := a.Scale(2); got != Vector(vec.Vec2{X: 6, Y: -8}) {
		t.Fatalf("expected (6, -8), got %v", got)
	}
	if a.Mag() != 5 || Dist(New(1, 1), New(4, 5)) != 5 {
		t.Fatalf("expected lengths of 5, got %f and %f", a.Mag(), Dist(New(1, 1), New(4, 5)))
	}
}

func TestZeroVectorRescaleIsNotFinite(t *testing.T) {
	var v Vector
	v.SetMag(2)
	if v.Finite() {
		t.Fatalf("expected rescaling the zero vector to produce non-finite values, got %v", v)
	}
}

func TestLineFromPointsPassesThroughBoth(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for i := 0; i < 1000; i++ {
		p0 := New(rng.Float64()*200-100, rng.Float64()*200-100)
		p1 := New(rng.Float64()*200-100, rng.Float64()*200-100)
		if p0.X == p1.X {
			continue
		}
		l := LineFromPoints(p0, p1)
		if l.IsVertical() {
			t.Fatalf("expected sloped line for %v %v", p0, p1)
		}
		if math.Abs(l.At(p0.X)-p0.Y) > 1e-6 || math.Abs(l.At(p1.X)-p1.Y) > 1e-6 {
			t.Fatalf("line %+v misses its points %v %v", l, p0, p1)
		}
	}
}

func TestLineFromPointsVertical(t *testing.T) {
	l := LineFromPoints(New(4, 1), New(4, 9))
	if !l.IsVertical() {
		t.Fatal("expected vertical line")
	}
	if l.X != 4 {
		t.Fatalf("expected x 4, got %f", l.X)
	}
	if !math.IsNaN(l.At(4)) {
		t.Fatal("expected NaN when evaluating a vertical line")
	}
}

func TestIntersectSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 3))
	line := func() Line {
		if rng.IntN(5) == 0 {
			return VerticalLine(rng.Float64() * 50)
		}
		return SlopedLine(rng.Float64()*10-5, rng.Float64()*100-50)
	}
	for i := 0; i < 2000; i++ {
		l0, l1 := line(), line()
		a, okA := Intersect(l0, l1)
		b, okB := Intersect(l1, l0)
		if okA != okB || a != b {
			t.Fatalf("intersection not symmetric for %+v %+v: %v/%v vs %v/%v", l0, l1, a, okA, b, okB)
		}
	}
}

func TestIntersectCases(t *testing.T) {
	if _, ok := Intersect(SlopedLine(2, 1), SlopedLine(2, 5)); ok {
		t.Fatal("parallel lines must not intersect")
	}
	if _, ok := Intersect(SlopedLine(2, 1), SlopedLine(2, 1)); ok {
		t.Fatal("coincident lines have no unique intersection")
	}
	if _, ok := Intersect(VerticalLine(3), VerticalLine(3)); ok {
		t.Fatal("coincident vertical lines have no unique intersection")
	}

	p, ok := Intersect(VerticalLine(3), SlopedLine(2, 1))
	if !ok || p != New(3, 7) {
		t.Fatalf("expected (3,7), got %v ok=%v", p, ok)
	}

	p, ok = Intersect(SlopedLine(1, 0), SlopedLine(-1, 4))
	if !ok || !near(p.X, 2) || !near(p.Y, 2) {
		t.Fatalf("expected (2,2), got %v ok=%v", p, ok)
	}
}

func TestSegmentNormalizesInterval(t *testing.T) {
	s := NewSegment(New(10, 0), New(2, 4))
	if s.Start != 2 || s.End != 10 {
		t.Fatalf("expected [2,10], got [%f,%f]", s.Start, s.End)
	}
	v := NewSegment(New(1, 8), New(1, -2))
	if !v.IsVertical() || v.Start != -2 || v.End != 8 {
		t.Fatalf("expected vertical [-2,8], got %+v", v)
	}
	if v.P0() != New(1, -2) || v.P1() != New(1, 8) {
		t.Fatalf("unexpected endpoints %v %v", v.P0(), v.P1())
	}
}

func TestSegmentsSharingEndpointIntersect(t *testing.T) {
	cases := []struct {
		name   string
		a, b   Segment
		expect Vector
	}{
		{"sloped", NewSegment(New(0, 0), New(2, 2)), NewSegment(New(2, 2), New(5, -1)), New(2, 2)},
		{"vertical-first", NewSegment(New(2, 0), New(2, 2)), NewSegment(New(2, 2), New(6, 4)), New(2, 2)},
		{"vertical-second", NewSegment(New(0, 1), New(3, 1)), NewSegment(New(3, 1), New(3, 9)), New(3, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := IntersectSegments(tc.a, tc.b)
			if !ok {
				t.Fatal("expected endpoint touch to intersect")
			}
			if !near(p.X, tc.expect.X) || !near(p.Y, tc.expect.Y) {
				t.Fatalf("expected %v, got %v", tc.expect, p)
			}
		})
	}
}

func TestSegmentIntersectionRanges(t *testing.T) {
	if _, ok := IntersectSegments(NewSegment(New(0, 0), New(1, 1)), NewSegment(New(0, 3), New(1, 4))); ok {
		t.Fatal("parallel disjoint segments must not intersect")
	}
	if _, ok := IntersectSegments(NewSegment(New(0, 0), New(4, 4)), NewSegment(New(1, 1), New(3, 3))); ok {
		t.Fatal("collinear segments follow the parallel rule and report no intersection")
	}
	if _, ok := IntersectSegments(NewSegment(New(0, 0), New(1, 1)), NewSegment(New(3, 0), New(2, 1))); ok {
		t.Fatal("lines cross outside both segments")
	}
	// The vertical segment's y range is what rejects this one.
	if _, ok := IntersectSegments(NewSegment(New(2, 5), New(2, 9)), NewSegment(New(0, 0), New(4, 4))); ok {
		t.Fatal("crossing below a vertical segment must not count")
	}
	p, ok := IntersectSegments(NewSegment(New(0, 4), New(4, 0)), NewSegment(New(0, 0), New(4, 4)))
	if !ok || !near(p.X, 2) || !near(p.Y, 2) {
		t.Fatalf("expected crossing at (2,2), got %v ok=%v", p, ok)
	}
}

func TestSegmentDraw(t *testing.T) {
	var pen recordingPen
	NewSegment(New(5, 1), New(1, 3)).Draw(&pen)
	want := []penCall{{"move", 1, 3}, {"line", 5, 1}, {op: "stroke"}}
	if len(pen.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(pen.calls))
	}
	for i := range want {
		if pen.calls[i] != want[i] {
			t.Fatalf("call %d: expected %+v, got %+v", i, want[i], pen.calls[i])
		}
	}
}

func TestLineClip(t *testing.T) {
	const w, h = 100.0, 50.0

	from, to, ok := SlopedLine(0.1, 10).Clip(w, h)
	if !ok || from != New(0, 10) || !near(to.X, w) || !near(to.Y, 20) {
		t.Fatalf("expected side-to-side chord, got %v %v ok=%v", from, to, ok)
	}

	from, to, ok = SlopedLine(1, -20).Clip(w, h)
	if !ok || !near(from.X, 20) || from.Y != 0 || !near(to.X, 70) || to.Y != h {
		t.Fatalf("expected bottom-to-top chord, got %v %v ok=%v", from, to, ok)
	}

	if _, _, ok := SlopedLine(0.01, 80).Clip(w, h); ok {
		t.Fatal("line above the viewport must be skipped")
	}

	from, to, ok = VerticalLine(30).Clip(w, h)
	if !ok || from != New(30, 0) || to != New(30, h) {
		t.Fatalf("unexpected vertical chord %v %v", from, to)
	}

	var pen recordingPen
	SlopedLine(0, 25).Draw(&pen, w, h)
	if len(pen.calls) != 3 || pen.calls[1] != (penCall{"line", w, 25}) {
		t.Fatalf("unexpected horizontal chord calls %+v", pen.calls)
	}
}
