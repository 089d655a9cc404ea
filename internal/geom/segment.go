package geom

// Pen receives primitive drawing commands.
type Pen interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// StrokeLine draws the straight path from a to b.
func StrokeLine(p Pen, a, b Vector) {
	p.MoveTo(a.X, a.Y)
	p.LineTo(b.X, b.Y)
	p.Stroke()
}

// Segment is the bounded part of Line between Start and End, measured along x
// for sloped lines and along y for vertical ones. Both bounds are inclusive.
type Segment struct {
	Line  Line
	Start float64
	End   float64
}

// NewSegment returns the segment joining p0 and p1.
func NewSegment(p0, p1 Vector) Segment {
	s := Segment{Line: LineFromPoints(p0, p1)}
	if s.Line.Kind == Vertical {
		s.Start, s.End = p0.Y, p1.Y
	} else {
		s.Start, s.End = p0.X, p1.X
	}
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// IsVertical reports whether the segment runs along a vertical line.
func (s Segment) IsVertical() bool { return s.Line.Kind == Vertical }

// Contains reports whether v lies in [Start, End].
func (s Segment) Contains(v float64) bool { return v >= s.Start && v <= s.End }

// P0 returns the endpoint at Start.
func (s Segment) P0() Vector {
	if s.Line.Kind == Vertical {
		return Vector{X: s.Line.X, Y: s.Start}
	}
	return Vector{X: s.Start, Y: s.Line.At(s.Start)}
}

// P1 returns the endpoint at End.
func (s Segment) P1() Vector {
	if s.Line.Kind == Vertical {
		return Vector{X: s.Line.X, Y: s.End}
	}
	return Vector{X: s.End, Y: s.Line.At(s.End)}
}

// XRange returns the horizontal extent of the segment.
func (s Segment) XRange() (float64, float64) {
	if s.Line.Kind == Vertical {
		return s.Line.X, s.Line.X
	}
	return s.Start, s.End
}

// Draw strokes the segment.
func (s Segment) Draw(p Pen) {
	StrokeLine(p, s.P0(), s.P1())
}

// IntersectSegments returns the point where s0 and s1 meet. Touching at an
// endpoint counts. Collinear overlapping segments share no unique point and
// report false.
func IntersectSegments(s0, s1 Segment) (Vector, bool) {
	p, ok := Intersect(s0.Line, s1.Line)
	if !ok {
		return Vector{}, false
	}
	switch {
	case s0.IsVertical():
		if s1.Contains(p.X) && s0.Contains(p.Y) {
			return p, true
		}
	case s1.IsVertical():
		if s0.Contains(p.X) && s1.Contains(p.Y) {
			return p, true
		}
	default:
		if s0.Contains(p.X) && s1.Contains(p.X) {
			return p, true
		}
	}
	return Vector{}, false
}
