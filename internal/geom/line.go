package geom

import "math"

// LineKind tags the two representations a Line can take.
type LineKind uint8

const (
	// Sloped lines are y = Slope*x + Intercept.
	Sloped LineKind = iota
	// Vertical lines are x = X.
	Vertical
)

// Line is an infinite line, either sloped or vertical. Only the fields that
// belong to its Kind are meaningful.
type Line struct {
	Kind      LineKind
	Slope     float64
	Intercept float64
	X         float64
}

// SlopedLine returns y = m*x + b.
func SlopedLine(m, b float64) Line { return Line{Kind: Sloped, Slope: m, Intercept: b} }

// VerticalLine returns x = x0.
func VerticalLine(x0 float64) Line { return Line{Kind: Vertical, X: x0} }

// LineFromPoints returns the line through p0 and p1. Points sharing an x
// coordinate give a vertical line; coincident points are the caller's problem
// and come back as a vertical line through them.
func LineFromPoints(p0, p1 Vector) Line {
	if p0.X == p1.X {
		return VerticalLine(p0.X)
	}
	m := (p1.Y - p0.Y) / (p1.X - p0.X)
	return SlopedLine(m, p0.Y-m*p0.X)
}

// IsVertical reports whether l is x = const.
func (l Line) IsVertical() bool { return l.Kind == Vertical }

// At evaluates a sloped line at x. Vertical lines have no single value and
// return NaN.
func (l Line) At(x float64) float64 {
	if l.Kind == Vertical {
		return math.NaN()
	}
	return l.Slope*x + l.Intercept
}

// Parallel reports whether the lines never meet in exactly one point.
// Coincident lines count as parallel.
func Parallel(l0, l1 Line) bool {
	switch {
	case l0.Kind == Vertical && l1.Kind == Vertical:
		return true
	case l0.Kind == Vertical || l1.Kind == Vertical:
		return false
	default:
		return l0.Slope == l1.Slope
	}
}

// Intersect returns the unique point shared by l0 and l1. The result does not
// depend on argument order.
func Intersect(l0, l1 Line) (Vector, bool) {
	if Parallel(l0, l1) {
		return Vector{}, false
	}
	switch {
	case l0.Kind == Vertical:
		return Vector{X: l0.X, Y: l1.At(l0.X)}, true
	case l1.Kind == Vertical:
		return Vector{X: l1.X, Y: l0.At(l1.X)}, true
	}
	x := (l1.Intercept - l0.Intercept) / (l0.Slope - l1.Slope)
	// y comes from the flatter line; ties are broken on the coefficients so
	// swapping the operands cannot change the rounding.
	ref := l0
	if flatter(l1, l0) {
		ref = l1
	}
	return Vector{X: x, Y: ref.At(x)}, true
}

func flatter(a, b Line) bool {
	ma, mb := math.Abs(a.Slope), math.Abs(b.Slope)
	if ma != mb {
		return ma < mb
	}
	if a.Slope != b.Slope {
		return a.Slope < b.Slope
	}
	return a.Intercept < b.Intercept
}

// Draw strokes the part of l that crosses the w×h viewport. Lines that miss
// the viewport draw nothing.
func (l Line) Draw(p Pen, w, h float64) {
	from, to, ok := l.Clip(w, h)
	if !ok {
		return
	}
	p.MoveTo(from.X, from.Y)
	p.LineTo(to.X, to.Y)
	p.Stroke()
}

// Clip returns the chord of l inside the w×h viewport. The entry point is on
// the left edge when the line's y there is in [0, h), otherwise on whichever
// of the y=0 / y=h crossings comes first; the exit mirrors that on the right.
func (l Line) Clip(w, h float64) (Vector, Vector, bool) {
	if l.Kind == Vertical {
		return Vector{X: l.X, Y: 0}, Vector{X: l.X, Y: h}, true
	}
	m, b := l.Slope, l.Intercept
	right := m*w + b
	if (b < 0 && right < 0) || (b > h && right > h) {
		return Vector{}, Vector{}, false
	}
	if m == 0 {
		return Vector{X: 0, Y: b}, Vector{X: w, Y: b}, true
	}
	// x where the line meets y=0 and y=h.
	bot := -b / m
	top := (h - b) / m

	var from, to Vector
	switch {
	case b >= 0 && b < h:
		from = Vector{X: 0, Y: b}
	case bot < top:
		from = Vector{X: bot, Y: 0}
	default:
		from = Vector{X: top, Y: h}
	}
	switch {
	case right >= 0 && right < h:
		to = Vector{X: w, Y: right}
	case bot > top:
		to = Vector{X: bot, Y: 0}
	default:
		to = Vector{X: top, Y: h}
	}
	return from, to, true
}
