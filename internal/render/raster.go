package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

// DefaultStrokeWidth is the line width the growth layers are drawn with.
var DefaultStrokeWidth = math.Sqrt2

// Raster is a surface that strokes lines into an 8-bit coverage mask using
// the x/image anti-aliasing rasterizer.
type Raster struct {
	img   *image.Alpha
	r     *vector.Rasterizer
	src   *image.Uniform
	width float64

	pts []vec.Vec2
}

// NewRaster allocates a w×h coverage mask.
func NewRaster(w, h int) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Raster{
		img:   image.NewAlpha(image.Rect(0, 0, w, h)),
		r:     vector.NewRasterizer(0, 0),
		src:   image.NewUniform(color.Alpha{A: 255}),
		width: DefaultStrokeWidth,
	}
}

// SetStrokeWidth changes the width of subsequent strokes.
func (s *Raster) SetStrokeWidth(w float64) {
	if w > 0 {
		s.width = w
	}
}

// Image exposes the coverage mask.
func (s *Raster) Image() *image.Alpha { return s.img }

// MoveTo starts a new polyline.
func (s *Raster) MoveTo(x, y float64) {
	s.pts = append(s.pts[:0], vec.Vec2{X: x, Y: y})
}

// LineTo extends the pending polyline.
func (s *Raster) LineTo(x, y float64) {
	s.pts = append(s.pts, vec.Vec2{X: x, Y: y})
}

// Stroke rasterizes the pending polyline, one quad per edge.
func (s *Raster) Stroke() {
	if len(s.pts) == 1 {
		s.quad(s.pts[0], s.pts[0])
	}
	for i := 1; i < len(s.pts); i++ {
		s.quad(s.pts[i-1], s.pts[i])
	}
	s.pts = s.pts[:0]
}

// Clear resets the mask to zero coverage.
func (s *Raster) Clear() {
	clear(s.img.Pix)
	s.pts = s.pts[:0]
}

func (s *Raster) quad(a, b vec.Vec2) {
	half := s.width / 2
	d := b.Sub(a)
	length := d.Length()
	var t vec.Vec2
	if length < 1e-12 {
		t = vec.Vec2{X: 1}
	} else {
		t = d.Mul(1 / length)
	}
	n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(half)
	// Butt ends on real edges, a square for a dot.
	if length < 1e-12 {
		a = a.Sub(t.Mul(half))
		b = b.Add(t.Mul(half))
	}

	p := [4]vec.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
	box := quadBounds(p).Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}
	// Rasterize only the quad's pixel box; the rasterizer origin maps to
	// box.Min.
	s.r.Reset(box.Dx(), box.Dy())
	o := vec.Vec2{X: float64(box.Min.X), Y: float64(box.Min.Y)}
	for i, q := range p {
		q = q.Sub(o)
		if i == 0 {
			s.r.MoveTo(float32(q.X), float32(q.Y))
		} else {
			s.r.LineTo(float32(q.X), float32(q.Y))
		}
	}
	s.r.ClosePath()
	s.r.Draw(s.img, box, s.src, image.Point{})
}

// quadBounds returns the smallest pixel rectangle covering p.
func quadBounds(p [4]vec.Vec2) image.Rectangle {
	x0, y0 := p[0].X, p[0].Y
	x1, y1 := x0, y0
	for _, q := range p[1:] {
		x0, x1 = math.Min(x0, q.X), math.Max(x1, q.X)
		y0, y1 = math.Min(y0, q.Y), math.Max(y1, q.Y)
	}
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}
