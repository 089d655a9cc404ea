package render

import (
	"raytree/internal/geom"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Recorder is a surface that keeps every stroke as a path so it can be
// replayed onto another surface or exported.
type Recorder struct {
	paths []*path.Data
	cur   *path.Data
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// MoveTo starts a new subpath.
func (r *Recorder) MoveTo(x, y float64) {
	if r.cur == nil {
		r.cur = &path.Data{}
	}
	r.cur.MoveTo(vec.Vec2{X: x, Y: y})
}

// LineTo extends the current subpath. A LineTo without a preceding MoveTo
// starts at the given point.
func (r *Recorder) LineTo(x, y float64) {
	if r.cur == nil {
		r.MoveTo(x, y)
		return
	}
	r.cur.LineTo(vec.Vec2{X: x, Y: y})
}

// Stroke closes off the pending path.
func (r *Recorder) Stroke() {
	if r.cur != nil && len(r.cur.Cmds) > 0 {
		r.paths = append(r.paths, r.cur)
	}
	r.cur = nil
}

// Clear drops every recorded path.
func (r *Recorder) Clear() {
	clear(r.paths)
	r.paths = r.paths[:0]
	r.cur = nil
}

// Paths returns the stroked paths in drawing order.
func (r *Recorder) Paths() []*path.Data { return r.paths }

// Len returns the number of stroked paths.
func (r *Recorder) Len() int { return len(r.paths) }

// Replay draws every recorded path onto p.
func (r *Recorder) Replay(p geom.Pen) {
	for _, d := range r.paths {
		replayPath(p, d)
	}
}

func replayPath(p geom.Pen, d *path.Data) {
	i := 0
	for _, cmd := range d.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt := d.Coords[i]
			p.MoveTo(pt.X, pt.Y)
			i++
		case path.CmdLineTo:
			pt := d.Coords[i]
			p.LineTo(pt.X, pt.Y)
			i++
		case path.CmdQuadTo:
			i += 2
		case path.CmdCubeTo:
			i += 3
		}
	}
	p.Stroke()
}

// Bounds returns the box holding every recorded point. The second result is
// false when nothing has been recorded.
func (r *Recorder) Bounds() (rect.Rect, bool) {
	var box rect.Rect
	first := true
	for _, d := range r.paths {
		for _, pt := range d.Coords {
			if first {
				box = rect.Rect{LLx: pt.X, LLy: pt.Y, URx: pt.X, URy: pt.Y}
				first = false
				continue
			}
			box.LLx = min(box.LLx, pt.X)
			box.LLy = min(box.LLy, pt.Y)
			box.URx = max(box.URx, pt.X)
			box.URy = max(box.URy, pt.Y)
		}
	}
	return box, !first
}
