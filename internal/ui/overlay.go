//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"raytree/internal/core"
	"raytree/internal/geom"
	"raytree/internal/spatial"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type indexProvider interface {
	Index() *spatial.Index
}

type rayProvider interface {
	HeadingLines(dst []geom.Line) []geom.Line
	Tips(dst []geom.Vector) []geom.Vector
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim          core.Sim
	scale        int
	showStrips   bool
	showHeadings bool
	showTips     bool

	pixel *ebiten.Image
	lines []geom.Line
	tips  []geom.Vector
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStrips = !o.showStrips
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHeadings = !o.showHeadings
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showTips = !o.showTips
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showStrips {
		if provider, ok := o.sim.(indexProvider); ok {
			o.drawStrips(screen, provider.Index(), size, scale)
		}
	}

	provider, ok := o.sim.(rayProvider)
	if !ok {
		return
	}
	if o.showHeadings {
		o.lines = provider.HeadingLines(o.lines[:0])
		pen := &screenPen{o: o, dst: screen, scale: float64(scale), col: color.NRGBA{R: 90, G: 130, B: 170, A: 120}}
		for _, l := range o.lines {
			l.Draw(pen, float64(size.W), float64(size.H))
		}
	}
	if o.showTips {
		o.tips = provider.Tips(o.tips[:0])
		dot := math.Max(3, float64(scale)*2)
		for _, p := range o.tips {
			o.drawPoint(screen, p.X*float64(scale), p.Y*float64(scale), dot, color.NRGBA{R: 255, G: 120, B: 40, A: 220})
		}
	}
}

// drawStrips shades every index strip by how many entries it holds.
func (o *Overlay) drawStrips(screen *ebiten.Image, ix *spatial.Index, size core.Size, scale int) {
	if o.pixel == nil || ix == nil {
		return
	}
	occ := ix.Occupancy()
	peak := 0
	for _, n := range occ {
		peak = max(peak, n)
	}
	if peak == 0 {
		return
	}
	const maxAlpha = 110.0
	height := float64(size.H * scale)
	for b, n := range occ {
		if n == 0 {
			continue
		}
		x0, x1 := ix.StripBounds(b)
		x0 = math.Min(x0, float64(size.W)) * float64(scale)
		x1 = math.Min(x1, float64(size.W)) * float64(scale)
		if x1 <= x0 {
			continue
		}
		alpha := uint8(math.Round(maxAlpha * math.Sqrt(float64(n)/float64(peak))))
		col := color.NRGBA{R: 64, G: 164, B: 223, A: alpha}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(x1-x0, height)
		op.GeoM.Translate(x0, 0)
		op.ColorScale.ScaleWithColor(col)
		screen.DrawImage(o.pixel, op)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.Color) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.Color) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

// screenPen forwards pen commands to drawLine in screen space.
type screenPen struct {
	o      *Overlay
	dst    *ebiten.Image
	scale  float64
	col    color.Color
	x, y   float64
	hasPen bool
}

func (p *screenPen) MoveTo(x, y float64) {
	p.x, p.y, p.hasPen = x*p.scale, y*p.scale, true
}

func (p *screenPen) LineTo(x, y float64) {
	sx, sy := x*p.scale, y*p.scale
	if p.hasPen {
		p.o.drawLine(p.dst, p.x, p.y, sx, sy, 1, p.col)
	}
	p.x, p.y, p.hasPen = sx, sy, true
}

func (p *screenPen) Stroke() { p.hasPen = false }
